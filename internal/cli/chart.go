package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vedicastro/panchang/internal/model"
)

var (
	chartDate string
	chartLat  float64
	chartLon  float64
	chartJSON bool
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute planetary longitudes and the ascendant",
	Long: `Compute tropical and sidereal longitudes for the nine chart bodies
(Sun through Ketu), the ascendant, and the midheaven for a civil
date-time (UTC) and location.

Example:
  panchang chart --date 2024-06-10T06:30:00 --lat 19.076 --lon 72.877`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVar(&chartDate, "date", "", "civil date-time, UTC (required)")
	chartCmd.Flags().Float64Var(&chartLat, "lat", 0, "latitude in degrees")
	chartCmd.Flags().Float64Var(&chartLon, "lon", 0, "longitude in degrees, east positive")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "JSON output")
	_ = chartCmd.MarkFlagRequired("date")
}

func runChart(cmd *cobra.Command, args []string) error {
	ct, err := parseCivil(chartDate)
	if err != nil {
		return err
	}

	eng, err := buildEngine(true)
	if err != nil {
		return err
	}

	chart, err := eng.Chart(ct, locationFlags(chartLat, chartLon))
	if err != nil {
		return err
	}

	if chartJSON {
		return printJSON(chart)
	}

	fmt.Printf("Chart for %04d-%02d-%02d %02d:%02d UTC (%.3f, %.3f)\n",
		ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute, chartLat, chartLon)
	fmt.Printf("  JD %.5f   LST %.4f°   Ayanamsa %.4f°\n\n",
		chart.Moment.JD, float64(chart.LST), float64(chart.Ayanamsa))

	fmt.Printf("  %-9s %12s %12s\n", "Body", "Tropical", "Sidereal")
	for _, body := range model.Bodies {
		fmt.Printf("  %-9s %11.4f° %11.4f°\n",
			body, float64(chart.Tropical[body]), float64(chart.Sidereal[body]))
	}

	fmt.Printf("\n  Ascendant %.4f° (sign %d, %.4f° within)\n",
		float64(chart.Ascendant.Longitude), chart.Ascendant.Sign, chart.Ascendant.DegreeInSign)
	fmt.Printf("  Midheaven %.4f°\n", float64(chart.Midheaven))
	return nil
}
