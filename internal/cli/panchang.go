package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	panchangDate    string
	panchangLat     float64
	panchangLon     float64
	panchangJSON    bool
	panchangNoCache bool
)

// panchangCmd represents the panchang command
var panchangCmd = &cobra.Command{
	Use:   "panchang",
	Short: "Compute the five Panchang elements for a date and location",
	Long: `Compute Tithi, Nakshatra, Yoga, Karana, and Vara for a civil
date-time (UTC) and geographic location.

Example:
  panchang panchang --date 2024-06-10T06:30:00 --lat 19.076 --lon 72.877
  panchang panchang --date 2024-06-10 --lat 28.614 --lon 77.209 --json`,
	RunE: runPanchang,
}

func init() {
	rootCmd.AddCommand(panchangCmd)

	panchangCmd.Flags().StringVar(&panchangDate, "date", "", "civil date-time, UTC (required)")
	panchangCmd.Flags().Float64Var(&panchangLat, "lat", 0, "latitude in degrees")
	panchangCmd.Flags().Float64Var(&panchangLon, "lon", 0, "longitude in degrees, east positive")
	panchangCmd.Flags().BoolVar(&panchangJSON, "json", false, "JSON output")
	panchangCmd.Flags().BoolVar(&panchangNoCache, "no-cache", false, "disable snapshot cache")
	_ = panchangCmd.MarkFlagRequired("date")
}

func runPanchang(cmd *cobra.Command, args []string) error {
	ct, err := parseCivil(panchangDate)
	if err != nil {
		return err
	}

	eng, err := buildEngine(panchangNoCache)
	if err != nil {
		return err
	}

	snap, err := eng.Panchang(ct, locationFlags(panchangLat, panchangLon))
	if err != nil {
		return err
	}

	if panchangJSON {
		return printJSON(snap)
	}

	fmt.Printf("Panchang for %04d-%02d-%02d %02d:%02d UTC (%.3f, %.3f)\n\n",
		ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute, panchangLat, panchangLon)
	fmt.Printf("  Tithi:     %s (%s paksha, #%d, %.0f%% elapsed)%s\n",
		snap.Tithi.Name, snap.Tithi.Paksha, snap.Tithi.Number, snap.Tithi.Progress*100, mark(snap.Tithi.Auspicious))
	fmt.Printf("  Nakshatra: %s pada %d, ruled by %s%s\n",
		snap.Nakshatra.Name, snap.Nakshatra.Pada, snap.Nakshatra.Lord, mark(snap.Nakshatra.Auspicious))
	if snap.Nakshatra.GandMula {
		fmt.Fprintf(os.Stderr, "  Note: %s is a Gand Mula nakshatra\n", snap.Nakshatra.Name)
	}
	fmt.Printf("  Yoga:      %s (#%d)%s\n", snap.Yoga.Name, snap.Yoga.Number, mark(snap.Yoga.Auspicious))
	fmt.Printf("  Karana:    %s (%s, slot %d)%s\n", snap.Karana.Name, snap.Karana.Type, snap.Karana.Number, mark(snap.Karana.Auspicious))
	fmt.Printf("  Vara:      %s, ruled by %s%s\n", snap.Vara.Name, snap.Vara.Lord, mark(snap.Vara.Auspicious))
	fmt.Printf("\n  Sun  %8.4f°  Moon %8.4f° (sidereal)\n",
		float64(snap.SunLongitude), float64(snap.MoonLongitude))
	return nil
}

func mark(auspicious bool) string {
	if auspicious {
		return ""
	}
	return "  [inauspicious]"
}
