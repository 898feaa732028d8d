package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vedicastro/panchang/internal/model"
	"github.com/vedicastro/panchang/internal/muhurat"
)

var (
	muhuratDate     string
	muhuratLat      float64
	muhuratLon      float64
	muhuratActivity string
	muhuratSlot     string
	muhuratJSON     bool
	muhuratNoCache  bool
)

// muhuratCmd represents the muhurat command
var muhuratCmd = &cobra.Command{
	Use:   "muhurat",
	Short: "Score a date-time for an activity",
	Long: `Score a civil date-time (UTC) and location for a specific activity.
The score breaks down into weighted Panchang factors and maps to a
grade with a plain-language recommendation.

Known activities: general, marriage, business, travel, education,
health. Unknown activities fall back to the general rule set.

Example:
  panchang muhurat --date 2024-11-15T09:00 --lat 19.076 --lon 72.877 --activity marriage --slot morning`,
	RunE: runMuhurat,
}

func init() {
	rootCmd.AddCommand(muhuratCmd)

	muhuratCmd.Flags().StringVar(&muhuratDate, "date", "", "civil date-time, UTC (required)")
	muhuratCmd.Flags().Float64Var(&muhuratLat, "lat", 0, "latitude in degrees")
	muhuratCmd.Flags().Float64Var(&muhuratLon, "lon", 0, "longitude in degrees, east positive")
	muhuratCmd.Flags().StringVar(&muhuratActivity, "activity", "general", "activity to score for")
	muhuratCmd.Flags().StringVar(&muhuratSlot, "slot", "", "intraday slot: morning, afternoon, evening, night")
	muhuratCmd.Flags().BoolVar(&muhuratJSON, "json", false, "JSON output")
	muhuratCmd.Flags().BoolVar(&muhuratNoCache, "no-cache", false, "disable snapshot cache")
	_ = muhuratCmd.MarkFlagRequired("date")
}

// parseSlot validates the --slot flag. Empty means no slot preference.
func parseSlot(s string) (muhurat.TimeSlot, error) {
	switch muhurat.TimeSlot(strings.ToLower(s)) {
	case "", muhurat.SlotMorning, muhurat.SlotAfternoon, muhurat.SlotEvening, muhurat.SlotNight:
		return muhurat.TimeSlot(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown slot %q (expected morning, afternoon, evening, or night)", s)
}

func runMuhurat(cmd *cobra.Command, args []string) error {
	ct, err := parseCivil(muhuratDate)
	if err != nil {
		return err
	}
	slot, err := parseSlot(muhuratSlot)
	if err != nil {
		return err
	}

	eng, err := buildEngine(muhuratNoCache)
	if err != nil {
		return err
	}

	snap, score, err := eng.Score(ct, locationFlags(muhuratLat, muhuratLon), muhuratActivity, slot)
	if err != nil {
		return err
	}

	if muhuratJSON {
		return printJSON(struct {
			Snapshot any `json:"snapshot"`
			Score    any `json:"score"`
		}{snap, score})
	}

	fmt.Printf("Muhurat score for %s on %04d-%02d-%02d %02d:%02d UTC\n\n",
		score.Activity, ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute)
	fmt.Printf("  Total: %.3f  [%s]\n", score.Total, score.Grade)
	if score.GandMulaPenalty {
		fmt.Printf("  Gand Mula penalty applied (%s)\n", snap.Nakshatra.Name)
	}
	fmt.Println()
	order := append([]model.Factor{}, model.ScoredFactors...)
	order = append(order, model.FactorTimeSlot, model.FactorAspect)
	for _, factor := range order {
		fmt.Printf("  %-10s %.2f\n", factor, score.Components[factor])
	}
	fmt.Println()
	if len(score.Strengths) > 0 {
		fmt.Println("  Strengths:")
		for _, s := range score.Strengths {
			fmt.Printf("    + %s\n", s)
		}
	}
	if len(score.Weaknesses) > 0 {
		fmt.Println("  Weaknesses:")
		for _, w := range score.Weaknesses {
			fmt.Printf("    - %s\n", w)
		}
	}
	fmt.Printf("\n  %s\n", score.Recommendation)
	return nil
}
