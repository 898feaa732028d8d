package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vedicastro/panchang/internal/engine"
	"github.com/vedicastro/panchang/internal/model"
	"github.com/vedicastro/panchang/internal/muhurat"
)

var (
	searchFrom     string
	searchTo       string
	searchLat      float64
	searchLon      float64
	searchActivity string
	searchSlot     string
	searchMinScore float64
	searchWorkers  int
	searchEvalRate float64
	searchLimit    int
	searchTimeout  time.Duration
	searchJSON     bool
	searchNoCache  bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a date range for auspicious windows",
	Long: `Evaluate every date in a range for an activity, concurrently, and
rank the results by score. Dates that fail to evaluate are logged to
stderr and skipped; one bad date never aborts the scan.

Example:
  panchang search --from 2024-11-01 --to 2024-11-30 --lat 19.076 --lon 72.877 \
    --activity marriage --min-score 0.6 --limit 10`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchFrom, "from", "", "first date of the range (required)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "last date of the range, inclusive (required)")
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "latitude in degrees")
	searchCmd.Flags().Float64Var(&searchLon, "lon", 0, "longitude in degrees, east positive")
	searchCmd.Flags().StringVar(&searchActivity, "activity", "general", "activity to score for")
	searchCmd.Flags().StringVar(&searchSlot, "slot", "", "intraday slot: morning, afternoon, evening, night")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0.5, "minimum total score to report")
	searchCmd.Flags().IntVar(&searchWorkers, "workers", 0, "concurrent evaluators (0 = config default)")
	searchCmd.Flags().Float64Var(&searchEvalRate, "max-eval-rate", 0, "max evaluations per second (0 = unlimited)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "report at most N candidates (0 = all)")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 5*time.Minute, "abort the scan after this long")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "JSON output")
	searchCmd.Flags().BoolVar(&searchNoCache, "no-cache", false, "disable snapshot cache")
	_ = searchCmd.MarkFlagRequired("from")
	_ = searchCmd.MarkFlagRequired("to")
}

func runSearch(cmd *cobra.Command, args []string) error {
	from, err := parseCivil(searchFrom)
	if err != nil {
		return err
	}
	to, err := parseCivil(searchTo)
	if err != nil {
		return err
	}
	slot, err := parseSlot(searchSlot)
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	if searchNoCache {
		cfg.Cache.Enabled = false
	}
	if searchWorkers > 0 {
		cfg.Search.Workers = searchWorkers
	}
	cfg.Search.MaxEvalRate = searchEvalRate

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	candidates, err := eng.FindWindows(ctx, from, to, locationFlags(searchLat, searchLon),
		muhurat.Preferences{Activity: searchActivity, Slot: slot, MinScore: searchMinScore}, nil)
	if err != nil {
		return err
	}

	if searchLimit > 0 && len(candidates) > searchLimit {
		candidates = candidates[:searchLimit]
	}

	if searchJSON {
		return printJSON(candidates)
	}

	if len(candidates) == 0 {
		fmt.Printf("No dates scored %.2f or above for %s between %s and %s.\n",
			searchMinScore, searchActivity, searchFrom, searchTo)
		return nil
	}

	fmt.Printf("Top dates for %s (%s to %s, min score %.2f):\n\n",
		searchActivity, searchFrom, searchTo, searchMinScore)
	fmt.Printf("  %-12s %-7s %-14s %-18s %-12s %s\n",
		"Date", "Score", "Grade", "Tithi", "Nakshatra", "Vara")
	for _, c := range candidates {
		d := c.Snapshot.Date
		fmt.Printf("  %04d-%02d-%02d   %.3f   %-14s %-18s %-12s %s\n",
			d.Year, d.Month, d.Day,
			c.Score.Total, c.Score.Grade,
			c.Snapshot.Tithi.Name, c.Snapshot.Nakshatra.Name, c.Snapshot.Vara.Name)
	}
	return nil
}
