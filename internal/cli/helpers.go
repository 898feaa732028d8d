package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vedicastro/panchang/internal/engine"
	"github.com/vedicastro/panchang/internal/model"
)

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseCivil parses a civil date-time string in one of the supported layouts.
// Times are interpreted as UTC.
func parseCivil(s string) (model.CivilTime, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.CivilTime{
				Year:   t.Year(),
				Month:  int(t.Month()),
				Day:    t.Day(),
				Hour:   t.Hour(),
				Minute: t.Minute(),
				Second: float64(t.Second()),
			}, nil
		}
	}
	return model.CivilTime{}, fmt.Errorf("unrecognized date %q (expected e.g. 2024-06-10 or 2024-06-10T06:30:00)", s)
}

// buildEngine constructs an engine from defaults adjusted by global flags.
func buildEngine(noCache bool) (*engine.Engine, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	if noCache {
		cfg.Cache.Enabled = false
	}
	return engine.New(cfg)
}

// locationFlags bundles the lat/lon flag pair.
func locationFlags(lat, lon float64) model.Location {
	return model.Location{Latitude: lat, Longitude: lon}
}

// printJSON renders any result as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
