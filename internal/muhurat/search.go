package muhurat

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/vedicastro/panchang/internal/astrotime"
	"github.com/vedicastro/panchang/internal/model"
	"github.com/vedicastro/panchang/internal/worker"
)

// SnapshotProvider computes the Panchang for one (date, location) pair.
// Implemented by the engine; injected here so the search has no upward
// dependency.
type SnapshotProvider interface {
	Panchang(ct model.CivilTime, loc model.Location) (model.PanchangSnapshot, error)
}

// Logger receives non-fatal per-date failures during a range scan.
type Logger interface {
	Logf(format string, args ...any)
}

// StderrLogger writes scan diagnostics to standard error.
type StderrLogger struct{}

// Logf implements Logger.
func (StderrLogger) Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Preferences narrows a date-range search.
type Preferences struct {
	Activity string
	Slot     TimeSlot
	MinScore float64
}

// Finder runs date-range muhurat searches: one snapshot + score per civil
// date, evaluated concurrently, ranked by score.
type Finder struct {
	provider SnapshotProvider
	scorer   *Scorer
	workers  int
	throttle *worker.Throttle
	log      Logger
}

// NewFinder builds a finder. A nil logger falls back to stderr.
func NewFinder(provider SnapshotProvider, scorer *Scorer, cfg model.SearchConfig, log Logger) *Finder {
	if log == nil {
		log = StderrLogger{}
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Finder{
		provider: provider,
		scorer:   scorer,
		workers:  workers,
		throttle: worker.NewThrottle(cfg.MaxEvalRate, workers),
		log:      log,
	}
}

// dateJob evaluates a single civil date.
type dateJob struct {
	finder *Finder
	date   model.CivilTime
	loc    model.Location
	prefs  Preferences
}

// dateResult carries one evaluated date or its failure.
type dateResult struct {
	candidate model.Candidate
	date      model.CivilTime
	err       error
}

// GetError returns the per-date failure, if any.
func (r *dateResult) GetError() error { return r.err }

// Execute computes and scores the Panchang for the job's date.
func (j *dateJob) Execute(ctx context.Context) worker.Result {
	if err := j.finder.throttle.Wait(ctx); err != nil {
		return &dateResult{date: j.date, err: err}
	}
	snap, err := j.finder.provider.Panchang(j.date, j.loc)
	if err != nil {
		return &dateResult{date: j.date, err: err}
	}
	score := j.finder.scorer.Score(snap, j.prefs.Activity, j.prefs.Slot)
	return &dateResult{
		date:      j.date,
		candidate: model.Candidate{Snapshot: snap, Score: score},
	}
}

// FindWindows evaluates every civil date from start to end inclusive at the
// start date's time of day, keeps candidates meeting MinScore, and returns
// them sorted by descending score. Per-date failures are logged and skipped;
// a single bad date never aborts the scan.
func (f *Finder) FindWindows(ctx context.Context, start, end model.CivilTime, loc model.Location, prefs Preferences) ([]model.Candidate, error) {
	dates, err := expandDates(start, end)
	if err != nil {
		return nil, err
	}
	if prefs.Activity == "" {
		prefs.Activity = GeneralActivity
	}

	// Queue sized to the batch so every date can be submitted before results
	// are drained.
	pool := worker.NewPoolWithQueue(f.workers, len(dates))
	pool.Start()

	for _, date := range dates {
		if ctx.Err() != nil {
			break // cancellation between iterations; nothing to roll back
		}
		pool.Submit(&dateJob{finder: f, date: date, loc: loc, prefs: prefs})
	}
	results := pool.Wait()

	var candidates []model.Candidate
	for _, r := range results {
		dr := r.(*dateResult)
		if dr.err != nil {
			f.log.Logf("skipping %04d-%02d-%02d: %v", dr.date.Year, dr.date.Month, dr.date.Day, dr.err)
			continue
		}
		if dr.candidate.Score.Total >= prefs.MinScore {
			candidates = append(candidates, dr.candidate)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score.Total != b.Score.Total {
			return a.Score.Total > b.Score.Total
		}
		return dateLess(a.Snapshot.Date, b.Snapshot.Date)
	})

	if err := ctx.Err(); err != nil {
		return candidates, err
	}
	return candidates, nil
}

// expandDates lists every civil date from start to end inclusive, carrying
// the start date's time of day. Both endpoints are validated first: time.Date
// would silently normalize an impossible date (Feb 30 becomes early March)
// and the scan must reject it instead.
func expandDates(start, end model.CivilTime) ([]model.CivilTime, error) {
	if err := astrotime.Validate(start); err != nil {
		return nil, err
	}
	if err := astrotime.Validate(end); err != nil {
		return nil, err
	}

	s := time.Date(start.Year, time.Month(start.Month), start.Day, 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year, time.Month(end.Month), end.Day, 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return nil, &model.InvalidInputError{Field: "range", Value: fmt.Sprintf("%v..%v", start, end), Reason: "end date before start date"}
	}

	var dates []model.CivilTime
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		dates = append(dates, model.CivilTime{
			Year:   d.Year(),
			Month:  int(d.Month()),
			Day:    d.Day(),
			Hour:   start.Hour,
			Minute: start.Minute,
			Second: start.Second,
		})
	}
	return dates, nil
}

func dateLess(a, b model.CivilTime) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}
