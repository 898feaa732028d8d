package muhurat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/vedicastro/panchang/internal/model"
	"github.com/vedicastro/panchang/internal/panchang"
)

// fakeProvider computes real snapshots but fails on marked days.
type fakeProvider struct {
	classifier *panchang.Classifier
	failDays   map[int]bool
}

func (p *fakeProvider) Panchang(ct model.CivilTime, loc model.Location) (model.PanchangSnapshot, error) {
	if p.failDays[ct.Day] {
		return model.PanchangSnapshot{}, &model.ComputationError{
			Op:     "panchang",
			Inputs: map[string]any{"day": ct.Day},
			Err:    errors.New("synthetic failure"),
		}
	}
	// Deterministic pseudo-longitudes varying by day
	sun := model.NormalizeAngle(float64(ct.Day) * 11)
	moon := model.NormalizeAngle(float64(ct.Day) * 37)
	return p.classifier.Snapshot(ct, loc, sun, moon), nil
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func newTestFinder(failDays map[int]bool, log Logger) *Finder {
	provider := &fakeProvider{
		classifier: panchang.NewClassifier(panchang.DefaultTables()),
		failDays:   failDays,
	}
	return NewFinder(provider, newTestScorer(), model.SearchConfig{Workers: 3}, log)
}

func TestFindWindows_RankedDescending(t *testing.T) {
	f := newTestFinder(nil, &recordingLogger{})
	start := model.CivilTime{Year: 2024, Month: 6, Day: 1, Hour: 8}
	end := model.CivilTime{Year: 2024, Month: 6, Day: 30}

	candidates, err := f.FindWindows(context.Background(), start, end,
		model.Location{Latitude: 19.076, Longitude: 72.877},
		Preferences{Activity: "marriage", MinScore: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 30 {
		t.Fatalf("expected 30 candidates, got %d", len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score.Total > candidates[i-1].Score.Total {
			t.Errorf("candidates not sorted at %d: %f > %f", i, candidates[i].Score.Total, candidates[i-1].Score.Total)
		}
	}
}

func TestFindWindows_MinScoreFilters(t *testing.T) {
	f := newTestFinder(nil, &recordingLogger{})
	start := model.CivilTime{Year: 2024, Month: 6, Day: 1, Hour: 8}
	end := model.CivilTime{Year: 2024, Month: 6, Day: 30}
	loc := model.Location{Latitude: 19.076, Longitude: 72.877}

	all, err := f.FindWindows(context.Background(), start, end, loc, Preferences{Activity: "marriage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filtered, err := f.FindWindows(context.Background(), start, end, loc, Preferences{Activity: "marriage", MinScore: 0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) > len(all) {
		t.Error("filter cannot grow the result set")
	}
	for _, c := range filtered {
		if c.Score.Total < 0.6 {
			t.Errorf("candidate below min score: %f", c.Score.Total)
		}
	}
}

func TestFindWindows_BadDatesLoggedAndSkipped(t *testing.T) {
	log := &recordingLogger{}
	f := newTestFinder(map[int]bool{5: true, 17: true}, log)
	start := model.CivilTime{Year: 2024, Month: 6, Day: 1, Hour: 8}
	end := model.CivilTime{Year: 2024, Month: 6, Day: 30}

	candidates, err := f.FindWindows(context.Background(), start, end,
		model.Location{}, Preferences{Activity: "travel", MinScore: 0})
	if err != nil {
		t.Fatalf("a bad date must not abort the scan: %v", err)
	}
	if len(candidates) != 28 {
		t.Errorf("expected 28 candidates (30 minus 2 failures), got %d", len(candidates))
	}
	if len(log.lines) != 2 {
		t.Errorf("expected 2 logged skips, got %d: %v", len(log.lines), log.lines)
	}
}

func TestFindWindows_EndBeforeStartRejected(t *testing.T) {
	f := newTestFinder(nil, &recordingLogger{})
	_, err := f.FindWindows(context.Background(),
		model.CivilTime{Year: 2024, Month: 6, Day: 10},
		model.CivilTime{Year: 2024, Month: 6, Day: 1},
		model.Location{}, Preferences{})
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	if !model.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %T", err)
	}
}

func TestFindWindows_ImpossibleDatesRejected(t *testing.T) {
	f := newTestFinder(nil, &recordingLogger{})

	// Feb 30 must not be normalized into March by the expansion
	_, err := f.FindWindows(context.Background(),
		model.CivilTime{Year: 2023, Month: 2, Day: 30},
		model.CivilTime{Year: 2023, Month: 3, Day: 5},
		model.Location{}, Preferences{})
	if err == nil {
		t.Fatal("expected error for impossible start date")
	}
	if !model.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %T", err)
	}

	_, err = f.FindWindows(context.Background(),
		model.CivilTime{Year: 2023, Month: 4, Day: 1},
		model.CivilTime{Year: 2023, Month: 4, Day: 31},
		model.Location{}, Preferences{})
	if err == nil {
		t.Fatal("expected error for impossible end date")
	}
	if !model.IsInvalidInput(err) {
		t.Errorf("expected InvalidInputError, got %T", err)
	}
}

func TestFindWindows_CancelledContext(t *testing.T) {
	f := newTestFinder(nil, &recordingLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FindWindows(ctx,
		model.CivilTime{Year: 2024, Month: 1, Day: 1},
		model.CivilTime{Year: 2024, Month: 12, Day: 31},
		model.Location{}, Preferences{Activity: "general"})
	if err == nil {
		t.Error("expected context error from cancelled scan")
	}
}

func TestFindWindows_EmptyActivityDefaultsToGeneral(t *testing.T) {
	f := newTestFinder(nil, &recordingLogger{})
	candidates, err := f.FindWindows(context.Background(),
		model.CivilTime{Year: 2024, Month: 6, Day: 1, Hour: 8},
		model.CivilTime{Year: 2024, Month: 6, Day: 3},
		model.Location{}, Preferences{MinScore: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range candidates {
		if c.Score.Activity != GeneralActivity {
			t.Errorf("expected general activity, got %q", c.Score.Activity)
		}
	}
}

func TestExpandDates_InclusiveAndCarriesTime(t *testing.T) {
	dates, err := expandDates(
		model.CivilTime{Year: 2024, Month: 2, Day: 27, Hour: 6, Minute: 30},
		model.CivilTime{Year: 2024, Month: 3, Day: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Feb 27, 28, 29 (leap), Mar 1, 2
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if dates[2].Month != 2 || dates[2].Day != 29 {
		t.Errorf("expected leap day third, got %02d-%02d", dates[2].Month, dates[2].Day)
	}
	for _, d := range dates {
		if d.Hour != 6 || d.Minute != 30 {
			t.Errorf("time of day not carried: %+v", d)
		}
	}
}
