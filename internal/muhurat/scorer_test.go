package muhurat

import (
	"math"
	"strings"
	"testing"

	"github.com/vedicastro/panchang/internal/model"
	"github.com/vedicastro/panchang/internal/panchang"
)

func snapshotFor(t *testing.T, sun, moon float64, date model.CivilTime) model.PanchangSnapshot {
	t.Helper()
	c := panchang.NewClassifier(panchang.DefaultTables())
	return c.Snapshot(date, model.Location{Latitude: 19.076, Longitude: 72.877},
		model.NormalizeAngle(sun), model.NormalizeAngle(moon))
}

func newTestScorer() *Scorer {
	return NewScorer(model.DefaultConfig().Scoring, DefaultRules())
}

func TestScore_BoundsAndComponents(t *testing.T) {
	s := newTestScorer()
	for diff := 0.0; diff < 360; diff += 23.7 {
		snap := snapshotFor(t, 40, 40+diff, model.CivilTime{Year: 2024, Month: 6, Day: 10, Hour: 8})
		score := s.Score(snap, "marriage", "")
		if score.Total < 0 || score.Total > 1 {
			t.Errorf("total out of [0,1] at diff %f: %f", diff, score.Total)
		}
		for factor, v := range score.Components {
			if v < 0 || v > 1 {
				t.Errorf("component %s out of [0,1]: %f", factor, v)
			}
		}
		if len(score.Components) != 7 {
			t.Errorf("expected 7 components, got %d", len(score.Components))
		}
	}
}

func TestScore_WeightsSumToOne(t *testing.T) {
	weights := model.DefaultConfig().Scoring.Weights
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("weights must sum to 1.0, got %f", sum)
	}
}

func TestScore_IdealBeatsAvoid(t *testing.T) {
	s := newTestScorer()

	// Moon 45° in Rohini (ideal for marriage), diff 54° → tithi 5 (ideal),
	// on a Thursday (ideal)
	ideal := snapshotFor(t, 351, 45, model.CivilTime{Year: 2024, Month: 6, Day: 13, Hour: 8})
	if ideal.Nakshatra.Name != "Rohini" || ideal.Tithi.Number != 5 {
		t.Fatalf("fixture drift: %s / tithi %d", ideal.Nakshatra.Name, ideal.Tithi.Number)
	}

	// Moon 245° in Mula (avoid + gand mula), diff 40° → tithi 4 (rikta,
	// avoid), on a Saturday (avoid)
	avoid := snapshotFor(t, 205, 245, model.CivilTime{Year: 2024, Month: 6, Day: 15, Hour: 8})
	if avoid.Nakshatra.Name != "Mula" || avoid.Tithi.Number != 4 {
		t.Fatalf("fixture drift: %s / tithi %d", avoid.Nakshatra.Name, avoid.Tithi.Number)
	}

	best := s.Score(ideal, "marriage", SlotMorning)
	worst := s.Score(avoid, "marriage", SlotNight)

	if best.Total <= worst.Total {
		t.Errorf("all-ideal (%f) must beat all-avoid (%f)", best.Total, worst.Total)
	}
}

func TestScore_GandMulaPenaltyAppliedAfterWeighting(t *testing.T) {
	cfg := model.DefaultConfig().Scoring
	s := NewScorer(cfg, DefaultRules())

	// Moon in Mula (nakshatra 19): gand mula
	date := model.CivilTime{Year: 2024, Month: 6, Day: 13, Hour: 8}
	snap := snapshotFor(t, 180, 245, date)
	if !snap.Nakshatra.GandMula {
		t.Fatalf("expected gand mula nakshatra, got %s", snap.Nakshatra.Name)
	}

	score := s.Score(snap, "marriage", "")
	if !score.GandMulaPenalty {
		t.Error("penalty flag not set")
	}

	// Recompute the unpenalized weighted sum from the reported components
	unpenalized := 0.0
	for factor, w := range cfg.Weights {
		unpenalized += w * score.Components[factor]
	}
	want := unpenalized * cfg.GandMulaPenalty
	if math.Abs(score.Total-want) > 1e-9 {
		t.Errorf("expected total %f (= %f × %f), got %f", want, unpenalized, cfg.GandMulaPenalty, score.Total)
	}
}

func TestScore_UnknownActivityFallsBackToGeneral(t *testing.T) {
	s := newTestScorer()
	snap := snapshotFor(t, 40, 100, model.CivilTime{Year: 2024, Month: 6, Day: 10, Hour: 8})

	unknown := s.Score(snap, "alpaca-grooming", "")
	general := s.Score(snap, GeneralActivity, "")

	if unknown.Activity != GeneralActivity {
		t.Errorf("expected resolved activity %q, got %q", GeneralActivity, unknown.Activity)
	}
	if unknown.Total != general.Total {
		t.Errorf("fallback must score identically to general: %f vs %f", unknown.Total, general.Total)
	}
}

func TestGradeFor_ExhaustiveNonOverlapping(t *testing.T) {
	bands := map[model.Grade]bool{}
	prev := gradeFor(0)
	bands[prev] = true
	for total := 0.0; total <= 1.0; total += 0.001 {
		g := gradeFor(total)
		if g == "" {
			t.Fatalf("no grade for total %f", total)
		}
		bands[g] = true
	}
	if len(bands) != 5 {
		t.Errorf("expected 5 grade bands across [0,1], got %d", len(bands))
	}
	// Band edges
	if gradeFor(0.8) != model.GradeExcellent {
		t.Error("0.8 must be excellent")
	}
	if gradeFor(0.7999999) != model.GradeGood {
		t.Error("just below 0.8 must be good")
	}
	if gradeFor(0.4) != model.GradeBelowAverage {
		t.Error("0.4 must be below_average")
	}
	if gradeFor(0.3999999) != model.GradeInauspicious {
		t.Error("just below 0.4 must be inauspicious")
	}
	if gradeFor(1.0) != model.GradeExcellent {
		t.Error("1.0 must be excellent")
	}
}

func TestScore_StrengthsWeaknessesFollowFactorOrder(t *testing.T) {
	s := newTestScorer()
	snap := snapshotFor(t, 40, 88, model.CivilTime{Year: 2024, Month: 6, Day: 10, Hour: 8})
	score := s.Score(snap, GeneralActivity, "")

	total := len(score.Strengths) + len(score.Weaknesses)
	want := 5
	if snap.Nakshatra.GandMula {
		want++
	}
	if total != want {
		t.Errorf("expected %d lines across strengths and weaknesses, got %d", want, total)
	}

	// Every element's name appears exactly once across the two lists
	all := append(append([]string{}, score.Strengths...), score.Weaknesses...)
	for _, needle := range []string{snap.Tithi.Name, snap.Nakshatra.Name, snap.Yoga.Name, snap.Karana.Name, snap.Vara.Name} {
		found := false
		for _, line := range all {
			if strings.Contains(line, needle) {
				found = true
			}
		}
		if !found {
			t.Errorf("element %q missing from strengths/weaknesses", needle)
		}
	}
}

func TestSlotScore(t *testing.T) {
	rules, _ := DefaultRules().Rules("marriage")
	if got := slotScore("", rules); got != scoreNeutral {
		t.Errorf("missing slot must be neutral, got %f", got)
	}
	if got := slotScore(SlotMorning, rules); got != scoreIdeal {
		t.Errorf("ideal slot must score 1.0, got %f", got)
	}
	if got := slotScore(SlotNight, rules); got != scoreAvoid {
		t.Errorf("avoid slot must score 0.0, got %f", got)
	}
	if got := slotScore(SlotAfternoon, rules); got != scoreNeutral {
		t.Errorf("unlisted slot must be neutral, got %f", got)
	}
}

func TestRuleSet_Rules(t *testing.T) {
	rs := DefaultRules()
	if _, resolved := rs.Rules("marriage"); resolved != "marriage" {
		t.Errorf("known activity must resolve to itself, got %q", resolved)
	}
	if _, resolved := rs.Rules("unknown"); resolved != GeneralActivity {
		t.Errorf("unknown activity must resolve to general, got %q", resolved)
	}
}

func TestLoadRules_EmptyPathUsesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rules[GeneralActivity]; !ok {
		t.Error("general rule set must always exist")
	}
	for _, activity := range []string{"marriage", "business", "travel", "education", "health"} {
		if _, ok := rules[activity]; !ok {
			t.Errorf("missing built-in activity %q", activity)
		}
	}
}
