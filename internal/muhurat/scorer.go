package muhurat

import (
	"fmt"

	"github.com/vedicastro/panchang/internal/model"
)

// Baseline factor scores when an element is in neither the ideal nor the
// avoid set for the activity.
const (
	scoreIdeal        = 1.0
	scoreAvoid        = 0.0
	scoreAuspicious   = 0.7
	scoreInauspicious = 0.3
	scoreNeutral      = 0.5
)

// Scorer combines per-factor scores into a weighted muhurat evaluation.
type Scorer struct {
	weights map[model.Factor]float64
	penalty float64 // Gand Mula multiplier, applied after the weighted sum
	rules   RuleSet
}

// NewScorer builds a scorer from configured weights and activity rules.
// Weights must sum to 1.0 over the scored factors.
func NewScorer(cfg model.ScoringConfig, rules RuleSet) *Scorer {
	weights := cfg.Weights
	if len(weights) == 0 {
		weights = model.DefaultConfig().Scoring.Weights
	}
	penalty := cfg.GandMulaPenalty
	if penalty <= 0 || penalty > 1 {
		penalty = model.DefaultConfig().Scoring.GandMulaPenalty
	}
	if rules == nil {
		rules = DefaultRules()
	}
	return &Scorer{weights: weights, penalty: penalty, rules: rules}
}

// Score evaluates a snapshot for one activity and optional intraday slot.
// Unrecognized activities fall back to the general rule set.
func (s *Scorer) Score(snap model.PanchangSnapshot, activity string, slot TimeSlot) model.MuhuratScore {
	rules, resolved := s.rules.Rules(activity)

	components := map[model.Factor]float64{
		model.FactorTithi:     setScore(snap.Tithi.Number, rules.IdealTithis, rules.AvoidTithis, snap.Tithi.Auspicious),
		model.FactorNakshatra: setScore(snap.Nakshatra.Number, rules.IdealNakshatras, rules.AvoidNakshatras, snap.Nakshatra.Auspicious),
		model.FactorYoga:      setScore(snap.Yoga.Number, rules.IdealYogas, rules.AvoidYogas, snap.Yoga.Auspicious),
		model.FactorKarana:    karanaScore(snap.Karana, rules.AvoidKaranas),
		model.FactorVara:      setScore(snap.Vara.Number, rules.IdealVaras, rules.AvoidVaras, snap.Vara.Auspicious),
		model.FactorTimeSlot:  slotScore(slot, rules),
		model.FactorAspect:    aspectScore(snap.SunLongitude, snap.MoonLongitude),
	}

	total := 0.0
	for factor, weight := range s.weights {
		total += weight * components[factor]
	}

	// Hard override: Gand Mula nakshatras collapse the composite after the
	// weighted sum, not inside the weight vector.
	gandMula := snap.Nakshatra.GandMula
	if gandMula {
		total *= s.penalty
	}
	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}

	grade := gradeFor(total)
	strengths, weaknesses := describe(snap, gandMula)

	return model.MuhuratScore{
		Activity:        resolved,
		Total:           total,
		Components:      components,
		Grade:           grade,
		Recommendation:  recommendation(grade, resolved),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		GandMulaPenalty: gandMula,
	}
}

// setScore resolves one numbered element against its ideal/avoid sets,
// falling back to the activity-agnostic auspicious flag.
func setScore(number int, ideal, avoid []int, auspicious bool) float64 {
	for _, n := range avoid {
		if n == number {
			return scoreAvoid
		}
	}
	for _, n := range ideal {
		if n == number {
			return scoreIdeal
		}
	}
	if auspicious {
		return scoreAuspicious
	}
	return scoreInauspicious
}

func karanaScore(karana model.Karana, avoid []string) float64 {
	for _, name := range avoid {
		if name == karana.Name {
			return scoreAvoid
		}
	}
	if karana.Auspicious {
		return scoreAuspicious
	}
	return scoreInauspicious
}

func slotScore(slot TimeSlot, rules ActivityRules) float64 {
	if slot == "" {
		return scoreNeutral
	}
	for _, s := range rules.AvoidSlots {
		if s == slot {
			return scoreAvoid
		}
	}
	for _, s := range rules.IdealSlots {
		if s == slot {
			return scoreIdeal
		}
	}
	return scoreNeutral
}

// aspectScore grades the Moon-Sun separation: a bright Moon supports most
// undertakings, the dark-Moon region undermines them.
func aspectScore(sun, moon model.Angle) float64 {
	arc := model.Arc(sun, moon)
	switch {
	case arc >= 120:
		return 0.8
	case arc < 30:
		return 0.3
	default:
		return scoreNeutral
	}
}

// gradeFor maps a total score to its band. Bands are exhaustive and
// non-overlapping over [0, 1].
func gradeFor(total float64) model.Grade {
	switch {
	case total >= 0.8:
		return model.GradeExcellent
	case total >= 0.65:
		return model.GradeGood
	case total >= 0.5:
		return model.GradeAverage
	case total >= 0.4:
		return model.GradeBelowAverage
	default:
		return model.GradeInauspicious
	}
}

func recommendation(grade model.Grade, activity string) string {
	switch grade {
	case model.GradeExcellent:
		return fmt.Sprintf("Highly favorable window for %s.", activity)
	case model.GradeGood:
		return fmt.Sprintf("Favorable window for %s.", activity)
	case model.GradeAverage:
		return fmt.Sprintf("Acceptable for %s; a better window may be nearby.", activity)
	case model.GradeBelowAverage:
		return fmt.Sprintf("Weak window for %s; prefer another date.", activity)
	default:
		return fmt.Sprintf("Avoid this window for %s.", activity)
	}
}

// describe emits one line per element in the fixed factor order: tithi,
// nakshatra, yoga, karana, vara. Auspicious elements become strengths,
// inauspicious ones weaknesses.
func describe(snap model.PanchangSnapshot, gandMula bool) (strengths, weaknesses []string) {
	add := func(auspicious bool, line string) {
		if auspicious {
			strengths = append(strengths, line)
		} else {
			weaknesses = append(weaknesses, line)
		}
	}

	add(snap.Tithi.Auspicious, fmt.Sprintf("Tithi %s (%s paksha)", snap.Tithi.Name, snap.Tithi.Paksha))
	add(snap.Nakshatra.Auspicious, fmt.Sprintf("Nakshatra %s ruled by %s", snap.Nakshatra.Name, snap.Nakshatra.Lord))
	add(snap.Yoga.Auspicious, fmt.Sprintf("Yoga %s", snap.Yoga.Name))
	add(snap.Karana.Auspicious, fmt.Sprintf("Karana %s (%s)", snap.Karana.Name, snap.Karana.Type))
	add(snap.Vara.Auspicious, fmt.Sprintf("Vara %s ruled by %s", snap.Vara.Name, snap.Vara.Lord))

	if gandMula {
		weaknesses = append(weaknesses, fmt.Sprintf("Gand Mula nakshatra %s; composite score penalized", snap.Nakshatra.Name))
	}
	return strengths, weaknesses
}
