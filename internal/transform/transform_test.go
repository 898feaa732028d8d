package transform

import (
	"math"
	"testing"

	"github.com/vedicastro/panchang/internal/model"
)

func TestTropicalToSidereal_SubtractsAyanamsa(t *testing.T) {
	tropical := model.Positions{
		model.Sun:  model.Angle(30),
		model.Moon: model.Angle(10),
		model.Rahu: model.Angle(200),
		model.Ketu: model.Angle(20),
	}
	sidereal := TropicalToSidereal(tropical, model.Angle(24))

	if got := float64(sidereal[model.Sun]); math.Abs(got-6) > 1e-9 {
		t.Errorf("sun: expected 6, got %f", got)
	}
	// Moon wraps below zero
	if got := float64(sidereal[model.Moon]); math.Abs(got-346) > 1e-9 {
		t.Errorf("moon: expected 346, got %f", got)
	}
}

func TestTropicalToSidereal_KetuRederived(t *testing.T) {
	tropical := model.Positions{
		model.Rahu: model.Angle(18.2),
		model.Ketu: model.Angle(0), // deliberately wrong; must be re-derived
	}
	sidereal := TropicalToSidereal(tropical, model.Angle(0))
	if got := float64(sidereal[model.Ketu]); math.Abs(got-198.2) > 1e-9 {
		t.Errorf("expected ketu 198.2, got %f", got)
	}
	if arc := model.Arc(sidereal[model.Rahu], sidereal[model.Ketu]); math.Abs(arc-180) > 1e-9 {
		t.Errorf("opposition broken: %f", arc)
	}
}

func TestAscendantAt_SignConsistency(t *testing.T) {
	for lst := 0.0; lst < 360; lst += 7.3 {
		for _, lat := range []float64{-60, -23.5, 0, 19.07, 51.5, 66.5} {
			asc, err := AscendantAt(model.Angle(lst), lat, MeanObliquity)
			if err != nil {
				t.Fatalf("unexpected error at lst=%f lat=%f: %v", lst, lat, err)
			}
			if asc.Longitude < 0 || asc.Longitude >= 360 {
				t.Errorf("longitude out of range: %f", float64(asc.Longitude))
			}
			if asc.Sign != int(asc.Longitude/30) {
				t.Errorf("sign mismatch: lon=%f sign=%d", float64(asc.Longitude), asc.Sign)
			}
			if asc.DegreeInSign < 0 || asc.DegreeInSign >= 30 {
				t.Errorf("degree in sign out of range: %f", asc.DegreeInSign)
			}
		}
	}
}

func TestAscendantAt_EquatorMatchesSimplifiedFormula(t *testing.T) {
	// At the equator the tan(latitude) term vanishes
	asc, err := AscendantAt(model.Angle(0), 0, MeanObliquity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// atan2(cos 0, -sin 0 * cos eps) = atan2(1, 0) = 90°
	if math.Abs(float64(asc.Longitude)-90) > 1e-9 {
		t.Errorf("expected 90° rising at lst=0 on the equator, got %f", float64(asc.Longitude))
	}
}

func TestAscendantAt_RejectsPolarLatitudes(t *testing.T) {
	for _, lat := range []float64{90, -90, 89.95, -89.95, math.NaN(), 95} {
		if _, err := AscendantAt(model.Angle(100), lat, MeanObliquity); err == nil {
			t.Errorf("expected error for latitude %f", lat)
		} else if !model.IsInvalidInput(err) {
			t.Errorf("expected InvalidInputError for latitude %f, got %T", lat, err)
		}
	}
}

func TestMidheaven(t *testing.T) {
	if mc := Midheaven(model.Angle(123.4)); math.Abs(float64(mc)-123.4) > 1e-9 {
		t.Errorf("expected 123.4, got %f", float64(mc))
	}
}
