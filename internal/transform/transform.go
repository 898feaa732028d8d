// Package transform converts tropical chart state into sidereal coordinates
// and derives horizon-dependent points (ascendant, midheaven). Inputs are
// validated fail-fast; classifiers downstream assume clean longitudes.
package transform

import (
	"errors"
	"math"

	"github.com/vedicastro/panchang/internal/model"
)

// MeanObliquity is the mean obliquity of the ecliptic in degrees, treated as
// constant at the engine's fidelity level.
const MeanObliquity = 23.4392911

// polarLimit guards the tan(latitude) term in the ascendant formula.
const polarLimit = 89.9

const deg2rad = math.Pi / 180

// TropicalToSidereal subtracts the ayanamsa from each tropical longitude and
// re-derives Ketu from the sidereal Rahu, keeping the opposition invariant.
func TropicalToSidereal(tropical model.Positions, ayanamsa model.Angle) model.Positions {
	sidereal := make(model.Positions, len(tropical))
	for body, lon := range tropical {
		sidereal[body] = lon.Sub(ayanamsa)
	}
	if rahu, ok := sidereal[model.Rahu]; ok {
		sidereal[model.Ketu] = rahu.Add(180)
	}
	return sidereal
}

// AscendantAt computes the rising degree of the ecliptic for a local sidereal
// time and geographic latitude. Latitudes within 0.1° of the poles are
// rejected rather than letting tan(latitude) blow up into NaN.
func AscendantAt(lst model.Angle, latitudeDeg, obliquityDeg float64) (model.Ascendant, error) {
	if math.IsNaN(latitudeDeg) || math.Abs(latitudeDeg) > 90 {
		return model.Ascendant{}, &model.InvalidInputError{Field: "latitude", Value: latitudeDeg, Reason: "must be in [-90, 90]"}
	}
	if math.Abs(latitudeDeg) >= polarLimit {
		return model.Ascendant{}, &model.InvalidInputError{Field: "latitude", Value: latitudeDeg, Reason: "ascendant undefined near the poles"}
	}

	l := float64(lst) * deg2rad
	eps := obliquityDeg * deg2rad
	phi := latitudeDeg * deg2rad

	asc := math.Atan2(math.Cos(l), -math.Sin(l)*math.Cos(eps)-math.Tan(phi)*math.Sin(eps)) / deg2rad
	if math.IsNaN(asc) || math.IsInf(asc, 0) {
		return model.Ascendant{}, &model.ComputationError{
			Op:     "ascendant",
			Inputs: map[string]any{"lst": float64(lst), "latitude": latitudeDeg, "obliquity": obliquityDeg},
			Err:    errors.New("non-finite result"),
		}
	}

	return model.NewAscendant(model.NormalizeAngle(asc)), nil
}

// Midheaven returns the culminating ecliptic degree for a local sidereal time.
func Midheaven(lst model.Angle) model.Angle {
	return model.NormalizeAngle(float64(lst))
}
