// Package ephemeris computes approximate tropical planetary longitudes and
// the sidereal correction angle (ayanamsa). The approximations are low-order
// by design: mean-motion linear terms per body, plus a handful of periodic
// corrections for the Sun and Moon. A PositionProvider interface isolates the
// formulas so a higher-fidelity ephemeris can be substituted without touching
// downstream classification or scoring.
package ephemeris

import "github.com/vedicastro/panchang/internal/model"

// Lahiri anchor: ayanamsa value in degrees at the anchor year, drifting at
// the precession rate in arcseconds per year.
const (
	lahiriEpochYear  = 2000
	lahiriEpochValue = 23.85
	lahiriRateArcsec = 50.2878
)

// Ayanamsa maps a calendar year to the sidereal correction angle.
type Ayanamsa interface {
	At(year int) model.Angle
}

// Lahiri is the standard Lahiri (Chitrapaksha) ayanamsa, approximated as a
// linear drift from a fixed anchor. Monotonically increasing with year.
type Lahiri struct {
	epochYear  int
	epochValue float64
	ratePerYr  float64 // arcseconds per year
}

// NewLahiri returns the built-in Lahiri model.
func NewLahiri() *Lahiri {
	return &Lahiri{epochYear: lahiriEpochYear, epochValue: lahiriEpochValue, ratePerYr: lahiriRateArcsec}
}

// NewLahiriFromConfig builds a Lahiri model from configuration, falling back
// to built-in anchors for zero values.
func NewLahiriFromConfig(cfg model.AyanamsaConfig) *Lahiri {
	l := NewLahiri()
	if cfg.EpochYear != 0 {
		l.epochYear = cfg.EpochYear
	}
	if cfg.EpochValue != 0 {
		l.epochValue = cfg.EpochValue
	}
	if cfg.RatePerYr != 0 {
		l.ratePerYr = cfg.RatePerYr
	}
	return l
}

// At returns the ayanamsa for a calendar year.
func (l *Lahiri) At(year int) model.Angle {
	deg := l.epochValue + float64(year-l.epochYear)*l.ratePerYr/3600.0
	return model.NormalizeAngle(deg)
}
