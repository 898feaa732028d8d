// Package astrotime converts civil date-times into the Julian Day scale and
// sidereal time. All conversions are pure and validated up front: callers get
// either a finite result or an InvalidInputError, never a silently wrapped
// date.
package astrotime

import (
	"math"

	"github.com/vedicastro/panchang/internal/model"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00:00 UTC).
const J2000 = 2451545.0

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeap reports whether the Gregorian year is a leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Validate checks a civil time for impossible components. Out-of-range
// values are rejected, never normalized.
func Validate(ct model.CivilTime) error {
	if ct.Month < 1 || ct.Month > 12 {
		return &model.InvalidInputError{Field: "month", Value: ct.Month, Reason: "must be 1..12"}
	}
	maxDay := daysInMonth[ct.Month]
	if ct.Month == 2 && isLeap(ct.Year) {
		maxDay = 29
	}
	if ct.Day < 1 || ct.Day > maxDay {
		return &model.InvalidInputError{Field: "day", Value: ct.Day, Reason: "impossible day of month"}
	}
	if ct.Hour < 0 || ct.Hour > 23 {
		return &model.InvalidInputError{Field: "hour", Value: ct.Hour, Reason: "must be 0..23"}
	}
	if ct.Minute < 0 || ct.Minute > 59 {
		return &model.InvalidInputError{Field: "minute", Value: ct.Minute, Reason: "must be 0..59"}
	}
	if math.IsNaN(ct.Second) || math.IsInf(ct.Second, 0) {
		return &model.InvalidInputError{Field: "second", Value: ct.Second, Reason: "must be finite"}
	}
	if ct.Second < 0 || ct.Second >= 60 {
		return &model.InvalidInputError{Field: "second", Value: ct.Second, Reason: "must be in [0, 60)"}
	}
	return nil
}

// ValidateLocation checks geographic coordinates.
func ValidateLocation(loc model.Location) error {
	if math.IsNaN(loc.Latitude) || loc.Latitude < -90 || loc.Latitude > 90 {
		return &model.InvalidInputError{Field: "latitude", Value: loc.Latitude, Reason: "must be in [-90, 90]"}
	}
	if math.IsNaN(loc.Longitude) || loc.Longitude < -180 || loc.Longitude > 180 {
		return &model.InvalidInputError{Field: "longitude", Value: loc.Longitude, Reason: "must be in [-180, 180]"}
	}
	return nil
}

// JulianDay converts a validated civil time (treated as UTC) to a Julian Day
// number. Standard Gregorian-calendar algorithm; continuous and monotonically
// increasing in civil time, accurate to fractional seconds.
func JulianDay(ct model.CivilTime) (float64, error) {
	if err := Validate(ct); err != nil {
		return 0, err
	}

	y, m := ct.Year, ct.Month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(ct.Day) + float64(b) - 1524.5

	dayFraction := (float64(ct.Hour) + float64(ct.Minute)/60 + ct.Second/3600) / 24
	return jd + dayFraction, nil
}

// JulianCenturies returns Julian centuries elapsed since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// Moment bundles a Julian Day with its century offset.
func Moment(jd float64) model.JulianMoment {
	return model.JulianMoment{JD: jd, Centuries: JulianCenturies(jd)}
}
