package astrotime

import "github.com/vedicastro/panchang/internal/model"

// GMST returns Greenwich Mean Sidereal Time in degrees for a Julian Day.
// IAU 1982 polynomial, adequate at the engine's approximation fidelity.
func GMST(jd float64) model.Angle {
	d := jd - J2000
	t := JulianCenturies(jd)
	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*t*t -
		t*t*t/38710000.0
	return model.NormalizeAngle(gmst)
}

// LST converts Greenwich sidereal time to local sidereal time for an east
// longitude in degrees.
func LST(gmst model.Angle, longitudeDeg float64) model.Angle {
	return gmst.Add(longitudeDeg)
}
