package model

import "math"

// Angle is a longitude, sidereal time, or other circle measure in degrees.
// Every stored or returned Angle is normalized into [0, 360); arithmetic on
// raw degrees must pass through NormalizeAngle before classification.
type Angle float64

// NormalizeAngle wraps a degree value into [0, 360).
func NormalizeAngle(deg float64) Angle {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// Mod can return 360 for tiny negative inputs after the correction
	if d >= 360 {
		d -= 360
	}
	return Angle(d)
}

// Add returns the normalized sum of the angle and a degree offset.
func (a Angle) Add(deg float64) Angle {
	return NormalizeAngle(float64(a) + deg)
}

// Sub returns the normalized difference a - b.
func (a Angle) Sub(b Angle) Angle {
	return NormalizeAngle(float64(a) - float64(b))
}

// Arc returns the smaller arc between two angles, in [0, 180].
func Arc(a, b Angle) float64 {
	d := math.Abs(float64(a) - float64(b))
	d = math.Mod(d, 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// JulianMoment is a point in time expressed on the Julian Day scale.
type JulianMoment struct {
	JD        float64 `json:"jd"`        // Julian Day number including day fraction
	Centuries float64 `json:"centuries"` // Julian centuries since J2000.0
}
