package ephemeris

import (
	"math"

	"github.com/vedicastro/panchang/internal/model"
)

// PositionProvider yields tropical longitudes for all nine bodies at a
// Julian Day. Implementations must be deterministic: the same jd always
// yields bit-identical output, every angle normalized into [0, 360).
type PositionProvider interface {
	Tropical(jd float64) (model.Positions, error)
}

// Approximation is the built-in low-order ephemeris. Each body is a mean
// longitude advancing linearly from J2000; the Sun and Moon add periodic
// corrections (equation of center, major lunar inequalities). Rahu runs
// retrograde; Ketu is derived as Rahu + 180°, never computed independently.
type Approximation struct{}

// NewApproximation returns the built-in provider.
func NewApproximation() *Approximation {
	return &Approximation{}
}

// Mean longitude at J2000 and daily motion, degrees. Node rate is negative.
var meanElements = map[model.Body][2]float64{
	model.Mercury: {252.250906, 4.092334443},
	model.Venus:   {181.979801, 1.602130224},
	model.Mars:    {355.433000, 0.524033035},
	model.Jupiter: {34.351519, 0.083091182},
	model.Saturn:  {50.077444, 0.033459652},
	model.Rahu:    {125.044522, -0.052953765},
}

const deg2rad = math.Pi / 180

// Tropical computes the tropical longitude set for a Julian Day.
func (a *Approximation) Tropical(jd float64) (model.Positions, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return nil, &model.InvalidInputError{Field: "jd", Value: jd, Reason: "must be finite"}
	}

	d := jd - 2451545.0
	pos := make(model.Positions, len(model.Bodies))

	pos[model.Sun] = sunLongitude(d)
	pos[model.Moon] = moonLongitude(d)
	for body, el := range meanElements {
		pos[body] = model.NormalizeAngle(el[0] + el[1]*d)
	}
	// Ketu is a derivation, not an element
	pos[model.Ketu] = pos[model.Rahu].Add(180)

	return pos, nil
}

// sunLongitude is the solar mean longitude plus the equation of center.
func sunLongitude(d float64) model.Angle {
	l := 280.46646 + 0.98564736*d
	g := (357.52911 + 0.98560028*d) * deg2rad
	lon := l +
		1.91480*math.Sin(g) +
		0.02000*math.Sin(2*g) +
		0.00029*math.Sin(3*g)
	return model.NormalizeAngle(lon)
}

// moonLongitude is the lunar mean longitude plus the four largest periodic
// terms (evection, variation, annual equation, equation of center tail).
func moonLongitude(d float64) model.Angle {
	l := 218.3164477 + 13.17639648*d             // mean longitude
	m := (134.9633964 + 13.06499295*d) * deg2rad // mean anomaly
	ms := (357.52911 + 0.98560028*d) * deg2rad   // solar mean anomaly
	e := (297.8501921 + 12.19074912*d) * deg2rad // mean elongation
	lon := l +
		6.28876*math.Sin(m) +
		1.27401*math.Sin(2*e-m) +
		0.65831*math.Sin(2*e) +
		0.21362*math.Sin(2*m) -
		0.18580*math.Sin(ms)
	return model.NormalizeAngle(lon)
}
