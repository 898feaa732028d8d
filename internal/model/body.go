package model

// Body identifies one of the nine bodies (grahas) tracked by the engine.
type Body string

const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mars    Body = "mars"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Rahu    Body = "rahu" // ascending lunar node, retrograde
	Ketu    Body = "ketu" // descending node, always Rahu + 180°
)

// Bodies lists all tracked bodies in traditional order.
var Bodies = []Body{Sun, Moon, Mars, Mercury, Venus, Jupiter, Saturn, Rahu, Ketu}

// Positions maps each body to a normalized ecliptic longitude.
// A Positions value is either wholly tropical or wholly sidereal;
// the two are never mixed in one map.
type Positions map[Body]Angle

// Ascendant is the zodiacal degree rising on the eastern horizon.
type Ascendant struct {
	Longitude    Angle   `json:"longitude"`
	Sign         int     `json:"sign"`           // 0..11, floor(longitude/30)
	DegreeInSign float64 `json:"degree_in_sign"` // [0, 30)
}

// NewAscendant derives the sign breakdown from a normalized longitude.
func NewAscendant(longitude Angle) Ascendant {
	sign := int(longitude / 30)
	if sign > 11 {
		sign = 11
	}
	return Ascendant{
		Longitude:    longitude,
		Sign:         sign,
		DegreeInSign: float64(longitude) - float64(sign)*30,
	}
}

// Location is a geographic point used for chart computation.
type Location struct {
	Latitude  float64 `json:"latitude"`  // [-90, 90]
	Longitude float64 `json:"longitude"` // [-180, 180], east positive
}
