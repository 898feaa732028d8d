package model

// Paksha is the lunar fortnight: waxing (Shukla) or waning (Krishna).
type Paksha string

const (
	Waxing Paksha = "shukla"
	Waning Paksha = "krishna"
)

// KaranaType distinguishes the four fixed karanas from the seven moveable ones.
type KaranaType string

const (
	KaranaFixed    KaranaType = "fixed"
	KaranaMoveable KaranaType = "moveable"
)

// Tithi is the lunar day, one per 12° of Moon-Sun separation.
type Tithi struct {
	Number     int     `json:"number"` // 1..30
	Name       string  `json:"name"`
	Paksha     Paksha  `json:"paksha"`
	Progress   float64 `json:"progress"` // fraction elapsed within the tithi, [0,1)
	Auspicious bool    `json:"auspicious"`
}

// Nakshatra is one of the 27 lunar mansions (13°20′ each), with its pada
// quarter and static attributes from the nakshatra table.
type Nakshatra struct {
	Number         int      `json:"number"` // 1..27
	Name           string   `json:"name"`
	Pada           int      `json:"pada"` // 1..4
	Lord           Body     `json:"lord"`
	DegreesIn      float64  `json:"degrees_in"`      // into the 13°20′ segment
	DegreesInPada  float64  `json:"degrees_in_pada"` // into the 3°20′ pada
	Deity          string   `json:"deity,omitempty"`
	Symbol         string   `json:"symbol,omitempty"`
	GandMula       bool     `json:"gand_mula"`
	Auspicious     bool     `json:"auspicious"`
	FavorableFor   []string `json:"favorable_for,omitempty"`
	UnfavorableFor []string `json:"unfavorable_for,omitempty"`
}

// Yoga is one of 27 divisions of the Sun+Moon longitude sum.
type Yoga struct {
	Number     int    `json:"number"` // 1..27
	Name       string `json:"name"`
	Auspicious bool   `json:"auspicious"`
}

// Karana is the half-tithi (6°) division. Number counts the absolute slot in
// the lunar month (1..60); Name cycles through 11 traditional names.
type Karana struct {
	Number     int        `json:"number"` // 1..60
	Name       string     `json:"name"`
	Type       KaranaType `json:"type"`
	Auspicious bool       `json:"auspicious"`
}

// Vara is the weekday with its ruling planet.
type Vara struct {
	Number     int    `json:"number"` // 1..7, Sunday = 1
	Name       string `json:"name"`
	Lord       Body   `json:"lord"`
	Auspicious bool   `json:"auspicious"`
}

// PanchangSnapshot bundles the five Panchang elements computed for one
// (date, location) pair, together with the sidereal longitudes they were
// derived from. Snapshots are value objects: never mutated after construction.
type PanchangSnapshot struct {
	Date     CivilTime `json:"date"`
	Location Location  `json:"location"`

	Tithi     Tithi     `json:"tithi"`
	Nakshatra Nakshatra `json:"nakshatra"`
	Yoga      Yoga      `json:"yoga"`
	Karana    Karana    `json:"karana"`
	Vara      Vara      `json:"vara"`

	SunLongitude  Angle `json:"sun_longitude"`  // sidereal
	MoonLongitude Angle `json:"moon_longitude"` // sidereal
}

// CivilTime is a civil calendar date-time. The engine treats it as UTC;
// callers convert from local zones before building one.
type CivilTime struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"` // 1..12
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`   // 0..23
	Minute int     `json:"minute"` // 0..59
	Second float64 `json:"second"` // [0, 60)
}
