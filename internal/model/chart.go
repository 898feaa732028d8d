package model

// Chart is the full positional result for one (date, location) query.
type Chart struct {
	Date     CivilTime `json:"date"`
	Location Location  `json:"location"`

	Moment   JulianMoment `json:"moment"`
	Ayanamsa Angle        `json:"ayanamsa"`

	Tropical Positions `json:"tropical"`
	Sidereal Positions `json:"sidereal"`

	Ascendant Ascendant `json:"ascendant"`
	Midheaven Angle     `json:"midheaven"`

	LST Angle `json:"lst"`
}
