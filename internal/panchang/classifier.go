// Package panchang classifies sidereal Sun and Moon longitudes into the five
// calendrical elements: Tithi, Nakshatra, Yoga, Karana, and Vara. All
// classifiers are pure functions over validated input; they do not
// re-validate what the transform stage already checked.
package panchang

import (
	"math"
	"time"

	"github.com/vedicastro/panchang/internal/model"
)

// Angular widths of the cyclic segments.
const (
	tithiWidth     = 12.0       // Moon-Sun separation per tithi
	karanaWidth    = 6.0        // half-tithi
	nakshatraWidth = 360.0 / 27 // 13°20′
	padaWidth      = nakshatraWidth / 4
	yogaWidth      = 360.0 / 27
)

// Classifier evaluates Panchang elements against an injected table set.
type Classifier struct {
	tables Tables

	inauspTithi  map[int]bool
	gandMula     map[int]bool
	inauspNak    map[int]bool
	inauspYoga   map[int]bool
	inauspKarana map[string]bool
	auspVara     map[int]bool
}

// NewClassifier builds a classifier over a read-only table set.
func NewClassifier(tables Tables) *Classifier {
	c := &Classifier{
		tables:       tables,
		inauspTithi:  intSet(tables.InauspiciousTithis),
		gandMula:     intSet(tables.GandMulaNakshatras),
		inauspNak:    intSet(tables.InauspiciousNakshatras),
		inauspYoga:   intSet(tables.InauspiciousYogas),
		inauspKarana: stringSet(tables.InauspiciousKaranas),
		auspVara:     intSet(tables.AuspiciousVaras),
	}
	return c
}

// Tables exposes the injected table set.
func (c *Classifier) Tables() Tables { return c.tables }

// Tithi classifies the Moon-Sun separation into one of 30 lunar days.
func (c *Classifier) Tithi(sun, moon model.Angle) model.Tithi {
	diff := float64(moon.Sub(sun))
	number := int(diff/tithiWidth) + 1
	if number > 30 {
		number = 30
	}

	paksha := model.Waxing
	if number > 15 {
		paksha = model.Waning
	}

	// The 15-entry name table serves both halves; the 15th entry is Purnima
	// in the waxing half and Amavasya in the waning half.
	idx := (number - 1) % 15
	name := c.tables.TithiNames[idx]
	if number == 30 {
		name = "Amavasya"
	}

	progress := diff/tithiWidth - float64(number-1)
	if progress < 0 {
		progress = 0
	}

	return model.Tithi{
		Number:     number,
		Name:       name,
		Paksha:     paksha,
		Progress:   progress,
		Auspicious: !c.inauspTithi[number],
	}
}

// Nakshatra classifies the Moon's sidereal longitude into one of the 27
// lunar mansions with its pada quarter and ruling lord.
func (c *Classifier) Nakshatra(moon model.Angle) model.Nakshatra {
	lon := float64(moon)
	index := int(lon / nakshatraWidth) // 0..26
	if index > 26 {
		index = 26
	}
	degreesIn := lon - float64(index)*nakshatraWidth
	pada := int(degreesIn/padaWidth) + 1
	if pada > 4 {
		pada = 4
	}
	degreesInPada := degreesIn - float64(pada-1)*padaWidth

	number := index + 1
	attrs := c.tables.Nakshatras[index]
	// The 9 lords repeat exactly three times across the 27 mansions
	lord := c.tables.Lords[index%9]

	return model.Nakshatra{
		Number:         number,
		Name:           attrs.Name,
		Pada:           pada,
		Lord:           lord,
		DegreesIn:      degreesIn,
		DegreesInPada:  degreesInPada,
		Deity:          attrs.Deity,
		Symbol:         attrs.Symbol,
		GandMula:       c.gandMula[number],
		Auspicious:     !c.inauspNak[number],
		FavorableFor:   attrs.FavorableFor,
		UnfavorableFor: attrs.UnfavorableFor,
	}
}

// Yoga classifies the sum of the Sun and Moon longitudes into 27 segments.
func (c *Classifier) Yoga(sun, moon model.Angle) model.Yoga {
	sum := model.NormalizeAngle(float64(sun) + float64(moon))
	number := int(float64(sum)/yogaWidth) + 1
	if number > 27 {
		number = 27
	}
	return model.Yoga{
		Number:     number,
		Name:       c.tables.YogaNames[number-1],
		Auspicious: !c.inauspYoga[number],
	}
}

// Karana classifies the Moon-Sun separation at half-tithi resolution.
//
// The traditional cycle is irregular: Kimstughna is pinned to two absolute
// positions (the first half-tithi of the month and the last), the other
// three fixed karanas occupy slots 57-59, and the seven moveable names
// rotate through slots 2-56. The two Kimstughna pins are evaluated as
// explicit boundary checks before the general cycle; this mirrors the
// traditional system and is intentional, not a simplification.
func (c *Classifier) Karana(sun, moon model.Angle) model.Karana {
	diff := float64(moon.Sub(sun))
	slot := int(diff/karanaWidth) + 1 // 1..60
	if slot > 60 {
		slot = 60
	}

	var name string
	var kind model.KaranaType
	switch {
	case slot == 1 || slot == 60:
		// Pinned boundary positions of the month
		name = c.tables.KaranaNames[0] // Kimstughna
		kind = model.KaranaFixed
	case slot >= 57:
		// Fixed tail: Shakuni, Chatushpada, Naga
		name = c.tables.KaranaNames[8+(slot-57)]
		kind = model.KaranaFixed
	default:
		// Moveable cycle starts at Bava in slot 2
		name = c.tables.KaranaNames[1+(slot-2)%7]
		kind = model.KaranaMoveable
	}

	return model.Karana{
		Number:     slot,
		Name:       name,
		Type:       kind,
		Auspicious: !c.inauspKarana[name],
	}
}

// Vara derives the weekday from the civil date alone; no longitude involved.
func (c *Classifier) Vara(ct model.CivilTime) model.Vara {
	sec := int(ct.Second)
	nsec := int(math.Round((ct.Second - float64(sec)) * 1e9))
	t := time.Date(ct.Year, time.Month(ct.Month), ct.Day, ct.Hour, ct.Minute, sec, nsec, time.UTC)
	weekday := int(t.Weekday()) // 0 = Sunday
	number := weekday + 1

	return model.Vara{
		Number:     number,
		Name:       c.tables.VaraNames[weekday],
		Lord:       c.tables.VaraLords[weekday],
		Auspicious: c.auspVara[number],
	}
}

// Snapshot computes the full Panchang for one validated (date, location,
// sidereal sun, sidereal moon) tuple.
func (c *Classifier) Snapshot(ct model.CivilTime, loc model.Location, sun, moon model.Angle) model.PanchangSnapshot {
	return model.PanchangSnapshot{
		Date:          ct,
		Location:      loc,
		Tithi:         c.Tithi(sun, moon),
		Nakshatra:     c.Nakshatra(moon),
		Yoga:          c.Yoga(sun, moon),
		Karana:        c.Karana(sun, moon),
		Vara:          c.Vara(ct),
		SunLongitude:  sun,
		MoonLongitude: moon,
	}
}

func intSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
