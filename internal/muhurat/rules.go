// Package muhurat scores Panchang snapshots for specific activities and
// searches date ranges for auspicious windows.
package muhurat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TimeSlot is a coarse intraday division used by the optional slot factor.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
)

// ActivityRules holds the ideal and avoid sets for one activity. Elements
// absent from both sets fall back to their activity-agnostic auspicious flag.
type ActivityRules struct {
	IdealTithis     []int      `yaml:"ideal_tithis,omitempty"`
	AvoidTithis     []int      `yaml:"avoid_tithis,omitempty"`
	IdealNakshatras []int      `yaml:"ideal_nakshatras,omitempty"`
	AvoidNakshatras []int      `yaml:"avoid_nakshatras,omitempty"`
	IdealYogas      []int      `yaml:"ideal_yogas,omitempty"`
	AvoidYogas      []int      `yaml:"avoid_yogas,omitempty"`
	IdealVaras      []int      `yaml:"ideal_varas,omitempty"`
	AvoidVaras      []int      `yaml:"avoid_varas,omitempty"`
	AvoidKaranas    []string   `yaml:"avoid_karanas,omitempty"`
	IdealSlots      []TimeSlot `yaml:"ideal_slots,omitempty"`
	AvoidSlots      []TimeSlot `yaml:"avoid_slots,omitempty"`
}

// RuleSet maps activity names to their rules. The "general" entry is the
// defined fallback for unrecognized activities; its presence is required.
type RuleSet map[string]ActivityRules

// GeneralActivity is the fallback rule-set name.
const GeneralActivity = "general"

// Rules returns the rules for an activity, falling back to general. An
// unrecognized activity is an explicit design decision, not an error.
func (rs RuleSet) Rules(activity string) (ActivityRules, string) {
	if rules, ok := rs[activity]; ok {
		return rules, activity
	}
	return rs[GeneralActivity], GeneralActivity
}

// DefaultRules returns the built-in activity rule sets.
func DefaultRules() RuleSet {
	return RuleSet{
		GeneralActivity: {
			IdealTithis:  []int{2, 3, 5, 7, 10, 11, 13},
			AvoidTithis:  []int{4, 9, 14, 30},
			AvoidKaranas: []string{"Vishti"},
			IdealVaras:   []int{4, 5, 6},
			AvoidSlots:   []TimeSlot{SlotNight},
		},
		"marriage": {
			IdealTithis:     []int{2, 3, 5, 7, 10, 11, 13},
			AvoidTithis:     []int{4, 9, 14, 15, 30},
			IdealNakshatras: []int{4, 5, 12, 17, 21, 26}, // Rohini, Mrigashira, U.Phalguni, Anuradha, U.Ashadha, U.Bhadrapada
			AvoidNakshatras: []int{1, 9, 10, 18, 19, 27},
			IdealYogas:      []int{12, 16, 21, 23},
			AvoidYogas:      []int{1, 6, 9, 10, 13, 15, 17, 19, 27},
			IdealVaras:      []int{2, 4, 5, 6},
			AvoidVaras:      []int{3, 7},
			AvoidKaranas:    []string{"Vishti", "Shakuni", "Chatushpada", "Naga"},
			IdealSlots:      []TimeSlot{SlotMorning, SlotEvening},
			AvoidSlots:      []TimeSlot{SlotNight},
		},
		"business": {
			IdealTithis:     []int{1, 2, 3, 5, 7, 10, 11, 13},
			AvoidTithis:     []int{4, 9, 14, 30},
			IdealNakshatras: []int{4, 8, 13, 14, 15, 23}, // Rohini, Pushya, Hasta, Chitra, Swati, Dhanishta
			AvoidNakshatras: []int{3, 11, 19},
			IdealVaras:      []int{4, 5, 6},
			AvoidVaras:      []int{3},
			AvoidKaranas:    []string{"Vishti"},
			IdealSlots:      []TimeSlot{SlotMorning},
		},
		"travel": {
			IdealTithis:     []int{2, 3, 5, 7, 10, 11, 13},
			AvoidTithis:     []int{4, 9, 14, 30},
			IdealNakshatras: []int{1, 5, 7, 13, 15, 22, 27}, // Ashwini, Mrigashira, Punarvasu, Hasta, Swati, Shravana, Revati
			AvoidNakshatras: []int{2, 9, 18, 25},
			IdealVaras:      []int{2, 5, 6},
			AvoidVaras:      []int{3, 7},
			AvoidKaranas:    []string{"Vishti"},
			IdealSlots:      []TimeSlot{SlotMorning},
			AvoidSlots:      []TimeSlot{SlotNight},
		},
		"education": {
			IdealTithis:     []int{2, 3, 5, 10, 11},
			AvoidTithis:     []int{4, 9, 14, 30},
			IdealNakshatras: []int{4, 7, 8, 13, 22, 26}, // Rohini, Punarvasu, Pushya, Hasta, Shravana, U.Bhadrapada
			AvoidNakshatras: []int{19},
			IdealVaras:      []int{4, 5},
			AvoidVaras:      []int{3},
			AvoidKaranas:    []string{"Vishti"},
			IdealSlots:      []TimeSlot{SlotMorning},
		},
		"health": {
			IdealTithis:     []int{2, 3, 5, 7, 11},
			AvoidTithis:     []int{4, 9, 14, 29, 30},
			IdealNakshatras: []int{1, 8, 13, 24}, // Ashwini, Pushya, Hasta, Shatabhisha
			AvoidNakshatras: []int{6, 19},
			IdealVaras:      []int{2, 4, 5},
			AvoidVaras:      []int{7},
			AvoidKaranas:    []string{"Vishti"},
		},
	}
}

// LoadRules reads a YAML override file on top of the defaults. Activities in
// the file replace the built-in entry wholesale; other activities keep their
// defaults.
func LoadRules(path string) (RuleSet, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	var overrides RuleSet
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return rules, fmt.Errorf("parse rules file: %w", err)
	}
	for activity, r := range overrides {
		rules[activity] = r
	}
	return rules, nil
}
