package panchang

import (
	"fmt"
	"os"

	"github.com/vedicastro/panchang/internal/model"
	"gopkg.in/yaml.v3"
)

// NakshatraAttrs carries the static attributes of one lunar mansion.
type NakshatraAttrs struct {
	Name           string   `yaml:"name"`
	Deity          string   `yaml:"deity"`
	Symbol         string   `yaml:"symbol"`
	FavorableFor   []string `yaml:"favorable_for,omitempty"`
	UnfavorableFor []string `yaml:"unfavorable_for,omitempty"`
}

// Tables bundles every static lookup the classifier needs. A Tables value is
// read-only after construction and injected into the classifier, so alternate
// traditions can be substituted without touching calculation logic.
type Tables struct {
	TithiNames  [15]string         `yaml:"tithi_names"`
	Nakshatras  [27]NakshatraAttrs `yaml:"nakshatras"`
	Lords       [9]model.Body      `yaml:"lords"` // cycles over the 27 nakshatras
	YogaNames   [27]string         `yaml:"yoga_names"`
	KaranaNames [11]string         `yaml:"karana_names"`
	VaraNames   [7]string          `yaml:"vara_names"`
	VaraLords   [7]model.Body      `yaml:"vara_lords"`

	// Activity-agnostic inauspicious baselines. Activity-specific overrides
	// live in the muhurat rule sets.
	InauspiciousTithis     []int    `yaml:"inauspicious_tithis"`
	GandMulaNakshatras     []int    `yaml:"gand_mula_nakshatras"`
	InauspiciousNakshatras []int    `yaml:"inauspicious_nakshatras"`
	InauspiciousYogas      []int    `yaml:"inauspicious_yogas"`
	InauspiciousKaranas    []string `yaml:"inauspicious_karanas"`
	AuspiciousVaras        []int    `yaml:"auspicious_varas"`
}

// DefaultTables returns the built-in tables of the traditional system.
func DefaultTables() Tables {
	return Tables{
		TithiNames: [15]string{
			"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
			"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
			"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
			"Purnima", // aliased to Amavasya in the waning half
		},
		Nakshatras: defaultNakshatras,
		Lords: [9]model.Body{
			model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars,
			model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
		},
		YogaNames: [27]string{
			"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
			"Atiganda", "Sukarman", "Dhriti", "Shula", "Ganda",
			"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
			"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
			"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
			"Indra", "Vaidhriti",
		},
		KaranaNames: [11]string{
			"Kimstughna",
			"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
			"Shakuni", "Chatushpada", "Naga",
		},
		VaraNames: [7]string{
			"Ravivar", "Somvar", "Mangalvar", "Budhvar", "Guruvar", "Shukravar", "Shanivar",
		},
		VaraLords: [7]model.Body{
			model.Sun, model.Moon, model.Mars, model.Mercury,
			model.Jupiter, model.Venus, model.Saturn,
		},

		// Rikta tithis in both pakshas, plus Amavasya
		InauspiciousTithis: []int{4, 9, 14, 19, 24, 29, 30},
		// The six classical Gand Mula mansions (junctions of Ketu and Mercury)
		GandMulaNakshatras: []int{1, 9, 10, 18, 19, 27},
		// Gand Mula plus the five harsh (ugra) mansions
		InauspiciousNakshatras: []int{1, 2, 3, 6, 9, 10, 11, 18, 19, 25, 27},
		InauspiciousYogas:      []int{1, 6, 9, 10, 13, 15, 17, 19, 27},
		InauspiciousKaranas:    []string{"Vishti", "Shakuni", "Chatushpada", "Naga"},
		AuspiciousVaras:        []int{2, 4, 5, 6}, // Mon, Wed, Thu, Fri
	}
}

// LoadTables reads a YAML override file on top of the defaults. Missing keys
// keep their built-in values.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("read tables file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return tables, fmt.Errorf("parse tables file: %w", err)
	}
	return tables, nil
}

// defaultNakshatras lists the 27 lunar mansions in zodiacal order with their
// traditional attributes. Activity tags feed the general favorable baselines.
var defaultNakshatras = [27]NakshatraAttrs{
	{Name: "Ashwini", Deity: "Ashwini Kumaras", Symbol: "Horse's head",
		FavorableFor: []string{"travel", "health"}, UnfavorableFor: []string{"marriage"}},
	{Name: "Bharani", Deity: "Yama", Symbol: "Yoni",
		UnfavorableFor: []string{"travel", "marriage"}},
	{Name: "Krittika", Deity: "Agni", Symbol: "Razor",
		UnfavorableFor: []string{"marriage", "business"}},
	{Name: "Rohini", Deity: "Brahma", Symbol: "Cart",
		FavorableFor: []string{"marriage", "business", "education"}},
	{Name: "Mrigashira", Deity: "Soma", Symbol: "Deer's head",
		FavorableFor: []string{"marriage", "travel"}},
	{Name: "Ardra", Deity: "Rudra", Symbol: "Teardrop",
		UnfavorableFor: []string{"marriage", "health"}},
	{Name: "Punarvasu", Deity: "Aditi", Symbol: "Bow and quiver",
		FavorableFor: []string{"education", "travel"}},
	{Name: "Pushya", Deity: "Brihaspati", Symbol: "Cow's udder",
		FavorableFor: []string{"business", "education", "health"}, UnfavorableFor: []string{"marriage"}},
	{Name: "Ashlesha", Deity: "Nagas", Symbol: "Coiled serpent",
		UnfavorableFor: []string{"marriage", "travel"}},
	{Name: "Magha", Deity: "Pitris", Symbol: "Royal throne",
		UnfavorableFor: []string{"marriage"}},
	{Name: "Purva Phalguni", Deity: "Bhaga", Symbol: "Front legs of a bed",
		UnfavorableFor: []string{"business"}},
	{Name: "Uttara Phalguni", Deity: "Aryaman", Symbol: "Back legs of a bed",
		FavorableFor: []string{"marriage", "business"}},
	{Name: "Hasta", Deity: "Savitar", Symbol: "Hand",
		FavorableFor: []string{"business", "education", "travel"}},
	{Name: "Chitra", Deity: "Tvashtar", Symbol: "Pearl",
		FavorableFor: []string{"business"}},
	{Name: "Swati", Deity: "Vayu", Symbol: "Young sprout",
		FavorableFor: []string{"travel", "business"}},
	{Name: "Vishakha", Deity: "Indra-Agni", Symbol: "Triumphal arch"},
	{Name: "Anuradha", Deity: "Mitra", Symbol: "Lotus",
		FavorableFor: []string{"marriage", "travel"}},
	{Name: "Jyeshtha", Deity: "Indra", Symbol: "Earring",
		UnfavorableFor: []string{"marriage", "travel"}},
	{Name: "Mula", Deity: "Nirriti", Symbol: "Bundle of roots",
		UnfavorableFor: []string{"marriage", "business", "health"}},
	{Name: "Purva Ashadha", Deity: "Apas", Symbol: "Elephant tusk"},
	{Name: "Uttara Ashadha", Deity: "Vishvedevas", Symbol: "Planks of a bed",
		FavorableFor: []string{"marriage", "business"}},
	{Name: "Shravana", Deity: "Vishnu", Symbol: "Ear",
		FavorableFor: []string{"education", "travel"}},
	{Name: "Dhanishta", Deity: "Vasus", Symbol: "Drum",
		FavorableFor: []string{"business"}, UnfavorableFor: []string{"marriage"}},
	{Name: "Shatabhisha", Deity: "Varuna", Symbol: "Empty circle",
		FavorableFor: []string{"health"}},
	{Name: "Purva Bhadrapada", Deity: "Aja Ekapada", Symbol: "Sword",
		UnfavorableFor: []string{"marriage", "travel"}},
	{Name: "Uttara Bhadrapada", Deity: "Ahirbudhnya", Symbol: "Twins",
		FavorableFor: []string{"marriage", "education"}},
	{Name: "Revati", Deity: "Pushan", Symbol: "Fish",
		FavorableFor: []string{"travel"}, UnfavorableFor: []string{"marriage"}},
}
