package model

import "time"

// Config holds the complete engine configuration.
type Config struct {
	Ayanamsa AyanamsaConfig `yaml:"ayanamsa" json:"ayanamsa"`
	Cache    CacheConfig    `yaml:"cache" json:"cache"`
	Scoring  ScoringConfig  `yaml:"scoring" json:"scoring"`
	Search   SearchConfig   `yaml:"search" json:"search"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// AyanamsaConfig selects and parameterizes the sidereal correction model.
type AyanamsaConfig struct {
	System     string  `yaml:"system" json:"system"`               // only "lahiri" is built in
	EpochYear  int     `yaml:"epoch_year" json:"epoch_year"`       // anchor year
	EpochValue float64 `yaml:"epoch_value" json:"epoch_value"`     // degrees at the anchor
	RatePerYr  float64 `yaml:"rate_per_year" json:"rate_per_year"` // arcseconds per year
}

// CacheConfig controls Panchang snapshot caching. Scores are never cached.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"` // disk cache directory; empty = memory only
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ScoringConfig carries the muhurat weight vector and hard penalties.
// Weights must sum to 1.0.
type ScoringConfig struct {
	Weights         map[Factor]float64 `yaml:"weights" json:"weights"`
	GandMulaPenalty float64            `yaml:"gand_mula_penalty" json:"gand_mula_penalty"`
	RulesFile       string             `yaml:"rules_file" json:"rules_file"`   // optional YAML override for activity rules
	TablesFile      string             `yaml:"tables_file" json:"tables_file"` // optional YAML override for panchang tables
}

// SearchConfig controls date-range muhurat scans.
type SearchConfig struct {
	Workers     int     `yaml:"workers" json:"workers"`
	MinScore    float64 `yaml:"min_score" json:"min_score"`
	MaxEvalRate float64 `yaml:"max_eval_rate" json:"max_eval_rate"` // evaluations/sec, 0 = unlimited
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
	JSON    bool `yaml:"json" json:"json"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Ayanamsa: AyanamsaConfig{
			System:     "lahiri",
			EpochYear:  2000,
			EpochValue: 23.85,
			RatePerYr:  50.2878,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Scoring: ScoringConfig{
			Weights: map[Factor]float64{
				FactorTithi:     0.20,
				FactorNakshatra: 0.25,
				FactorYoga:      0.15,
				FactorKarana:    0.10,
				FactorVara:      0.10,
				FactorTimeSlot:  0.10,
				FactorAspect:    0.10,
			},
			GandMulaPenalty: 0.3,
		},
		Search: SearchConfig{
			Workers:  4,
			MinScore: 0.5,
		},
		Output: OutputConfig{},
	}
}
