package model

// Factor identifies one component of a muhurat score.
type Factor string

const (
	FactorTithi     Factor = "tithi"
	FactorNakshatra Factor = "nakshatra"
	FactorYoga      Factor = "yoga"
	FactorKarana    Factor = "karana"
	FactorVara      Factor = "vara"
	FactorTimeSlot  Factor = "time_slot"
	FactorAspect    Factor = "aspect"
)

// ScoredFactors is the fixed order in which factors contribute strengths and
// weaknesses lines.
var ScoredFactors = []Factor{FactorTithi, FactorNakshatra, FactorYoga, FactorKarana, FactorVara}

// Grade is the qualitative band a total score falls into.
type Grade string

const (
	GradeExcellent    Grade = "excellent"     // [0.80, 1.00]
	GradeGood         Grade = "good"          // [0.65, 0.80)
	GradeAverage      Grade = "average"       // [0.50, 0.65)
	GradeBelowAverage Grade = "below_average" // [0.40, 0.50)
	GradeInauspicious Grade = "inauspicious"  // [0.00, 0.40)
)

// MuhuratScore is the weighted composite evaluation of a Panchang snapshot
// for one activity. Scores are recomputed per (snapshot, activity) pair and
// never cached across activity types.
type MuhuratScore struct {
	Activity        string             `json:"activity"`
	Total           float64            `json:"total"` // [0, 1]
	Components      map[Factor]float64 `json:"components"`
	Grade           Grade              `json:"grade"`
	Recommendation  string             `json:"recommendation"`
	Strengths       []string           `json:"strengths,omitempty"`
	Weaknesses      []string           `json:"weaknesses,omitempty"`
	GandMulaPenalty bool               `json:"gand_mula_penalty"` // hard penalty applied after weighting
}

// Candidate is one ranked entry from a date-range muhurat search.
type Candidate struct {
	Snapshot PanchangSnapshot `json:"snapshot"`
	Score    MuhuratScore     `json:"score"`
}
