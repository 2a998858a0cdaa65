package analysis

import (
	"github.com/kfreiman/fitscore/internal/features"
)

// MatchValue is the tri-state verdict for one parameter
type MatchValue float64

const (
	NoMatch      MatchValue = 0
	PartialMatch MatchValue = 0.5
	FullMatch    MatchValue = 1
)

// Reasons shared by several matchers
const (
	ReasonNoData      = "No data provided"
	ReasonNotRequired = "Not required"
)

// ParameterMatch is the verdict for one comparison dimension. Reason is for
// explanation only and never feeds the score.
type ParameterMatch struct {
	Value  MatchValue `json:"value"`
	Reason string     `json:"reason"`
}

// Breakdown holds one ParameterMatch per declared parameter
type Breakdown map[string]ParameterMatch

// Insights is the human-readable narrative derived from a breakdown
type Insights struct {
	Why     []string `json:"why"`
	Improve []string `json:"improve"`
}

// AnalysisResult is the unit returned to callers and stored in the cache
type AnalysisResult struct {
	Score          float64              `json:"score"`
	Breakdown      Breakdown            `json:"breakdown"`
	ResumeFeatures *features.FeatureSet `json:"resumeFeatures"`
	JobFeatures    *features.FeatureSet `json:"jobFeatures"`
	Reasons        []string             `json:"reasons"`
	Improvements   []string             `json:"improvements"`
}

func noData() ParameterMatch {
	return ParameterMatch{Value: NoMatch, Reason: ReasonNoData}
}

// bucket converts an overlap ratio into the tri-state scale
func bucket(ratio float64) MatchValue {
	switch {
	case ratio >= 0.6:
		return FullMatch
	case ratio >= 0.3:
		return PartialMatch
	default:
		return NoMatch
	}
}
