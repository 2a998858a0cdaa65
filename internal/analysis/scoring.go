package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// WeightTolerance is how far a weight table's sum may drift from 1.0
const WeightTolerance = 1e-6

// WeightTable maps every breakdown parameter to a non-negative weight.
// Weights sum to 1.0 so the final score lands in [0, 100].
type WeightTable map[string]float64

// NewDefaultWeights returns the built-in weight table. Skills and tools carry
// 40%, free-text lists 14%, scalar profile fields 20%, experience 13%, and
// presence, quality labels and skill coverage share the rest.
func NewDefaultWeights() WeightTable {
	return WeightTable{
		"coreSkills":      0.14,
		"secondarySkills": 0.06,
		"tools":           0.07,
		"toolProficiency": 0.03,
		"certifications":  0.03,
		"softSkills":      0.02,
		"keywords":        0.05,

		"responsibilities": 0.07,
		"projects":         0.03,
		"leadership":       0.02,
		"achievements":     0.02,

		"title":            0.08,
		"industry":         0.03,
		"educationLevel":   0.03,
		"educationField":   0.02,
		"city":             0.01,
		"country":          0.01,
		"remotePreference": 0.01,
		"employmentType":   0.01,

		"relevantExperience": 0.08,
		"totalExperience":    0.05,

		"portfolio":    0.01,
		"noticePeriod": 0.01,

		"skillRecency":             0.02,
		"employmentStability":      0.01,
		"careerProgression":        0.01,
		"responsibilityComplexity": 0.02,
		"resumeStructure":          0.01,
		"languageQuality":          0.01,

		"skillCoverage": 0.03,
	}
}

// Sum adds up all weights in a stable order
func (w WeightTable) Sum() float64 {
	sum := 0.0
	for _, key := range w.keys() {
		sum += w[key]
	}
	return sum
}

// ValidateWeights checks that weights are non-negative and sum to 1.0
// within WeightTolerance
func (w WeightTable) ValidateWeights() error {
	if len(w) == 0 {
		return &ConfigurationError{Reason: "weight table is empty"}
	}
	for _, key := range w.keys() {
		v := w[key]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &ConfigurationError{Parameter: key, Reason: fmt.Sprintf("weight must be a non-negative number, got %g", v)}
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > WeightTolerance {
		return &ConfigurationError{Reason: fmt.Sprintf("weights must sum to 1.0, got %.6f", sum)}
	}
	return nil
}

// ValidateFor additionally checks that the table covers exactly the given parameters
func (w WeightTable) ValidateFor(params []string) error {
	declared := make(map[string]bool, len(params))
	for _, p := range params {
		declared[p] = true
		if _, ok := w[p]; !ok {
			return &ConfigurationError{Parameter: p, Reason: "no weight configured"}
		}
	}
	for _, key := range w.keys() {
		if !declared[key] {
			return &ConfigurationError{Parameter: key, Reason: "unknown parameter"}
		}
	}
	return w.ValidateWeights()
}

// Normalize rescales weights so they sum to 1.0. A table summing to zero
// falls back to the defaults.
func (w WeightTable) Normalize() WeightTable {
	sum := w.Sum()
	if sum <= 0 {
		return NewDefaultWeights()
	}
	normalized := make(WeightTable, len(w))
	for key, v := range w {
		normalized[key] = v / sum
	}
	return normalized
}

// Clone returns a copy of the table
func (w WeightTable) Clone() WeightTable {
	c := make(WeightTable, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

func (w WeightTable) keys() []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToJSON converts the weight table to JSON
func (w WeightTable) ToJSON() (string, error) {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal weight table: %w", err)
	}
	return string(data), nil
}

// ComputeScore combines a breakdown with a weight table into a 0-100 score
// rounded to two decimals. In strict mode a weighted parameter missing from
// the breakdown is an error; otherwise it contributes nothing.
func ComputeScore(breakdown Breakdown, weights WeightTable, strict bool) (float64, error) {
	total := 0.0
	for _, key := range weights.keys() {
		match, ok := breakdown[key]
		if !ok {
			if strict {
				return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
			}
			continue
		}
		total += float64(match.Value) * weights[key]
	}
	// weights may sum to slightly above 1 within tolerance
	return clampFloat64(math.Round(total*10000)/100, 0, 100), nil
}

// clampFloat64 clamps a float64 value to the given range
func clampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// LogDebug logs the breakdown and score for debugging
func (b Breakdown) LogDebug(ctx context.Context, logger *slog.Logger, score float64) {
	attrs := make([]any, 0, len(b)*2+2)
	attrs = append(attrs, "score", score)
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, float64(b[k].Value))
	}
	logger.DebugContext(ctx, "score breakdown", attrs...)
}
