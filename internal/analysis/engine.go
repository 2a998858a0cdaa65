package analysis

import (
	"fmt"

	"github.com/kfreiman/fitscore/internal/features"
)

// EngineConfig holds the tunable parts of an Engine
type EngineConfig struct {
	// Weights defaults to NewDefaultWeights when nil
	Weights WeightTable
	// Strategies overrides the strategy assigned to a parameter, by strategy name
	Strategies map[string]string
	// Strict makes scoring fail when a weighted parameter is missing
	Strict bool
}

// Engine scores feature-set pairs against a fixed parameter table and
// weight table. It is immutable after construction and safe for concurrent use.
type Engine struct {
	params  []ParameterSpec
	weights WeightTable
	strict  bool
}

// NewEngine validates cfg and returns a ready engine
func NewEngine(cfg EngineConfig) (*Engine, error) {
	params := DefaultParameters()
	index := make(map[string]int, len(params))
	for i, p := range params {
		index[p.Name] = i
	}

	for name, strategyName := range cfg.Strategies {
		i, ok := index[name]
		if !ok {
			return nil, &ConfigurationError{Parameter: name, Reason: "unknown parameter"}
		}
		s, ok := LookupStrategy(strategyName)
		if !ok {
			return nil, &ConfigurationError{Parameter: name, Reason: fmt.Sprintf("unknown strategy %q", strategyName)}
		}
		params[i].Strategy = s
	}

	weights := cfg.Weights
	if weights == nil {
		weights = NewDefaultWeights()
	}
	weights = weights.Clone()

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	if err := weights.ValidateFor(names); err != nil {
		return nil, err
	}

	return &Engine{params: params, weights: weights, strict: cfg.Strict}, nil
}

// NewDefaultEngine returns an engine with the built-in tables
func NewDefaultEngine() *Engine {
	e, err := NewEngine(EngineConfig{})
	if err != nil {
		panic(fmt.Sprintf("default engine configuration is invalid: %v", err))
	}
	return e
}

// Parameters returns the parameter names in declaration order
func (e *Engine) Parameters() []string {
	names := make([]string, len(e.params))
	for i, p := range e.params {
		names[i] = p.Name
	}
	return names
}

// StrategyFor returns the strategy name bound to a parameter
func (e *Engine) StrategyFor(param string) (string, bool) {
	for _, p := range e.params {
		if p.Name == param {
			return p.Strategy.Name(), true
		}
	}
	return "", false
}

// Weights returns a copy of the engine's weight table
func (e *Engine) Weights() WeightTable {
	return e.weights.Clone()
}

// Breakdown scores every parameter for a resume/job pair
func (e *Engine) Breakdown(resume, job *features.FeatureSet) (Breakdown, error) {
	return matchParameters(e.params, resume, job)
}

// Score applies the engine's weights to a breakdown
func (e *Engine) Score(b Breakdown) (float64, error) {
	return ComputeScore(b, e.weights, e.strict)
}

// Insights builds the template insights for a breakdown
func (e *Engine) Insights(b Breakdown) Insights {
	return generateInsights(b, e.Parameters())
}

// Evaluate runs breakdown, scoring and template insights in one call
func (e *Engine) Evaluate(resume, job *features.FeatureSet) (*AnalysisResult, error) {
	breakdown, err := e.Breakdown(resume, job)
	if err != nil {
		return nil, err
	}
	score, err := e.Score(breakdown)
	if err != nil {
		return nil, err
	}
	insights := e.Insights(breakdown)

	return &AnalysisResult{
		Score:          score,
		Breakdown:      breakdown,
		ResumeFeatures: resume,
		JobFeatures:    job,
		Reasons:        insights.Why,
		Improvements:   insights.Improve,
	}, nil
}
