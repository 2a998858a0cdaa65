// Package analyzer runs the full pipeline for a resume/job text pair:
// feature extraction, scoring, narrative and result caching.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/cache"
	"github.com/kfreiman/fitscore/internal/features"
)

// Extractor turns raw resume and job texts into feature sets
type Extractor interface {
	Extract(ctx context.Context, resumeText, jobText string) (*features.FeatureSet, *features.FeatureSet, error)
}

// Narrator produces the human-readable explanation of a breakdown
type Narrator interface {
	Narrate(ctx context.Context, breakdown analysis.Breakdown, resume, job *features.FeatureSet) (analysis.Insights, error)
}

// TemplateNarrator is the deterministic Narrator backed by the engine's
// insight templates
type TemplateNarrator struct {
	Engine *analysis.Engine
}

// Narrate implements Narrator
func (n TemplateNarrator) Narrate(_ context.Context, breakdown analysis.Breakdown, _, _ *features.FeatureSet) (analysis.Insights, error) {
	if n.Engine == nil {
		return analysis.GenerateInsights(breakdown), nil
	}
	return n.Engine.Insights(breakdown), nil
}

// Analyzer is safe for concurrent use. Results returned from Analyze may be
// shared with other callers through the cache and must not be modified.
type Analyzer struct {
	engine      *analysis.Engine
	extractor   Extractor
	narrator    Narrator
	cache       cache.Cache[*analysis.AnalysisResult]
	logger      *slog.Logger
	concurrency int

	group singleflight.Group
}

// NewAnalyzer creates an analyzer with default collaborators around engine
func NewAnalyzer(engine *analysis.Engine) *Analyzer {
	return NewAnalyzerWithConfig(AnalyzerConfig{Engine: engine})
}

// WithLogger sets a custom logger for the analyzer
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	a.logger = logger
	return a
}

// Engine returns the scoring engine
func (a *Analyzer) Engine() *analysis.Engine {
	return a.engine
}

// CacheStats reports the cache occupancy when the cache exposes it
func (a *Analyzer) CacheStats() (cache.Stats, bool) {
	s, ok := a.cache.(interface{ Stats() cache.Stats })
	if !ok {
		return cache.Stats{Entries: a.cache.Len()}, false
	}
	return s.Stats(), true
}

// Analyze scores a resume text against a job text. Identical text pairs are
// answered from the cache; concurrent requests for the same pair share one
// computation.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*analysis.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &analysis.InputError{Side: "resume", Reason: "text is empty"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &analysis.InputError{Side: "job", Reason: "text is empty"}
	}

	key := cache.Key(resumeText, jobText)
	if result, ok := a.cache.Get(key); ok {
		a.logger.DebugContext(ctx, "analysis cache hit",
			"cache_key", key,
		)
		return result, nil
	}

	// The shared computation outlives any single caller's cancellation;
	// each caller still honours its own context below.
	computeCtx := context.WithoutCancel(ctx)
	v, err, shared := a.group.Do(key, func() (interface{}, error) {
		if result, ok := a.cache.Get(key); ok {
			return result, nil
		}
		result, err := a.compute(computeCtx, key, resumeText, jobText)
		if err != nil {
			return nil, err
		}
		a.cache.Put(key, result)
		return result, nil
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}
	if shared {
		a.logger.DebugContext(ctx, "analysis shared with concurrent request",
			"cache_key", key,
		)
	}
	return v.(*analysis.AnalysisResult), nil
}

func (a *Analyzer) compute(ctx context.Context, key, resumeText, jobText string) (*analysis.AnalysisResult, error) {
	requestID := uuid.NewString()
	logger := a.logger.With("request_id", requestID, "cache_key", key)
	start := time.Now()

	resume, job, err := a.extractor.Extract(ctx, resumeText, jobText)
	if err != nil {
		logger.ErrorContext(ctx, "feature extraction failed",
			"error", err,
		)
		if errors.Is(err, features.ErrInvalidDocument) {
			return nil, fmt.Errorf("%w: %w", analysis.ErrInvalidInput, err)
		}
		return nil, &ExtractionError{Err: err}
	}

	result, err := a.evaluate(ctx, logger, resume, job)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "analysis completed",
		"score", result.Score,
		"duration", time.Since(start),
	)
	return result, nil
}

// ScoreFeatures scores two feature sets directly. Nothing is cached.
func (a *Analyzer) ScoreFeatures(ctx context.Context, resume, job *features.FeatureSet) (*analysis.AnalysisResult, error) {
	logger := a.logger.With("request_id", uuid.NewString())
	return a.evaluate(ctx, logger, resume, job)
}

func (a *Analyzer) evaluate(ctx context.Context, logger *slog.Logger, resume, job *features.FeatureSet) (*analysis.AnalysisResult, error) {
	breakdown, err := a.engine.Breakdown(resume, job)
	if err != nil {
		logger.WarnContext(ctx, "feature sets rejected",
			"error", err,
		)
		return nil, err
	}

	score, err := a.engine.Score(breakdown)
	if err != nil {
		return nil, err
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		breakdown.LogDebug(ctx, logger, score)
	}

	insights, err := a.narrator.Narrate(ctx, breakdown, resume, job)
	if err != nil {
		degraded := &DegradedError{Component: "narrator", Err: err, Fallback: "template insights"}
		logger.WarnContext(ctx, "narrative generation failed",
			"error", degraded,
		)
		insights = a.engine.Insights(breakdown)
	}

	return &analysis.AnalysisResult{
		Score:          score,
		Breakdown:      breakdown,
		ResumeFeatures: resume,
		JobFeatures:    job,
		Reasons:        nonNil(insights.Why),
		Improvements:   nonNil(insights.Improve),
	}, nil
}

// AnalyzeBatch scores one resume against several jobs. Results keep the
// order of jobTexts; the first failure cancels the rest.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, resumeText string, jobTexts []string) ([]*analysis.AnalysisResult, error) {
	results := make([]*analysis.AnalysisResult, len(jobTexts))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, jobText := range jobTexts {
		g.Go(func() error {
			result, err := a.Analyze(gCtx, resumeText, jobText)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
