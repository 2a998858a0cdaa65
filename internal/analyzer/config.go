package analyzer

import (
	"log/slog"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/cache"
	"github.com/kfreiman/fitscore/internal/features"
)

// DefaultBatchConcurrency bounds how many jobs a batch scores at once
const DefaultBatchConcurrency = 4

// AnalyzerConfig holds the collaborators of an Analyzer
type AnalyzerConfig struct {
	Engine    *analysis.Engine                      // Optional: defaults to the built-in tables
	Extractor Extractor                             // Optional: defaults to the structured-document extractor
	Narrator  Narrator                              // Optional: defaults to the template insights
	Cache     cache.Cache[*analysis.AnalysisResult] // Optional: defaults to an in-memory cache
	Logger    *slog.Logger                          // Optional: defaults to slog.Default()

	// BatchConcurrency bounds AnalyzeBatch; zero selects DefaultBatchConcurrency
	BatchConcurrency int
}

// NewAnalyzerWithConfig creates an analyzer, filling in defaults for every
// collaborator left nil
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	a := &Analyzer{
		engine:      config.Engine,
		extractor:   config.Extractor,
		narrator:    config.Narrator,
		cache:       config.Cache,
		logger:      config.Logger,
		concurrency: config.BatchConcurrency,
	}

	if a.engine == nil {
		a.engine = analysis.NewDefaultEngine()
	}
	if a.extractor == nil {
		a.extractor = features.NewStructuredExtractor()
	}
	if a.narrator == nil {
		a.narrator = TemplateNarrator{Engine: a.engine}
	}
	if a.cache == nil {
		a.cache = cache.NewMemory[*analysis.AnalysisResult](cache.DefaultCapacity)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.concurrency <= 0 {
		a.concurrency = DefaultBatchConcurrency
	}

	return a
}
