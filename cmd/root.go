// Package cmd wires configuration, logging and the analyzer into the
// fitscore command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/analyzer"
	"github.com/kfreiman/fitscore/internal/cache"
	"github.com/kfreiman/fitscore/internal/config"
	"github.com/kfreiman/fitscore/internal/storage"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fitscore",
	Short: "Deterministic resume/job match scoring",
	Long: `fitscore scores a structured resume profile against a structured job
profile and explains the result parameter by parameter.

Profiles are JSON or YAML feature documents. Configuration comes from the
environment; run "fitscore env" for the list of variables.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runtime bundles the components every command needs
type runtime struct {
	cfg      config.Config
	logger   *slog.Logger
	store    *storage.DocumentStore
	engine   *analysis.Engine
	analyzer *analyzer.Analyzer
}

// newRuntime loads configuration, builds the logger and the scoring stack
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := createLogger(cfg)
	store := storage.NewDocumentStore(storage.StoreConfig{Logger: logger})

	engine, err := cfg.BuildEngine(ctx, store.FileSystem(), logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build scoring engine",
			"error", err,
			"weights_file", cfg.WeightsFile,
		)
		return nil, err
	}

	a := analyzer.NewAnalyzerWithConfig(analyzer.AnalyzerConfig{
		Engine: engine,
		Cache:  cache.NewMemory[*analysis.AnalysisResult](cfg.CacheCapacity),
		Logger: logger,
	})

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		engine:   engine,
		analyzer: a,
	}, nil
}
