// Package config loads process configuration from the environment and the
// optional scoring profile (weights and strategy overrides) from disk.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/storage"
)

// Config holds the process configuration
type Config struct {
	LogFormat          string `env:"LOG_FORMAT" env-default:"text" env-description:"Log output format (text or json)" validate:"oneof=text json"`
	LogLevel           string `env:"LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)" validate:"oneof=debug info warn error"`
	WeightsFile        string `env:"WEIGHTS_FILE" env-description:"Scoring profile with weights and strategy overrides (YAML or JSON)"`
	RenormalizeWeights bool   `env:"RENORMALIZE_WEIGHTS" env-default:"false" env-description:"Rescale profile weights to sum to 1.0 instead of rejecting them"`
	StrictScoring      bool   `env:"STRICT_SCORING" env-default:"false" env-description:"Fail scoring when a weighted parameter is missing from the breakdown"`
	CacheCapacity      int    `env:"CACHE_CAPACITY" env-default:"200" env-description:"Analyses kept in memory before the cache is reset" validate:"gte=1,lte=100000"`
}

// Load reads a .env file when present, then the environment, and validates
// the result
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the struct tags
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", analysis.ErrConfiguration, err)
	}
	return nil
}

// Description returns the environment variable help text
func Description() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}

// WithWeightsFile sets the profile path
func (c Config) WithWeightsFile(path string) Config {
	c.WeightsFile = path
	return c
}

// WithStrictScoring enables or disables strict scoring
func (c Config) WithStrictScoring(strict bool) Config {
	c.StrictScoring = strict
	return c
}

// Profile is the on-disk scoring profile
type Profile struct {
	Weights    map[string]float64 `yaml:"weights" json:"weights"`
	Strategies map[string]string  `yaml:"strategies" json:"strategies"`
}

// LoadProfile reads and decodes a scoring profile. YAML is a superset of
// JSON so both formats are accepted.
func LoadProfile(fsys storage.FileSystem, path string) (*Profile, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &storage.StorageError{Operation: "read profile", Path: path, Err: err}
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &analysis.ConfigurationError{Reason: fmt.Sprintf("profile %s is not valid YAML or JSON: %v", path, err)}
	}
	if len(p.Weights) == 0 && len(p.Strategies) == 0 {
		return nil, &analysis.ConfigurationError{Reason: fmt.Sprintf("profile %s defines neither weights nor strategies", path)}
	}
	return &p, nil
}

// EngineConfig turns the configuration into an analysis.EngineConfig,
// reading the profile when one is configured
func (c Config) EngineConfig(ctx context.Context, fsys storage.FileSystem, logger *slog.Logger) (analysis.EngineConfig, error) {
	cfg := analysis.EngineConfig{Strict: c.StrictScoring}
	if strings.TrimSpace(c.WeightsFile) == "" {
		return cfg, nil
	}

	profile, err := LoadProfile(fsys, c.WeightsFile)
	if err != nil {
		return cfg, err
	}

	if len(profile.Weights) > 0 {
		weights := analysis.WeightTable(profile.Weights)
		if c.RenormalizeWeights {
			if err := weights.ValidateFor(analysis.ParameterNames()); err != nil {
				logger.WarnContext(ctx, "renormalizing profile weights",
					"path", c.WeightsFile,
					"sum", weights.Sum(),
					"reason", err.Error(),
				)
			}
			weights = weights.Normalize()
		}
		cfg.Weights = weights
	}
	cfg.Strategies = profile.Strategies

	logger.InfoContext(ctx, "scoring profile loaded",
		"path", c.WeightsFile,
		"weights", len(profile.Weights),
		"strategy_overrides", len(profile.Strategies),
	)
	return cfg, nil
}

// BuildEngine constructs the analysis engine described by the configuration
func (c Config) BuildEngine(ctx context.Context, fsys storage.FileSystem, logger *slog.Logger) (*analysis.Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	engineCfg, err := c.EngineConfig(ctx, fsys, logger)
	if err != nil {
		return nil, err
	}
	return analysis.NewEngine(engineCfg)
}
