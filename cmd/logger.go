package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"

	"github.com/kfreiman/fitscore/internal/config"
)

// createLogger creates a slog logger from the configuration
func createLogger(conf config.Config) *slog.Logger {
	var level slog.Level
	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// stdout carries results, so logs always go to stderr
	var zerologLogger zerolog.Logger
	if conf.LogFormat == "json" {
		zerologLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()
	}

	handler := slogzerolog.Option{
		Level:  level,
		Logger: &zerologLogger,
	}.NewZerologHandler()

	logger := slog.New(handler)

	log.SetFlags(0)
	slog.SetDefault(logger)

	return logger
}
