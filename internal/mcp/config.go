package mcp

import (
	"log/slog"

	"github.com/kfreiman/fitscore/internal/analyzer"
	"github.com/kfreiman/fitscore/internal/storage"
)

const (
	// ServerName is reported to MCP clients
	ServerName = "fitscore"
	// ServerVersion is reported to MCP clients
	ServerVersion = "1.0.0"
)

// Config holds the collaborators of the MCP server
type Config struct {
	Analyzer *analyzer.Analyzer     // Optional: defaults to the built-in engine
	Store    *storage.DocumentStore // Optional: defaults to the OS filesystem
	Logger   *slog.Logger           // Optional: defaults to slog.Default()
}

// WithAnalyzer sets the analyzer
func (c Config) WithAnalyzer(a *analyzer.Analyzer) Config {
	c.Analyzer = a
	return c
}

// WithStore sets the document store
func (c Config) WithStore(s *storage.DocumentStore) Config {
	c.Store = s
	return c
}

// WithLogger sets the logger
func (c Config) WithLogger(logger *slog.Logger) Config {
	c.Logger = logger
	return c
}
