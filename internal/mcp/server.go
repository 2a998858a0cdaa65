package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/fitscore/internal/analyzer"
	"github.com/kfreiman/fitscore/internal/storage"
)

// Server encapsulates the MCP server with all its dependencies
type Server struct {
	mcpServer *mcp.Server
	analyzer  *analyzer.Analyzer
	store     *storage.DocumentStore
	logger    *slog.Logger
}

// NewServer creates a new MCP server with the given configuration
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = analyzer.NewAnalyzerWithConfig(analyzer.AnalyzerConfig{Logger: cfg.Logger})
	}
	if cfg.Store == nil {
		cfg.Store = storage.NewDocumentStore(storage.StoreConfig{Logger: cfg.Logger})
	}

	s := &Server{
		analyzer: cfg.Analyzer,
		store:    cfg.Store,
		logger:   cfg.Logger,
	}

	impl := &mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}

	s.mcpServer = mcp.NewServer(impl, &mcp.ServerOptions{
		Instructions: ServerInstructions,
	})

	s.registerTools()

	return s
}

// registerTools registers all tool handlers
func (s *Server) registerTools() {
	analyzeTool := NewAnalyzeTool(s.analyzer, s.store).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["analyze_match"], analyzeTool.Call)

	scoreTool := NewScoreFeaturesTool(s.analyzer).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["score_features"], scoreTool.Call)

	parametersTool := NewListParametersTool(s.analyzer.Engine())
	s.mcpServer.AddTool(ToolDefinitions["list_parameters"], parametersTool.Call)

	cacheTool := NewCacheStatsTool(s.analyzer)
	s.mcpServer.AddTool(ToolDefinitions["cache_stats"], cacheTool.Call)
}

// Run serves MCP over stdin/stdout until the client disconnects or ctx is done
func (s *Server) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting MCP server",
		"transport", "stdio",
		"tools", len(ToolDefinitions),
	)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
