package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/analyzer"
)

// ParameterInfo describes one scored parameter
type ParameterInfo struct {
	Name     string  `json:"name"`
	Strategy string  `json:"strategy"`
	Weight   float64 `json:"weight"`
}

// ListParametersTool reports the engine's parameter table
type ListParametersTool struct {
	engine *analysis.Engine
}

// NewListParametersTool creates a new list_parameters tool
func NewListParametersTool(engine *analysis.Engine) *ListParametersTool {
	return &ListParametersTool{engine: engine}
}

// Parameters returns the parameter table in declaration order
func (t *ListParametersTool) Parameters() []ParameterInfo {
	weights := t.engine.Weights()
	names := t.engine.Parameters()
	params := make([]ParameterInfo, 0, len(names))
	for _, name := range names {
		strategy, _ := t.engine.StrategyFor(name)
		params = append(params, ParameterInfo{Name: name, Strategy: strategy, Weight: weights[name]})
	}
	return params
}

// Call implements the MCP tool interface
func (t *ListParametersTool) Call(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(t.Parameters(), "", "  ")
	if err != nil {
		return errorResult("failed to format parameters: %v", err), err
	}
	return textResult(string(jsonData)), nil
}

// CacheStatsTool reports analysis cache occupancy
type CacheStatsTool struct {
	analyzer *analyzer.Analyzer
}

// NewCacheStatsTool creates a new cache_stats tool
func NewCacheStatsTool(a *analyzer.Analyzer) *CacheStatsTool {
	return &CacheStatsTool{analyzer: a}
}

// Call implements the MCP tool interface
func (t *CacheStatsTool) Call(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, _ := t.analyzer.CacheStats()
	jsonData, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return errorResult("failed to format cache stats: %v", err), err
	}
	return textResult(string(jsonData)), nil
}
