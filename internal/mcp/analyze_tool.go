package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/analyzer"
	"github.com/kfreiman/fitscore/internal/features"
	"github.com/kfreiman/fitscore/internal/storage"
)

// AnalyzeTool scores resume/job documents through the cached analyzer
type AnalyzeTool struct {
	analyzer *analyzer.Analyzer
	store    *storage.DocumentStore
	logger   *slog.Logger
}

// NewAnalyzeTool creates a new analyze tool
func NewAnalyzeTool(a *analyzer.Analyzer, store *storage.DocumentStore) *AnalyzeTool {
	return &AnalyzeTool{
		analyzer: a,
		store:    store,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *AnalyzeTool) WithLogger(logger *slog.Logger) *AnalyzeTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface
func (t *AnalyzeTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Resume     string `json:"resume"`
		Job        string `json:"job"`
		ResumePath string `json:"resume_path"`
		JobPath    string `json:"job_path"`
	}

	if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
		return errorResult("invalid JSON format - %v", err), fmt.Errorf("invalid arguments: %w", err)
	}

	resumeText, err := t.document(ctx, "resume", args.Resume, args.ResumePath)
	if err != nil {
		return errorResult("%v", err), err
	}
	jobText, err := t.document(ctx, "job", args.Job, args.JobPath)
	if err != nil {
		return errorResult("%v", err), err
	}

	result, err := t.analyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		t.logger.WarnContext(ctx, "analyze_match failed",
			"error", err,
		)
		return errorResult("analysis failed: %v", err), err
	}

	return resultJSON(result)
}

// document returns the inline text or, when empty, the content at path
func (t *AnalyzeTool) document(ctx context.Context, field, inline, path string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if strings.TrimSpace(path) == "" {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("either '%s' or '%s_path' is required", field, field)}
	}
	if t.store == nil {
		return "", &ValidationError{Field: field + "_path", Value: path, Reason: "file access is not configured"}
	}
	return t.store.ReadText(ctx, path)
}

// ScoreFeaturesTool scores feature objects directly
type ScoreFeaturesTool struct {
	analyzer *analyzer.Analyzer
	logger   *slog.Logger
}

// NewScoreFeaturesTool creates a new score_features tool
func NewScoreFeaturesTool(a *analyzer.Analyzer) *ScoreFeaturesTool {
	return &ScoreFeaturesTool{
		analyzer: a,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool
func (t *ScoreFeaturesTool) WithLogger(logger *slog.Logger) *ScoreFeaturesTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface
func (t *ScoreFeaturesTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Resume map[string]any `json:"resume"`
		Job    map[string]any `json:"job"`
	}

	if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
		return errorResult("invalid JSON format - %v", err), fmt.Errorf("invalid arguments: %w", err)
	}
	if args.Resume == nil {
		return errorResult("'resume' parameter is required"), &ValidationError{Field: "resume", Reason: "required parameter missing"}
	}
	if args.Job == nil {
		return errorResult("'job' parameter is required"), &ValidationError{Field: "job", Reason: "required parameter missing"}
	}

	result, err := t.analyzer.ScoreFeatures(ctx, features.FromMap(args.Resume), features.FromMap(args.Job))
	if err != nil {
		t.logger.WarnContext(ctx, "score_features failed",
			"error", err,
		)
		return errorResult("scoring failed: %v", err), err
	}

	return resultJSON(result)
}

func resultJSON(result *analysis.AnalysisResult) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errorResult("failed to format result: %v", err), err
	}
	return textResult(string(jsonData)), nil
}
