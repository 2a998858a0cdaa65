package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfreiman/fitscore/internal/analysis"
	"github.com/kfreiman/fitscore/internal/analyzer"
	"github.com/kfreiman/fitscore/internal/cache"
	"github.com/kfreiman/fitscore/internal/storage"
)

const (
	resumeDoc = `{"coreSkills": ["React", "Node.js"], "totalExperience": 2}`
	jobDoc    = `{"coreSkills": ["React", "Node", "AWS"], "totalExperience": 5}`
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAnalyzer() *analyzer.Analyzer {
	return analyzer.NewAnalyzerWithConfig(analyzer.AnalyzerConfig{Logger: discardLogger()})
}

func callRequest(t *testing.T, args any) *mcp.CallToolRequest {
	t.Helper()
	argsJSON, err := json.Marshal(args)
	require.NoError(t, err)
	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(argsJSON)},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServer_Defaults(t *testing.T) {
	s := NewServer(Config{}.WithLogger(discardLogger()))
	require.NotNil(t, s)
	assert.NotNil(t, s.mcpServer)
	assert.NotNil(t, s.analyzer)
	assert.NotNil(t, s.store)
}

func TestToolDefinitions(t *testing.T) {
	for _, name := range []string{"analyze_match", "score_features", "list_parameters", "cache_stats"} {
		tool, ok := ToolDefinitions[name]
		require.True(t, ok, "missing tool %s", name)
		assert.Equal(t, name, tool.Name)
		assert.NotEmpty(t, tool.Description)
		assert.NotNil(t, tool.InputSchema)
	}
}

func TestAnalyzeTool_Call_InlineDocuments(t *testing.T) {
	tool := NewAnalyzeTool(newTestAnalyzer(), nil).WithLogger(discardLogger())

	result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
		"resume": resumeDoc,
		"job":    jobDoc,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var analysisResult analysis.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &analysisResult))

	assert.Equal(t, analysis.FullMatch, analysisResult.Breakdown["coreSkills"].Value)
	assert.Equal(t, analysis.NoMatch, analysisResult.Breakdown["totalExperience"].Value)
	assert.InDelta(t, 17.0, analysisResult.Score, 0.001)
	assert.Equal(t, []string{"React", "Node", "AWS"}, analysisResult.JobFeatures.CoreSkills)
}

func TestAnalyzeTool_Call_FilePaths(t *testing.T) {
	fs := storage.NewMemMapFileSystem()
	require.NoError(t, fs.WriteFile("/docs/resume.json", []byte(resumeDoc), 0644))
	require.NoError(t, fs.WriteFile("/docs/job.yaml", []byte("coreSkills: [React, Node, AWS]\ntotalExperience: 5\n"), 0644))
	store := storage.NewDocumentStore(storage.StoreConfig{BasePath: "/docs", FileSystem: fs, Logger: discardLogger()})

	tool := NewAnalyzeTool(newTestAnalyzer(), store).WithLogger(discardLogger())
	result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
		"resume_path": "resume.json",
		"job_path":    "job.yaml",
	}))
	require.NoError(t, err)

	var analysisResult analysis.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &analysisResult))
	assert.Equal(t, analysis.FullMatch, analysisResult.Breakdown["coreSkills"].Value)
}

func TestAnalyzeTool_Call_Errors(t *testing.T) {
	tool := NewAnalyzeTool(newTestAnalyzer(), nil).WithLogger(discardLogger())
	ctx := context.Background()

	t.Run("missing resume", func(t *testing.T) {
		result, err := tool.Call(ctx, callRequest(t, map[string]any{"job": jobDoc}))
		require.Error(t, err)
		assert.True(t, result.IsError)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "resume", validationErr.Field)
	})

	t.Run("path without store", func(t *testing.T) {
		result, err := tool.Call(ctx, callRequest(t, map[string]any{"resume": resumeDoc, "job_path": "/job.json"}))
		require.Error(t, err)
		assert.Contains(t, resultText(t, result), "file access is not configured")
	})

	t.Run("invalid document", func(t *testing.T) {
		result, err := tool.Call(ctx, callRequest(t, map[string]any{"resume": "- just\n- a list", "job": jobDoc}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, analysis.ErrInvalidInput))
		assert.Contains(t, resultText(t, result), "analysis failed")
	})

	t.Run("malformed arguments", func(t *testing.T) {
		request := &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`{"resume": 1`)}}
		result, err := tool.Call(ctx, request)
		require.Error(t, err)
		assert.Contains(t, resultText(t, result), "invalid JSON format")
	})
}

func TestScoreFeaturesTool_Call(t *testing.T) {
	a := newTestAnalyzer()
	tool := NewScoreFeaturesTool(a).WithLogger(discardLogger())

	result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
		"resume": map[string]any{"coreSkills": []string{"Go"}, "location": map[string]any{"city": "Berlin"}},
		"job":    map[string]any{"coreSkills": []string{"Go"}, "city": "berlin"},
	}))
	require.NoError(t, err)

	var analysisResult analysis.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &analysisResult))
	assert.Equal(t, analysis.FullMatch, analysisResult.Breakdown["coreSkills"].Value)
	assert.Equal(t, analysis.FullMatch, analysisResult.Breakdown["city"].Value)

	stats, _ := a.CacheStats()
	assert.Equal(t, 0, stats.Entries)
}

func TestScoreFeaturesTool_Call_Errors(t *testing.T) {
	tool := NewScoreFeaturesTool(newTestAnalyzer()).WithLogger(discardLogger())
	ctx := context.Background()

	_, err := tool.Call(ctx, callRequest(t, map[string]any{"job": map[string]any{}}))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "resume", validationErr.Field)

	result, err := tool.Call(ctx, callRequest(t, map[string]any{
		"resume": map[string]any{"totalExperience": -1},
		"job":    map[string]any{},
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, analysis.ErrInvalidInput))
	assert.True(t, result.IsError)
}

func TestListParametersTool_Call(t *testing.T) {
	tool := NewListParametersTool(analysis.NewDefaultEngine())

	result, err := tool.Call(context.Background(), callRequest(t, map[string]any{}))
	require.NoError(t, err)

	var params []ParameterInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &params))
	require.Len(t, params, len(analysis.ParameterNames()))

	assert.Equal(t, ParameterInfo{Name: "coreSkills", Strategy: "overlap", Weight: 0.14}, params[0])
	assert.Equal(t, "skillCoverage", params[len(params)-1].Name)

	total := 0.0
	for _, p := range params {
		total += p.Weight
	}
	assert.InDelta(t, 1.0, total, analysis.WeightTolerance)
}

func TestCacheStatsTool_Call(t *testing.T) {
	a := newTestAnalyzer()
	_, err := a.Analyze(context.Background(), resumeDoc, jobDoc)
	require.NoError(t, err)

	result, err := NewCacheStatsTool(a).Call(context.Background(), callRequest(t, map[string]any{}))
	require.NoError(t, err)

	var stats cache.Stats
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &stats))
	assert.Equal(t, cache.Stats{Entries: 1, Capacity: cache.DefaultCapacity}, stats)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation failed for job_path '/x': not found", (&ValidationError{Field: "job_path", Value: "/x", Reason: "not found"}).Error())
	assert.Equal(t, "validation failed for resume: required", (&ValidationError{Field: "resume", Reason: "required"}).Error())
	assert.Equal(t, "validation failed: bad", (&ValidationError{Reason: "bad"}).Error())
}
