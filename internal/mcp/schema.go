package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ServerInstructions contains the MCP server instructions for clients
const ServerInstructions = `fitscore - deterministic resume/job match scoring

Every score is computed from structured feature documents (JSON or YAML)
describing a resume and a job posting. The same pair always yields the same
score, breakdown and insights.

## Transport

stdio only. Start with: fitscore mcp-server

## Tools

### analyze_match
Score a resume against a job. Pass the documents inline (resume, job) or as
file paths (resume_path, job_path). Identical pairs are served from the cache.

Example: {"resume": "{\"coreSkills\": [\"Go\"]}", "job": "{\"coreSkills\": [\"Go\", \"SQL\"]}"}

Returns JSON with:
- score: 0-100, two decimals
- breakdown: {parameter: {value: 0 | 0.5 | 1, reason}}
- resumeFeatures / jobFeatures: the normalized feature sets
- reasons / improvements: human-readable insights

### score_features
Score two feature objects directly. Nothing is cached.

Example: {"resume": {"coreSkills": ["Go"]}, "job": {"coreSkills": ["Go"]}}

### list_parameters
List the scored parameters with their strategy and weight, in declaration order.

### cache_stats
Report cache entries, capacity and how often it was reset.

## Environment Variables

- WEIGHTS_FILE: scoring profile with weights and strategy overrides
- RENORMALIZE_WEIGHTS: rescale profile weights instead of rejecting them
- STRICT_SCORING: fail when a weighted parameter is missing
- CACHE_CAPACITY: analyses kept before the cache is reset (default: 200)
`

// ToolDefinitions contains the MCP tool definitions
var ToolDefinitions = map[string]*mcp.Tool{
	"analyze_match": {
		Name:        "analyze_match",
		Description: "Score a resume against a job posting from structured feature documents. Returns score, per-parameter breakdown and insights.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"resume": map[string]interface{}{
					"type":        "string",
					"description": "Resume feature document (JSON or YAML)",
				},
				"job": map[string]interface{}{
					"type":        "string",
					"description": "Job feature document (JSON or YAML)",
				},
				"resume_path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the resume feature document, used when 'resume' is empty",
				},
				"job_path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the job feature document, used when 'job' is empty",
				},
			},
			"required": []string{},
		},
	},
	"score_features": {
		Name:        "score_features",
		Description: "Score two feature objects directly without caching. Missing fields count as empty.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"resume": map[string]interface{}{
					"type":        "object",
					"description": "Resume feature set",
				},
				"job": map[string]interface{}{
					"type":        "object",
					"description": "Job feature set",
				},
			},
			"required": []string{"resume", "job"},
		},
	},
	"list_parameters": {
		Name:        "list_parameters",
		Description: "List scored parameters with their matching strategy and weight.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	},
	"cache_stats": {
		Name:        "cache_stats",
		Description: "Report analysis cache occupancy.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	},
}
