package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kfreiman/fitscore/internal/analysis"
)

// rankedResult pairs a job document with its analysis
type rankedResult struct {
	Job    string                   `json:"job"`
	Result *analysis.AnalysisResult `json:"result"`
}

var (
	scoreResumePath string
	scoreJobPaths   []string
	scoreJobsDir    string
	scoreOutPath    string
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against one or more jobs",
	Long: `Score a resume feature document against job feature documents.

With a single job the full analysis is printed. With several jobs (repeat
--job or use --jobs-dir) the analyses are ranked by score, highest first.`,
	Example: `  fitscore score --resume resume.yaml --job job.json
  fitscore score --resume resume.yaml --jobs-dir ./postings --out ranking.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		jobPaths := append([]string{}, scoreJobPaths...)
		if scoreJobsDir != "" {
			listed, err := rt.store.ListDocuments(ctx, scoreJobsDir)
			if err != nil {
				return err
			}
			resumePath := filepath.Clean(rt.store.Resolve(scoreResumePath))
			for _, path := range listed {
				if filepath.Clean(rt.store.Resolve(path)) == resumePath {
					continue
				}
				jobPaths = append(jobPaths, path)
			}
		}
		if len(jobPaths) == 0 {
			return fmt.Errorf("at least one --job or a --jobs-dir is required")
		}

		resumeText, err := rt.store.ReadText(ctx, scoreResumePath)
		if err != nil {
			return err
		}
		jobTexts := make([]string, len(jobPaths))
		for i, path := range jobPaths {
			if jobTexts[i], err = rt.store.ReadText(ctx, path); err != nil {
				return err
			}
		}

		results, err := rt.analyzer.AnalyzeBatch(ctx, resumeText, jobTexts)
		if err != nil {
			rt.logger.ErrorContext(ctx, "scoring failed",
				"error", err,
				"resume", scoreResumePath,
			)
			return err
		}

		var output any
		if len(results) == 1 {
			output = results[0]
		} else {
			ranked := make([]rankedResult, len(results))
			for i, r := range results {
				ranked[i] = rankedResult{Job: jobPaths[i], Result: r}
			}
			sort.SliceStable(ranked, func(i, j int) bool {
				return ranked[i].Result.Score > ranked[j].Result.Score
			})
			output = ranked
		}

		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		if scoreOutPath != "" {
			return rt.store.WriteResult(ctx, scoreOutPath, data)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Resume feature document (JSON or YAML)")
	scoreCmd.Flags().StringArrayVar(&scoreJobPaths, "job", nil, "Job feature document (repeatable)")
	scoreCmd.Flags().StringVar(&scoreJobsDir, "jobs-dir", "", "Directory of job feature documents")
	scoreCmd.Flags().StringVar(&scoreOutPath, "out", "", "Write the result to this file instead of stdout")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}
