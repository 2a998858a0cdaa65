package features

import (
	"context"
	"fmt"
)

// StructuredExtractor treats resume and job texts as already-structured
// feature documents (JSON or YAML). It stands in for a model-backed
// extractor when the caller has features at hand.
type StructuredExtractor struct {
	// KeepExperienceAsIs disables raising totalExperience to at least
	// relevantExperience.
	KeepExperienceAsIs bool
}

// NewStructuredExtractor creates an extractor with default repairs enabled
func NewStructuredExtractor() *StructuredExtractor {
	return &StructuredExtractor{}
}

// Extract decodes both documents
func (e *StructuredExtractor) Extract(ctx context.Context, resumeText, jobText string) (*FeatureSet, *FeatureSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	resume, err := Decode([]byte(resumeText))
	if err != nil {
		return nil, nil, fmt.Errorf("resume: %w", err)
	}
	job, err := Decode([]byte(jobText))
	if err != nil {
		return nil, nil, fmt.Errorf("job: %w", err)
	}

	if !e.KeepExperienceAsIs {
		repairExperience(resume)
		repairExperience(job)
	}

	return resume, job, nil
}

// repairExperience keeps total experience from being below relevant
// experience. Negative values are left for Validate to reject.
func repairExperience(f *FeatureSet) {
	if f.TotalExperience >= 0 && f.TotalExperience < f.RelevantExperience {
		f.TotalExperience = f.RelevantExperience
	}
}
