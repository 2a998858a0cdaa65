package analyzer

import (
	"fmt"
)

// ExtractionError wraps a failure of the feature extraction collaborator
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("feature extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DegradedError describes a collaborator failure that was replaced by a
// deterministic fallback. It is logged, never returned to callers.
type DegradedError struct {
	Component string
	Err       error
	Fallback  string
}

func (e *DegradedError) Error() string {
	msg := fmt.Sprintf("degraded operation in %s", e.Component)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	if e.Fallback != "" {
		msg += fmt.Sprintf(" (using fallback: %s)", e.Fallback)
	}
	return msg
}

func (e *DegradedError) Unwrap() error {
	return e.Err
}
