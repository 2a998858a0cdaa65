package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a feature set is absent or malformed.
	// Nothing is scored in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration is returned for weight tables and strategy
	// assignments that violate the engine's invariants.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrMissingParameter is returned by strict scoring when the breakdown
	// lacks a weighted parameter.
	ErrMissingParameter = errors.New("breakdown is missing a weighted parameter")
)

// InputError describes a rejected feature set
type InputError struct {
	Side   string // "resume" or "job"
	Reason string
}

func (e *InputError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("invalid input for %s: %s", e.Side, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ConfigurationError describes a rejected weight table or strategy table
type ConfigurationError struct {
	Parameter string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("invalid configuration for %s: %s", e.Parameter, e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
