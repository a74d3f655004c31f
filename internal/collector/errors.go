// Package collector runs the ordered question flow of a scaffold run and
// produces a validated models.ProjectAnswers record. Rendering questions and
// reading input is delegated to a Prompter; this package never touches the
// filesystem.
package collector

import (
	"errors"
	"fmt"
)

// Sentinel errors for the collector package.
var (
	// ErrValidation indicates a required answer is missing or an answer is invalid.
	ErrValidation = errors.New("answer validation failed")

	// ErrCancelled is returned when the user aborts the prompt flow.
	ErrCancelled = errors.New("scaffold cancelled by user")

	// ErrNoSteps is returned when a collector has no steps to run.
	ErrNoSteps = errors.New("no steps provided")
)

// ValidationError describes a single rejected answer.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns ErrValidation so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, msg string, value any) error {
	return &ValidationError{Field: field, Message: msg, Value: value}
}
