package otv

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports an input rejected before reaching the maneuver computations.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func newValidationError(field string, value float64, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
