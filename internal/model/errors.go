package model

import (
	"errors"
	"fmt"
)

// InvalidInputError reports malformed caller input: impossible civil dates,
// out-of-range coordinates, non-finite numbers. It is raised before any
// downstream computation; inputs are never silently clamped.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%v: %s", e.Field, e.Value, e.Reason)
}

// ComputationError wraps an unexpected arithmetic fault with enough context
// (operation name, inputs) to reproduce it.
type ComputationError struct {
	Op     string
	Inputs map[string]any
	Err    error
}

func (e *ComputationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("computation failure in %s (inputs %v): %v", e.Op, e.Inputs, e.Err)
	}
	return fmt.Sprintf("computation failure in %s (inputs %v)", e.Op, e.Inputs)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// IsComputationFailure reports whether err is (or wraps) a ComputationError.
func IsComputationFailure(err error) bool {
	var ce *ComputationError
	return errors.As(err, &ce)
}
