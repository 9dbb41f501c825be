// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package constraint

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint is matched by every constraint validation failure.
var ErrInvalidConstraint = errors.New("invalid constraint")

// InvalidConstraintError names the offending field and value of a rejected
// constraint. It matches ErrInvalidConstraint under errors.Is.
type InvalidConstraintError struct {
	// Field is the constraint category: "length", "positions", "pos", or
	// "input" for refinement lines that could not be split into fields.
	Field string

	// Value is the raw text (or rendered value) that failed validation.
	Value string

	// Reason says what was expected.
	Reason string
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidConstraintError) Unwrap() error {
	return ErrInvalidConstraint
}

func invalid(field, value, reason string) error {
	return &InvalidConstraintError{Field: field, Value: value, Reason: reason}
}
