package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange       = errors.New("the start date must not be after the end date")
	ErrNegativeAllocation = errors.New("allocated amounts must not be negative")
	ErrNegativeTotal      = errors.New("the total budget amount must not be negative")
	ErrNegativeAmount     = errors.New("transaction amounts must not be negative, the direction is given by the type")
	ErrUnknownType        = errors.New("unknown transaction type, must be one of income, expense, transfer")
	ErrUnknownStatus      = errors.New("unknown transaction status, must be one of pending, completed, cancelled")
)

// ValidationError is returned when the input to Analyze is structurally invalid.
//
// Use errors.Is with one of the Err* variables of this package to find out
// what exactly is wrong.
type ValidationError struct {
	Field string // The offending field, e.g. "allocations[2].allocated"
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
