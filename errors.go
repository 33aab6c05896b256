package vsago

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDimension is returned when a vector dimension parameter is zero
	// (or negative) where a positive dimension is required.
	ErrZeroDimension = errors.New("dimension must be positive")

	// ErrEmptyVectorList is returned when an operator requiring at least one
	// input vector (bundling, superposition) received none.
	ErrEmptyVectorList = errors.New("at least one input vector is required")

	// ErrEmptyIndices is returned when the index-based constructor is invoked
	// with no indices.
	ErrEmptyIndices = errors.New("at least one index is required")

	// ErrZeroActiveElements is returned when random construction is requested
	// with zero active positions.
	ErrZeroActiveElements = errors.New("active element count must be positive")
)

// ErrTooManyActiveElements indicates a requested active-position count that
// exceeds the vector's dimension.
type ErrTooManyActiveElements struct {
	Requested int
	Dimension int
}

func (e *ErrTooManyActiveElements) Error() string {
	return fmt.Sprintf("too many active elements: requested %d for dimension %d", e.Requested, e.Dimension)
}

// ErrVectorSizeMismatch indicates operands of a binary or variadic operator
// that do not share the same dimension.
//
// It is also returned when an index passed to a constructor does not fit the
// declared dimension; in that case Expected is the declared dimension and
// Actual is the minimal dimension that could hold the offending index.
type ErrVectorSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrVectorSizeMismatch) Error() string {
	return fmt.Sprintf("vector size mismatch: expected dimension %d, got %d", e.Expected, e.Actual)
}
