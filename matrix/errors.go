// SPDX-License-Identifier: MIT
// Package matrix: fault classes (sentinels + structured payloads).
// This file defines the package-level sentinels used across the matrix package
// and the typed errors that carry the offending sizes. Every typed error
// unwraps to its sentinel, so callers pick the granularity they need:
//
//	errors.Is(err, matrix.ErrInconsistentSize)        // class only
//	var e *matrix.InconsistentSizeError
//	errors.As(err, &e)                                // payload: e.This, e.Other
//
// No operation panics on user-triggered conditions. Panics are reserved for
// programmer errors inside ring adapters (see Ring), where the ring contract
// leaves no room for an error return.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// attach context with fmt.Errorf("tag: %w", err); errors.Is keeps matching.
//
// ERROR PRIORITY (enforced in tests):
// nil argument -> invalid length -> inconsistent size -> non-square.

var (
	// ErrInvalidLength is returned when a row or column count is not positive.
	ErrInvalidLength = errors.New("matrix: length must be > 0")

	// ErrInconsistentSize is returned when binary operands differ in size.
	ErrInconsistentSize = errors.New("matrix: inconsistent size")

	// ErrNonSquare is returned when Times is invoked on a non-square matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilArgument is returned when a required argument (ring, operand,
	// generator, values) is nil.
	ErrNilArgument = errors.New("matrix: nil argument")

	// ErrOutOfRange is returned by Value/At for coordinates outside the
	// matrix rectangle. Applies to both dense and sparse storage.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeIndex is returned by NewIndexes for a negative component.
	ErrNegativeIndex = errors.New("matrix: negative index")

	// ErrInvalidTolerance is returned by AllClose for a NaN or infinite tolerance.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")
)

// Cause names the dimension an InvalidLengthError refers to.
type Cause uint8

const (
	// CauseRow marks a row count or row coordinate.
	CauseRow Cause = iota
	// CauseColumn marks a column count or column coordinate.
	CauseColumn
)

// String returns "row" or "column".
func (c Cause) String() string {
	if c == CauseColumn {
		return "column"
	}

	return "row"
}

// InvalidLengthError reports a non-positive dimension (or a negative
// coordinate passed to At).
type InvalidLengthError struct {
	Cause  Cause // which dimension
	Length int   // offending value
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%v: %s=%d", ErrInvalidLength, e.Cause, e.Length)
}

// Unwrap returns ErrInvalidLength.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// InconsistentSizeError reports operands of differing size.
type InconsistentSizeError struct {
	This  Indexes // receiver size
	Other Indexes // argument size
}

func (e *InconsistentSizeError) Error() string {
	return fmt.Sprintf("%v: %s vs %s", ErrInconsistentSize, e.This, e.Other)
}

// Unwrap returns ErrInconsistentSize.
func (e *InconsistentSizeError) Unwrap() error { return ErrInconsistentSize }

// NonSquareError reports a size that is not diagonal.
type NonSquareError struct {
	Size Indexes
}

func (e *NonSquareError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNonSquare, e.Size)
}

// Unwrap returns ErrNonSquare.
func (e *NonSquareError) Unwrap() error { return ErrNonSquare }

// matrixErrorf tags err with the calling operation, keeping it matchable.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
