// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for argument checks shared by factories and kernels.
//  - Return typed faults (InvalidLengthError, InconsistentSizeError,
//    NonSquareError) or ErrNilArgument; call sites wrap with their own tag.
//
// Note:
//  - Composite validators follow a fixed sequence: nil -> size -> square.
//  - All checks are O(1) and allocate only on failure.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ringalg/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateLength rejects a non-positive row or column count.
func validateLength(cause Cause, length int) error {
	if length <= 0 {
		return &InvalidLengthError{Cause: cause, Length: length}
	}

	return nil
}

// validateShape runs validateLength on both dimensions, rows first.
func validateShape(rows, columns int) error {
	if err := validateLength(CauseRow, rows); err != nil {
		return err
	}

	return validateLength(CauseColumn, columns)
}

// ValidateNotNil ensures m is neither a nil interface nor a nil *Dense/*Sparse.
//
// Returns ErrNilArgument on failure.
// Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArgument)
	}
	switch v := m.(type) {
	case *Dense[T]:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilArgument)
		}
	case *Sparse[T]:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilArgument)
		}
	}

	return nil
}

// ValidateSameSize ensures a and b have equal Size().
// Assumes both are non-nil.
//
// Returns *InconsistentSizeError carrying both sizes.
// Complexity: O(1).
func ValidateSameSize[T any](a, b Matrix[T]) error {
	if a.Size() != b.Size() {
		return &InconsistentSizeError{This: a.Size(), Other: b.Size()}
	}

	return nil
}

// ValidateSquare ensures size is diagonal (rows == columns).
//
// Returns *NonSquareError carrying size.
// Complexity: O(1).
func ValidateSquare(size Indexes) error {
	if !size.AreDiagonal() {
		return &NonSquareError{Size: size}
	}

	return nil
}

// validateRing rejects a nil ring.
func validateRing[T any](r ring.Ring[T]) error {
	if r == nil {
		return validatorErrorf("validateRing", ErrNilArgument)
	}

	return nil
}

// validateOperands is the composite guard for Plus: other non-nil, ring
// non-nil, sizes equal.
func validateOperands[T any](this, other Matrix[T], r ring.Ring[T]) error {
	if err := ValidateNotNil(other); err != nil {
		return err
	}
	if err := validateRing(r); err != nil {
		return err
	}

	return ValidateSameSize(this, other)
}

// validateProduct is the composite guard for Times: validateOperands, then
// square receiver.
func validateProduct[T any](this, other Matrix[T], r ring.Ring[T]) error {
	if err := validateOperands(this, other, r); err != nil {
		return err
	}

	return ValidateSquare(this.Size())
}
