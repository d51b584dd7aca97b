// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that take the ring once and derive
//     neutral elements from it.
//   - No logic duplication: each facade delegates to the canonical factory or
//     kernel.

package matrix

import "github.com/katalvlaran/ringalg/ring"

// NewZeros returns the size×size dense zero matrix over r.
func NewZeros[T any](size int, r ring.Ring[T]) (*Dense[T], error) {
	if err := validateRing(r); err != nil {
		return nil, matrixErrorf("NewZeros", err)
	}

	return Constant(size, r.Zero())
}

// NewIdentity returns the size×size dense identity over r.
func NewIdentity[T any](size int, r ring.Ring[T]) (*Dense[T], error) {
	if err := validateRing(r); err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}

	return Identity(size, r.Zero(), r.Identity())
}

// IdentityLike returns the identity with m's size and representation.
// Errors: ErrNilArgument, *NonSquareError.
func IdentityLike[T any](m Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m.Size()); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	n := m.Size().row + 1
	if m.Kind() == KindSparse {
		return SparseIdentity(n, r)
	}

	return NewIdentity(n, r)
}

// Sum is a nil-safe alias for a.Plus(b, r).
func Sum[T any](a, b Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Sum", err)
	}

	return a.Plus(b, r)
}

// Product is a nil-safe alias for a.Times(b, r).
func Product[T any](a, b Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Product", err)
	}

	return a.Times(b, r)
}

// Power returns m^k for k >= 0 by repeated squaring; m^0 is the identity of
// m's representation.
// Errors: ErrNilArgument, *NonSquareError, *InvalidLengthError (k < 0).
func Power[T any](m Matrix[T], k int, r ring.Ring[T]) (Matrix[T], error) {
	if k < 0 {
		return nil, matrixErrorf("Power", &InvalidLengthError{Cause: CauseRow, Length: k})
	}
	result, err := IdentityLike(m, r)
	if err != nil {
		return nil, matrixErrorf("Power", err)
	}
	base := m
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			if result, err = result.Times(base, r); err != nil {
				return nil, matrixErrorf("Power", err)
			}
		}
		if k > 1 {
			if base, err = base.Times(base, r); err != nil {
				return nil, matrixErrorf("Power", err)
			}
		}
	}

	return result, nil
}
