// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_diagonal.go - Diagonal and Permutation constructors.
//
// Contract:
//   - len(values) >= 1 / len(perm) >= 1 (else ErrInvalidLength).
//   - perm must be a permutation of 0..n-1 (else ErrInvalidPermutation).
//   - No randomness; cfg.rng is ignored.

package builder

import "github.com/katalvlaran/ringalg/matrix"

// Diagonal returns a Constructor for the n×n matrix with values on the
// diagonal and zero elsewhere, n = len(values). values is copied.
// Complexity: O(n) to build the layout.
func Diagonal[T any](values []T, zero T) Constructor[T] {
	diag := append([]T(nil), values...)

	return func(_ builderConfig) (Layout[T], error) {
		if err := validateMin(MethodDiagonal, "len(values)", len(diag), MinDimension); err != nil {
			return Layout[T]{}, err
		}
		n := len(diag)

		return Layout[T]{
			Size: matrix.MustIndexes(n-1, n-1),
			Gen: func(idx matrix.Indexes) T {
				if idx.AreDiagonal() {
					return diag[idx.Row()]
				}
				return zero
			},
		}, nil
	}
}

// Permutation returns a Constructor for the permutation matrix P with
// P[i, perm[i]] = one and zero elsewhere, so that (P·x)[i] = x[perm[i]].
// perm is copied.
// Complexity: O(n) to validate.
func Permutation[T any](perm []int, zero, one T) Constructor[T] {
	p := append([]int(nil), perm...)

	return func(_ builderConfig) (Layout[T], error) {
		if err := validateMin(MethodPermutation, "len(perm)", len(p), MinDimension); err != nil {
			return Layout[T]{}, err
		}
		if err := validatePermutation(MethodPermutation, p); err != nil {
			return Layout[T]{}, err
		}
		n := len(p)

		return Layout[T]{
			Size: matrix.MustIndexes(n-1, n-1),
			Gen: func(idx matrix.Indexes) T {
				if p[idx.Row()] == idx.Column() {
					return one
				}
				return zero
			},
		}, nil
	}
}
