// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_band.go - Band(n, lower, upper) constructor.
//
// Contract:
//   - n >= 1, lower >= 0, upper >= 0 (else ErrInvalidLength).
//   - valueFn non-nil (else ErrNeedValueFn).
//   - Entry (i,j) is in the band iff -lower <= j-i <= upper; in-band values
//     are drawn from valueFn(cfg.rng), one call per in-band index, in
//     row-major order. cfg.rng may be nil for deterministic value functions.
//
// Complexity:
//   - Time: O(n·(lower+upper+1)) draws.
//   - Space: one stored value per in-band index.

package builder

import "github.com/katalvlaran/ringalg/matrix"

// Band returns a Constructor for an n×n band matrix with the given lower and
// upper bandwidths. Band(n, 0, 0, ...) is diagonal; Band(n, 1, 1, ...) is
// tridiagonal.
func Band[T any](n, lower, upper int, valueFn ValueFn[T], zero T) Constructor[T] {
	return func(cfg builderConfig) (Layout[T], error) {
		if err := validateMin(MethodBand, "n", n, MinDimension); err != nil {
			return Layout[T]{}, err
		}
		if err := validateMin(MethodBand, "lower", lower, 0); err != nil {
			return Layout[T]{}, err
		}
		if err := validateMin(MethodBand, "upper", upper, 0); err != nil {
			return Layout[T]{}, err
		}
		if valueFn == nil {
			return Layout[T]{}, builderErrorf(MethodBand, "%w", ErrNeedValueFn)
		}

		entries := make(map[matrix.Indexes]T)
		for i := 0; i < n; i++ {
			for j := max(0, i-lower); j <= min(n-1, i+upper); j++ {
				entries[matrix.MustIndexes(i, j)] = valueFn(cfg.rng)
			}
		}

		return Layout[T]{Size: matrix.MustIndexes(n-1, n-1), Gen: sampled(entries, zero)}, nil
	}
}
