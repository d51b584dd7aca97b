// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(rows, cols, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like pattern: keep each index independently with
//     probability p, then draw its value from valueFn.
//
// Contract:
//   - rows, cols >= 1 (else ErrInvalidLength).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - valueFn non-nil (else ErrNeedValueFn).
//
// Determinism:
//   - Trials run in row-major order; a kept index draws its value right after
//     its trial. Fixed seed ⇒ identical matrix.
//
// Complexity:
//   - Time: O(rows·cols) Bernoulli trials.
//   - Space: one stored value per kept index.

package builder

import "github.com/katalvlaran/ringalg/matrix"

// RandomSparse returns a Constructor sampling a rows×cols matrix whose
// entries are kept with probability p. A drawn value may itself equal zero;
// BuildSparse elides it.
func RandomSparse[T any](rows, cols int, p float64, valueFn ValueFn[T], zero T) Constructor[T] {
	return func(cfg builderConfig) (Layout[T], error) {
		if err := validateMin(MethodRandomSparse, "rows", rows, MinDimension); err != nil {
			return Layout[T]{}, err
		}
		if err := validateMin(MethodRandomSparse, "cols", cols, MinDimension); err != nil {
			return Layout[T]{}, err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return Layout[T]{}, err
		}
		// RNG is only required for true stochastic sampling.
		if p > MinProbability && p < MaxProbability {
			if err := validateRand(MethodRandomSparse, cfg.rng); err != nil {
				return Layout[T]{}, err
			}
		}
		if valueFn == nil {
			return Layout[T]{}, builderErrorf(MethodRandomSparse, "%w", ErrNeedValueFn)
		}

		entries := make(map[matrix.Indexes]T)
		for idx := range matrix.Stream(rows, cols) {
			keep := p == MaxProbability
			if !keep && p > MinProbability {
				keep = cfg.rng.Float64() < p
			}
			if keep {
				entries[idx] = valueFn(cfg.rng)
			}
		}

		return Layout[T]{Size: matrix.MustIndexes(rows-1, cols-1), Gen: sampled(entries, zero)}, nil
	}
}
