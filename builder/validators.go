// SPDX-License-Identifier: MIT
// Package builder: validation helpers enforcing constructor parameter
// contracts. Each returns an error wrapping a sentinel, prefixed with the
// method name.
package builder

import "math/rand"

// validateMin ensures got >= floor, else ErrInvalidLength.
func validateMin(method, name string, got, floor int) error {
	if got < floor {
		return builderErrorf(method, "%s=%d < min=%d: %w", name, got, floor, ErrInvalidLength)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails the check.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, "p=%f not in [%.1f,%.1f]: %w", p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand requires an RNG.
func validateRand(method string, rng *rand.Rand) error {
	if rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}

	return nil
}

// validatePermutation checks that perm holds every value of 0..len(perm)-1
// exactly once.
// Complexity: O(n) time and space.
func validatePermutation(method string, perm []int) error {
	seen := make([]bool, len(perm))
	for i, v := range perm {
		if v < 0 || v >= len(perm) || seen[v] {
			return builderErrorf(method, "perm[%d]=%d: %w", i, v, ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return nil
}
