// SPDX-License-Identifier: MIT
// Package builder provides value distributions for constructors that draw
// entry values.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn produces an entry value given an optional *rand.Rand source.
// It must be deterministic for a given RNG state; panics in its constructors
// indicate programmer error in configuration.
type ValueFn[T any] func(rng *rand.Rand) T

// ConstantValueFn returns a ValueFn that always yields value.
// Complexity: O(1).
func ConstantValueFn[T any](value T) ValueFn[T] {
	return func(_ *rand.Rand) T {
		return value
	}
}

// UniformIntValueFn returns a ValueFn sampling uniformly in [min, max]
// inclusive. Panics if max < min. With a nil rng it yields min.
// Complexity: O(1).
func UniformIntValueFn(min, max int) ValueFn[int] {
	if max < min {
		panic(fmt.Sprintf("UniformIntValueFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// UniformFloatValueFn returns a ValueFn sampling uniformly in [min, max).
// Panics if either bound is not finite or max < min. With a nil rng it
// yields min.
// Complexity: O(1).
func UniformFloatValueFn(min, max float64) ValueFn[float64] {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformFloatValueFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalValueFn returns a ValueFn sampling from N(mean, stddev).
// Panics if stddev < 0. With a nil rng it yields mean.
// Complexity: O(1).
func NormalValueFn(mean, stddev float64) ValueFn[float64] {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return rng.NormFloat64()*stddev + mean
	}
}
