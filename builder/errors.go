// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; validation panics are confined to
//     option and ValueFn constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidLength indicates a size parameter (n, rows, cols, bandwidth, or
// the length of a values slice) outside its allowed domain.
var ErrInvalidLength = errors.New("builder: invalid length")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidPermutation indicates that a slice is not a permutation of 0..n-1.
var ErrInvalidPermutation = errors.New("builder: not a permutation")

// ErrNeedValueFn indicates a nil ValueFn passed to a constructor that draws
// entry values.
var ErrNeedValueFn = errors.New("builder: value function is required")

// ErrNilConstructor indicates a nil Constructor passed to BuildDense/BuildSparse.
var ErrNilConstructor = errors.New("builder: nil constructor")

// builderErrorf prefixes a formatted message with the method name. Use %w in
// format to keep a sentinel matchable.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//   • ErrInvalidLength / ErrInvalidPermutation - size and domain checks first.
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRandSource - then RNG presence for stochastic constructors.
//   • ErrNeedValueFn - last.
