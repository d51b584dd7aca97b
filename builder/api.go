// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator per representation: BuildDense, BuildSparse. Each
//     resolves the config, runs the constructor, and hands the layout to the
//     matching matrix factory.
//   - All public constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors and
//     matrix faults from the factories.

package builder

import (
	"github.com/katalvlaran/ringalg/matrix"
	"github.com/katalvlaran/ringalg/ring"
)

// Layout is a matrix blueprint: its size (maximum row and column index) and
// a generator answering the value at every index.
type Layout[T any] struct {
	Size matrix.Indexes
	Gen  matrix.Generator[T]
}

// Constructor produces a Layout from the resolved builderConfig.
// Constructors validate parameters early, draw all randomness before
// returning, and never panic.
type Constructor[T any] func(cfg builderConfig) (Layout[T], error)

// Resolve applies opts and runs c, returning the blueprint without building a
// matrix.
func (c Constructor[T]) Resolve(opts ...BuilderOption) (Layout[T], error) {
	if c == nil {
		return Layout[T]{}, ErrNilConstructor
	}

	return c(newBuilderConfig(opts...))
}

// BuildDense runs c with the options and builds a dense matrix from the result.
// Errors: constructor sentinels, ErrNilConstructor.
// Complexity: constructor cost + O(rows*cols).
func BuildDense[T any](c Constructor[T], opts ...BuilderOption) (*matrix.Dense[T], error) {
	l, err := c.Resolve(opts...)
	if err != nil {
		return nil, builderErrorf(MethodBuildDense, "%w", err)
	}

	return matrix.NewOfSize(l.Size, l.Gen)
}

// BuildSparse runs c with the options and builds a sparse matrix over r from
// the result; zero entries are not stored.
// Errors: constructor sentinels, ErrNilConstructor, matrix.ErrNilArgument.
// Complexity: constructor cost + O(rows*cols).
func BuildSparse[T any](c Constructor[T], r ring.Ring[T], opts ...BuilderOption) (*matrix.Sparse[T], error) {
	l, err := c.Resolve(opts...)
	if err != nil {
		return nil, builderErrorf(MethodBuildSparse, "%w", err)
	}

	return matrix.NewSparseOfSize(l.Size, l.Gen, r)
}

// sampled returns a generator reading drawn values from entries and zero
// elsewhere.
func sampled[T any](entries map[matrix.Indexes]T, zero T) matrix.Generator[T] {
	return func(idx matrix.Indexes) T {
		if v, ok := entries[idx]; ok {
			return v
		}

		return zero
	}
}
