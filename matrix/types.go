// SPDX-License-Identifier: MIT

// Package matrix: the shared Matrix contract.
// Two representations implement it: Dense and Sparse (zero-eliding).
// Both are immutable after construction; every arithmetic operation returns a
// fresh matrix.
package matrix

import "github.com/katalvlaran/ringalg/ring"

// Kind tags the storage representation of a Matrix. Sparse kernels dispatch on
// it once, at the start of an operation, instead of inspecting concrete types.
type Kind uint8

const (
	// KindDense marks a matrix with an explicit entry for every index.
	KindDense Kind = iota + 1
	// KindSparse marks a matrix that stores only non-zero entries; Map()
	// returns exactly the stored entries.
	KindSparse
)

// String returns "dense" or "sparse".
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Generator produces the value stored at an index. Factories call it once per
// index, in row-major order.
type Generator[T any] func(Indexes) T

// Matrix is an immutable two-dimensional array over an arbitrary ring element T.
//
// Complexity notes: Value, Size and Kind are O(1); Map copies its storage.
type Matrix[T any] interface {
	// Value returns the entry at idx, or ErrOutOfRange if idx lies outside
	// the [0,Size().Row()] x [0,Size().Column()] rectangle.
	Value(idx Indexes) (T, error)

	// Map returns a snapshot of the stored entries keyed by index. The caller
	// owns the returned map; mutating it never affects the matrix.
	Map() map[Indexes]T

	// Size returns the inclusive maximum index (rows-1, columns-1).
	Size() Indexes

	// Kind reports the storage representation.
	Kind() Kind

	// Plus returns the entrywise ring-sum of the receiver and other.
	// Errors: ErrNilArgument, *InconsistentSizeError.
	Plus(other Matrix[T], r ring.Ring[T]) (Matrix[T], error)

	// Times returns the ring matrix product receiver × other.
	// Errors: ErrNilArgument, *InconsistentSizeError, *NonSquareError.
	Times(other Matrix[T], r ring.Ring[T]) (Matrix[T], error)

	// String renders the entries in row-major order.
	String() string
}
