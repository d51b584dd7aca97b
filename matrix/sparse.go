// SPDX-License-Identifier: MIT

// Package matrix - Sparse: zero-eliding storage.
//
// Purpose:
//   - Store only entries whose value is not the ring's zero; absent indices
//     inside the rectangle read as zero.
//   - Keep an explicit size: omitted zeros cannot establish the maximum index.
//   - Hold the construction ring so that point queries can answer zero.
//
// Invariant (checked in tests after every Plus/Times):
//   - No stored entry satisfies ring.IsZero. Zero detection uses the ring's own
//     Equal when it implements ring.Equaler, structural equality otherwise.
//
// Complexity quicksheet:
//   - Factories: O(r*c) generator calls; Value: O(1); Map: O(nnz); String: O(nnz log nnz).
package matrix

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/ringalg/ring"
)

const (
	_fmtSparseOpen  = "SparseMatrix [matrix={"
	_fmtSparseClose = "}]"
)

// Sparse is the sparse matrix representation.
type Sparse[T any] struct {
	entries map[Indexes]T // non-zero entries only
	size    Indexes       // inclusive maximum index
	r       ring.Ring[T]  // answers zero for absent indices
}

var _ Matrix[int] = (*Sparse[int])(nil)

// NewSparse builds a rows×columns sparse matrix from gen, dropping every
// generated value equal to r.Zero().
//
// Errors:
//   - ErrNilArgument (gen or r), *InvalidLengthError.
//
// Complexity:
//   - Time O(r*c) generator calls, Space O(nnz).
func NewSparse[T any](rows, columns int, gen Generator[T], r ring.Ring[T]) (*Sparse[T], error) {
	if gen == nil {
		return nil, matrixErrorf("SparseMatrix.New", ErrNilArgument)
	}
	if err := validateRing(r); err != nil {
		return nil, matrixErrorf("SparseMatrix.New", err)
	}
	if err := validateShape(rows, columns); err != nil {
		return nil, matrixErrorf("SparseMatrix.New", err)
	}

	entries := make(map[Indexes]T)
	storeNonZero(entries, Stream(rows, columns), gen, r)

	return &Sparse[T]{entries: entries, size: at(rows-1, columns-1), r: r}, nil
}

// NewSparseOfSize is NewSparse(size.Row()+1, size.Column()+1, gen, r).
func NewSparseOfSize[T any](size Indexes, gen Generator[T], r ring.Ring[T]) (*Sparse[T], error) {
	return NewSparse(size.row+1, size.column+1, gen, r)
}

// SparseConstant returns a size×size sparse matrix with every entry equal to
// value (empty storage when value is zero).
func SparseConstant[T any](size int, value T, r ring.Ring[T]) (*Sparse[T], error) {
	if err := validateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf("SparseMatrix.Constant", err)
	}

	return NewSparse(size, size, func(Indexes) T { return value }, r)
}

// SparseIdentity returns the size×size identity over r; only the diagonal is
// stored.
func SparseIdentity[T any](size int, r ring.Ring[T]) (*Sparse[T], error) {
	if err := validateRing(r); err != nil {
		return nil, matrixErrorf("SparseMatrix.Identity", err)
	}
	if err := validateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf("SparseMatrix.Identity", err)
	}

	return NewSparse(size, size, identityGenerator(r.Zero(), r.Identity()), r)
}

// SparseFrom copies the non-zero entries of a rectangular slice.
func SparseFrom[T any](values [][]T, r ring.Ring[T]) (*Sparse[T], error) {
	rows, columns, err := rectangle(values)
	if err != nil {
		return nil, matrixErrorf("SparseMatrix.From", err)
	}

	return NewSparse(rows, columns, func(idx Indexes) T { return IndexValue(idx, values) }, r)
}

// storeNonZero evaluates gen over seq and keeps the non-zero results.
func storeNonZero[T any](dst map[Indexes]T, seq iter.Seq[Indexes], gen Generator[T], r ring.Ring[T]) {
	for idx := range seq {
		if v := gen(idx); !ring.IsZero(r, v) {
			dst[idx] = v
		}
	}
}

// Size returns the declared inclusive maximum index.
func (s *Sparse[T]) Size() Indexes { return s.size }

// Kind returns KindSparse.
func (s *Sparse[T]) Kind() Kind { return KindSparse }

// Ring returns the ring the matrix was built with.
func (s *Sparse[T]) Ring() ring.Ring[T] { return s.r }

// NonZero returns the number of stored entries.
func (s *Sparse[T]) NonZero() int { return len(s.entries) }

// lookup reads idx, answering zero for absent entries. idx must be in range.
func (s *Sparse[T]) lookup(idx Indexes, zero func() T) T {
	if v, ok := s.entries[idx]; ok {
		return v
	}

	return zero()
}

// Value returns the entry at idx: the stored value, r.Zero() for an absent
// index inside the rectangle, or ErrOutOfRange outside it.
func (s *Sparse[T]) Value(idx Indexes) (T, error) {
	if !s.size.Contains(idx) {
		var zero T
		return zero, matrixErrorf("SparseMatrix.Value("+idx.String()+")", ErrOutOfRange)
	}

	return s.lookup(idx, s.r.Zero), nil
}

// At returns the entry at the zero-based (row, column); see Dense.At.
func (s *Sparse[T]) At(row, column int) (T, error) {
	idx, err := checkedAt(row, column)
	if err != nil {
		var zero T
		return zero, matrixErrorf("SparseMatrix.At", err)
	}

	return s.Value(idx)
}

// Map returns a fresh copy of the stored (non-zero) entries.
func (s *Sparse[T]) Map() map[Indexes]T { return maps.Clone(s.entries) }

// sortedKeys returns the stored indices in row-major order.
func (s *Sparse[T]) sortedKeys() []Indexes {
	keys := slices.Collect(maps.Keys(s.entries))
	SortIndexes(keys)

	return keys
}

// Entries yields the stored entries in row-major order.
func (s *Sparse[T]) Entries() iter.Seq2[Indexes, T] {
	return func(yield func(Indexes, T) bool) {
		for _, idx := range s.sortedKeys() {
			if !yield(idx, s.entries[idx]) {
				return
			}
		}
	}
}

// String renders the stored entries in ascending row-major order:
//
//	SparseMatrix [matrix={Indexes[row=R, column=C]=V, ...}]
//
// The format is a stable external contract.
func (s *Sparse[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtSparseOpen)
	first := true
	for idx, v := range s.Entries() {
		if !first {
			sb.WriteString(_fmtEntrySep)
		}
		first = false
		sb.WriteString(idx.String())
		sb.WriteString(_fmtEntryJoin)
		fmt.Fprint(&sb, v)
	}
	sb.WriteString(_fmtSparseClose)

	return sb.String()
}
