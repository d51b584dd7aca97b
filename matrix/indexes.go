// SPDX-License-Identifier: MIT
// Package matrix: Indexes, the addressing scheme for all matrix storage.
//
// Purpose:
//   - Immutable (row, column) coordinate, comparable and hashable (map key).
//   - Total row-major order: row first, then column. The order fixes size
//     inference (the maximum index), String() ordering of sparse matrices, and
//     every iteration in this package.
//
// A "size" is itself an Indexes: the inclusive maximum index, i.e.
// (rows-1, columns-1).

package matrix

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Indexes is an immutable, non-negative (row, column) pair.
type Indexes struct {
	row    int
	column int
}

// NewIndexes returns (row, column) or ErrNegativeIndex if either is negative.
func NewIndexes(row, column int) (Indexes, error) {
	if row < 0 || column < 0 {
		return Indexes{}, fmt.Errorf("NewIndexes(%d,%d): %w", row, column, ErrNegativeIndex)
	}

	return Indexes{row: row, column: column}, nil
}

// MustIndexes is NewIndexes that panics on negative input.
// Intended for literals in tests and examples.
func MustIndexes(row, column int) Indexes {
	idx, err := NewIndexes(row, column)
	if err != nil {
		panic(err)
	}

	return idx
}

// at builds an Indexes without validation; callers guarantee bounds.
func at(row, column int) Indexes { return Indexes{row: row, column: column} }

// Row returns the row component.
func (i Indexes) Row() int { return i.row }

// Column returns the column component.
func (i Indexes) Column() int { return i.column }

// Compare orders row-major: -1 if i < o, 0 if equal, +1 if i > o.
func (i Indexes) Compare(o Indexes) int {
	if c := cmp.Compare(i.row, o.row); c != 0 {
		return c
	}

	return cmp.Compare(i.column, o.column)
}

// AreDiagonal reports whether row == column.
func (i Indexes) AreDiagonal() bool { return i.row == i.column }

// Contains reports whether o lies inside the rectangle [0,i.row] x [0,i.column],
// treating i as an inclusive size.
func (i Indexes) Contains(o Indexes) bool {
	return o.row >= 0 && o.column >= 0 && o.row <= i.row && o.column <= i.column
}

// String renders "Indexes[row=R, column=C]".
func (i Indexes) String() string {
	return fmt.Sprintf("Indexes[row=%d, column=%d]", i.row, i.column)
}

// Stream yields every Indexes with 0 <= row < rows and 0 <= column < columns
// in row-major order. The sequence is lazy and restartable; non-positive
// bounds yield nothing.
func Stream(rows, columns int) iter.Seq[Indexes] {
	return func(yield func(Indexes) bool) {
		for r := 0; r < rows; r++ {
			for c := 0; c < columns; c++ {
				if !yield(at(r, c)) {
					return
				}
			}
		}
	}
}

// StreamSize is Stream(size.Row()+1, size.Column()+1).
func StreamSize(size Indexes) iter.Seq[Indexes] {
	return Stream(size.row+1, size.column+1)
}

// IndexValue returns values[idx.Row()][idx.Column()].
// values must be rectangular and contain idx; it panics otherwise, like any
// slice access.
func IndexValue[T any](idx Indexes, values [][]T) T {
	return values[idx.row][idx.column]
}

// SortIndexes sorts s in place in row-major order.
func SortIndexes(s []Indexes) {
	slices.SortFunc(s, Indexes.Compare)
}

// MaxIndexes returns the greatest element of s under the row-major order.
// ok is false when s is empty.
func MaxIndexes(s []Indexes) (Indexes, bool) {
	if len(s) == 0 {
		return Indexes{}, false
	}

	return slices.MaxFunc(s, Indexes.Compare), true
}
