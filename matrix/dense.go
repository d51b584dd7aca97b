// SPDX-License-Identifier: MIT

// Package matrix - Dense: dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Every index of the rectangle has an explicit entry; nothing exists outside it.
//   - Storage is a flat row-major buffer with the offset formula row*columns + column.
//   - Value/At return errors instead of panicking; Map() hands out a copy.
//
// Complexity quicksheet:
//   - New: O(r*c) generator calls; Value/At: O(1); Map: O(r*c); String: O(r*c).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtMapOpen   = "MatrixMap [matrix={"
	_fmtMapClose  = "}]"
	_fmtEntrySep  = ", "
	_fmtEntryJoin = "="
)

// Dense is the dense matrix representation.
type Dense[T any] struct {
	rows    int // > 0
	columns int // > 0
	data    []T // row-major, len == rows*columns
}

// Compile-time assertion.
var _ Matrix[int] = (*Dense[int])(nil)

// New builds a rows×columns dense matrix whose entry at idx is gen(idx).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation before any allocation.
//
// Implementation:
//   - Stage 1: reject nil gen (ErrNilArgument), then rows<=0, then columns<=0.
//   - Stage 2: call gen once per index in row-major order.
//
// Errors:
//   - ErrNilArgument, *InvalidLengthError (Cause row or column).
//
// Complexity:
//   - Time O(r*c) generator calls, Space O(r*c).
func New[T any](rows, columns int, gen Generator[T]) (*Dense[T], error) {
	if gen == nil {
		return nil, matrixErrorf("MatrixMap.New", ErrNilArgument)
	}
	if err := validateShape(rows, columns); err != nil {
		return nil, matrixErrorf("MatrixMap.New", err)
	}

	data := make([]T, 0, rows*columns)
	for idx := range Stream(rows, columns) {
		data = append(data, gen(idx))
	}

	return &Dense[T]{rows: rows, columns: columns, data: data}, nil
}

// NewOfSize is New(size.Row()+1, size.Column()+1, gen).
func NewOfSize[T any](size Indexes, gen Generator[T]) (*Dense[T], error) {
	return New(size.row+1, size.column+1, gen)
}

// Constant returns a size×size matrix with every entry equal to value.
func Constant[T any](size int, value T) (*Dense[T], error) {
	if err := validateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf("MatrixMap.Constant", err)
	}

	return New(size, size, func(Indexes) T { return value })
}

// Identity returns the size×size matrix with one on the diagonal and zero
// elsewhere.
func Identity[T any](size int, zero, one T) (*Dense[T], error) {
	if err := validateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf("MatrixMap.Identity", err)
	}

	return New(size, size, identityGenerator(zero, one))
}

// From copies a rectangular two-dimensional slice into a dense matrix.
// Errors: ErrNilArgument for nil input, *InvalidLengthError for an empty
// input or a row whose length differs from the first row's.
func From[T any](values [][]T) (*Dense[T], error) {
	rows, columns, err := rectangle(values)
	if err != nil {
		return nil, matrixErrorf("MatrixMap.From", err)
	}

	return New(rows, columns, func(idx Indexes) T { return IndexValue(idx, values) })
}

// identityGenerator yields one on the diagonal, zero elsewhere.
func identityGenerator[T any](zero, one T) Generator[T] {
	return func(idx Indexes) T {
		if idx.AreDiagonal() {
			return one
		}
		return zero
	}
}

// rectangle validates values and returns its shape.
func rectangle[T any](values [][]T) (rows, columns int, err error) {
	if values == nil {
		return 0, 0, ErrNilArgument
	}
	rows = len(values)
	if err = validateLength(CauseRow, rows); err != nil {
		return 0, 0, err
	}
	columns = len(values[0])
	if err = validateLength(CauseColumn, columns); err != nil {
		return 0, 0, err
	}
	for _, row := range values[1:] {
		if len(row) != columns {
			return 0, 0, &InvalidLengthError{Cause: CauseColumn, Length: len(row)}
		}
	}

	return rows, columns, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Columns returns the column count. Complexity: O(1).
func (m *Dense[T]) Columns() int { return m.columns }

// Size returns (rows-1, columns-1), the maximum index under the row-major order.
func (m *Dense[T]) Size() Indexes { return at(m.rows-1, m.columns-1) }

// Kind returns KindDense.
func (m *Dense[T]) Kind() Kind { return KindDense }

// get reads an index already known to be in range.
func (m *Dense[T]) get(idx Indexes) T { return m.data[idx.row*m.columns+idx.column] }

// Value returns the entry at idx or ErrOutOfRange.
func (m *Dense[T]) Value(idx Indexes) (T, error) {
	if !m.Size().Contains(idx) {
		var zero T
		return zero, matrixErrorf("MatrixMap.Value("+idx.String()+")", ErrOutOfRange)
	}

	return m.get(idx), nil
}

// At returns the entry at the zero-based (row, column).
// A negative coordinate yields *InvalidLengthError naming the dimension; a
// coordinate past the last row/column yields ErrOutOfRange.
func (m *Dense[T]) At(row, column int) (T, error) {
	idx, err := checkedAt(row, column)
	if err != nil {
		var zero T
		return zero, matrixErrorf("MatrixMap.At", err)
	}

	return m.Value(idx)
}

// checkedAt converts raw coordinates for At, reporting the offending dimension.
func checkedAt(row, column int) (Indexes, error) {
	if row < 0 {
		return Indexes{}, &InvalidLengthError{Cause: CauseRow, Length: row}
	}
	if column < 0 {
		return Indexes{}, &InvalidLengthError{Cause: CauseColumn, Length: column}
	}

	return at(row, column), nil
}

// Map returns a fresh map holding every entry.
func (m *Dense[T]) Map() map[Indexes]T {
	out := make(map[Indexes]T, len(m.data))
	for idx := range Stream(m.rows, m.columns) {
		out[idx] = m.get(idx)
	}

	return out
}

// Values returns a fresh row-major [][]T copy of the matrix.
func (m *Dense[T]) Values() [][]T {
	out := make([][]T, m.rows)
	for r := range out {
		out[r] = append([]T(nil), m.data[r*m.columns:(r+1)*m.columns]...)
	}

	return out
}

// String renders "MatrixMap [matrix={Indexes[row=0, column=0]=v, ...}]" in
// row-major order.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtMapOpen)
	first := true
	for idx := range Stream(m.rows, m.columns) {
		if !first {
			sb.WriteString(_fmtEntrySep)
		}
		first = false
		sb.WriteString(idx.String())
		sb.WriteString(_fmtEntryJoin)
		fmt.Fprint(&sb, m.get(idx))
	}
	sb.WriteString(_fmtMapClose)

	return sb.String()
}
