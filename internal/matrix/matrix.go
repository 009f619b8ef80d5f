// Package matrix provides small dense matrices over group elements, scalars
// and pairing outputs, as used by the Groth–Sahai commitment algebra.
//
// Shapes are fixed at construction and every operation checks them.
// A shape mismatch is a programming error and panics.
package matrix

import "fmt"

// Matrix is an immutable row-major rows×cols matrix.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// New builds a rows×cols matrix whose (i, j) entry is f(i, j).
func New[T any](rows, cols int, f func(i, j int) T) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: invalid shape %dx%d", rows, cols))
	}
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = f(i, j)
		}
	}
	return Matrix[T]{rows: rows, cols: cols, data: data}
}

// FromRows builds a matrix from row slices, which must all have the same
// length.
func FromRows[T any](rows ...[]T) Matrix[T] {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != cols {
			panic(fmt.Sprintf("matrix: row %d has %d entries, want %d", i, len(r), cols))
		}
	}
	return New(len(rows), cols, func(i, j int) T { return rows[i][j] })
}

// Column builds an n×1 matrix from v.
func Column[T any](v []T) Matrix[T] {
	return New(len(v), 1, func(i, _ int) T { return v[i] })
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the (i, j) entry.
func (m Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i.
func (m Matrix[T]) Row(i int) []T {
	out := make([]T, m.cols)
	for j := range out {
		out[j] = m.At(i, j)
	}
	return out
}

// Col returns a copy of column j.
func (m Matrix[T]) Col(j int) []T {
	out := make([]T, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// T returns the transpose. Entries are shared, not copied.
func (m Matrix[T]) T() Matrix[T] {
	return New(m.cols, m.rows, func(i, j int) T { return m.At(j, i) })
}

// Entries returns the entries in row-major order.
func (m Matrix[T]) Entries() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// HasShape reports whether m is rows×cols.
func (m Matrix[T]) HasShape(rows, cols int) bool {
	return m.rows == rows && m.cols == cols
}

func mustSameShape[T, U any](op string, a Matrix[T], b Matrix[U]) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(fmt.Sprintf("matrix: %s of %dx%d and %dx%d", op, a.rows, a.cols, b.rows, b.cols))
	}
}

func mustChain[T, U any](op string, a Matrix[T], b Matrix[U]) {
	if a.cols != b.rows {
		panic(fmt.Sprintf("matrix: %s of %dx%d by %dx%d", op, a.rows, a.cols, b.rows, b.cols))
	}
}

type equaler[T any] interface {
	Equal(T) bool
}

// Equal reports whether a and b have the same shape and equal entries.
func Equal[T equaler[T]](a, b Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for k := range a.data {
		if !a.data[k].Equal(b.data[k]) {
			return false
		}
	}
	return true
}
