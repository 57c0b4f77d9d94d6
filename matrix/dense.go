// SPDX-License-Identifier: MIT
// Package matrix: construction, indexing and formatting of Matrix values.
// Storage is a flat row-major slice, so Flat hands graphics consumers the
// exact buffer layout they expect.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Matrix method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Zero returns the R×C matrix with every entry equal to 0.
// Complexity: O(R*C) time and memory.
func Zero[T Float, R, C Dim]() Matrix[T, R, C] {
	rows, cols := shapeOf[R, C]()

	return Matrix[T, R, C]{data: make([]T, rows*cols)}
}

// Identity returns the N×N identity matrix: 1 on the diagonal, 0 elsewhere.
// Only square shapes can be requested; the signature enforces it.
// Complexity: O(N²).
func Identity[T Float, N Dim]() Matrix[T, N, N] {
	m := Zero[T, N, N]()
	n := m.Rows()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// New builds an R×C matrix from a nested literal of exactly R rows of C values.
// The dimensions come first in the type parameter list so T is inferred:
//
//	m, err := matrix.New[matrix.D2, matrix.D2]([][]float64{{1, 2}, {3, 4}})
//
// Stage 1 (Validate): literal shape must match R×C.
// Stage 2 (Execute): copy rows into the flat backing slice.
// Errors: ErrBadShape.
// Complexity: O(R*C).
func New[R, C Dim, T Float](rows [][]T) (Matrix[T, R, C], error) {
	r, c := shapeOf[R, C]()
	if err := ValidateLiteral(rows, r, c); err != nil {
		return Matrix[T, R, C]{}, matrixErrorf(opNew, err)
	}

	data := make([]T, r*c)
	for i := range rows {
		copy(data[i*c:(i+1)*c], rows[i])
	}

	return Matrix[T, R, C]{data: data}, nil
}

// MustNew is New that panics on a malformed literal.
// Intended for package-level fixtures and tests where the literal is static.
func MustNew[R, C Dim, T Float](rows [][]T) Matrix[T, R, C] {
	m, err := New[R, C](rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromFlat builds an R×C matrix from R*C values in row-major order.
// The input slice is copied. Errors: ErrDimensionMismatch.
func FromFlat[R, C Dim, T Float](data []T) (Matrix[T, R, C], error) {
	r, c := shapeOf[R, C]()
	if err := ValidateFlat(data, r, c); err != nil {
		return Matrix[T, R, C]{}, matrixErrorf(opFromFlat, err)
	}

	return Matrix[T, R, C]{data: append([]T(nil), data...)}, nil
}

// Convert returns m with every element converted to U, keeping the shape.
//
//	single := matrix.Convert[float32](double)
func Convert[U Float, T Float, R, C Dim](m Matrix[T, R, C]) Matrix[U, R, C] {
	src := m.cells()
	out := make([]U, len(src))
	for idx, v := range src {
		out[idx] = U(v)
	}

	return Matrix[U, R, C]{data: out}
}

// Rows returns the number of rows (R.Len()).
// Complexity: O(1).
func (m Matrix[T, R, C]) Rows() int {
	rows, _ := shapeOf[R, C]()

	return rows
}

// Cols returns the number of columns (C.Len()).
// Complexity: O(1).
func (m Matrix[T, R, C]) Cols() int {
	_, cols := shapeOf[R, C]()

	return cols
}

// cells returns the backing slice, or a fresh zero slice for the zero value.
// Callers must never write through the result.
func (m Matrix[T, R, C]) cells() []T {
	if m.data != nil {
		return m.data
	}
	rows, cols := shapeOf[R, C]()

	return make([]T, rows*cols)
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < R and 0 ≤ col < C.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m Matrix[T, R, C]) indexOf(method string, row, col int) (int, error) {
	rows, cols := shapeOf[R, C]()
	if err := ValidateIndex(row, col, rows, cols); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}

	// Compute flat offset
	return row*cols + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange when row ≥ R or col ≥ C (or either is negative).
// Complexity: O(1).
func (m Matrix[T, R, C]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	if m.data == nil {
		return 0, nil
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Set is copy-on-write: the receiver gets fresh storage before the store, so
// a Matrix copied by assignment never observes writes made through another
// copy.
// Errors: ErrOutOfRange on a bad index; the matrix is left untouched.
// Complexity: O(R*C).
func (m *Matrix[T, R, C]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data = m.Flat()
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, the second level of matrix[row][col] indexing.
// Errors: ErrOutOfRange when i is not in [0,R).
func (m Matrix[T, R, C]) Row(i int) ([]T, error) {
	rows, cols := shapeOf[R, C]()
	if err := ValidateIndex(i, 0, rows, cols); err != nil {
		return nil, denseErrorf("Row", i, 0, err)
	}
	out := make([]T, cols)
	copy(out, m.cells()[i*cols:(i+1)*cols])

	return out, nil
}

// Flat returns a copy of the R*C elements in row-major order, ready to be
// uploaded to an API expecting a flat buffer.
func (m Matrix[T, R, C]) Flat() []T {
	return append([]T(nil), m.cells()...)
}

// Clone returns a deep copy whose storage is independent of m.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) Clone() Matrix[T, R, C] {
	return Matrix[T, R, C]{data: m.Flat()}
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) String() string {
	rows, cols := shapeOf[R, C]()
	data := m.cells()

	var sb strings.Builder
	var i, j int
	for i = 0; i < rows; i++ { // iterate over rows
		sb.WriteString("[")
		for j = 0; j < cols; j++ {
			sb.WriteString(fmt.Sprintf("%g", data[i*cols+j]))
			if j < cols-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
