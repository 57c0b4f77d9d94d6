// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertion helpers for kernels.
//   • Keep all data finite and well-formed so exact comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/luminol/matrix"
	"github.com/stretchr/testify/require"
)

// laplace4 is the 4×4 fixture with determinant 20 used across the
// determinant, cofactor, adjugate and inverse tests.
var laplace4 = [][]float64{
	{3, 0, 2, -1},
	{1, 2, 0, -2},
	{4, 0, 6, -3},
	{5, 0, 2, 0},
}

// laplace4Cofactor is the cofactor matrix of laplace4.
var laplace4Cofactor = [][]float64{
	{12, -50, -30, -44},
	{0, 10, 0, 0},
	{-4, 10, 10, 8},
	{0, 20, 10, 20},
}

// laplace4Inverse is adjugate(laplace4)/20.
var laplace4Inverse = [][]float64{
	{0.6, 0, -0.2, 0},
	{-2.5, 0.5, 0.5, 1},
	{-1.5, 0, 0.5, 0.5},
	{-2.2, 0, 0.4, 1},
}

// MustMatrix BUILDS an R×C matrix from a literal or fails the test.
func MustMatrix[R, C matrix.Dim](t *testing.T, rows [][]float64) matrix.Matrix[float64, R, C] {
	t.Helper()
	m, err := matrix.New[R, C](rows)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Float, R, C matrix.Dim](t *testing.T, m matrix.Matrix[T, R, C], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between a matrix and a 2D literal.
// Fails with the exact mismatch location. Use only for integer-like or
// correctly rounded data.
func CompareExact[R, C matrix.Dim](t *testing.T, want [][]float64, m matrix.Matrix[float64, R, C]) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	require.Len(t, want, r, "CompareExact: Rows")
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		require.Lenf(t, want[i], c, "CompareExact: Cols[%d]", i)
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// RandomMatrix FILLS an R×C matrix with values in [-5, 5) from a seeded source.
func RandomMatrix[R, C matrix.Dim](t testing.TB, seed int64) matrix.Matrix[float64, R, C] {
	t.Helper()
	var r R
	var c C
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r.Len()*c.Len())
	for idx := range data {
		data[idx] = rng.Float64()*10 - 5
	}
	m, err := matrix.FromFlat[R, C](data)
	require.NoError(t, err)

	return m
}

// literal converts m back into a nested slice for require.Equal comparisons.
func literal[T matrix.Float, R, C matrix.Dim](m matrix.Matrix[T, R, C]) [][]T {
	flat := m.Flat()
	rows, cols := m.Rows(), m.Cols()
	out := make([][]T, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols]
	}

	return out
}
