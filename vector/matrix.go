// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/luminol/matrix"

// Row returns v as a 1×N row matrix.
func Row[T matrix.Float, N Size](v Vector[T, N]) matrix.Matrix[T, matrix.D1, N] {
	m := matrix.Zero[T, matrix.D1, N]()
	for i := 0; i < v.Len(); i++ {
		_ = m.Set(0, i, v.c[i]) // i < N by construction
	}

	return m
}

// Apply returns the row vector v multiplied by m, v·M. This is the
// convention of the transform package, where translations live in the last
// row.
func Apply[T matrix.Float, N Size](v Vector[T, N], m matrix.Matrix[T, N, N]) Vector[T, N] {
	prod := matrix.Mul(Row(v), m)
	var out Vector[T, N]
	copy(out.c[:], prod.Flat())

	return out
}
