// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels on same-shape matrices: Add, Sub, Hadamard, Scale,
//     DivScalar, Equal, ApproxEqual.
//   - Shapes match by construction (the operand has the receiver's type), so
//     none of these can fail and none return an error.
//
// Determinism & Performance:
//   - Single flat loop 0..n-1 over the row-major buffers.
//   - Exactly one allocation for the result; operands are never mutated.

package matrix

// ewBinary computes out[k] = f(a[k], b[k]) over two same-shape buffers.
// Time: O(r*c). Space: O(r*c).
func ewBinary[T Float](a, b []T, f func(x, y T) T) []T {
	out := make([]T, len(a))
	for idx := range a { // deterministic 0..n-1
		out[idx] = f(a[idx], b[idx])
	}

	return out
}

// ewUnary computes out[k] = f(a[k]).
// Time: O(r*c). Space: O(r*c).
func ewUnary[T Float](a []T, f func(x T) T) []T {
	out := make([]T, len(a))
	for idx := range a {
		out[idx] = f(a[idx])
	}

	return out
}

// Add computes the element-wise sum m + o and returns a fresh matrix.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) Add(o Matrix[T, R, C]) Matrix[T, R, C] {
	return Matrix[T, R, C]{data: ewBinary(m.cells(), o.cells(), func(x, y T) T { return x + y })}
}

// Sub computes the element-wise difference m - o and returns a fresh matrix.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) Sub(o Matrix[T, R, C]) Matrix[T, R, C] {
	return Matrix[T, R, C]{data: ewBinary(m.cells(), o.cells(), func(x, y T) T { return x - y })}
}

// Hadamard computes the element-wise product m ⊙ o.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) Hadamard(o Matrix[T, R, C]) Matrix[T, R, C] {
	return Matrix[T, R, C]{data: ewBinary(m.cells(), o.cells(), func(x, y T) T { return x * y })}
}

// Scale returns a new matrix whose elements are s * m[i,j].
// s = 0 yields an explicit zero matrix; NaN/Inf propagate.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) Scale(s T) Matrix[T, R, C] {
	return Matrix[T, R, C]{data: ewUnary(m.cells(), func(x T) T { return x * s })}
}

// DivScalar returns a new matrix whose elements are m[i,j] / s.
//
// Notes:
//   - There is deliberately no zero check: DivScalar(0) yields ±Inf for
//     non-zero cells and NaN for zero cells, following IEEE 754.
//     vector.Vector.Div rejects an exact zero instead; the two policies differ.
//
// Complexity: O(R*C).
func (m Matrix[T, R, C]) DivScalar(s T) Matrix[T, R, C] {
	return Matrix[T, R, C]{data: ewUnary(m.cells(), func(x T) T { return x / s })}
}

// Neg returns -m.
func (m Matrix[T, R, C]) Neg() Matrix[T, R, C] {
	return Matrix[T, R, C]{data: ewUnary(m.cells(), func(x T) T { return -x })}
}

// Equal reports whether every cell of m equals the matching cell of o.
// Comparison is exact (==); NaN cells are never equal.
// Complexity: O(R*C), early exit on the first difference.
func (m Matrix[T, R, C]) Equal(o Matrix[T, R, C]) bool {
	a, b := m.cells(), o.cells()
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether |m[i,j] - o[i,j]| ≤ tol for every cell.
// A negative tol never matches.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) ApproxEqual(o Matrix[T, R, C], tol T) bool {
	a, b := m.cells(), o.cells()
	var d T
	for idx := range a {
		d = a[idx] - b[idx]
		if d < 0 {
			d = -d
		}
		if !(d <= tol) { // NaN fails as well
			return false
		}
	}

	return true
}
