// SPDX-License-Identifier: MIT

// Package matrix implements fixed-size dense matrices whose shape is part of
// the type.
//
// The matrix package provides:
//
//   - Matrix[T, R, C]: an R×C row-major matrix of float32 or float64 values.
//     R and C are Dim types (D1…D6 ship with the package), so shape errors
//     such as adding a 2×3 to a 3×2 or multiplying with a mismatched inner
//     dimension are rejected by the compiler.
//   - Elementwise algebra (Add, Sub, Scale, DivScalar, Equal), the matrix
//     product Mul and Transpose for any rectangular shape.
//   - Square-only algebra (Minor, Cofactor, Determinant, Adjugate, Inverse)
//     as functions over Matrix[T, N, N]; a non-square argument does not compile.
//
// Determinant uses recursive Laplace expansion along the first row and is
// therefore O(N!); it is meant for the small matrices of graphics and
// simulation code (N ≤ 4 in practice) but works for any N.
//
// Numeric policy is explicit and non-failing: DivScalar(0) propagates IEEE
// infinities and NaNs, and Inverse of a singular matrix returns the zero
// matrix. Only indexing and construction from literals return errors.
//
// See the examples in this package for usage patterns.
package matrix
