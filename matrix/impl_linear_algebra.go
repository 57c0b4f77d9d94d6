// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over fixed-size matrices:
// matrix product, transpose, and the square-only family minor, cofactor,
// determinant, adjugate and inverse.
//
// Purpose:
//   - Keep the shape contract in signatures: Mul needs a matching inner Dim,
//     square kernels take Matrix[T, N, N], Minor needs N to be a Shrinker.
//   - Run the recursive Laplace expansion on an internal run-time sized square
//     view, because type parameters cannot express N-1.
//
// Notes:
//   - No pivoting, no tolerance: Inverse tests the determinant with == 0.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew      = "New"
	opFromFlat = "FromFlat"
	opMinor    = "Minor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication A × B for A (R×K) and B (K×C).
//
// Implementation:
//   - Stage 1: Allocate the R×C result.
//   - Stage 2: Fixed i→j→k triple loop, result[i][j] = Σ_k a[i][k]*b[k][j],
//     accumulated from zero in ascending k.
//
// Behavior highlights:
//   - The inner dimension K is shared by the two argument types, so an
//     incompatible product does not compile.
//   - No blocking, no zero skipping: every term is accumulated.
//
// Complexity:
//   - Time O(R*K*C), Space O(R*C).
func Mul[T Float, R, K, C Dim](a Matrix[T, R, K], b Matrix[T, K, C]) Matrix[T, R, C] {
	rows, inner := shapeOf[R, K]()
	_, cols := shapeOf[K, C]()
	ad, bd := a.cells(), b.cells()
	out := make([]T, rows*cols)

	var (
		i, j, k int // loop iterators
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += ad[i*inner+k] * bd[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}

	return Matrix[T, R, C]{data: out}
}

// Transpose returns the C×R matrix with result[j][i] = m[i][j].
// Defined for any rectangular shape; m is never mutated.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func (m Matrix[T, R, C]) Transpose() Matrix[T, C, R] {
	rows, cols := shapeOf[R, C]()
	src := m.cells()
	out := make([]T, rows*cols)

	// data[i*cols + j] → out[j*rows + i]
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out[j*rows+i] = src[base+j]
		}
	}

	return Matrix[T, C, R]{data: out}
}

// Minor returns the (N-1)×(N-1) matrix obtained by deleting row and col.
//
// Implementation:
//   - Stage 1: Validate row and col against N.
//   - Stage 2: Copy every remaining cell in i→j order.
//
// Behavior highlights:
//   - N must be a Shrinker whose predecessor is P; D1 is not, so the minor of a
//     1×1 matrix does not compile. P is usually spelled out by the caller:
//
//     sub, err := matrix.Minor[float64, matrix.D4, matrix.D3](m, 0, 2)
//
// Errors:
//   - ErrOutOfRange when row or col is outside [0,N).
//
// Complexity:
//   - Time O(N²), Space O((N-1)²).
func Minor[T Float, N Shrinker[P], P Dim](m Matrix[T, N, N], row, col int) (Matrix[T, P, P], error) {
	n, _ := shapeOf[N, N]()
	if err := ValidateIndex(row, col, n, n); err != nil {
		return Matrix[T, P, P]{}, matrixErrorf(opMinor, err)
	}
	sub := newSquare(n, m.cells()).minor(row, col)

	return FromFlat[P, P](sub.a)
}

// Determinant returns det(m).
//
// Implementation:
//   - 1×1: the single entry.
//   - 2×2: a·d − b·c.
//   - larger: Laplace expansion along row 0, det = Σ_j m[0][j]·cofactor[0][j],
//     where each cofactor is sign(0,j)·det(minor(0,j)), recursively.
//
// Complexity:
//   - Time O(N!), Space O(N²) per recursion level.
func Determinant[T Float, N Dim](m Matrix[T, N, N]) T {
	n, _ := shapeOf[N, N]()

	return newSquare(n, m.cells()).determinant()
}

// Cofactor returns the cofactor matrix: result[i][j] = sign(i,j)·det(minor(i,j)),
// with sign(i,j) = +1 when i+j is even and −1 otherwise.
//
// Notes:
//   - The 1×1 cofactor matrix is [[1]] (the determinant of the empty minor),
//     which makes Adjugate and Inverse well defined for N = 1.
//
// Complexity:
//   - Time O(N²·(N-1)!), Space O(N²).
func Cofactor[T Float, N Dim](m Matrix[T, N, N]) Matrix[T, N, N] {
	n, _ := shapeOf[N, N]()

	return Matrix[T, N, N]{data: newSquare(n, m.cells()).cofactor()}
}

// Adjugate returns the transpose of the cofactor matrix.
func Adjugate[T Float, N Dim](m Matrix[T, N, N]) Matrix[T, N, N] {
	return Cofactor(m).Transpose()
}

// Inverse returns m⁻¹ = Adjugate(m) / Determinant(m).
//
// Behavior highlights:
//   - When the determinant is exactly zero the zero matrix is returned instead
//     of an error. Callers that must distinguish a singular input check
//     Determinant themselves.
//   - No epsilon: a nearly singular matrix is inverted as is.
//
// Complexity:
//   - Dominated by Cofactor, O(N²·(N-1)!).
func Inverse[T Float, N Dim](m Matrix[T, N, N]) Matrix[T, N, N] {
	det := Determinant(m)
	if det == 0 {
		return Zero[T, N, N]()
	}

	return Adjugate(m).DivScalar(det)
}

// square is a run-time sized n×n row-major view used by the recursive kernels.
// It never aliases its input for writing.
type square[T Float] struct {
	n int
	a []T
}

func newSquare[T Float](n int, data []T) square[T] {
	return square[T]{n: n, a: data}
}

// at reads cell (i, j) without bounds checks; callers stay within [0,n).
func (s square[T]) at(i, j int) T {
	return s.a[i*s.n+j]
}

// minor drops row and col, keeping the i→j order of the remaining cells.
func (s square[T]) minor(row, col int) square[T] {
	size := s.n - 1
	out := make([]T, size*size)

	k := 0
	for i := 0; i < s.n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < s.n; j++ {
			if j == col {
				continue
			}
			out[k] = s.at(i, j)
			k++
		}
	}

	return square[T]{n: size, a: out}
}

// determinant implements the recursion documented on Determinant.
func (s square[T]) determinant() T {
	switch s.n {
	case 1:
		return s.a[0]
	case 2:
		return s.at(0, 0)*s.at(1, 1) - s.at(0, 1)*s.at(1, 0)
	}

	var det T
	for j := 0; j < s.n; j++ {
		det += s.at(0, j) * s.cofactorAt(0, j)
	}

	return det
}

// cofactorAt returns sign(i,j)·det(minor(i,j)).
// The odd sign is applied as 0 - d so a zero minor never becomes -0.
func (s square[T]) cofactorAt(i, j int) T {
	if s.n == 1 {
		return 1
	}
	d := s.minor(i, j).determinant()
	if (i+j)%2 != 0 {
		return 0 - d
	}

	return d
}

// cofactor builds the full cofactor matrix in i→j order.
func (s square[T]) cofactor() []T {
	out := make([]T, s.n*s.n)
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			out[i*s.n+j] = s.cofactorAt(i, j)
		}
	}

	return out
}
