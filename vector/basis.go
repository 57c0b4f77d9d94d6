// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/luminol/matrix"

// Cross returns a × b. Only 3-component vectors have a cross product; other
// sizes do not compile.
func Cross[T matrix.Float](a, b Vector[T, matrix.D3]) Vector[T, matrix.D3] {
	return Vec3(
		a.c[1]*b.c[2]-a.c[2]*b.c[1],
		a.c[2]*b.c[0]-a.c[0]*b.c[2],
		a.c[0]*b.c[1]-a.c[1]*b.c[0],
	)
}

// OrthogonalBasis builds a right-handed orthonormal basis from a and a second
// non-parallel direction b (Gram-Schmidt through cross products):
//
//	a' = normalize(a)
//	c' = normalize(a' × b)
//	b' = c' × a'
//
// Parallel or zero inputs yield zero vectors for b' and c'.
func OrthogonalBasis[T matrix.Float](a, b Vector[T, matrix.D3]) (Vector[T, matrix.D3], Vector[T, matrix.D3], Vector[T, matrix.D3]) {
	na := a.Normalized()
	nc := Cross(na, b).Normalized()
	nb := Cross(nc, na)

	return na, nb, nc
}
