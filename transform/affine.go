// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/luminol/matrix"
	"github.com/katalvlaran/luminol/units"
	"github.com/katalvlaran/luminol/vector"
)

// RotationSize selects the 3×3 or 4×4 flavour of the axis rotations.
type RotationSize interface {
	matrix.Dim
	matrix.D3 | matrix.D4
}

// translate copies comps into the last row of the N×N identity.
func translate[T matrix.Float, N matrix.Dim](comps []T) matrix.Matrix[T, N, N] {
	m := matrix.Identity[T, N]()
	last := m.Rows() - 1
	for i, c := range comps {
		set(&m, last, i, c)
	}

	return m
}

// scale copies comps onto the diagonal of the N×N identity.
func scale[T matrix.Float, N matrix.Dim](comps []T) matrix.Matrix[T, N, N] {
	m := matrix.Identity[T, N]()
	for i, c := range comps {
		set(&m, i, i, c)
	}

	return m
}

// Translate2 writes t over the last row of the 2×2 identity. The vector fills
// the whole row, so for homogeneous 1-D points its last component is 1.
func Translate2[T matrix.Float](t vector.Vector[T, matrix.D2]) matrix.Matrix[T, matrix.D2, matrix.D2] {
	return translate[T, matrix.D2](t.Components())
}

// Translate3 writes t over the last row of the 3×3 identity. For homogeneous
// 2-D points pass (tx, ty, 1).
func Translate3[T matrix.Float](t vector.Vector[T, matrix.D3]) matrix.Matrix[T, matrix.D3, matrix.D3] {
	return translate[T, matrix.D3](t.Components())
}

// Translate4 returns the 4×4 translation by t: identity with (tx, ty, tz, 1)
// as the last row.
func Translate4[T matrix.Float](t vector.Vector[T, matrix.D3]) matrix.Matrix[T, matrix.D4, matrix.D4] {
	return translate[T, matrix.D4](t.Components())
}

// Scale2 returns diag(sx, sy).
func Scale2[T matrix.Float](s vector.Vector[T, matrix.D2]) matrix.Matrix[T, matrix.D2, matrix.D2] {
	return scale[T, matrix.D2](s.Components())
}

// Scale3 returns diag(sx, sy, sz).
func Scale3[T matrix.Float](s vector.Vector[T, matrix.D3]) matrix.Matrix[T, matrix.D3, matrix.D3] {
	return scale[T, matrix.D3](s.Components())
}

// Scale4 returns diag(sx, sy, sz, 1).
func Scale4[T matrix.Float](s vector.Vector[T, matrix.D3]) matrix.Matrix[T, matrix.D4, matrix.D4] {
	return scale[T, matrix.D4](s.Components())
}

// sinCos returns sin and cos of an angle in any unit.
func sinCos[T matrix.Float, A units.UnitType[units.Angle]](angle units.Unit[T, units.Angle, A]) (T, T) {
	s, c := math.Sincos(float64(units.As[units.Radian](angle).Value()))

	return T(s), T(c)
}

// rotatePlane writes the rotation by angle into the (i, j) plane of the
// N×N identity: [i][i]=cos, [i][j]=sin, [j][i]=-sin, [j][j]=cos.
func rotatePlane[N matrix.Dim, T matrix.Float](s, c T, i, j int) matrix.Matrix[T, N, N] {
	m := matrix.Identity[T, N]()
	set(&m, i, i, c)
	set(&m, i, j, s)
	set(&m, j, i, -s)
	set(&m, j, j, c)

	return m
}

// Rotate2 returns the 2×2 rotation [[cos, sin], [-sin, cos]]; with row vectors
// a positive angle turns x towards y.
func Rotate2[T matrix.Float, A units.UnitType[units.Angle]](angle units.Unit[T, units.Angle, A]) matrix.Matrix[T, matrix.D2, matrix.D2] {
	s, c := sinCos(angle)

	return rotatePlane[matrix.D2](s, c, 0, 1)
}

// RotateX returns the rotation about the x axis (the y-z plane) as a 3×3 or
// 4×4 matrix: transform.RotateX[matrix.D4](units.New[units.Degrees](30)).
func RotateX[N RotationSize, T matrix.Float, A units.UnitType[units.Angle]](angle units.Unit[T, units.Angle, A]) matrix.Matrix[T, N, N] {
	s, c := sinCos(angle)

	return rotatePlane[N](s, c, 1, 2)
}

// RotateY returns the rotation about the y axis. Its sine terms sit at
// [0][2] = -sin and [2][0] = sin, so z turns towards x.
func RotateY[N RotationSize, T matrix.Float, A units.UnitType[units.Angle]](angle units.Unit[T, units.Angle, A]) matrix.Matrix[T, N, N] {
	s, c := sinCos(angle)

	return rotatePlane[N](s, c, 2, 0)
}

// RotateZ returns the rotation about the z axis (the x-y plane).
func RotateZ[N RotationSize, T matrix.Float, A units.UnitType[units.Angle]](angle units.Unit[T, units.Angle, A]) matrix.Matrix[T, N, N] {
	s, c := sinCos(angle)

	return rotatePlane[N](s, c, 0, 1)
}
