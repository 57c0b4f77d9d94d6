// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/luminol/matrix"
	"github.com/katalvlaran/luminol/units"
	"github.com/katalvlaran/luminol/vector"
)

// PerspectiveParams describes a view frustum. FOV is the vertical field of
// view in any angle unit A.
type PerspectiveParams[T matrix.Float, A units.UnitType[units.Angle]] struct {
	FOV         units.Unit[T, units.Angle, A]
	AspectRatio T
	Near        T
	Far         T
}

// LeftHandedPerspective returns the left-handed perspective projection
//
//	[A 0 0 0]
//	[0 B 0 0]
//	[0 0 C D]
//	[0 0 E 0]
//
// with A = 1/(aspect·tan(fov/2)), B = 1/tan(fov/2), C = far/(far-near),
// D = 1 and E = -near·far/(far-near).
//
// Errors:
//   - ErrBadFrustum for AspectRatio ≤ 0, Near == Far or tan(fov/2) == 0.
func LeftHandedPerspective[T matrix.Float, A units.UnitType[units.Angle]](
	p PerspectiveParams[T, A],
) (matrix.Matrix[T, matrix.D4, matrix.D4], error) {
	var m matrix.Matrix[T, matrix.D4, matrix.D4]

	fov := units.As[units.Radian](p.FOV).Value()
	tanHalf := T(math.Tan(float64(fov) / 2))
	rng := p.Far - p.Near

	switch {
	case !(p.AspectRatio > 0):
		return m, transformErrorf(opPerspective, fmt.Errorf("aspect ratio %v: %w", p.AspectRatio, ErrBadFrustum))
	case rng == 0:
		return m, transformErrorf(opPerspective, fmt.Errorf("near == far == %v: %w", p.Near, ErrBadFrustum))
	case tanHalf == 0:
		return m, transformErrorf(opPerspective, fmt.Errorf("field of view %v: %w", p.FOV, ErrBadFrustum))
	}

	set(&m, 0, 0, 1/(p.AspectRatio*tanHalf))
	set(&m, 1, 1, 1/tanHalf)
	set(&m, 2, 2, p.Far/rng)
	set(&m, 2, 3, 1)
	set(&m, 3, 2, -p.Near*p.Far/rng)

	return m, nil
}

// LookAtParams places a camera at Eye looking at Target with Up as the
// approximate up direction.
type LookAtParams[T matrix.Float] struct {
	Eye    vector.Vector[T, matrix.D3]
	Target vector.Vector[T, matrix.D3]
	Up     vector.Vector[T, matrix.D3]
}

// LeftHandedLookAt returns the left-handed view matrix. Its first three rows
// hold the camera basis (right, up, forward) with the eye offset -axis·eye in
// the last column; the last row is (0, 0, 0, 1).
//
// Degenerate input (Eye == Target, Up parallel to the view direction) yields
// zero basis rows rather than an error.
func LeftHandedLookAt[T matrix.Float](p LookAtParams[T]) matrix.Matrix[T, matrix.D4, matrix.D4] {
	forward := p.Target.Sub(p.Eye).Normalized()
	right := vector.Cross(p.Up, forward).Normalized()
	up := vector.Cross(forward, right)

	m := matrix.Identity[T, matrix.D4]()
	for row, axis := range [3]vector.Vector[T, matrix.D3]{right, up, forward} {
		set(&m, row, 0, axis.X())
		set(&m, row, 1, axis.Y())
		set(&m, row, 2, axis.Z())
		set(&m, row, 3, -axis.Dot(p.Eye))
	}

	return m
}

// set writes an in-range cell; indices here are constants below the size.
func set[T matrix.Float, N matrix.Dim](m *matrix.Matrix[T, N, N], i, j int, v T) {
	if err := m.Set(i, j, v); err != nil {
		panic(err)
	}
}
