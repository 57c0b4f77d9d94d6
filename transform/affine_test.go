// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/luminol/matrix"
	"github.com/katalvlaran/luminol/transform"
	"github.com/katalvlaran/luminol/units"
	"github.com/katalvlaran/luminol/vector"
	"github.com/stretchr/testify/require"
)

func TestTranslate4_MovesPoints(t *testing.T) {
	t.Parallel()

	m := transform.Translate4(vector.Vec3(1.0, 2, 3))
	requireMatrix(t, [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 2, 3, 1},
	}, m, 0)

	p := vector.Apply(vector.Vec4(10.0, 20, 30, 1), m)
	require.Equal(t, vector.Vec4(11.0, 22, 33, 1), p)

	// Directions (w = 0) are unaffected.
	d := vector.Apply(vector.Vec4(1.0, 0, 0, 0), m)
	require.Equal(t, vector.Vec4(1.0, 0, 0, 0), d)
}

func TestTranslate3_Homogeneous2D(t *testing.T) {
	t.Parallel()

	m := transform.Translate3(vector.Vec3(-4.0, 5, 1))
	requireMatrix(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{-4, 5, 1},
	}, m, 0)
	require.Equal(t, vector.Vec3(-3.0, 7, 1), vector.Apply(vector.Vec3(1.0, 2, 1), m))
}

func TestTranslate2_FillsLastRow(t *testing.T) {
	t.Parallel()

	m := transform.Translate2(vector.Vec2(7.0, 1))
	requireMatrix(t, [][]float64{{1, 0}, {7, 1}}, m, 0)
	require.Equal(t, vector.Vec2(9.0, 1), vector.Apply(vector.Vec2(2.0, 1), m))
}

func TestScale(t *testing.T) {
	t.Parallel()

	requireMatrix(t, [][]float64{{2, 0}, {0, 3}}, transform.Scale2(vector.Vec2(2.0, 3)), 0)
	requireMatrix(t, [][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, transform.Scale3(vector.Vec3(2.0, 3, 4)), 0)

	s4 := transform.Scale4(vector.Vec3(2.0, 3, 4))
	requireMatrix(t, [][]float64{
		{2, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 1},
	}, s4, 0)
	require.Equal(t, vector.Vec4(2.0, 3, 4, 1), vector.Apply(vector.Vec4(1.0, 1, 1, 1), s4))

	f := transform.Scale3(vector.Vec3[float32](0.5, 0.5, 0.5))
	require.True(t, matrix.Determinant(f) == 0.125)
}

func TestRotate2_QuarterTurn(t *testing.T) {
	t.Parallel()

	m := transform.Rotate2(units.New[units.Degrees](90))
	requireMatrix(t, [][]float64{{0, 1}, {-1, 0}}, m, 1e-15)

	v := vector.Apply(vector.Vec2(1.0, 0), m)
	require.True(t, v.ApproxEqual(vector.Vec2(0.0, 1), 1e-15), "got %v", v)
}

func TestRotateAxes_3x3(t *testing.T) {
	t.Parallel()

	quarter := units.New[units.Radians](math.Pi / 2)
	tests := []struct {
		name string
		m    matrix.Matrix3x3
		in   vector.Vector3
		want vector.Vector3
	}{
		{"x turns y to z", transform.RotateX[matrix.D3](quarter), vector.Vec3(0.0, 1, 0), vector.Vec3(0.0, 0, 1)},
		{"y turns z to x", transform.RotateY[matrix.D3](quarter), vector.Vec3(0.0, 0, 1), vector.Vec3(1.0, 0, 0)},
		{"z turns x to y", transform.RotateZ[matrix.D3](quarter), vector.Vec3(1.0, 0, 0), vector.Vec3(0.0, 1, 0)},
		{"x keeps x", transform.RotateX[matrix.D3](quarter), vector.Vec3(1.0, 0, 0), vector.Vec3(1.0, 0, 0)},
		{"y keeps y", transform.RotateY[matrix.D3](quarter), vector.Vec3(0.0, 1, 0), vector.Vec3(0.0, 1, 0)},
		{"z keeps z", transform.RotateZ[matrix.D3](quarter), vector.Vec3(0.0, 0, 1), vector.Vec3(0.0, 0, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vector.Apply(tc.in, tc.m)
			require.Truef(t, got.ApproxEqual(tc.want, 1e-15), "got %v want %v", got, tc.want)
			require.InDelta(t, 1, matrix.Determinant(tc.m), 1e-15)
		})
	}
}

func TestRotateAxes_4x4(t *testing.T) {
	t.Parallel()

	m := transform.RotateZ[matrix.D4](units.New[units.Degrees](30))
	c, s := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	requireMatrix(t, [][]float64{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, m, 1e-15)

	// Rotating then translating keeps w = 1.
	model := matrix.Mul(m, transform.Translate4(vector.Vec3(0.0, 0, 2)))
	p := vector.Apply(vector.Vec4(1.0, 0, 0, 1), model)
	require.True(t, p.ApproxEqual(vector.Vec4(c, s, 2, 1), 1e-15), "got %v", p)

	rx := transform.RotateX[matrix.D4](units.New[units.Degrees](180))
	require.True(t, vector.Apply(vector.Vec4(0.0, 1, 0, 1), rx).ApproxEqual(vector.Vec4(0.0, -1, 0, 1), 1e-15))
}

func TestRotate_InverseIsTranspose(t *testing.T) {
	t.Parallel()

	m := transform.RotateY[matrix.D4](units.New[units.Degrees](-47.5))
	require.True(t, matrix.Inverse(m).ApproxEqual(m.Transpose(), 1e-12))
}

func TestRotate_Float32(t *testing.T) {
	t.Parallel()

	m := transform.RotateZ[matrix.D3](units.New[units.Degrees32](90))
	got := vector.Apply(vector.Vec3[float32](1, 0, 0), m)
	require.True(t, got.ApproxEqual(vector.Vec3[float32](0, 1, 0), 1e-6), "got %v", got)
}
