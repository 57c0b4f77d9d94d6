// SPDX-License-Identifier: MIT

package units_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/luminol/units"
	"github.com/stretchr/testify/require"
)

type angleCase[T units.Float] struct {
	radians units.Unit[T, units.Angle, units.Radian]
	degrees units.Unit[T, units.Angle, units.Degree]
}

func angleCases[T units.Float]() []angleCase[T] {
	pi := T(math.Pi)
	mk := func(r, d T) angleCase[T] {
		return angleCase[T]{
			radians: units.New[units.Unit[T, units.Angle, units.Radian]](r),
			degrees: units.New[units.Unit[T, units.Angle, units.Degree]](d),
		}
	}

	return []angleCase[T]{
		mk(pi, 180),
		mk(pi/2, 90),
		mk(pi*2, 360),
		mk(pi/4, 45),
		mk(pi*3/4, 135),
	}
}

// checkAngleConversions converts both ways. Radians to degrees is exact;
// degrees to radians may differ from the π literal by one ulp in float32.
func checkAngleConversions[T units.Float](t *testing.T, tol float64) {
	t.Helper()
	for _, c := range angleCases[T]() {
		require.Equal(t, c.degrees.Value(), units.As[units.Degree](c.radians).Value(), "%v → °", c.radians)
		require.InDelta(t, float64(c.radians.Value()), float64(units.As[units.Radian](c.degrees).Value()), tol,
			"%v → rad", c.degrees)
	}
}

func TestAngleConversions(t *testing.T) {
	t.Parallel()

	t.Run("float64", func(t *testing.T) { checkAngleConversions[float64](t, 0) })
	t.Run("float32", func(t *testing.T) { checkAngleConversions[float32](t, 1e-6) })
}

func checkAngleOperators[T units.Float](t *testing.T) {
	t.Helper()
	pi := T(math.Pi)
	deg := func(v T) units.Unit[T, units.Angle, units.Degree] {
		return units.New[units.Unit[T, units.Angle, units.Degree]](v)
	}
	rad := func(v T) units.Unit[T, units.Angle, units.Radian] {
		return units.New[units.Unit[T, units.Angle, units.Radian]](v)
	}

	// 180° ± π/2 rad
	require.True(t, units.Equal(units.Add(deg(180), rad(pi/2)), deg(270)))
	require.True(t, units.Equal(units.Sub(deg(180), rad(pi/2)), deg(90)))

	// 90° + π rad - 2π rad, accumulated step by step
	acc := deg(90)
	acc = units.Add(acc, rad(pi))
	require.True(t, units.Equal(acc, deg(270)))
	acc = units.Sub(acc, rad(pi*2))
	require.True(t, units.Equal(acc, deg(-90)))

	// scalar operators
	require.True(t, units.Equal(deg(90).Scale(2), deg(180)))
	require.True(t, units.Equal(deg(90).DivScalar(2), deg(45)))

	// comparisons across units
	require.False(t, units.Equal(deg(90), rad(pi)))
	require.True(t, units.Less(deg(90), rad(pi)))
	require.LessOrEqual(t, units.Compare(deg(90), rad(pi)), 0)

	require.True(t, units.Equal(deg(90).Neg(), deg(-90)))
}

func TestAngleOperators(t *testing.T) {
	t.Parallel()

	t.Run("float64", checkAngleOperators[float64])
	t.Run("float32", checkAngleOperators[float32])
}
