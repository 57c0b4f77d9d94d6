// SPDX-License-Identifier: MIT

package units_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/luminol/units"
	"github.com/stretchr/testify/require"
)

func TestRatio_Arithmetic(t *testing.T) {
	t.Parallel()

	km := units.Kilometer{}.Ratio()
	h := units.Hour{}.Ratio()

	require.Equal(t, 1000.0, km.Value())
	require.Equal(t, units.Ratio{Num: 1000, Den: 3600}, km.Divide(h))
	require.Equal(t, units.Ratio{Num: 3600000, Den: 1}, km.Multiply(h))
	require.Equal(t, "1000/3600", km.Divide(h).String())
	require.InDelta(t, 180/math.Pi, units.Radian{}.Ratio().Value(), 1e-12)
}

func TestDerivedRatios(t *testing.T) {
	t.Parallel()

	require.Equal(t, units.Ratio{Num: 1, Den: 1}, units.MeterPerSecond{}.Ratio())
	require.Equal(t, units.Ratio{Num: 1, Den: 1}, units.MeterPerSecondSquared{}.Ratio())
	require.Equal(t, units.Ratio{Num: 1000, Den: 3600 * 3600}, units.KilometerPerHourSquared{}.Ratio())
	require.InDelta(t, 1/3.6, units.KilometerPerHour{}.Ratio().Value(), 1e-15)
}

func TestRatio_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, units.Ratio{Num: 1, Den: 1}.Validate())
	require.ErrorIs(t, units.Ratio{Num: 1, Den: 0}.Validate(), units.ErrZeroDenominator)
	require.ErrorIs(t, units.Ratio{Num: 0, Den: 1}.Validate(), units.ErrZeroRatio)
}

// TestValidate_ShippedUnits stands in for a compile-time assertion: every unit
// definition of the package has a usable ratio and a symbol.
func TestValidate_ShippedUnits(t *testing.T) {
	t.Parallel()

	for dim, list := range catalogue {
		for _, d := range list {
			require.NoErrorf(t, units.Validate(d), "%s %T", dim, d)
		}
	}
}

func TestDimension_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "length", units.DimLength.String())
	require.Equal(t, "density", units.DimDensity.String())
	require.Equal(t, "velocity", units.Speed{}.Dimension().String())
	require.Equal(t, "dimension(42)", units.Dimension(42).String())
	require.Equal(t, "dimension(-1)", units.Dimension(-1).String())
}

// Broken unit definitions used to exercise the panic path of As.
type (
	noDenominator struct{}
	zeroLength    struct{}
	noSymbol      struct{}
)

func (noDenominator) Ratio() units.Ratio     { return units.Ratio{Num: 1, Den: 0} }
func (noDenominator) Symbol() string         { return "bad" }
func (noDenominator) Category() units.Length { return units.Length{} }

func (zeroLength) Ratio() units.Ratio     { return units.Ratio{Num: 0, Den: 1} }
func (zeroLength) Symbol() string         { return "zero" }
func (zeroLength) Category() units.Length { return units.Length{} }

func (noSymbol) Ratio() units.Ratio     { return units.Ratio{Num: 1, Den: 1} }
func (noSymbol) Symbol() string         { return "" }
func (noSymbol) Category() units.Length { return units.Length{} }

func TestValidate_BrokenUnits(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, units.Validate(noDenominator{}), units.ErrZeroDenominator)
	require.ErrorIs(t, units.Validate(zeroLength{}), units.ErrZeroRatio)
	require.ErrorIs(t, units.Validate(noSymbol{}), units.ErrEmptySymbol)
}

func TestAs_BrokenRatioPanics(t *testing.T) {
	t.Parallel()

	m := units.New[units.Meters](1)
	requirePanicIs(t, units.ErrZeroDenominator, func() { _ = units.As[noDenominator](m) })
	requirePanicIs(t, units.ErrZeroRatio, func() { _ = units.As[zeroLength](m) })

	bad := units.New[units.Unit[float64, units.Length, zeroLength]](1)
	requirePanicIs(t, units.ErrZeroRatio, func() { _ = units.As[units.Meter](bad) })

	// Converting a broken unit into itself never consults the ratio.
	require.NotPanics(t, func() { _ = units.As[zeroLength](bad) })
}
