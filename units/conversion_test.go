// SPDX-License-Identifier: MIT

package units_test

import (
	"testing"

	"github.com/katalvlaran/luminol/units"
	"github.com/stretchr/testify/require"
)

// roundTrip converts q into V and back with As.
func roundTrip[V units.UnitType[C], T units.Float, C units.Category, U units.UnitType[C]](
	t *testing.T, q units.Unit[T, C, U], tol float64,
) {
	t.Helper()
	back := units.As[U](units.As[V](q))
	require.LessOrEqualf(t, relErr(float64(back.Value()), float64(q.Value())), tol,
		"%v → %s → %v", q, units.As[V](q).Symbol(), back)
}

func TestRoundTrip_As(t *testing.T) {
	t.Parallel()

	roundTrip[units.Nanometer](t, units.New[units.Kilometers](3.75), 1e-12)
	roundTrip[units.Hour](t, units.New[units.Microseconds](42), 1e-12)
	roundTrip[units.Nanogram](t, units.New[units.Kilograms](0.3), 1e-12)
	roundTrip[units.Radian](t, units.New[units.Degrees](33), 1e-12)
	roundTrip[units.CubicNanometer](t, units.New[units.CubicKilometers](2), 1e-12)
	roundTrip[units.NanometerPerHour](t, units.New[units.KilometersPerSecond](7.9), 1e-12)
	roundTrip[units.KilometerPerHourSquared](t, units.New[units.MetersPerSecondSquared](9.81), 1e-12)
	roundTrip[units.Millinewton](t, units.New[units.Kilonewtons](1.25), 1e-12)
	roundTrip[units.KilonewtonSecond](t, units.New[units.NewtonSeconds](12), 1e-12)
	roundTrip[units.Nanojoule](t, units.New[units.Kilojoules](0.5), 1e-12)
	roundTrip[units.GramPerCubicCentimeter](t, units.New[units.KilogramsPerCubicMeter](997), 1e-12)

	roundTrip[units.Centimeter](t, units.New[units.Meters32](1.5), 1e-6)
	roundTrip[units.MeterPerSecond](t, units.New[units.KilometersPerHour32](90), 1e-6)
}

func TestConversion_KnownValues(t *testing.T) {
	t.Parallel()

	kmh := units.New[units.KilometersPerHour](90)
	require.InDelta(t, 25.0, units.As[units.MeterPerSecond](kmh).Value(), 1e-12)

	g := units.New[units.MetersPerSecondSquared](9.81)
	require.InDelta(t, 9.81*3.6*3600, units.As[units.KilometerPerHourSquared](g).Value(), 1e-6)

	rho := units.New[units.GramsPerCubicCentimeter](1)
	require.Equal(t, 1000.0, units.As[units.KilogramPerCubicMeter](rho).Value())

	cm3 := units.New[units.CubicCentimeters](1e6)
	require.InDelta(t, 1.0, units.As[units.CubicMeter](cm3).Value(), 1e-12)
}
