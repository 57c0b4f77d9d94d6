// SPDX-License-Identifier: MIT

package units

import "strings"

// AccelerationUnit is the acceleration unit "V per Tm" for a velocity unit V.
// Its ratio is V's ratio divided by Tm's.
type AccelerationUnit[V UnitType[Velocity], Tm UnitType[Time]] struct{}

func (AccelerationUnit[V, Tm]) Ratio() Ratio {
	var (
		v V
		t Tm
	)

	return v.Ratio().Divide(t.Ratio())
}

// Symbol folds a repeated time unit into a square: m/s per s is "m/s²".
func (AccelerationUnit[V, Tm]) Symbol() string {
	var (
		v V
		t Tm
	)
	vs, ts := v.Symbol(), t.Symbol()
	if strings.HasSuffix(vs, "/"+ts) {
		return vs + "²"
	}

	return vs + "/" + ts
}

func (AccelerationUnit[V, Tm]) Category() Acceleration { return Acceleration{} }

// Named acceleration units. MeterPerSecondSquared is the canonical base.
type (
	KilometerPerHourSquared    = AccelerationUnit[KilometerPerHour, Hour]
	MeterPerHourSquared        = AccelerationUnit[MeterPerHour, Hour]
	CentimeterPerHourSquared   = AccelerationUnit[CentimeterPerHour, Hour]
	MillimeterPerHourSquared   = AccelerationUnit[MillimeterPerHour, Hour]
	MicrometerPerHourSquared   = AccelerationUnit[MicrometerPerHour, Hour]
	NanometerPerHourSquared    = AccelerationUnit[NanometerPerHour, Hour]
	KilometerPerMinuteSquared  = AccelerationUnit[KilometerPerMinute, Minute]
	MeterPerMinuteSquared      = AccelerationUnit[MeterPerMinute, Minute]
	CentimeterPerMinuteSquared = AccelerationUnit[CentimeterPerMinute, Minute]
	MillimeterPerMinuteSquared = AccelerationUnit[MillimeterPerMinute, Minute]
	MicrometerPerMinuteSquared = AccelerationUnit[MicrometerPerMinute, Minute]
	NanometerPerMinuteSquared  = AccelerationUnit[NanometerPerMinute, Minute]
	KilometerPerSecondSquared  = AccelerationUnit[KilometerPerSecond, Second]
	MeterPerSecondSquared      = AccelerationUnit[MeterPerSecond, Second]
	CentimeterPerSecondSquared = AccelerationUnit[CentimeterPerSecond, Second]
	MillimeterPerSecondSquared = AccelerationUnit[MillimeterPerSecond, Second]
	MicrometerPerSecondSquared = AccelerationUnit[MicrometerPerSecond, Second]
	NanometerPerSecondSquared  = AccelerationUnit[NanometerPerSecond, Second]
)

// Acceleration quantities in float64 and float32.
type (
	KilometersPerHourSquared      = Unit[float64, Acceleration, KilometerPerHourSquared]
	KilometersPerHourSquared32    = Unit[float32, Acceleration, KilometerPerHourSquared]
	MetersPerHourSquared          = Unit[float64, Acceleration, MeterPerHourSquared]
	MetersPerHourSquared32        = Unit[float32, Acceleration, MeterPerHourSquared]
	CentimetersPerHourSquared     = Unit[float64, Acceleration, CentimeterPerHourSquared]
	CentimetersPerHourSquared32   = Unit[float32, Acceleration, CentimeterPerHourSquared]
	MillimetersPerHourSquared     = Unit[float64, Acceleration, MillimeterPerHourSquared]
	MillimetersPerHourSquared32   = Unit[float32, Acceleration, MillimeterPerHourSquared]
	MicrometersPerHourSquared     = Unit[float64, Acceleration, MicrometerPerHourSquared]
	MicrometersPerHourSquared32   = Unit[float32, Acceleration, MicrometerPerHourSquared]
	NanometersPerHourSquared      = Unit[float64, Acceleration, NanometerPerHourSquared]
	NanometersPerHourSquared32    = Unit[float32, Acceleration, NanometerPerHourSquared]
	KilometersPerMinuteSquared    = Unit[float64, Acceleration, KilometerPerMinuteSquared]
	KilometersPerMinuteSquared32  = Unit[float32, Acceleration, KilometerPerMinuteSquared]
	MetersPerMinuteSquared        = Unit[float64, Acceleration, MeterPerMinuteSquared]
	MetersPerMinuteSquared32      = Unit[float32, Acceleration, MeterPerMinuteSquared]
	CentimetersPerMinuteSquared   = Unit[float64, Acceleration, CentimeterPerMinuteSquared]
	CentimetersPerMinuteSquared32 = Unit[float32, Acceleration, CentimeterPerMinuteSquared]
	MillimetersPerMinuteSquared   = Unit[float64, Acceleration, MillimeterPerMinuteSquared]
	MillimetersPerMinuteSquared32 = Unit[float32, Acceleration, MillimeterPerMinuteSquared]
	MicrometersPerMinuteSquared   = Unit[float64, Acceleration, MicrometerPerMinuteSquared]
	MicrometersPerMinuteSquared32 = Unit[float32, Acceleration, MicrometerPerMinuteSquared]
	NanometersPerMinuteSquared    = Unit[float64, Acceleration, NanometerPerMinuteSquared]
	NanometersPerMinuteSquared32  = Unit[float32, Acceleration, NanometerPerMinuteSquared]
	KilometersPerSecondSquared    = Unit[float64, Acceleration, KilometerPerSecondSquared]
	KilometersPerSecondSquared32  = Unit[float32, Acceleration, KilometerPerSecondSquared]
	MetersPerSecondSquared        = Unit[float64, Acceleration, MeterPerSecondSquared]
	MetersPerSecondSquared32      = Unit[float32, Acceleration, MeterPerSecondSquared]
	CentimetersPerSecondSquared   = Unit[float64, Acceleration, CentimeterPerSecondSquared]
	CentimetersPerSecondSquared32 = Unit[float32, Acceleration, CentimeterPerSecondSquared]
	MillimetersPerSecondSquared   = Unit[float64, Acceleration, MillimeterPerSecondSquared]
	MillimetersPerSecondSquared32 = Unit[float32, Acceleration, MillimeterPerSecondSquared]
	MicrometersPerSecondSquared   = Unit[float64, Acceleration, MicrometerPerSecondSquared]
	MicrometersPerSecondSquared32 = Unit[float32, Acceleration, MicrometerPerSecondSquared]
	NanometersPerSecondSquared    = Unit[float64, Acceleration, NanometerPerSecondSquared]
	NanometersPerSecondSquared32  = Unit[float32, Acceleration, NanometerPerSecondSquared]
)

// AccelerationOf divides a velocity by a time. The result unit is
// AccelerationUnit[V, Tm] and the payload is v/t.
func AccelerationOf[T Float, V UnitType[Velocity], Tm UnitType[Time]](
	v Unit[T, Velocity, V], t Unit[T, Time, Tm],
) Unit[T, Acceleration, AccelerationUnit[V, Tm]] {
	return Unit[T, Acceleration, AccelerationUnit[V, Tm]]{value: v.value / t.value}
}

// VelocityAfter multiplies an acceleration by a time and returns the velocity
// in the acceleration's own velocity unit V. The time is first converted into
// the acceleration's time unit.
//
// Example: 2 m/s² for 3 s is 6 m/s; 1 km/h² for 30 min is 0.5 km/h.
func VelocityAfter[T Float, V UnitType[Velocity], Ta, Tm UnitType[Time]](
	a Unit[T, Acceleration, AccelerationUnit[V, Ta]], t Unit[T, Time, Tm],
) Unit[T, Velocity, V] {
	return Unit[T, Velocity, V]{value: a.value * As[Ta](t).value}
}
