// SPDX-License-Identifier: MIT

package units

// VelocityUnit is the velocity unit "L per Tm". Its ratio is L's ratio divided
// by Tm's, so the unit of a derived velocity is a pure function of the length
// and time unit types it was built from.
type VelocityUnit[L UnitType[Length], Tm UnitType[Time]] struct{}

func (VelocityUnit[L, Tm]) Ratio() Ratio {
	var (
		l L
		t Tm
	)

	return l.Ratio().Divide(t.Ratio())
}

func (VelocityUnit[L, Tm]) Symbol() string {
	var (
		l L
		t Tm
	)

	return l.Symbol() + "/" + t.Symbol()
}

func (VelocityUnit[L, Tm]) Category() Velocity { return Velocity{} }

// Named velocity units. MeterPerSecond is the canonical base.
type (
	KilometerPerHour    = VelocityUnit[Kilometer, Hour]
	MeterPerHour        = VelocityUnit[Meter, Hour]
	CentimeterPerHour   = VelocityUnit[Centimeter, Hour]
	MillimeterPerHour   = VelocityUnit[Millimeter, Hour]
	MicrometerPerHour   = VelocityUnit[Micrometer, Hour]
	NanometerPerHour    = VelocityUnit[Nanometer, Hour]
	KilometerPerMinute  = VelocityUnit[Kilometer, Minute]
	MeterPerMinute      = VelocityUnit[Meter, Minute]
	CentimeterPerMinute = VelocityUnit[Centimeter, Minute]
	MillimeterPerMinute = VelocityUnit[Millimeter, Minute]
	MicrometerPerMinute = VelocityUnit[Micrometer, Minute]
	NanometerPerMinute  = VelocityUnit[Nanometer, Minute]
	KilometerPerSecond  = VelocityUnit[Kilometer, Second]
	MeterPerSecond      = VelocityUnit[Meter, Second]
	CentimeterPerSecond = VelocityUnit[Centimeter, Second]
	MillimeterPerSecond = VelocityUnit[Millimeter, Second]
	MicrometerPerSecond = VelocityUnit[Micrometer, Second]
	NanometerPerSecond  = VelocityUnit[Nanometer, Second]
)

// Velocity quantities in float64 and float32.
type (
	KilometersPerHour      = Unit[float64, Velocity, KilometerPerHour]
	KilometersPerHour32    = Unit[float32, Velocity, KilometerPerHour]
	MetersPerHour          = Unit[float64, Velocity, MeterPerHour]
	MetersPerHour32        = Unit[float32, Velocity, MeterPerHour]
	CentimetersPerHour     = Unit[float64, Velocity, CentimeterPerHour]
	CentimetersPerHour32   = Unit[float32, Velocity, CentimeterPerHour]
	MillimetersPerHour     = Unit[float64, Velocity, MillimeterPerHour]
	MillimetersPerHour32   = Unit[float32, Velocity, MillimeterPerHour]
	MicrometersPerHour     = Unit[float64, Velocity, MicrometerPerHour]
	MicrometersPerHour32   = Unit[float32, Velocity, MicrometerPerHour]
	NanometersPerHour      = Unit[float64, Velocity, NanometerPerHour]
	NanometersPerHour32    = Unit[float32, Velocity, NanometerPerHour]
	KilometersPerMinute    = Unit[float64, Velocity, KilometerPerMinute]
	KilometersPerMinute32  = Unit[float32, Velocity, KilometerPerMinute]
	MetersPerMinute        = Unit[float64, Velocity, MeterPerMinute]
	MetersPerMinute32      = Unit[float32, Velocity, MeterPerMinute]
	CentimetersPerMinute   = Unit[float64, Velocity, CentimeterPerMinute]
	CentimetersPerMinute32 = Unit[float32, Velocity, CentimeterPerMinute]
	MillimetersPerMinute   = Unit[float64, Velocity, MillimeterPerMinute]
	MillimetersPerMinute32 = Unit[float32, Velocity, MillimeterPerMinute]
	MicrometersPerMinute   = Unit[float64, Velocity, MicrometerPerMinute]
	MicrometersPerMinute32 = Unit[float32, Velocity, MicrometerPerMinute]
	NanometersPerMinute    = Unit[float64, Velocity, NanometerPerMinute]
	NanometersPerMinute32  = Unit[float32, Velocity, NanometerPerMinute]
	KilometersPerSecond    = Unit[float64, Velocity, KilometerPerSecond]
	KilometersPerSecond32  = Unit[float32, Velocity, KilometerPerSecond]
	MetersPerSecond        = Unit[float64, Velocity, MeterPerSecond]
	MetersPerSecond32      = Unit[float32, Velocity, MeterPerSecond]
	CentimetersPerSecond   = Unit[float64, Velocity, CentimeterPerSecond]
	CentimetersPerSecond32 = Unit[float32, Velocity, CentimeterPerSecond]
	MillimetersPerSecond   = Unit[float64, Velocity, MillimeterPerSecond]
	MillimetersPerSecond32 = Unit[float32, Velocity, MillimeterPerSecond]
	MicrometersPerSecond   = Unit[float64, Velocity, MicrometerPerSecond]
	MicrometersPerSecond32 = Unit[float32, Velocity, MicrometerPerSecond]
	NanometersPerSecond    = Unit[float64, Velocity, NanometerPerSecond]
	NanometersPerSecond32  = Unit[float32, Velocity, NanometerPerSecond]
)

// VelocityOf divides a length by a time.
//
// The result unit is VelocityUnit[L, Tm], so the payload is simply d/t: ten
// kilometers over two hours is 5 km/h. Convert with As for another unit.
// A zero time yields ±Inf or NaN.
func VelocityOf[T Float, L UnitType[Length], Tm UnitType[Time]](
	d Unit[T, Length, L], t Unit[T, Time, Tm],
) Unit[T, Velocity, VelocityUnit[L, Tm]] {
	return Unit[T, Velocity, VelocityUnit[L, Tm]]{value: d.value / t.value}
}
