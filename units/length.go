// SPDX-License-Identifier: MIT

package units

// Length units. Meter is the canonical base; the other ratios are the usual
// SI prefixes.
type (
	Kilometer  struct{}
	Meter      struct{}
	Centimeter struct{}
	Millimeter struct{}
	Micrometer struct{}
	Nanometer  struct{}
)

func (Kilometer) Ratio() Ratio { return Ratio{Num: 1000, Den: 1} }
func (Meter) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Centimeter) Ratio() Ratio { return Ratio{Num: 1, Den: 100} }
func (Millimeter) Ratio() Ratio { return Ratio{Num: 1, Den: 1e3} }
func (Micrometer) Ratio() Ratio { return Ratio{Num: 1, Den: 1e6} }
func (Nanometer) Ratio() Ratio { return Ratio{Num: 1, Den: 1e9} }

func (Kilometer) Symbol() string { return "km" }
func (Meter) Symbol() string { return "m" }
func (Centimeter) Symbol() string { return "cm" }
func (Millimeter) Symbol() string { return "mm" }
func (Micrometer) Symbol() string { return "µm" }
func (Nanometer) Symbol() string { return "nm" }

func (Kilometer) Category() Length { return Length{} }
func (Meter) Category() Length { return Length{} }
func (Centimeter) Category() Length { return Length{} }
func (Millimeter) Category() Length { return Length{} }
func (Micrometer) Category() Length { return Length{} }
func (Nanometer) Category() Length { return Length{} }

// Length quantities in float64 and float32.
type (
	Kilometers    = Unit[float64, Length, Kilometer]
	Kilometers32  = Unit[float32, Length, Kilometer]
	Meters        = Unit[float64, Length, Meter]
	Meters32      = Unit[float32, Length, Meter]
	Centimeters   = Unit[float64, Length, Centimeter]
	Centimeters32 = Unit[float32, Length, Centimeter]
	Millimeters   = Unit[float64, Length, Millimeter]
	Millimeters32 = Unit[float32, Length, Millimeter]
	Micrometers   = Unit[float64, Length, Micrometer]
	Micrometers32 = Unit[float32, Length, Micrometer]
	Nanometers    = Unit[float64, Length, Nanometer]
	Nanometers32  = Unit[float32, Length, Nanometer]
)
