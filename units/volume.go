// SPDX-License-Identifier: MIT

package units

// Volume units, canonical base CubicMeter. Ratios are the cubes of the
// matching length prefixes; Liter and Milliliter share the ratios of
// cubic decimeters and cubic centimeters.
type (
	CubicKilometer  struct{}
	CubicMeter      struct{}
	Liter           struct{}
	CubicCentimeter struct{}
	Milliliter      struct{}
	CubicMillimeter struct{}
	CubicMicrometer struct{}
	CubicNanometer  struct{}
)

func (CubicKilometer) Ratio() Ratio { return Ratio{Num: 1e9, Den: 1} }
func (CubicMeter) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Liter) Ratio() Ratio { return Ratio{Num: 1, Den: 1e3} }
func (CubicCentimeter) Ratio() Ratio { return Ratio{Num: 1, Den: 1e6} }
func (Milliliter) Ratio() Ratio { return Ratio{Num: 1, Den: 1e6} }
func (CubicMillimeter) Ratio() Ratio { return Ratio{Num: 1, Den: 1e9} }
func (CubicMicrometer) Ratio() Ratio { return Ratio{Num: 1, Den: 1e18} }
func (CubicNanometer) Ratio() Ratio { return Ratio{Num: 1, Den: 1e27} }

func (CubicKilometer) Symbol() string { return "km³" }
func (CubicMeter) Symbol() string { return "m³" }
func (Liter) Symbol() string { return "L" }
func (CubicCentimeter) Symbol() string { return "cm³" }
func (Milliliter) Symbol() string { return "mL" }
func (CubicMillimeter) Symbol() string { return "mm³" }
func (CubicMicrometer) Symbol() string { return "µm³" }
func (CubicNanometer) Symbol() string { return "nm³" }

func (CubicKilometer) Category() Volume { return Volume{} }
func (CubicMeter) Category() Volume { return Volume{} }
func (Liter) Category() Volume { return Volume{} }
func (CubicCentimeter) Category() Volume { return Volume{} }
func (Milliliter) Category() Volume { return Volume{} }
func (CubicMillimeter) Category() Volume { return Volume{} }
func (CubicMicrometer) Category() Volume { return Volume{} }
func (CubicNanometer) Category() Volume { return Volume{} }

// Volume quantities in float64 and float32.
type (
	CubicKilometers    = Unit[float64, Volume, CubicKilometer]
	CubicKilometers32  = Unit[float32, Volume, CubicKilometer]
	CubicMeters        = Unit[float64, Volume, CubicMeter]
	CubicMeters32      = Unit[float32, Volume, CubicMeter]
	Liters             = Unit[float64, Volume, Liter]
	Liters32           = Unit[float32, Volume, Liter]
	CubicCentimeters   = Unit[float64, Volume, CubicCentimeter]
	CubicCentimeters32 = Unit[float32, Volume, CubicCentimeter]
	Milliliters        = Unit[float64, Volume, Milliliter]
	Milliliters32      = Unit[float32, Volume, Milliliter]
	CubicMillimeters   = Unit[float64, Volume, CubicMillimeter]
	CubicMillimeters32 = Unit[float32, Volume, CubicMillimeter]
	CubicMicrometers   = Unit[float64, Volume, CubicMicrometer]
	CubicMicrometers32 = Unit[float32, Volume, CubicMicrometer]
	CubicNanometers    = Unit[float64, Volume, CubicNanometer]
	CubicNanometers32  = Unit[float32, Volume, CubicNanometer]
)
