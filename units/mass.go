// SPDX-License-Identifier: MIT

package units

// Mass units. The canonical base is Kilogram so that ForceOf, ImpulseOf,
// KineticEnergy and DensityOf work in plain SI without a prefix factor.
type (
	Kilogram  struct{}
	Gram      struct{}
	Centigram struct{}
	Milligram struct{}
	Microgram struct{}
	Nanogram  struct{}
)

func (Kilogram) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Gram) Ratio() Ratio { return Ratio{Num: 1, Den: 1e3} }
func (Centigram) Ratio() Ratio { return Ratio{Num: 1, Den: 1e5} }
func (Milligram) Ratio() Ratio { return Ratio{Num: 1, Den: 1e6} }
func (Microgram) Ratio() Ratio { return Ratio{Num: 1, Den: 1e9} }
func (Nanogram) Ratio() Ratio { return Ratio{Num: 1, Den: 1e12} }

func (Kilogram) Symbol() string { return "kg" }
func (Gram) Symbol() string { return "g" }
func (Centigram) Symbol() string { return "cg" }
func (Milligram) Symbol() string { return "mg" }
func (Microgram) Symbol() string { return "µg" }
func (Nanogram) Symbol() string { return "ng" }

func (Kilogram) Category() Mass { return Mass{} }
func (Gram) Category() Mass { return Mass{} }
func (Centigram) Category() Mass { return Mass{} }
func (Milligram) Category() Mass { return Mass{} }
func (Microgram) Category() Mass { return Mass{} }
func (Nanogram) Category() Mass { return Mass{} }

// Mass quantities in float64 and float32.
type (
	Kilograms    = Unit[float64, Mass, Kilogram]
	Kilograms32  = Unit[float32, Mass, Kilogram]
	Grams        = Unit[float64, Mass, Gram]
	Grams32      = Unit[float32, Mass, Gram]
	Centigrams   = Unit[float64, Mass, Centigram]
	Centigrams32 = Unit[float32, Mass, Centigram]
	Milligrams   = Unit[float64, Mass, Milligram]
	Milligrams32 = Unit[float32, Mass, Milligram]
	Micrograms   = Unit[float64, Mass, Microgram]
	Micrograms32 = Unit[float32, Mass, Microgram]
	Nanograms    = Unit[float64, Mass, Nanogram]
	Nanograms32  = Unit[float32, Mass, Nanogram]
)
