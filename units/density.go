// SPDX-License-Identifier: MIT

package units

// Density units, canonical base KilogramPerCubicMeter.
type (
	KilogramPerCubicMeter  struct{}
	GramPerCubicCentimeter struct{}
	GramPerLiter           struct{}
)

func (KilogramPerCubicMeter) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (GramPerCubicCentimeter) Ratio() Ratio { return Ratio{Num: 1e3, Den: 1} }
func (GramPerLiter) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }

func (KilogramPerCubicMeter) Symbol() string { return "kg/m³" }
func (GramPerCubicCentimeter) Symbol() string { return "g/cm³" }
func (GramPerLiter) Symbol() string { return "g/L" }

func (KilogramPerCubicMeter) Category() Density { return Density{} }
func (GramPerCubicCentimeter) Category() Density { return Density{} }
func (GramPerLiter) Category() Density { return Density{} }

// Density quantities in float64 and float32.
type (
	KilogramsPerCubicMeter    = Unit[float64, Density, KilogramPerCubicMeter]
	KilogramsPerCubicMeter32  = Unit[float32, Density, KilogramPerCubicMeter]
	GramsPerCubicCentimeter   = Unit[float64, Density, GramPerCubicCentimeter]
	GramsPerCubicCentimeter32 = Unit[float32, Density, GramPerCubicCentimeter]
	GramsPerLiter             = Unit[float64, Density, GramPerLiter]
	GramsPerLiter32           = Unit[float32, Density, GramPerLiter]
)

// DensityOf returns m/vol in density unit D. A zero volume yields ±Inf or
// NaN; there is no zero check.
func DensityOf[D UnitType[Density], T Float, M UnitType[Mass], V UnitType[Volume]](
	m Unit[T, Mass, M], vol Unit[T, Volume, V],
) Unit[T, Density, D] {
	return fromBase[T, Density, D](toBase(m) / toBase(vol))
}
