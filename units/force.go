// SPDX-License-Identifier: MIT

package units

// Force units, canonical base Newton (kg·m/s²).
type (
	Kilonewton  struct{}
	Newton      struct{}
	Millinewton struct{}
)

func (Kilonewton) Ratio() Ratio { return Ratio{Num: 1e3, Den: 1} }
func (Newton) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Millinewton) Ratio() Ratio { return Ratio{Num: 1, Den: 1e3} }

func (Kilonewton) Symbol() string { return "kN" }
func (Newton) Symbol() string { return "N" }
func (Millinewton) Symbol() string { return "mN" }

func (Kilonewton) Category() Force { return Force{} }
func (Newton) Category() Force { return Force{} }
func (Millinewton) Category() Force { return Force{} }

// Force quantities in float64 and float32.
type (
	Kilonewtons    = Unit[float64, Force, Kilonewton]
	Kilonewtons32  = Unit[float32, Force, Kilonewton]
	Newtons        = Unit[float64, Force, Newton]
	Newtons32      = Unit[float32, Force, Newton]
	Millinewtons   = Unit[float64, Force, Millinewton]
	Millinewtons32 = Unit[float32, Force, Millinewton]
)

// ForceOf returns m·a in force unit F.
//
// Implementation:
//   - Stage 1: Convert m into kilograms and a into m/s².
//   - Stage 2: Multiply and rescale the newtons into F.
func ForceOf[F UnitType[Force], T Float, M UnitType[Mass], A UnitType[Acceleration]](
	m Unit[T, Mass, M], a Unit[T, Acceleration, A],
) Unit[T, Force, F] {
	return fromBase[T, Force, F](toBase(m) * toBase(a))
}
