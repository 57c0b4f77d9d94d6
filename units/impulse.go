// SPDX-License-Identifier: MIT

package units

// Impulse (momentum) units, canonical base NewtonSecond (kg·m/s).
type (
	KilonewtonSecond struct{}
	NewtonSecond     struct{}
)

func (KilonewtonSecond) Ratio() Ratio { return Ratio{Num: 1e3, Den: 1} }
func (NewtonSecond) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }

func (KilonewtonSecond) Symbol() string { return "kN·s" }
func (NewtonSecond) Symbol() string { return "N·s" }

func (KilonewtonSecond) Category() Impulse { return Impulse{} }
func (NewtonSecond) Category() Impulse { return Impulse{} }

// Impulse quantities in float64 and float32.
type (
	KilonewtonSeconds   = Unit[float64, Impulse, KilonewtonSecond]
	KilonewtonSeconds32 = Unit[float32, Impulse, KilonewtonSecond]
	NewtonSeconds       = Unit[float64, Impulse, NewtonSecond]
	NewtonSeconds32     = Unit[float32, Impulse, NewtonSecond]
)

// ImpulseOf returns m·v in impulse unit I.
func ImpulseOf[I UnitType[Impulse], T Float, M UnitType[Mass], V UnitType[Velocity]](
	m Unit[T, Mass, M], v Unit[T, Velocity, V],
) Unit[T, Impulse, I] {
	return fromBase[T, Impulse, I](toBase(m) * toBase(v))
}
