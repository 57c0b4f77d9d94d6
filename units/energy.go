// SPDX-License-Identifier: MIT

package units

// Energy units, canonical base Joule.
type (
	Kilojoule  struct{}
	Joule      struct{}
	Centijoule struct{}
	Millijoule struct{}
	Microjoule struct{}
	Nanojoule  struct{}
)

func (Kilojoule) Ratio() Ratio { return Ratio{Num: 1e3, Den: 1} }
func (Joule) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Centijoule) Ratio() Ratio { return Ratio{Num: 1, Den: 100} }
func (Millijoule) Ratio() Ratio { return Ratio{Num: 1, Den: 1e3} }
func (Microjoule) Ratio() Ratio { return Ratio{Num: 1, Den: 1e6} }
func (Nanojoule) Ratio() Ratio { return Ratio{Num: 1, Den: 1e9} }

func (Kilojoule) Symbol() string { return "kJ" }
func (Joule) Symbol() string { return "J" }
func (Centijoule) Symbol() string { return "cJ" }
func (Millijoule) Symbol() string { return "mJ" }
func (Microjoule) Symbol() string { return "µJ" }
func (Nanojoule) Symbol() string { return "nJ" }

func (Kilojoule) Category() Energy { return Energy{} }
func (Joule) Category() Energy { return Energy{} }
func (Centijoule) Category() Energy { return Energy{} }
func (Millijoule) Category() Energy { return Energy{} }
func (Microjoule) Category() Energy { return Energy{} }
func (Nanojoule) Category() Energy { return Energy{} }

// Energy quantities in float64 and float32.
type (
	Kilojoules    = Unit[float64, Energy, Kilojoule]
	Kilojoules32  = Unit[float32, Energy, Kilojoule]
	Joules        = Unit[float64, Energy, Joule]
	Joules32      = Unit[float32, Energy, Joule]
	Centijoules   = Unit[float64, Energy, Centijoule]
	Centijoules32 = Unit[float32, Energy, Centijoule]
	Millijoules   = Unit[float64, Energy, Millijoule]
	Millijoules32 = Unit[float32, Energy, Millijoule]
	Microjoules   = Unit[float64, Energy, Microjoule]
	Microjoules32 = Unit[float32, Energy, Microjoule]
	Nanojoules    = Unit[float64, Energy, Nanojoule]
	Nanojoules32  = Unit[float32, Energy, Nanojoule]
)

// KineticEnergy returns ½·m·v² in energy unit E.
//
// Implementation:
//   - Stage 1: Convert m into kilograms and v into m/s.
//   - Stage 2: Compute m·v·v/2 in joules and rescale into E.
//
// Example: 1 kg at 10 m/s is 50 J.
func KineticEnergy[E UnitType[Energy], T Float, M UnitType[Mass], V UnitType[Velocity]](
	m Unit[T, Mass, M], v Unit[T, Velocity, V],
) Unit[T, Energy, E] {
	kg, mps := toBase(m), toBase(v)

	return fromBase[T, Energy, E](kg * mps * mps / 2)
}
