// SPDX-License-Identifier: MIT

package units

// Time units, canonical base Second.
type (
	Hour        struct{}
	Minute      struct{}
	Second      struct{}
	Millisecond struct{}
	Microsecond struct{}
	Nanosecond  struct{}
)

func (Hour) Ratio() Ratio { return Ratio{Num: 3600, Den: 1} }
func (Minute) Ratio() Ratio { return Ratio{Num: 60, Den: 1} }
func (Second) Ratio() Ratio { return Ratio{Num: 1, Den: 1} }
func (Millisecond) Ratio() Ratio { return Ratio{Num: 1, Den: 1e3} }
func (Microsecond) Ratio() Ratio { return Ratio{Num: 1, Den: 1e6} }
func (Nanosecond) Ratio() Ratio { return Ratio{Num: 1, Den: 1e9} }

func (Hour) Symbol() string { return "h" }
func (Minute) Symbol() string { return "min" }
func (Second) Symbol() string { return "s" }
func (Millisecond) Symbol() string { return "ms" }
func (Microsecond) Symbol() string { return "µs" }
func (Nanosecond) Symbol() string { return "ns" }

func (Hour) Category() Time { return Time{} }
func (Minute) Category() Time { return Time{} }
func (Second) Category() Time { return Time{} }
func (Millisecond) Category() Time { return Time{} }
func (Microsecond) Category() Time { return Time{} }
func (Nanosecond) Category() Time { return Time{} }

// Time quantities in float64 and float32.
type (
	Hours          = Unit[float64, Time, Hour]
	Hours32        = Unit[float32, Time, Hour]
	Minutes        = Unit[float64, Time, Minute]
	Minutes32      = Unit[float32, Time, Minute]
	Seconds        = Unit[float64, Time, Second]
	Seconds32      = Unit[float32, Time, Second]
	Milliseconds   = Unit[float64, Time, Millisecond]
	Milliseconds32 = Unit[float32, Time, Millisecond]
	Microseconds   = Unit[float64, Time, Microsecond]
	Microseconds32 = Unit[float32, Time, Microsecond]
	Nanoseconds    = Unit[float64, Time, Nanosecond]
	Nanoseconds32  = Unit[float32, Time, Nanosecond]
)
