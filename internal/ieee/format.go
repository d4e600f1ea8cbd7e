package ieee

import "math"

// Float is the set of supported IEEE754 element types.
type Float interface {
	float32 | float64
}

// Unsigned is the set of valuation types.
type Unsigned interface {
	uint32 | uint64
}

// Format describes one IEEE754 binary interchange format: its bit width and
// the reinterpretation between the float type F and the same-width unsigned
// integer U.
type Format[F Float, U Unsigned] interface {
	// Bits returns the total width in bits.
	Bits() uint
	// ToBits returns the raw bit pattern of x.
	ToBits(x F) U
	// FromBits returns the float with bit pattern u.
	FromBits(u U) F
	// MantissaBits returns the number of explicitly stored fraction bits.
	MantissaBits() uint
}

// Binary32 is the IEEE754 single precision format.
type Binary32 struct{}

func (Binary32) Bits() uint                { return 32 }
func (Binary32) MantissaBits() uint        { return 23 }
func (Binary32) ToBits(x float32) uint32   { return math.Float32bits(x) }
func (Binary32) FromBits(u uint32) float32 { return math.Float32frombits(u) }

// Binary64 is the IEEE754 double precision format.
type Binary64 struct{}

func (Binary64) Bits() uint                { return 64 }
func (Binary64) MantissaBits() uint        { return 52 }
func (Binary64) ToBits(x float64) uint64   { return math.Float64bits(x) }
func (Binary64) FromBits(u uint64) float64 { return math.Float64frombits(u) }
