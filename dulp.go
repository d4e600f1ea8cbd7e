package dulp

import (
	"github.com/hupe1980/dulp/internal/ieee"
)

// Float is the set of supported element types.
type Float = ieee.Float

// Val64 returns the order valuation of x: an unsigned integer that increases
// strictly with x over all non-NaN values. -0 and +0 map to adjacent
// valuations 2^63-1 and 2^63.
func Val64(x float64) uint64 {
	return ieee.Val64(x)
}

// Val32 returns the order valuation of x. -0 and +0 map to adjacent
// valuations 2^31-1 and 2^31.
func Val32(x float32) uint32 {
	return ieee.Val32(x)
}

// FromVal64 returns the float64 whose valuation is v.
func FromVal64(v uint64) float64 {
	return ieee.FromVal64(v)
}

// FromVal32 returns the float32 whose valuation is v.
func FromVal32(v uint32) float32 {
	return ieee.FromVal32(v)
}

// Dif64 returns vb - va for two valuations as a float64. The result is the
// exact signed difference rounded once, so it is exact up to 2^53.
func Dif64(va, vb uint64) float64 {
	return ieee.Dif64(va, vb)
}

// Dif32 returns vb - va for two valuations, rounded once to float32.
func Dif32(va, vb uint32) float32 {
	return ieee.Dif32(va, vb)
}

// Dulp64 returns the order distance from a to b: the signed number of
// representable float64 values between them, positive if b > a.
//
// Dulp64(a, a) is 0 for every bit pattern, NaN included, and
// Dulp64(-0, +0) is 1.
func Dulp64(a, b float64) float64 {
	return ieee.Dulp64(a, b)
}

// Dulp32 returns the order distance from a to b in float32 steps.
func Dulp32(a, b float32) float32 {
	return ieee.Dulp32(a, b)
}

// Distance returns the order distance from a to b for either float width.
// The result has the precision of the input.
func Distance[F Float](a, b F) F {
	switch x := any(a).(type) {
	case float64:
		return F(Dulp64(x, any(b).(float64)))
	case float32:
		return F(Dulp32(x, any(b).(float32)))
	}
	panic("unreachable")
}

// Step64 returns the float64 n representable values after x (before it for
// negative n). The walk saturates at the ends of the ordering.
func Step64(x float64, n int64) float64 {
	return ieee.Step[float64, uint64, ieee.Binary64](x, n)
}

// Step32 returns the float32 n representable values after x.
func Step32(x float32, n int64) float32 {
	return ieee.Step[float32, uint32, ieee.Binary32](x, n)
}
