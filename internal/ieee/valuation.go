package ieee

// Valuation returns the order valuation of x in format W.
//
// The bit pattern u of x is viewed as a signed integer; its arithmetic sign
// extension (all ones for negative values, zero otherwise) is OR-ed with the
// top bit and XOR-ed into u. Negative values get every bit flipped,
// non-negative values only the sign bit.
func Valuation[F Float, U Unsigned, W Format[F, U]](x F) U {
	var w W
	top := w.Bits() - 1
	u := w.ToBits(x)
	// -(u >> top) is the arithmetic shift of the signed view.
	signmask := -(u >> top)
	r := signmask | U(1)<<top
	return r ^ u
}

// FromValuation is the inverse of Valuation.
func FromValuation[F Float, U Unsigned, W Format[F, U]](v U) F {
	var w W
	top := w.Bits() - 1
	// Zero when v encodes a non-negative float, all ones otherwise.
	mask := v>>top - 1
	return w.FromBits(v ^ (mask | U(1)<<top))
}

// Val32 is Valuation for binary32.
func Val32(x float32) uint32 {
	return Valuation[float32, uint32, Binary32](x)
}

// Val64 is Valuation for binary64.
func Val64(x float64) uint64 {
	return Valuation[float64, uint64, Binary64](x)
}

// FromVal32 is FromValuation for binary32.
func FromVal32(v uint32) float32 {
	return FromValuation[float32, uint32, Binary32](v)
}

// FromVal64 is FromValuation for binary64.
func FromVal64(v uint64) float64 {
	return FromValuation[float64, uint64, Binary64](v)
}

// Step returns the float whose valuation is n above that of x. The walk
// saturates at the ends of the valuation range instead of wrapping, so a
// large step past +Inf lands on the largest positive NaN pattern.
func Step[F Float, U Unsigned, W Format[F, U]](x F, n int64) F {
	v := Valuation[F, U, W](x)
	maxV := ^U(0)
	switch {
	case n >= 0:
		d := uint64(n)
		if uint64(maxV-v) < d {
			v = maxV
		} else {
			v += U(d)
		}
	default:
		// -(n+1)+1 avoids overflowing on math.MinInt64.
		d := uint64(-(n + 1)) + 1
		if uint64(v) < d {
			v = 0
		} else {
			v -= U(d)
		}
	}
	return FromValuation[F, U, W](v)
}
