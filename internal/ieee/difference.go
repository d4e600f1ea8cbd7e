package ieee

// SplitDifference returns vb - va as a float64 for two valuations of width
// bits (32 or 64).
//
// Each operand is split into bits/2 high and low halves. The halves are
// subtracted independently, which needs at most bits/2+1 signed bits per
// half, and recombined as dhi*2^(bits/2) + dlo in floating point. The
// product is exact and the final addition rounds once, so the result is the
// correctly rounded signed difference.
func SplitDifference[U Unsigned](va, vb U, bits uint) float64 {
	half := bits / 2
	lomask := U(1)<<half - 1
	dhi := int64(vb>>half) - int64(va>>half)
	dlo := int64(vb&lomask) - int64(va&lomask)
	return float64(dhi)*float64(uint64(1)<<half) + float64(dlo)
}

// Dif32 returns the order distance between two binary32 valuations, rounded
// once to float32.
func Dif32(va, vb uint32) float32 {
	return float32(SplitDifference(va, vb, 32))
}

// Dif64 returns the order distance between two binary64 valuations.
func Dif64(va, vb uint64) float64 {
	return SplitDifference(va, vb, 64)
}

// Dulp32 returns the order distance from a to b.
func Dulp32(a, b float32) float32 {
	return Dif32(Val32(a), Val32(b))
}

// Dulp64 returns the order distance from a to b.
func Dulp64(a, b float64) float64 {
	return Dif64(Val64(a), Val64(b))
}
