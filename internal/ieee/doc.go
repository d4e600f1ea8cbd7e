// Package ieee implements the bit-level order valuation of IEEE754 binary32
// and binary64 values and the overflow-safe difference of two valuations.
//
// # Valuation
//
// A valuation maps the bit pattern of a float onto an unsigned integer of the
// same width such that the integer order matches the real-number order of
// the floats:
//
//	-NaN < -Inf < -MaxFloat < ... < -0 < +0 < ... < +MaxFloat < +Inf < +NaN
//
// Negative and positive zero are distinct, adjacent valuations.
//
// # Split Difference
//
// Two W-bit valuations can differ by up to 2^W-1 in either direction, which
// does not fit a signed W-bit integer. SplitDifference subtracts the high and
// low W/2-bit halves independently and recombines them in floating point, so
// no lane ever needs more than W/2+1 signed bits.
//
// All algorithms are written once against the Format capability and
// instantiated for Binary32 and Binary64.
package ieee
