// Package testutil provides testing utilities for dulp.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates float inputs in the
// shapes that exercise order distances: values spread over the whole
// exponent range, uniform values in an interval, and raw bit patterns
// including NaNs and infinities.
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.SpreadFloat64s(1000)  // both signs, |x| from 2^-1074 to 2^1023
//	ps := rng.BitPatterns32(1000)   // arbitrary float32 bit patterns
package testutil
