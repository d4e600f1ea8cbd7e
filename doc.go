// Package dulp measures order distances between IEEE754 floating-point
// values.
//
// The order distance from a to b is the signed number of representable
// floats separating them: 1 between a float and its successor, 2^51 between
// 1.0 and 1.5 in float64, 1 between -0 and +0. It is computed from the
// order valuation of each float, an unsigned integer of the same width that
// increases strictly with the float over all non-NaN values.
//
// # Quick Start
//
//	d := dulp.Dulp64(1.0, 1.0+0x1p-52) // 1
//	v := dulp.Val32(0.5)               // uint32 valuation
//	f := dulp.Distance(float32(1), 1.5) // 4194304, as float32
//
// # Arrays
//
// The array forms accept float scalars, slices and *ndarray.Array values and
// broadcast like NumPy:
//
//	out, err := dulp.DulpArray(0.5, []float64{0.7, 0.7})
//	// out.(*ndarray.Array[float64]) has shape [2]
//
// Element types are checked before any computation. Mixing float32 and
// float64 operands, or passing anything but the two float widths (uint32 /
// uint64 for the Dif functions), fails with ErrTypeMismatch; shapes that do
// not broadcast fail with ErrShapeMismatch.
//
// # Calculator
//
// A Calculator carries logging, metrics and parallelism options for the
// array forms. Large operations are split into chunks that run concurrently:
//
//	calc := dulp.NewCalculator(
//	    dulp.WithLogLevel(slog.LevelDebug),
//	    dulp.WithParallelThreshold(1<<20),
//	)
//	out, err := calc.Distance64(ctx, a, b)
//
// # Precision
//
// Differences are computed with a split subtraction: the high and low
// halves of the two valuations are subtracted separately and recombined in
// floating point. float64 results are exact up to 2^53 and correctly rounded
// beyond; float32 results are rounded once from the exact difference.
package dulp
