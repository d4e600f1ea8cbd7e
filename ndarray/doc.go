// Package ndarray provides a minimal dense n-dimensional array with
// NumPy-style broadcasting.
//
// Arrays are row-major (C order) and always contiguous. A zero-dimensional
// array holds exactly one element and broadcasts against any shape.
//
// # Broadcasting
//
// Two shapes are compatible when, comparing dimensions from the trailing
// end, each pair is equal or one of them is 1. Missing leading dimensions
// count as 1:
//
//	shape, _ := ndarray.BroadcastShapes([]int{2, 1}, []int{3})  // [2 3]
//	_, err := ndarray.BroadcastShapes([]int{2}, []int{1, 2, 3}) // *ShapeError
package ndarray
