package ndarray

import (
	"fmt"
	"slices"
	"strings"
)

// ShapeError reports shapes that cannot be broadcast together.
type ShapeError struct {
	// Shapes are the operand shapes as given.
	Shapes [][]int
	// Axis is the output axis, counted from the front of the broadcast
	// shape, at which the conflict was found.
	Axis int
}

func (e *ShapeError) Error() string {
	parts := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		parts[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("ndarray: shapes %s cannot be broadcast together (axis %d)", strings.Join(parts, " "), e.Axis)
}

// BroadcastShapes returns the shape that all given shapes broadcast to.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}

	out := make([]int, ndim)
	for i := range out {
		out[i] = 1
	}

	for _, s := range shapes {
		lead := ndim - len(s)
		for i, d := range s {
			ax := lead + i
			switch {
			case d == out[ax] || d == 1:
			case out[ax] == 1:
				out[ax] = d
			default:
				return nil, &ShapeError{Shapes: cloneShapes(shapes), Axis: ax}
			}
		}
	}
	return out, nil
}

// BroadcastTo returns a contiguous array of the given shape holding a's
// elements repeated along broadcast axes. If a already has that shape it is
// returned unchanged.
func BroadcastTo[T any](a *Array[T], shape ...int) (*Array[T], error) {
	if slices.Equal(a.shape, shape) {
		return a, nil
	}
	if len(a.shape) > len(shape) {
		return nil, &ShapeError{Shapes: [][]int{a.Shape(), slices.Clone(shape)}, Axis: 0}
	}

	// Strides of a expressed in the output's coordinates; zero on axes that
	// are new or have size 1 in a.
	strides := make([]int, len(shape))
	lead := len(shape) - len(a.shape)
	stride := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		ax := lead + i
		switch d := a.shape[i]; {
		case d == shape[ax]:
			strides[ax] = stride
		case d == 1:
			strides[ax] = 0
		default:
			return nil, &ShapeError{Shapes: [][]int{a.Shape(), slices.Clone(shape)}, Axis: ax}
		}
		stride *= a.shape[i]
	}

	out, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	broadcastCopy(out.data, a.data, shape, strides)
	return out, nil
}

// broadcastCopy fills dst by walking shape in row-major order and reading
// src through strides.
func broadcastCopy[T any](dst, src []T, shape, strides []int) {
	idx := make([]int, len(shape))
	off := 0
	for i := range dst {
		dst[i] = src[off]
		for ax := len(shape) - 1; ax >= 0; ax-- {
			idx[ax]++
			off += strides[ax]
			if idx[ax] < shape[ax] {
				break
			}
			off -= strides[ax] * shape[ax]
			idx[ax] = 0
		}
	}
}

func cloneShapes(shapes [][]int) [][]int {
	out := make([][]int, len(shapes))
	for i, s := range shapes {
		out[i] = slices.Clone(s)
	}
	return out
}
