package ndarray

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/dulp/internal/conv"
)

// ErrInvalidShape is returned for negative dimensions, element counts that
// overflow int, or data whose length does not match the requested shape.
var ErrInvalidShape = errors.New("ndarray: invalid shape")

// Array is a dense row-major n-dimensional array.
type Array[T any] struct {
	shape []int
	data  []T
}

// New returns a zero-filled array of the given shape. No dims yields a
// zero-dimensional array with one element.
func New[T any](shape ...int) (*Array[T], error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	return &Array[T]{shape: slices.Clone(shape), data: make([]T, n)}, nil
}

// FromSlice wraps data without copying. If shape is omitted the array is
// one-dimensional with len(data) elements.
func FromSlice[T any](data []T, shape ...int) (*Array[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d elements cannot form shape %v", ErrInvalidShape, len(data), shape)
	}
	return &Array[T]{shape: slices.Clone(shape), data: data}, nil
}

// Scalar returns a zero-dimensional array holding v.
func Scalar[T any](v T) *Array[T] {
	return &Array[T]{shape: []int{}, data: []T{v}}
}

// Shape returns a copy of the array's dimensions.
func (a *Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// Ndim returns the number of dimensions.
func (a *Array[T]) Ndim() int {
	return len(a.shape)
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// Data returns the row-major backing slice. It is shared with the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at idx. It panics if idx has the wrong length or is
// out of range, like a slice index.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.offset(idx)]
}

// Set stores v at idx. It panics under the same conditions as At.
func (a *Array[T]) Set(v T, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Reshape returns an array sharing a's data with a new shape of the same
// size.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	return FromSlice(a.data, shape...)
}

// String formats the array as shape and flat data.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v%v", a.shape, a.data)
}

func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for %d-dimensional array", len(idx), len(a.shape)))
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with size %d", i, ax, a.shape[ax]))
		}
		off = off*a.shape[ax] + i
	}
	return off
}

func size(shape []int) (int, error) {
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrInvalidShape, shape)
		}
	}
	n, err := conv.Product(shape)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	return n, nil
}
