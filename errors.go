package dulp

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/dulp/ndarray"
)

var (
	// ErrTypeMismatch is returned when an operand is not a supported float
	// or valuation type, or when two operands have different widths.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrShapeMismatch is returned when array operands cannot be broadcast
	// together.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// TypeMismatchError describes rejected operand types.
//
// It matches ErrTypeMismatch with errors.Is.
type TypeMismatchError struct {
	// Op is the rejecting entry point, e.g. "dulp" or "val".
	Op string
	// Types are the Go types of the operands as given.
	Types []string
	// Supported lists the accepted element types.
	Supported []string
}

func (e *TypeMismatchError) Error() string {
	if len(e.Types) == 2 && e.Types[0] != e.Types[1] && e.supports(e.Types[0]) && e.supports(e.Types[1]) {
		return fmt.Sprintf("%s: type mismatch: %s is not %s", e.Op, e.Types[0], e.Types[1])
	}
	return fmt.Sprintf("%s: type mismatch: %v not in %v", e.Op, e.Types, e.Supported)
}

func (e *TypeMismatchError) supports(t string) bool {
	return slices.Contains(e.Supported, t)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ShapeMismatchError describes array operands that cannot be broadcast
// together.
//
// It matches ErrShapeMismatch with errors.Is; the underlying broadcast error
// can be accessed via errors.As on *ndarray.ShapeError.
type ShapeMismatchError struct {
	Op     string
	Shapes [][]int
	cause  error
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: operands could not be broadcast together with shapes %v", e.Op, e.Shapes)
}

func (e *ShapeMismatchError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrShapeMismatch}
	}
	return []error{ErrShapeMismatch, e.cause}
}

func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var se *ndarray.ShapeError
	if errors.As(err, &se) {
		return &ShapeMismatchError{Op: op, Shapes: se.Shapes, cause: err}
	}
	if errors.Is(err, ndarray.ErrInvalidShape) {
		return fmt.Errorf("%s: %w: %w", op, ErrShapeMismatch, err)
	}

	return err
}
