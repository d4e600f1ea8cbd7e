package dulp

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/dulp/ndarray"
)

const (
	opVal  = "val"
	opDulp = "dulp"
	opDif  = "dif"
)

var (
	floatTypes     = []string{"float32", "float64"}
	valuationTypes = []string{"uint32", "uint64"}
)

var defaultCalculator = NewCalculator()

type kind uint8

const (
	kindInvalid kind = iota
	kindFloat32
	kindFloat64
	kindUint32
	kindUint64
)

func (k kind) String() string {
	switch k {
	case kindFloat32:
		return "float32"
	case kindFloat64:
		return "float64"
	case kindUint32:
		return "uint32"
	case kindUint64:
		return "uint64"
	default:
		return "invalid"
	}
}

// scalarKind classifies plain Go scalars.
func scalarKind(x any) kind {
	switch x.(type) {
	case float32:
		return kindFloat32
	case float64:
		return kindFloat64
	case uint32:
		return kindUint32
	case uint64:
		return kindUint64
	default:
		return kindInvalid
	}
}

// arrayKind classifies anything usable as an array operand: scalars (as
// zero-dimensional arrays), slices and non-nil *ndarray.Array values.
func arrayKind(x any) kind {
	switch v := x.(type) {
	case []float32:
		return kindFloat32
	case []float64:
		return kindFloat64
	case []uint32:
		return kindUint32
	case []uint64:
		return kindUint64
	case *ndarray.Array[float32]:
		return nonNil(v != nil, kindFloat32)
	case *ndarray.Array[float64]:
		return nonNil(v != nil, kindFloat64)
	case *ndarray.Array[uint32]:
		return nonNil(v != nil, kindUint32)
	case *ndarray.Array[uint64]:
		return nonNil(v != nil, kindUint64)
	default:
		return scalarKind(x)
	}
}

func nonNil(ok bool, k kind) kind {
	if !ok {
		return kindInvalid
	}
	return k
}

// elemName names the element type of x for error messages.
func elemName(x any, classify func(any) kind) string {
	if k := classify(x); k != kindInvalid {
		return k.String()
	}
	return fmt.Sprintf("%T", x)
}

func asArray[T any](x any) *ndarray.Array[T] {
	switch v := x.(type) {
	case T:
		return ndarray.Scalar(v)
	case []T:
		a, _ := ndarray.FromSlice(v)
		return a
	case *ndarray.Array[T]:
		return v
	}
	return nil
}

// checkTypes returns the common kind of operands if it is one of accepted.
func checkTypes(op string, classify func(any) kind, supported []string, accepted [2]kind, operands ...any) (kind, error) {
	k := classify(operands[0])
	ok := k == accepted[0] || k == accepted[1]
	for _, x := range operands[1:] {
		if classify(x) != k {
			ok = false
		}
	}
	if ok {
		return k, nil
	}

	names := make([]string, len(operands))
	for i, x := range operands {
		names[i] = elemName(x, classify)
	}
	return kindInvalid, &TypeMismatchError{Op: op, Types: names, Supported: supported}
}

// Val returns the valuation of a float32 (as uint32) or float64 (as uint64).
// Any other type fails with ErrTypeMismatch.
func Val(x any) (any, error) {
	k, err := checkTypes(opVal, scalarKind, floatTypes, [2]kind{kindFloat32, kindFloat64}, x)
	if err != nil {
		return nil, err
	}
	if k == kindFloat64 {
		return Val64(x.(float64)), nil
	}
	return Val32(x.(float32)), nil
}

// Dulp returns the order distance from a to b. Both operands must be
// float64 (result float64) or both float32 (result float32); anything else
// fails with ErrTypeMismatch.
func Dulp(a, b any) (any, error) {
	k, err := checkTypes(opDulp, scalarKind, floatTypes, [2]kind{kindFloat32, kindFloat64}, a, b)
	if err != nil {
		return nil, err
	}
	if k == kindFloat64 {
		return Dulp64(a.(float64), b.(float64)), nil
	}
	return Dulp32(a.(float32), b.(float32)), nil
}

// Dif returns vb - va for two valuations of the same width: uint64 yields
// float64, uint32 yields float32.
func Dif(va, vb any) (any, error) {
	k, err := checkTypes(opDif, scalarKind, valuationTypes, [2]kind{kindUint32, kindUint64}, va, vb)
	if err != nil {
		return nil, err
	}
	if k == kindUint64 {
		return Dif64(va.(uint64), vb.(uint64)), nil
	}
	return Dif32(va.(uint32), vb.(uint32)), nil
}

// ValArray returns the valuations of x, which may be a float scalar, a
// float slice or an *ndarray.Array of float32 or float64. The result is an
// *ndarray.Array[uint32] or *ndarray.Array[uint64] with the shape of x.
func ValArray(x any) (any, error) {
	return defaultCalculator.ValArray(context.Background(), x)
}

// DulpArray returns the element-wise order distance from a to b over their
// broadcast shape as *ndarray.Array[float64] or *ndarray.Array[float32].
// Mixed or unsupported element types fail with ErrTypeMismatch and
// incompatible shapes with ErrShapeMismatch.
func DulpArray(a, b any) (any, error) {
	return defaultCalculator.DulpArray(context.Background(), a, b)
}

// DifArray is the element-wise form of Dif.
func DifArray(va, vb any) (any, error) {
	return defaultCalculator.DifArray(context.Background(), va, vb)
}

// ValArray is the package-level ValArray with c's configuration.
func (c *Calculator) ValArray(ctx context.Context, x any) (any, error) {
	k, err := checkTypes(opVal, arrayKind, floatTypes, [2]kind{kindFloat32, kindFloat64}, x)
	if err != nil {
		return nil, c.reject(ctx, opVal, c.opts.metricsCollector.RecordValuation, err)
	}
	if k == kindFloat64 {
		return result(c.Valuate64(ctx, asArray[float64](x)))
	}
	return result(c.Valuate32(ctx, asArray[float32](x)))
}

// DulpArray is the package-level DulpArray with c's configuration.
func (c *Calculator) DulpArray(ctx context.Context, a, b any) (any, error) {
	k, err := checkTypes(opDulp, arrayKind, floatTypes, [2]kind{kindFloat32, kindFloat64}, a, b)
	if err != nil {
		return nil, c.reject(ctx, opDulp, c.opts.metricsCollector.RecordDistance, err)
	}
	if k == kindFloat64 {
		return result(c.Distance64(ctx, asArray[float64](a), asArray[float64](b)))
	}
	return result(c.Distance32(ctx, asArray[float32](a), asArray[float32](b)))
}

// DifArray is the package-level DifArray with c's configuration.
func (c *Calculator) DifArray(ctx context.Context, va, vb any) (any, error) {
	k, err := checkTypes(opDif, arrayKind, valuationTypes, [2]kind{kindUint32, kindUint64}, va, vb)
	if err != nil {
		return nil, c.reject(ctx, opDif, c.opts.metricsCollector.RecordDifference, err)
	}
	if k == kindUint64 {
		return result(c.Difference64(ctx, asArray[uint64](va), asArray[uint64](vb)))
	}
	return result(c.Difference32(ctx, asArray[uint32](va), asArray[uint32](vb)))
}

func (c *Calculator) reject(ctx context.Context, op string, record func(int, time.Duration, error), err error) error {
	record(0, 0, err)
	c.logger.LogArrayOp(ctx, op, nil, 0, 0, err)
	return err
}

// result drops the typed nil so a failed call returns a nil interface.
func result[R any](out *ndarray.Array[R], err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return out, nil
}
