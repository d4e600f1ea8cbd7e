package dulp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dulp/ndarray"
)

func TestVal(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		v, err := Val(0.7)
		require.NoError(t, err)
		assert.IsType(t, uint64(0), v)
		assert.Equal(t, Val64(0.7), v)
	})

	t.Run("float32", func(t *testing.T) {
		v, err := Val(float32(0.7))
		require.NoError(t, err)
		assert.IsType(t, uint32(0), v)
	})

	t.Run("integer rejected", func(t *testing.T) {
		_, err := Val(-0)
		assert.ErrorIs(t, err, ErrTypeMismatch)

		var tm *TypeMismatchError
		require.True(t, errors.As(err, &tm))
		assert.Equal(t, []string{"int"}, tm.Types)
		assert.Equal(t, "val", tm.Op)
	})

	t.Run("slice rejected by scalar form", func(t *testing.T) {
		_, err := Val([]float64{1})
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestDulp(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		d, err := Dulp(1.0, 1.5)
		require.NoError(t, err)
		assert.Equal(t, 0x1p51, d)
	})

	t.Run("float32", func(t *testing.T) {
		d, err := Dulp(float32(1), float32(1.5))
		require.NoError(t, err)
		assert.Equal(t, float32(0x1p22), d)
	})

	tests := []struct {
		name string
		a, b any
		msg  string
	}{
		{"mixed widths", float32(1), 0.5, "dulp: type mismatch: float32 is not float64"},
		{"complex", 1i, 1i, "dulp: type mismatch: [complex128 complex128] not in [float32 float64]"},
		{"integers", 0, 5e-324, "dulp: type mismatch: [int float64] not in [float32 float64]"},
		{"valuations", uint64(1), uint64(2), "dulp: type mismatch: [uint64 uint64] not in [float32 float64]"},
		{"nil", nil, 1.0, "dulp: type mismatch: [<nil> float64] not in [float32 float64]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Dulp(tc.a, tc.b)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, ErrTypeMismatch)
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestDifDispatch(t *testing.T) {
	d, err := Dif(uint64(0), uint64(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = Dif(uint32(0), uint32(math.MaxUint32))
	require.NoError(t, err)
	assert.Equal(t, float32(math.MaxUint32), d)

	_, err = Dif(uint32(1), uint64(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Dif(1, 2)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Dif(1.0, 2.0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValArray(t *testing.T) {
	t.Run("slice", func(t *testing.T) {
		out, err := ValArray([]float64{0.5, 0.7})
		require.NoError(t, err)
		arr := out.(*ndarray.Array[uint64])
		assert.Equal(t, []int{2}, arr.Shape())
		assert.Equal(t, []uint64{Val64(0.5), Val64(0.7)}, arr.Data())
	})

	t.Run("scalar is zero-dimensional", func(t *testing.T) {
		out, err := ValArray(float32(0.7))
		require.NoError(t, err)
		arr := out.(*ndarray.Array[uint32])
		assert.Equal(t, 0, arr.Ndim())
		assert.Equal(t, Val32(0.7), arr.At())
	})

	t.Run("ndarray keeps shape", func(t *testing.T) {
		in, err := ndarray.New[float32](2, 3)
		require.NoError(t, err)
		out, err := ValArray(in)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, out.(*ndarray.Array[uint32]).Shape())
	})

	t.Run("rejected", func(t *testing.T) {
		for _, x := range []any{-0, []int{1}, []complex128{1i}, (*ndarray.Array[float64])(nil), "1.0"} {
			out, err := ValArray(x)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrTypeMismatch, "%T", x)
		}
	})
}

func TestDulpArray(t *testing.T) {
	t.Run("broadcast scalar against vector", func(t *testing.T) {
		out, err := DulpArray(0.5, []float64{0.7, 0.7})
		require.NoError(t, err)
		vec := out.(*ndarray.Array[float64])
		assert.Equal(t, []int{2}, vec.Shape())
		assert.Equal(t, Dulp64(0.5, 0.7), vec.At(0))
		assert.Equal(t, Dulp64(0.5, 0.7), vec.At(1))
	})

	t.Run("broadcast to rank three", func(t *testing.T) {
		ones, err := ndarray.New[float64](1, 2, 3)
		require.NoError(t, err)
		for i := range ones.Data() {
			ones.Data()[i] = 0.5
		}
		out, err := DulpArray(0.5, ones)
		require.NoError(t, err)
		mat := out.(*ndarray.Array[float64])
		assert.Equal(t, []int{1, 2, 3}, mat.Shape())
		assert.Equal(t, 0.0, mat.At(0, 0, 0))
	})

	t.Run("row against column", func(t *testing.T) {
		col, err := ndarray.FromSlice([]float32{1, 2}, 2, 1)
		require.NoError(t, err)
		row := []float32{1, 1.5, 2}
		out, err := DulpArray(col, row)
		require.NoError(t, err)
		m := out.(*ndarray.Array[float32])
		assert.Equal(t, []int{2, 3}, m.Shape())
		assert.Equal(t, []float32{0, 0x1p22, 0x1p23, -0x1p23, -0x1p22, 0}, m.Data())
	})

	t.Run("shape mismatch", func(t *testing.T) {
		vec := []float64{0.7, 0.7}
		mat, err := ndarray.New[float64](1, 2, 3)
		require.NoError(t, err)

		out, err := DulpArray(vec, mat)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		assert.NotErrorIs(t, err, ErrTypeMismatch)

		var sm *ShapeMismatchError
		require.ErrorAs(t, err, &sm)
		assert.Equal(t, [][]int{{2}, {1, 2, 3}}, sm.Shapes)

		var se *ndarray.ShapeError
		assert.ErrorAs(t, err, &se)
	})

	t.Run("type checked before shape", func(t *testing.T) {
		_, err := DulpArray([]float32{1, 2}, []float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.NotErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := DulpArray([]float64{}, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 0, out.(*ndarray.Array[float64]).Size())
	})
}

func TestDifArray(t *testing.T) {
	out, err := DifArray([]uint64{0, math.MaxUint64}, []uint64{math.MaxUint64, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0x1p64, -0x1p64}, out.(*ndarray.Array[float64]).Data())

	out, err = DifArray([]uint32{0, 1}, []uint32{1 << 24, 1<<24 + 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{0x1p24, 0x1p24}, out.(*ndarray.Array[float32]).Data())

	_, err = DifArray([]uint32{1}, []uint64{1})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
