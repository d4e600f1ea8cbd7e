package mem

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "size %d", size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func testAligned[T Element](t *testing.T) {
	t.Helper()

	for _, n := range []int{1, 7, 8, 9, 100, 1025} {
		buf, err := Aligned[T](n)
		require.NoError(t, err)
		assert.Len(t, buf, n)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "n %d", n)

		for _, v := range buf {
			assert.Zero(t, v)
		}
		buf[n-1] = 1
		assert.Equal(t, T(1), buf[n-1])
	}

	for _, n := range []int{0, -3} {
		buf, err := Aligned[T](n)
		require.NoError(t, err)
		assert.Nil(t, buf)
	}
}

func TestAlignedOverflow(t *testing.T) {
	for _, n := range []int{math.MaxInt, math.MaxInt / 4, math.MaxInt/8 + 1} {
		buf, err := Aligned[uint64](n)
		require.Error(t, err, "n %d", n)
		assert.Nil(t, buf)
	}

	buf, err := Aligned[float32](math.MaxInt / 4)
	require.Error(t, err)
	assert.Nil(t, buf)

	assert.Nil(t, AllocAligned(math.MaxInt))
	assert.Nil(t, AllocAligned(math.MaxInt-Alignment+1))
}

func TestAligned(t *testing.T) {
	t.Run("float32", testAligned[float32])
	t.Run("float64", testAligned[float64])
	t.Run("uint32", testAligned[uint32])
	t.Run("uint64", testAligned[uint64])
}

func BenchmarkAligned(b *testing.B) {
	for _, n := range []int{64, 1024, 1 << 16} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Aligned[float64](n)
			}
		})
	}
}
