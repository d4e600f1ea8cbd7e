package mem

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/dulp/internal/conv"
)

// Alignment is the byte alignment of buffers returned by Aligned (one
// AVX-512 register).
const Alignment = 64

// Element is the set of pointer-free element types that may live in an
// aligned buffer.
type Element interface {
	~float32 | ~float64 | ~uint32 | ~uint64
}

// AllocAligned allocates a byte slice of the given size starting at an
// address divisible by Alignment. It returns nil for size <= 0 and for sizes
// that leave no room for the alignment padding.
//
// Note: This function allocates up to Alignment extra bytes. The underlying
// array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 || size > math.MaxInt-Alignment {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Aligned allocates a zeroed slice of n elements starting at an address
// divisible by Alignment. It returns nil for n <= 0 and an error if the
// byte size overflows int.
func Aligned[T Element](n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}

	var zero T
	size, err := conv.MulInt(n, int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	raw := AllocAligned(size)
	if raw == nil {
		return nil, fmt.Errorf("aligned allocation of %d bytes exceeds the address space", size)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n), nil //nolint:gosec // unsafe is required for memory alignment
}
