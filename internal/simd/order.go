package simd

import "math"

// Split subtraction constants: 2^(W/2) and the low-half mask per width.
const (
	scale64  = 0x1p32
	lomask64 = 1<<32 - 1
	scale32  = 0x1p16
	lomask32 = 1<<16 - 1
)

var (
	val64Impl  = val64Go
	val32Impl  = val32Go
	dif64Impl  = dif64Go
	dif32Impl  = dif32Go
	dulp64Impl = dulp64Go
	dulp32Impl = dulp32Go

	kernels = "go"
)

// useKernels installs the kernel family for isa. ISAs without assembly
// kernels on this architecture get the portable Go family.
func useKernels(isa ISA) {
	if useArchKernels(isa) {
		return
	}
	val64Impl, val32Impl = val64Go, val32Go
	dif64Impl, dif32Impl = dif64Go, dif32Go
	dulp64Impl, dulp32Impl = dulp64Go, dulp32Go
	kernels = "go"
}

// Kernels names the installed kernel family ("go" or an assembly family
// such as "avx2").
func Kernels() string {
	return kernels
}

// Val64 writes the valuation of each src element to dst.
//
// SAFETY: This function assumes len(dst) == len(src).
func Val64(dst []uint64, src []float64) {
	val64Impl(dst, src)
}

// Val32 writes the valuation of each src element to dst.
//
// SAFETY: This function assumes len(dst) == len(src).
func Val32(dst []uint32, src []float32) {
	val32Impl(dst, src)
}

// Dif64 writes vb[i] - va[i] to dst using split subtraction.
//
// SAFETY: This function assumes all slices have the same length.
func Dif64(dst []float64, va, vb []uint64) {
	dif64Impl(dst, va, vb)
}

// Dif32 writes vb[i] - va[i] to dst using split subtraction.
//
// SAFETY: This function assumes all slices have the same length.
func Dif32(dst []float32, va, vb []uint32) {
	dif32Impl(dst, va, vb)
}

// Dulp64 writes the order distance from a[i] to b[i] to dst.
//
// SAFETY: This function assumes all slices have the same length.
func Dulp64(dst []float64, a, b []float64) {
	dulp64Impl(dst, a, b)
}

// Dulp32 writes the order distance from a[i] to b[i] to dst.
//
// SAFETY: This function assumes all slices have the same length.
func Dulp32(dst []float32, a, b []float32) {
	dulp32Impl(dst, a, b)
}

func val64(x float64) uint64 {
	u := math.Float64bits(x)
	return u ^ (-(u >> 63) | 1<<63)
}

func val32(x float32) uint32 {
	u := math.Float32bits(x)
	return u ^ (-(u >> 31) | 1<<31)
}

func dif64(va, vb uint64) float64 {
	dhi := int64(vb>>32) - int64(va>>32)
	dlo := int64(vb&lomask64) - int64(va&lomask64)
	return float64(dhi)*scale64 + float64(dlo)
}

func dif32(va, vb uint32) float32 {
	dhi := int64(vb>>16) - int64(va>>16)
	dlo := int64(vb&lomask32) - int64(va&lomask32)
	return float32(float64(dhi)*scale32 + float64(dlo))
}

func val64Go(dst []uint64, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = val64(x)
	}
}

func val32Go(dst []uint32, src []float32) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = val32(x)
	}
}

func dif64Go(dst []float64, va, vb []uint64) {
	va = va[:len(dst)]
	vb = vb[:len(dst)]
	for i := range dst {
		dst[i] = dif64(va[i], vb[i])
	}
}

func dif32Go(dst []float32, va, vb []uint32) {
	va = va[:len(dst)]
	vb = vb[:len(dst)]
	for i := range dst {
		dst[i] = dif32(va[i], vb[i])
	}
}

func dulp64Go(dst []float64, a, b []float64) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = dif64(val64(a[i]), val64(b[i]))
	}
}

func dulp32Go(dst []float32, a, b []float32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = dif32(val32(a[i]), val32(b[i]))
	}
}
