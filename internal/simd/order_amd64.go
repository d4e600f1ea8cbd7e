//go:build amd64 && !noasm

package simd

// AVX-512 hosts run the AVX2 kernels; the loops are load/store bound at
// 256 bits already.
func useArchKernels(isa ISA) bool {
	if isa != AVX2 && isa != AVX512 {
		return false
	}
	val64Impl, val32Impl = val64AVX2, val32AVX2
	dif64Impl, dif32Impl = dif64AVX2, dif32AVX2
	dulp64Impl, dulp32Impl = dulp64AVX2, dulp32AVX2
	kernels = "avx2"
	return true
}

// The assembly loops handle whole blocks of 32 bytes (4 x 64-bit or
// 8 x 32-bit elements); the Go kernels finish the tail.

func val64AVX2(dst []uint64, src []float64) {
	n := len(src) &^ 3
	if n > 0 {
		val64Avx2(&dst[0], &src[0], n)
	}
	val64Go(dst[n:], src[n:])
}

func val32AVX2(dst []uint32, src []float32) {
	n := len(src) &^ 7
	if n > 0 {
		val32Avx2(&dst[0], &src[0], n)
	}
	val32Go(dst[n:], src[n:])
}

func dif64AVX2(dst []float64, va, vb []uint64) {
	n := len(dst) &^ 3
	if n > 0 {
		dif64Avx2(&dst[0], &va[0], &vb[0], n)
	}
	dif64Go(dst[n:], va[n:], vb[n:])
}

func dif32AVX2(dst []float32, va, vb []uint32) {
	n := len(dst) &^ 7
	if n > 0 {
		dif32Avx2(&dst[0], &va[0], &vb[0], n)
	}
	dif32Go(dst[n:], va[n:], vb[n:])
}

func dulp64AVX2(dst []float64, a, b []float64) {
	n := len(dst) &^ 3
	if n > 0 {
		dulp64Avx2(&dst[0], &a[0], &b[0], n)
	}
	dulp64Go(dst[n:], a[n:], b[n:])
}

func dulp32AVX2(dst []float32, a, b []float32) {
	n := len(dst) &^ 7
	if n > 0 {
		dulp32Avx2(&dst[0], &a[0], &b[0], n)
	}
	dulp32Go(dst[n:], a[n:], b[n:])
}

//go:noescape
func val64Avx2(dst *uint64, src *float64, n int)

//go:noescape
func val32Avx2(dst *uint32, src *float32, n int)

//go:noescape
func dif64Avx2(dst *float64, va, vb *uint64, n int)

//go:noescape
func dif32Avx2(dst *float32, va, vb *uint32, n int)

//go:noescape
func dulp64Avx2(dst *float64, a, b *float64, n int)

//go:noescape
func dulp32Avx2(dst *float32, a, b *float32, n int)
