//go:build noasm || !amd64

package simd

// No assembly kernels on this architecture.
func useArchKernels(ISA) bool {
	return false
}
