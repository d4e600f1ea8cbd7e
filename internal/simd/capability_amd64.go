//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	detect(cpuFeatures{
		avx2:     cpu.X86.HasAVX2,
		avx512f:  cpu.X86.HasAVX512F,
		avx512dq: cpu.X86.HasAVX512DQ,
	})
}
