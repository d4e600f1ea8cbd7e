// Package simd provides batch kernels for order valuation and order
// distance over float32 and float64 slices.
//
// # Kernel Families
//
//   - avx2: x86-64 assembly, 32 bytes per iteration (also used on AVX-512
//     hosts)
//   - go: portable Go loops with hoisted bounds checks
//
// Runtime CPU feature detection selects the family. Set DULP_SIMD to an ISA
// name (generic, neon, sve2, avx2, avx512) to pick a supported ISA
// explicitly, or build with -tags noasm to exclude the assembly.
//
// # Operations
//
//   - Valuation: Val64, Val32
//   - Raw difference: Dif64, Dif32 (split subtraction)
//   - Fused distance: Dulp64, Dulp32
//
// Every kernel assumes its slices have equal length.
package simd
