package simd

import (
	"os"
	"strings"
)

// ISA identifies a CPU instruction set extension relevant to kernel
// selection.
type ISA uint8

const (
	// Generic is the portable Go kernel family.
	Generic ISA = iota
	// NEON is ARM64 Advanced SIMD.
	NEON
	// SVE2 is the ARM64 Scalable Vector Extension 2.
	SVE2
	// AVX2 is x86-64 AVX2 (256-bit integer SIMD).
	AVX2
	// AVX512 is x86-64 AVX-512 with the F and DQ subsets.
	AVX512
)

var isaNames = [...]string{
	Generic: "generic",
	NEON:    "neon",
	SVE2:    "sve2",
	AVX2:    "avx2",
	AVX512:  "avx512",
}

func (i ISA) String() string {
	if int(i) < len(isaNames) {
		return isaNames[i]
	}
	return "unknown"
}

// ParseISA parses an ISA name as printed by String.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range isaNames {
		if name == s {
			return ISA(i), true
		}
	}
	return Generic, false
}

// cpuFeatures holds the CPU flags reported by golang.org/x/sys/cpu.
type cpuFeatures struct {
	asimd    bool
	sve2     bool
	avx2     bool
	avx512f  bool
	avx512dq bool
}

func (f cpuFeatures) supports(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return f.asimd
	case SVE2:
		return f.sve2
	case AVX2:
		return f.avx2
	case AVX512:
		return f.avx512f && f.avx512dq
	}
	return false
}

// best returns the highest supported ISA. Flags of one architecture never
// appear on another, so a single ranking covers both.
func (f cpuFeatures) best() ISA {
	for isa := AVX512; isa > Generic; isa-- {
		if f.supports(isa) {
			return isa
		}
	}
	return Generic
}

var (
	features   cpuFeatures
	activeISA  ISA
	overridden bool
)

// detect records the CPU features, picks the active ISA and installs its
// kernels. DULP_SIMD names an ISA to use instead; unknown or unsupported
// names are ignored.
func detect(f cpuFeatures) {
	features = f
	activeISA = f.best()

	if env := os.Getenv("DULP_SIMD"); env != "" {
		if isa, ok := ParseISA(env); ok && f.supports(isa) {
			activeISA = isa
			overridden = true
		}
	}

	useKernels(activeISA)
}

// ActiveISA returns the ISA selected at startup.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether DULP_SIMD selected the active ISA.
func IsOverridden() bool {
	return overridden
}

// Available reports whether the CPU supports isa.
func Available(isa ISA) bool {
	return features.supports(isa)
}
