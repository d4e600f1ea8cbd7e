//go:build arm64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	detect(cpuFeatures{
		asimd: cpu.ARM64.HasASIMD,
		sve2:  cpu.ARM64.HasSVE2,
	})
}
