//go:build noasm || !(amd64 || arm64)

package simd

func init() {
	detect(cpuFeatures{})
}
