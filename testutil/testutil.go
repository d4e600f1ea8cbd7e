package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// UniformFloat64s returns n values in [minVal, maxVal).
// Locks only once per call.
func (r *RNG) UniformFloat64s(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// UniformFloat32s returns n values in [minVal, maxVal).
func (r *RNG) UniformFloat32s(n int, minVal, maxVal float32) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	out := make([]float32, n)
	for i := range out {
		out[i] = minVal + r.rand.Float32()*span
	}
	return out
}

// SpreadFloat64s returns n finite values of random sign whose binary
// exponents are uniform over the float64 range, denormals included.
func (r *RNG) SpreadFloat64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		// Mantissa in [0.5, 1) times 2^e with e in [-1073, 1024).
		x := math.Ldexp(0.5+r.rand.Float64()/2, r.rand.Intn(2097)-1073)
		if r.rand.Intn(2) == 0 {
			x = -x
		}
		out[i] = x
	}
	return out
}

// SpreadFloat32s returns n finite values of random sign whose binary
// exponents are uniform over the float32 range, denormals included.
func (r *RNG) SpreadFloat32s(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		x := float32(math.Ldexp(0.5+r.rand.Float64()/2, r.rand.Intn(276)-148))
		if r.rand.Intn(2) == 0 {
			x = -x
		}
		out[i] = x
	}
	return out
}

// BitPatterns64 returns n float64 values with uniformly random bit patterns.
// Roughly one in 2048 is a NaN.
func (r *RNG) BitPatterns64(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(r.rand.Uint64())
	}
	return out
}

// BitPatterns32 returns n float32 values with uniformly random bit patterns.
func (r *RNG) BitPatterns32(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(r.rand.Uint32())
	}
	return out
}
