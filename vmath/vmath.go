package vmath

import "math"

// --- Float helpers ---

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 source. Callers own it and pass it explicitly so
// placement stays deterministic per seed.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a uniform integer in [lo, hi]
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// FloatRange returns a uniform float in [lo, hi)
func (r *FastRand) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Read fills p from the generator so FastRand can seed identifiers; never fails
func (r *FastRand) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.Next()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
