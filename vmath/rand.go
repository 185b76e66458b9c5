package vmath

import (
	"math/bits"
)

// FastRand is a xorshift64 generator, cheap enough for per-particle
// draws during layout generation. Zero seed is remapped to keep the
// state out of the xorshift fixed point.
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

// Float64 returns a uniform draw in [0, 1)
func (r *FastRand) Float64() float64 {
	// 53 high bits scaled to [0,1)
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform draw in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Signed returns a uniform draw in [-mag, mag)
func (r *FastRand) Signed(mag float64) float64 {
	return (r.Float64()*2 - 1) * mag
}

// Bool returns true with probability p
func (r *FastRand) Bool(p float64) bool {
	return r.Float64() < p
}

// Shuffle permutes idx in place (Fisher-Yates)
func (r *FastRand) Shuffle(idx []int) {
	for i := len(idx) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// Mix folds extra entropy into a seed, used to decorrelate the
// per-layer generators spawned from one session seed
func Mix(seed, salt uint64) uint64 {
	h := seed ^ (salt * 0x9E3779B97F4A7C15)
	h ^= h >> 33
	h = bits.RotateLeft64(h, 27) * 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return h
}
