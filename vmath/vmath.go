package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp blends a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SmoothFactor converts a smoothing rate and frame delta into a lerp
// fraction for critically damped exponential approach. Convergence
// half-life is ln(2)/rate seconds, independent of frame rate.
func SmoothFactor(dt, rate float64) float64 {
	return Clamp01(dt * rate)
}
