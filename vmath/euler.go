package vmath

// Euler is a per-axis rotation angle triple in radians
// Applied in XYZ order; particles only ever accumulate it, so order
// is not observable outside the render layer
type Euler struct {
	X, Y, Z float64
}

func EAdd(a, b Euler) Euler {
	return Euler{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func EScale(e Euler, s float64) Euler {
	return Euler{e.X * s, e.Y * s, e.Z * s}
}
