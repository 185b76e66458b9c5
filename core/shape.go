package core

// Shape selects one of the two morph targets. The set is closed.
type Shape uint8

const (
	ShapeGalaxy Shape = iota
	ShapeTree
)

// ShapeCount sizes per-shape target arrays
const ShapeCount = 2

func (s Shape) String() string {
	switch s {
	case ShapeGalaxy:
		return "galaxy"
	case ShapeTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Other toggles between the two shapes
func (s Shape) Other() Shape {
	if s == ShapeGalaxy {
		return ShapeTree
	}
	return ShapeGalaxy
}
