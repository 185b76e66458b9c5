package core

// Kind routes a particle into one of the fixed instanced-draw buckets
// Closed tag set, assigned uniformly at creation and immutable
type Kind uint8

const (
	KindOctahedron Kind = iota
	KindTetrahedron
	KindIcosahedron
	KindCube
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindOctahedron:
		return "octahedron"
	case KindTetrahedron:
		return "tetrahedron"
	case KindIcosahedron:
		return "icosahedron"
	case KindCube:
		return "cube"
	case KindSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Rune is the terminal glyph standing in for the instanced mesh
func (k Kind) Rune() rune {
	switch k {
	case KindOctahedron:
		return '◆'
	case KindTetrahedron:
		return '▲'
	case KindIcosahedron:
		return '●'
	case KindCube:
		return '■'
	case KindSphere:
		return 'o'
	default:
		return '·'
	}
}
