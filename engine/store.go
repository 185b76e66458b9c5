package engine

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/scene"
	"github.com/happyletty/particle/vmath"
)

// Transform is the per-particle read surface consumed by the render
// adapter
type Transform struct {
	Position vmath.Vec3
	Rotation vmath.Euler
	Scale    float64
}

// Store holds the mutable per-particle state between the immutable
// layout targets and the render adapter. Parallel arrays indexed by
// particle id; the morph system is the only writer, the render layer
// the only other reader, both on the frame goroutine.
type Store struct {
	layout *scene.Layout

	pos      []vmath.Vec3
	color    []colorful.Color
	rotation []vmath.Euler
}

// NewStore initializes current state onto the galaxy targets, the
// shape the session opens with
func NewStore(l *scene.Layout) *Store {
	s := &Store{
		layout:   l,
		pos:      make([]vmath.Vec3, l.Count),
		color:    make([]colorful.Color, l.Count),
		rotation: make([]vmath.Euler, l.Count),
	}
	copy(s.pos, l.TargetPos[core.ShapeGalaxy])
	copy(s.color, l.TargetColor[core.ShapeGalaxy])
	return s
}

func (s *Store) Count() int {
	return s.layout.Count
}

func (s *Store) Layout() *scene.Layout {
	return s.layout
}

// GetTransform returns the current render transform of particle i
func (s *Store) GetTransform(i int) Transform {
	return Transform{
		Position: s.pos[i],
		Rotation: s.rotation[i],
		Scale:    s.layout.Scale[i],
	}
}

// GetColor returns the current interpolated color of particle i
func (s *Store) GetColor(i int) colorful.Color {
	return s.color[i]
}

// GetColorRGB converts the current color to 8-bit channels for the
// terminal cell
func (s *Store) GetColorRGB(i int) core.RGB {
	c := s.color[i]
	return core.RGB{
		R: uint8(vmath.Clamp01(c.R) * 255),
		G: uint8(vmath.Clamp01(c.G) * 255),
		B: uint8(vmath.Clamp01(c.B) * 255),
	}
}

func (s *Store) Kind(i int) core.Kind {
	return s.layout.Kind[i]
}

func (s *Store) Halo(i int) bool {
	return s.layout.Halo[i]
}
