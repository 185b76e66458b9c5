package engine

import (
	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// ShapeSource is the selector surface the morph system polls once per
// frame, last-value-wins
type ShapeSource interface {
	Current() core.Shape
}

// MorphSystem moves every particle's current position and color toward
// the live target by exponential smoothing and advances rotation.
// There is no settled state; the engine runs for the life of the view.
type MorphSystem struct {
	store    *Store
	selector ShapeSource
	rate     float64
}

func NewMorphSystem(store *Store, selector ShapeSource, smoothingRate float64) *MorphSystem {
	return &MorphSystem{
		store:    store,
		selector: selector,
		rate:     smoothingRate,
	}
}

func (m *MorphSystem) Name() string {
	return "morph"
}

func (m *MorphSystem) Priority() int {
	return parameter.PriorityMorph
}

// Update polls the selector and advances one frame
func (m *MorphSystem) Update(dt float64) {
	m.Advance(dt, m.selector.Current())
}

// Advance is the per-frame contract: every current value moves onto
// the convex path toward the selected shape's target, rotation
// accumulates its fixed per-particle velocity regardless of shape.
// A stalled frame is capped so particles never snap.
func (m *MorphSystem) Advance(dt float64, shape core.Shape) {
	if dt > parameter.MorphMaxDelta {
		dt = parameter.MorphMaxDelta
	}
	f := vmath.SmoothFactor(dt, m.rate)

	l := m.store.layout
	targetPos := l.TargetPos[shape]
	targetColor := l.TargetColor[shape]

	for i := 0; i < l.Count; i++ {
		m.store.pos[i] = vmath.V3Lerp(m.store.pos[i], targetPos[i], f)

		c := &m.store.color[i]
		tc := targetColor[i]
		c.R += (tc.R - c.R) * f
		c.G += (tc.G - c.G) * f
		c.B += (tc.B - c.B) * f

		m.store.rotation[i] = vmath.EAdd(m.store.rotation[i], l.SpinVel[i])
	}
}
