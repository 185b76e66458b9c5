// Package scene builds the static per-particle dataset both shapes
// morph between. Generation runs once at construction; the morph
// engine only ever mutates its own copies of the current values.
package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// HeroIndex is the designated focal particle. Its galaxy target is
// forced to the origin and its scale to zero; the render layer keys
// the halo effect to its transform instead of drawing its body.
const HeroIndex = 0

// Bands records the tree generator's index partition. Ranges are
// contiguous, disjoint and cover [0, Count).
type Bands struct {
	StarEnd    int // star topper occupies [0, StarEnd)
	GarlandEnd int // garland occupies [StarEnd, GarlandEnd)
}

// Band is a structural generation rule tag
type Band uint8

const (
	BandStar Band = iota
	BandGarland
	BandBody
)

func (b Bands) Of(i int) Band {
	switch {
	case i < b.StarEnd:
		return BandStar
	case i < b.GarlandEnd:
		return BandGarland
	default:
		return BandBody
	}
}

// Layout is the complete static dataset, stored as parallel arrays
// indexed by particle id for cache-friendly per-frame reads
type Layout struct {
	Count int
	Bands Bands

	// Dual targets, indexed [shape][particle]
	TargetPos   [core.ShapeCount][]vmath.Vec3
	TargetColor [core.ShapeCount][]colorful.Color

	// Immutable per-particle attributes baked at creation
	Scale   []float64
	Kind    []core.Kind
	SpinVel []vmath.Euler

	// Overlay flags for the effect layers
	Halo      []bool // additive glow overlay (~10% subsample + highlights)
	Highlight []bool // garland ornaments with enforced index spacing
}

// Generate computes every particle's dual targets, colors and baked
// attributes. Pure with respect to the passed RNG: the same seed and
// config regenerate an identical layout.
func Generate(cfg *config.Config, rng *vmath.FastRand) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layout generation rejected config: %w", err)
	}

	n := cfg.Particles.Count
	l := &Layout{
		Count: n,
		Bands: Bands{
			StarEnd:    cfg.Tree.StarCount,
			GarlandEnd: cfg.Tree.StarCount + cfg.Tree.GarlandCount,
		},
		Scale:     make([]float64, n),
		Kind:      make([]core.Kind, n),
		SpinVel:   make([]vmath.Euler, n),
		Halo:      make([]bool, n),
		Highlight: make([]bool, n),
	}
	for s := 0; s < core.ShapeCount; s++ {
		l.TargetPos[s] = make([]vmath.Vec3, n)
		l.TargetColor[s] = make([]colorful.Color, n)
	}

	// Baked attributes shared by both shapes
	for i := 0; i < n; i++ {
		l.Kind[i] = core.Kind(rng.Intn(parameter.ParticleKindCount))
		l.Scale[i] = rng.Range(parameter.ParticleScaleMin, parameter.ParticleScaleMax)
		l.SpinVel[i] = vmath.Euler{
			X: rng.Signed(parameter.ParticleSpinMax),
			Y: rng.Signed(parameter.ParticleSpinMax),
			Z: rng.Signed(parameter.ParticleSpinMax),
		}
	}

	generateGalaxy(l, cfg, rng)
	generateTree(l, cfg, rng)

	// Glare overlay: random subsample plus every flagged highlight
	for i := 0; i < n; i++ {
		l.Halo[i] = rng.Bool(cfg.Galaxy.HaloFraction) || l.Highlight[i]
	}

	// Hero overrides: centered morph origin, invisible body
	l.TargetPos[core.ShapeGalaxy][HeroIndex] = vmath.Vec3{}
	l.Scale[HeroIndex] = 0

	return l, nil
}

// HaloIndices returns the particle ids carrying the glow overlay
func (l *Layout) HaloIndices() []int {
	idx := make([]int, 0, l.Count/8)
	for i, h := range l.Halo {
		if h {
			idx = append(idx, i)
		}
	}
	return idx
}
