package scene

import (
	"math"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// generateTree fills the tree targets. The index space is partitioned
// in order into star topper, garland and body bands; each band has
// its own placement rule but shares the particle record shape.
func generateTree(l *Layout, cfg *config.Config, rng *vmath.FastRand) {
	generateStar(l, cfg, rng)
	generateGarland(l, cfg, rng)
	generateBody(l, cfg, rng)
}

// apexY is the vertical position of the tree tip
func apexY(cfg *config.Config) float64 {
	return parameter.TreeBaseY + cfg.Tree.Height
}

// starBoundary is the polar star-polygon outline: outer radius at
// spike centers, inner radius between them, linear in between
func starBoundary(angle float64, spikes int, inner, outer float64) float64 {
	sector := math.Pi / float64(spikes)
	phi := math.Mod(angle, 2*sector)
	if phi < 0 {
		phi += 2 * sector
	}
	// Distance from the nearest spike center, normalized to [0,1]
	d := math.Abs(phi-sector) / sector
	return inner + (outer-inner)*d
}

// generateStar places the topper band: hero at the apex, the rest
// area-uniform inside a 5-point star slab facing the camera
func generateStar(l *Layout, cfg *config.Config, rng *vmath.FastRand) {
	top := apexY(cfg)

	l.TargetPos[core.ShapeTree][HeroIndex] = vmath.Vec3{Y: top}
	l.TargetColor[core.ShapeTree][HeroIndex] = starWhite

	for i := 1; i < l.Bands.StarEnd; i++ {
		angle := rng.Range(0, 2*math.Pi)
		rMax := starBoundary(angle, parameter.StarSpikes, parameter.StarInnerRadius, parameter.StarOuterRadius)
		r := rMax * math.Sqrt(rng.Float64())

		l.TargetPos[core.ShapeTree][i] = vmath.Vec3{
			X: math.Cos(angle) * r,
			Y: top + math.Sin(angle)*r,
			Z: rng.Signed(parameter.StarThickness / 2),
		}
		l.TargetColor[core.ShapeTree][i] = blend(starGold, starWhite, rng)

		// Size gradient: finest at the spike tips
		l.Scale[i] *= 1 - 0.5*(r/parameter.StarOuterRadius)
	}
}

// generateGarland winds the garland band down the cone on a spiral of
// fixed turn count with independent scatter per axis. Highlights are
// gap-enforced: a hard minimum index distance, not a probability tweak.
func generateGarland(l *Layout, cfg *config.Config, rng *vmath.FastRand) {
	count := l.Bands.GarlandEnd - l.Bands.StarEnd
	if count == 0 {
		return
	}

	lastHighlight := -cfg.Tree.HighlightGap
	for k := 0; k < count; k++ {
		i := l.Bands.StarEnd + k
		u := float64(k) / float64(count)

		angle := u*cfg.Tree.GarlandTurns*2*math.Pi + rng.Signed(parameter.GarlandScatterAngle)
		h := cfg.Tree.Height * (1 - u)
		h += rng.Signed(parameter.GarlandScatterHeight)
		h = vmath.Clamp(h, 0, cfg.Tree.Height)

		radius := cfg.Tree.Radius * (1 - h/cfg.Tree.Height)
		radius += rng.Signed(parameter.GarlandScatterRadius)
		if radius < 0 {
			radius = 0
		}

		l.TargetPos[core.ShapeTree][i] = vmath.Vec3{
			X: math.Cos(angle) * radius,
			Y: parameter.TreeBaseY + h,
			Z: math.Sin(angle) * radius,
		}

		if k-lastHighlight >= cfg.Tree.HighlightGap && rng.Bool(parameter.GarlandHighlightChance) {
			lastHighlight = k
			l.Highlight[i] = true
			l.TargetColor[core.ShapeTree][i] = garlandHighlight
			continue
		}

		// Non-highlight beads alternate the two ornament colors at half size
		if k%2 == 0 {
			l.TargetColor[core.ShapeTree][i] = garlandWarm
		} else {
			l.TargetColor[core.ShapeTree][i] = garlandCool
		}
		l.Scale[i] *= parameter.GarlandDimScale
	}
}

// generateBody fills the cone volume: random height, then area-uniform
// radius within that height's cross-section (sqrt avoids clustering at
// the trunk axis)
func generateBody(l *Layout, cfg *config.Config, rng *vmath.FastRand) {
	for i := l.Bands.GarlandEnd; i < l.Count; i++ {
		h := rng.Float64() * cfg.Tree.Height
		maxR := cfg.Tree.Radius * (1 - h/cfg.Tree.Height)
		r := maxR * math.Sqrt(rng.Float64())
		angle := rng.Range(0, 2*math.Pi)

		l.TargetPos[core.ShapeTree][i] = vmath.Vec3{
			X: math.Cos(angle) * r,
			Y: parameter.TreeBaseY + h,
			Z: math.Sin(angle) * r,
		}

		if rng.Bool(parameter.BodyOrnamentChance) {
			l.TargetColor[core.ShapeTree][i] = bodyOrnaments[rng.Intn(len(bodyOrnaments))]
		} else {
			l.TargetColor[core.ShapeTree][i] = blend(treeGreenA, treeGreenB, rng)
		}

		if maxR > 0 {
			l.Scale[i] *= 1 - parameter.BodyEdgeShrink*(r/maxR)
		}
	}
}
