package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// generateGalaxy fills the galaxy targets: a multi-arm logarithmic
// spiral with mass biased toward the core and arm jitter widening
// with radius. Vertical jitter collapses toward the galactic plane
// at the rim, which is what gives the disc its lens profile.
func generateGalaxy(l *Layout, cfg *config.Config, rng *vmath.FastRand) {
	g := cfg.Galaxy
	branchStep := 2 * math.Pi / float64(g.BranchCount)

	for i := 0; i < l.Count; i++ {
		t := rng.Float64()
		radius := g.Radius * math.Pow(t, g.DensityPower)

		branchAngle := float64(i%g.BranchCount) * branchStep
		spread := rng.Signed(parameter.GalaxySpreadBase + parameter.GalaxySpreadGain*radius)
		angle := branchAngle + radius*g.SpiralPitch + spread

		rim := radius / g.Radius
		lift := rng.Signed(parameter.GalaxyLiftBase * (1 - rim*0.85))

		l.TargetPos[core.ShapeGalaxy][i] = vmath.Vec3{
			X: math.Cos(angle) * radius,
			Y: lift,
			Z: math.Sin(angle) * radius,
		}
		l.TargetColor[core.ShapeGalaxy][i] = galaxyColor(radius, rng)
	}
}

// galaxyColor picks the radius band and blends between its anchors
func galaxyColor(radius float64, rng *vmath.FastRand) colorful.Color {
	switch {
	case radius < parameter.GalaxyCoreRadius:
		return blend(galaxyCoreA, galaxyCoreB, rng)
	case radius < parameter.GalaxyDustRadius:
		return blend(galaxyDustA, galaxyDustB, rng)
	default:
		return blend(galaxyDiscA, galaxyDiscB, rng)
	}
}
