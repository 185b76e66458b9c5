package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/happyletty/particle/vmath"
)

// Band-anchor colors. Each generated particle blends between the two
// anchors of its band with a per-particle random fraction, which is
// what produces the core-to-rim gradient instead of flat bands.
var (
	galaxyCoreA = colorful.Color{R: 1.0, G: 0.95, B: 0.78}
	galaxyCoreB = colorful.Color{R: 1.0, G: 0.82, B: 0.55}
	galaxyDustA = colorful.Color{R: 1.0, G: 0.62, B: 0.36}
	galaxyDustB = colorful.Color{R: 0.86, G: 0.45, B: 0.38}
	galaxyDiscA = colorful.Color{R: 0.36, G: 0.55, B: 1.0}
	galaxyDiscB = colorful.Color{R: 0.24, G: 0.40, B: 0.80}

	starGold  = colorful.Color{R: 1.0, G: 0.82, B: 0.49}
	starWhite = colorful.Color{R: 1.0, G: 1.0, B: 0.96}

	garlandHighlight = colorful.Color{R: 1.0, G: 0.35, B: 0.35}
	garlandWarm      = colorful.Color{R: 1.0, G: 0.82, B: 0.49}
	garlandCool      = colorful.Color{R: 0.49, G: 0.85, B: 1.0}

	treeGreenA = colorful.Color{R: 0.12, G: 0.48, B: 0.24}
	treeGreenB = colorful.Color{R: 0.18, G: 0.63, B: 0.32}

	bodyOrnaments = []colorful.Color{
		{R: 0.90, G: 0.20, B: 0.22}, // red
		{R: 1.0, G: 0.82, B: 0.49},  // gold
		{R: 0.98, G: 0.98, B: 0.95}, // white
	}
)

// blend draws a random fraction and interpolates perceptually between
// the two anchors of a band
func blend(a, b colorful.Color, rng *vmath.FastRand) colorful.Color {
	return a.BlendLuv(b, rng.Float64())
}
