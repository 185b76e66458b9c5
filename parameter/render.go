package parameter

// Render adapter
const (
	// RenderFocalLength of the perspective projection
	RenderFocalLength = 14.0

	// RenderCameraDistance is the default camera offset from origin
	RenderCameraDistance = 26.0

	// RenderCellAspect doubles horizontal extent for 1:2 terminal cells
	RenderCellAspect = 2.0

	// RenderTargetFPS drives the frame ticker
	RenderTargetFPS = 30

	// RenderHUDRows reserved at the bottom for status text
	RenderHUDRows = 2

	// HaloBoost multiplies brightness for halo/highlight particles
	HaloBoost = 1.6

	// HeroHaloRadius is the screen-space glow radius around the hero
	// particle (its body renders at zero scale, only the halo shows)
	HeroHaloRadius = 2.2
)
