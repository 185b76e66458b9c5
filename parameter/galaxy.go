package parameter

// Galaxy shape
const (
	// GalaxyRadius is the disc radius in world units
	GalaxyRadius = 10.0

	// GalaxyBranchCount is the number of spiral arms; particles are
	// assigned round-robin by index
	GalaxyBranchCount = 5

	// GalaxySpiralPitch is the angular twist per unit radius (radians)
	GalaxySpiralPitch = 0.45

	// GalaxyDensityPower biases mass toward the core: radius = R * t^power
	GalaxyDensityPower = 1.2

	// GalaxySpreadBase/Gain control the randomized jitter that widens
	// the arms with radius
	GalaxySpreadBase = 0.25
	GalaxySpreadGain = 0.12

	// GalaxyLiftBase is the vertical jitter magnitude at the core; it
	// shrinks toward the galactic plane as radius grows
	GalaxyLiftBase = 1.1

	// GalaxyCoreRadius / GalaxyDustRadius split the disc into the
	// core / warm-dust / blue-disc color bands
	GalaxyCoreRadius = 2.2
	GalaxyDustRadius = 6.0

	// GalaxyHaloFraction of particles gets the additive glow overlay
	GalaxyHaloFraction = 0.1
)
