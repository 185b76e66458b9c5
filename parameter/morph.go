package parameter

// Particle pool
const (
	// ParticleCount is the fixed pool size; no particle is created or
	// destroyed after scene construction
	ParticleCount = 6200

	// ParticleKindCount is the number of instanced-geometry buckets a
	// particle can be routed into (closed tag set)
	ParticleKindCount = 5

	// ParticleScaleMin/Max bound the random base size baked in at creation
	ParticleScaleMin = 0.6
	ParticleScaleMax = 1.4

	// ParticleSpinMax is the per-axis magnitude cap of the fixed
	// per-particle rotation velocity (radians/frame)
	ParticleSpinMax = 0.02
)

// Morph engine
const (
	// MorphSmoothingRate drives the exponential approach toward the
	// active target; half-life is ln(2)/rate seconds
	MorphSmoothingRate = 2.5

	// MorphMaxDelta caps a single frame's delta time so a stalled
	// frame cannot snap particles onto their targets
	MorphMaxDelta = 0.1

	// SceneSpinRate is the slow whole-system rotation around the
	// vertical axis (radians/sec), applied at the render transform
	SceneSpinRate = 0.12
)
