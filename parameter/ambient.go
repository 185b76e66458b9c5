package parameter

import (
	"time"
)

// Dust field
const (
	// DustCount is the mote pool size
	DustCount = 400

	// DustRadiusMin/Max bound each mote's fixed orbit radius
	DustRadiusMin = 4.0
	DustRadiusMax = 16.0

	// DustAngularVelMin/Max bound the fixed orbit speed (radians/sec)
	DustAngularVelMin = 0.05
	DustAngularVelMax = 0.35

	// DustBobAmplitude/Frequency shape the sinusoidal vertical bob,
	// keyed to global clock time
	DustBobAmplitude = 0.6
	DustBobFrequency = 0.4

	// DustSpread is the random vertical offset range of a mote's orbit plane
	DustSpread = 5.0
)

// Meteor spawner
const (
	// MeteorPoolSize is the fixed number of reusable meteor slots
	MeteorPoolSize = 6

	// MeteorBurstMin/Max meteors are scheduled per burst
	MeteorBurstMin = 1
	MeteorBurstMax = 3

	// MeteorIdleMin/Max is the inter-burst pause range
	MeteorIdleMin = 2 * time.Second
	MeteorIdleMax = 7 * time.Second

	// MeteorLifeMin/Max is the total lifetime range of one meteor
	MeteorLifeMin = 1.2
	MeteorLifeMax = 2.6

	// MeteorFadeDuration is the tail window over which brightness
	// ramps linearly to zero before the slot is freed
	MeteorFadeDuration = 0.6

	// MeteorSpeedMin/Max in world units/sec
	MeteorSpeedMin = 14.0
	MeteorSpeedMax = 26.0

	// MeteorSpawnDistance pushes the spawn point outside the view
	// frustum along the camera basis so trails enter from off-screen
	MeteorSpawnDistance = 24.0
)
