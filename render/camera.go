package render

import (
	"math"

	"github.com/happyletty/particle/engine"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// Camera orbits the origin. The whole-system rotation is the slow
// constant yaw drift applied here, decoupled from the per-particle
// spin inside the store.
type Camera struct {
	Yaw      float64
	Pitch    float64
	Distance float64

	spinRate float64
}

func NewCamera(spinRate float64) *Camera {
	return &Camera{
		Pitch:    0.25,
		Distance: parameter.RenderCameraDistance,
		spinRate: spinRate,
	}
}

// Update advances the aggregate scene rotation
func (c *Camera) Update(dt float64) {
	c.Yaw += c.spinRate * dt
}

// Zoom moves the camera along its view axis, clamped to sane bounds
func (c *Camera) Zoom(delta float64) {
	c.Distance = vmath.Clamp(c.Distance+delta, 8, 80)
}

// Tilt adjusts pitch, clamped short of the poles
func (c *Camera) Tilt(delta float64) {
	c.Pitch = vmath.Clamp(c.Pitch+delta, -1.2, 1.2)
}

// view transforms a world point into camera space
func (c *Camera) view(p vmath.Vec3) vmath.Vec3 {
	p = vmath.V3RotateY(p, c.Yaw)

	sin, cos := math.Sincos(c.Pitch)
	p = vmath.Vec3{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}

	p.Z += c.Distance
	return p
}

// Project maps a world point to screen cell coordinates. The returned
// depth is camera-space Z for painter ordering; ok is false behind
// the near plane.
func (c *Camera) Project(p vmath.Vec3, screenW, viewH int) (cx, cy, depth float64, ok bool) {
	v := c.view(p)
	if v.Z < 0.5 {
		return 0, 0, 0, false
	}

	invZ := parameter.RenderFocalLength / v.Z
	scale := float64(viewH) * 0.42

	cx = float64(screenW)/2.0 + v.X*invZ*scale*parameter.RenderCellAspect/2.0
	cy = float64(viewH)/2.0 - v.Y*invZ*scale/2.0
	return cx, cy, v.Z, true
}

// Basis returns the world-space view frame for effect spawners
func (c *Camera) Basis() engine.CameraBasis {
	// Camera space axes pulled back through the inverse rotations
	right := vmath.V3RotateY(vmath.Vec3{X: 1}, -c.Yaw)

	sin, cos := math.Sincos(c.Pitch)
	up := vmath.Vec3{Y: cos, Z: -sin}
	up = vmath.V3RotateY(up, -c.Yaw)

	forward := vmath.V3Cross(right, up)
	return engine.CameraBasis{Right: right, Up: up, Forward: forward}
}
