package render

import (
	"math"
	"testing"

	"github.com/happyletty/particle/vmath"
)

func TestProjectCentersOrigin(t *testing.T) {
	c := NewCamera(0)
	c.Pitch = 0

	cx, cy, depth, ok := c.Project(vmath.Vec3{}, 120, 40)
	if !ok {
		t.Fatal("origin must be visible")
	}
	if math.Abs(cx-60) > 0.01 || math.Abs(cy-20) > 0.01 {
		t.Errorf("origin projected to (%.2f, %.2f), want screen center", cx, cy)
	}
	if math.Abs(depth-c.Distance) > 0.01 {
		t.Errorf("origin depth = %.2f, want camera distance %.2f", depth, c.Distance)
	}
}

func TestProjectRejectsBehindCamera(t *testing.T) {
	c := NewCamera(0)
	c.Pitch = 0

	behind := vmath.Vec3{Z: -c.Distance - 1}
	if _, _, _, ok := c.Project(behind, 120, 40); ok {
		t.Error("point behind the near plane must be culled")
	}
}

func TestProjectNearerIsLarger(t *testing.T) {
	c := NewCamera(0)
	c.Pitch = 0

	near := vmath.Vec3{X: 1, Z: -5}
	far := vmath.Vec3{X: 1, Z: 5}

	nx, _, _, _ := c.Project(near, 120, 40)
	fx, _, _, _ := c.Project(far, 120, 40)
	if nx-60 <= fx-60 {
		t.Errorf("near offset %.2f should exceed far offset %.2f", nx-60, fx-60)
	}
}

func TestProjectHigherYIsLowerRow(t *testing.T) {
	c := NewCamera(0)
	c.Pitch = 0

	_, upper, _, _ := c.Project(vmath.Vec3{Y: 2}, 120, 40)
	_, lower, _, _ := c.Project(vmath.Vec3{Y: -2}, 120, 40)
	if upper >= lower {
		t.Errorf("world +Y row %.2f should be above world -Y row %.2f", upper, lower)
	}
}

func TestYawRotatesProjection(t *testing.T) {
	c := NewCamera(1.0)
	c.Pitch = 0

	p := vmath.Vec3{X: 3}
	x0, _, _, _ := c.Project(p, 120, 40)
	c.Update(math.Pi / 2)
	x1, _, _, _ := c.Project(p, 120, 40)

	if math.Abs(x0-x1) < 1 {
		t.Errorf("quarter-turn yaw barely moved projection: %.2f -> %.2f", x0, x1)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewCamera(0)
	c.Zoom(-1000)
	if c.Distance < 8 {
		t.Errorf("zoom-in passed lower clamp: %.2f", c.Distance)
	}
	c.Zoom(1000)
	if c.Distance > 80 {
		t.Errorf("zoom-out passed upper clamp: %.2f", c.Distance)
	}
}

func TestBasisOrthonormal(t *testing.T) {
	c := NewCamera(0)
	c.Yaw = 0.7
	c.Pitch = 0.3

	b := c.Basis()
	for name, v := range map[string]vmath.Vec3{"right": b.Right, "up": b.Up, "forward": b.Forward} {
		if math.Abs(vmath.V3Mag(v)-1) > 1e-9 {
			t.Errorf("%s axis not unit length: %v", name, v)
		}
	}
	if d := vmath.V3Dot(b.Right, b.Up); math.Abs(d) > 1e-9 {
		t.Errorf("right and up not orthogonal: dot = %v", d)
	}
	if d := vmath.V3Dot(b.Right, b.Forward); math.Abs(d) > 1e-9 {
		t.Errorf("right and forward not orthogonal: dot = %v", d)
	}
}

func TestBasisInvertsViewRotation(t *testing.T) {
	// Pushing each basis axis back through the view transform must
	// land exactly on the camera-space axes, so meteors spawned along
	// the basis track the live view at any pose
	c := NewCamera(0)
	c.Yaw = 0.7
	c.Pitch = 0.25

	b := c.Basis()
	checks := []struct {
		name string
		axis vmath.Vec3
		want vmath.Vec3
	}{
		{"right", b.Right, vmath.Vec3{X: 1}},
		{"up", b.Up, vmath.Vec3{Y: 1}},
		{"forward", b.Forward, vmath.Vec3{Z: 1}},
	}
	for _, tc := range checks {
		got := c.view(tc.axis)
		got.Z -= c.Distance
		if math.Abs(got.X-tc.want.X) > 1e-9 ||
			math.Abs(got.Y-tc.want.Y) > 1e-9 ||
			math.Abs(got.Z-tc.want.Z) > 1e-9 {
			t.Errorf("%s axis maps to %v in view space, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBasisIdentityPose(t *testing.T) {
	c := NewCamera(0)
	c.Yaw = 0
	c.Pitch = 0

	b := c.Basis()
	if math.Abs(b.Right.X-1) > 1e-9 || math.Abs(b.Up.Y-1) > 1e-9 || math.Abs(b.Forward.Z-1) > 1e-9 {
		t.Errorf("identity pose basis wrong: right=%v up=%v forward=%v", b.Right, b.Up, b.Forward)
	}
}
