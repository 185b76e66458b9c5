package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/engine"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/scene"
	"github.com/happyletty/particle/vmath"
)

// Renderer is the read-only consumer of the particle store and the
// ambient layers. It owns the camera and the frame buffer; it never
// mutates simulation state.
type Renderer struct {
	store    *engine.Store
	dust     *engine.DustField
	meteors  *engine.MeteorSpawner
	selector *engine.ShapeSelector
	camera   *Camera

	buf    *Buffer
	width  int
	height int
}

func NewRenderer(store *engine.Store, dust *engine.DustField, meteors *engine.MeteorSpawner,
	selector *engine.ShapeSelector, camera *Camera, width, height int) *Renderer {
	return &Renderer{
		store:    store,
		dust:     dust,
		meteors:  meteors,
		selector: selector,
		camera:   camera,
		buf:      NewBuffer(width, height),
		width:    width,
		height:   height,
	}
}

func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.buf.Resize(width, height)
}

func (r *Renderer) Camera() *Camera {
	return r.camera
}

func (r *Renderer) viewHeight() int {
	h := r.height - parameter.RenderHUDRows
	if h < 1 {
		h = 1
	}
	return h
}

// Frame composes and flushes one frame
func (r *Renderer) Frame(screen tcell.Screen, fps float64, paused bool) {
	r.buf.Clear()

	viewH := r.viewHeight()
	r.drawDust(viewH)
	r.drawParticles(viewH)
	r.drawMeteors(viewH)
	r.drawHUD(fps, paused)

	r.buf.Flush(screen)
}

func (r *Renderer) drawDust(viewH int) {
	fg := core.RGB{R: 70, G: 75, B: 95}
	for i := 0; i < r.dust.Count(); i++ {
		cx, cy, depth, ok := r.camera.Project(r.dust.Position(i), r.width, viewH)
		if !ok {
			continue
		}
		r.buf.Set(int(cx), int(cy), '·', fg, depth)
	}
}

func (r *Renderer) drawParticles(viewH int) {
	zNear := r.camera.Distance * 0.4
	zFar := r.camera.Distance * 1.8

	for i := 0; i < r.store.Count(); i++ {
		tr := r.store.GetTransform(i)

		if i == scene.HeroIndex {
			r.drawHeroHalo(tr.Position, viewH)
			continue
		}
		if tr.Scale <= 0 {
			continue
		}

		cx, cy, depth, ok := r.camera.Project(tr.Position, r.width, viewH)
		if !ok {
			continue
		}

		// Depth cue: nearer particles render brighter
		t := clampUnit((depth - zNear) / (zFar - zNear))
		bright := 1.0 - t*0.55

		fg := r.store.GetColorRGB(i)
		if r.store.Halo(i) {
			bright *= parameter.HaloBoost
		}
		fg = scaleRGB(fg, bright)

		size := tr.Scale * parameter.RenderFocalLength / depth
		ch := r.store.Kind(i).Rune()
		if size < 0.55 {
			ch = '·'
		}

		x, y := int(cx), int(cy)
		r.buf.Set(x, y, ch, fg, depth)

		// Halo particles bleed light into neighbors
		if r.store.Halo(i) && size >= 0.55 {
			glow := fg.Scale(0.35)
			r.buf.Add(x-1, y, glow)
			r.buf.Add(x+1, y, glow)
		}
	}
}

// drawHeroHalo renders the focal glow keyed to the hero transform;
// the hero body itself stays invisible
func (r *Renderer) drawHeroHalo(pos vmath.Vec3, viewH int) {
	cx, cy, depth, ok := r.camera.Project(pos, r.width, viewH)
	if !ok {
		return
	}

	radius := parameter.HeroHaloRadius * parameter.RenderFocalLength / depth
	fg := r.store.GetColorRGB(scene.HeroIndex)

	rx := int(radius*parameter.RenderCellAspect) + 1
	ry := int(radius) + 1
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / (radius * parameter.RenderCellAspect)
			ny := float64(dy) / radius
			d := nx*nx + ny*ny
			if d > 1 {
				continue
			}
			falloff := (1 - d) * 0.8
			r.buf.Add(int(cx)+dx, int(cy)+dy, scaleRGB(fg, falloff))
		}
	}
}

func (r *Renderer) drawMeteors(viewH int) {
	for i := 0; i < r.meteors.PoolSize(); i++ {
		mt := r.meteors.Slot(i)
		if !mt.Active {
			continue
		}
		bright := r.meteors.Brightness(i)
		fg := scaleRGB(core.RGB{R: 255, G: 240, B: 210}, bright)

		cx, cy, depth, ok := r.camera.Project(mt.Pos, r.width, viewH)
		if ok {
			r.buf.Set(int(cx), int(cy), '*', fg, depth)
		}

		// Short additive trail behind the head
		for k := 1; k <= 4; k++ {
			tail := vmath.V3Sub(mt.Pos, vmath.V3Scale(mt.Dir, float64(k)*0.6))
			tx, ty, _, tok := r.camera.Project(tail, r.width, viewH)
			if !tok {
				continue
			}
			r.buf.Add(int(tx), int(ty), fg.Scale(1.0/float64(k+1)))
		}
	}
}

func (r *Renderer) drawHUD(fps float64, paused bool) {
	statusY := r.height - 2
	controlY := r.height - 1
	dim := core.RGB{R: 100, G: 100, B: 110}

	gesture := "gesture:ok"
	if !r.selector.Available() {
		gesture = "gesture:off (manual only)"
	}
	status := fmt.Sprintf("shape:%s  particles:%d  fps:%.0f  %s",
		r.selector.Current(), r.store.Count(), fps, gesture)
	if paused {
		status += "  [PAUSED]"
	}
	r.buf.Text(1, statusY, status, dim)
	r.buf.Text(1, controlY, "click/t:toggle  g:pinch  up/dn:tilt  +/-:zoom  space:pause  q:quit", dim)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleRGB(c core.RGB, factor float64) core.RGB {
	if factor <= 1 {
		return c.Scale(factor)
	}
	return core.RGB{
		R: uint8(min(int(float64(c.R)*factor), 255)),
		G: uint8(min(int(float64(c.G)*factor), 255)),
		B: uint8(min(int(float64(c.B)*factor), 255)),
	}
}
