package engine

import (
	"math"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// mote is one dust particle: a fixed circular orbit around the origin
// with a sinusoidal vertical bob keyed to the global clock
type mote struct {
	radius  float64
	angVel  float64
	phase   float64
	baseY   float64
	bobSeed float64
}

// DustField animates independent ambient motes. It never reads shape
// state; the field persists identically through morphs.
type DustField struct {
	motes []mote
	clock float64
}

func NewDustField(cfg *config.Config, rng *vmath.FastRand) *DustField {
	d := &DustField{
		motes: make([]mote, cfg.Dust.Count),
	}
	for i := range d.motes {
		d.motes[i] = mote{
			radius:  rng.Range(cfg.Dust.RadiusMin, cfg.Dust.RadiusMax),
			angVel:  rng.Range(parameter.DustAngularVelMin, parameter.DustAngularVelMax),
			phase:   rng.Range(0, 2*math.Pi),
			baseY:   rng.Signed(parameter.DustSpread),
			bobSeed: rng.Range(0, 2*math.Pi),
		}
	}
	return d
}

func (d *DustField) Name() string {
	return "dust"
}

func (d *DustField) Priority() int {
	return parameter.PriorityDust
}

func (d *DustField) Update(dt float64) {
	d.clock += dt
}

func (d *DustField) Count() int {
	return len(d.motes)
}

// Position returns mote i's current orbit point
func (d *DustField) Position(i int) vmath.Vec3 {
	m := &d.motes[i]
	angle := m.phase + m.angVel*d.clock
	bob := parameter.DustBobAmplitude * math.Sin(2*math.Pi*parameter.DustBobFrequency*d.clock+m.bobSeed)
	return vmath.Vec3{
		X: math.Cos(angle) * m.radius,
		Y: m.baseY + bob,
		Z: math.Sin(angle) * m.radius,
	}
}
