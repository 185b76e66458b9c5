package engine

import (
	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

// CameraBasis is the live view frame the spawner aims across, so
// trails always enter from off-screen regardless of scene rotation
type CameraBasis struct {
	Right, Up, Forward vmath.Vec3
}

// BasisProvider is polled at spawn time; the render layer supplies it
type BasisProvider func() CameraBasis

// Meteor is one reusable slot. A slot is free when Active is false;
// the controller never assigns an occupied slot.
type Meteor struct {
	Active bool
	Pos    vmath.Vec3
	Dir    vmath.Vec3
	Speed  float64
	Life   float64
	Age    float64
}

// MeteorSpawner schedules bursts of 1-3 meteors separated by random
// idle intervals over a fixed slot pool
type MeteorSpawner struct {
	cfg   config.MeteorConfig
	rng   *vmath.FastRand
	basis BasisProvider

	pool      []Meteor
	clock     float64
	nextBurst float64
}

func NewMeteorSpawner(cfg *config.Config, rng *vmath.FastRand, basis BasisProvider) *MeteorSpawner {
	m := &MeteorSpawner{
		cfg:   cfg.Meteor,
		rng:   rng,
		basis: basis,
		pool:  make([]Meteor, cfg.Meteor.PoolSize),
	}
	m.nextBurst = m.rng.Range(m.cfg.IdleMinS, m.cfg.IdleMaxS)
	return m
}

func (m *MeteorSpawner) Name() string {
	return "meteor"
}

func (m *MeteorSpawner) Priority() int {
	return parameter.PriorityMeteor
}

func (m *MeteorSpawner) Update(dt float64) {
	m.clock += dt

	for i := range m.pool {
		mt := &m.pool[i]
		if !mt.Active {
			continue
		}
		mt.Age += dt
		if mt.Age >= mt.Life {
			mt.Active = false
			continue
		}
		mt.Pos = vmath.V3Add(mt.Pos, vmath.V3Scale(mt.Dir, mt.Speed*dt))
	}

	if m.clock >= m.nextBurst {
		m.spawnBurst()
		m.nextBurst = m.clock + m.rng.Range(m.cfg.IdleMinS, m.cfg.IdleMaxS)
	}
}

// spawnBurst fills up to burst-count free slots; when the pool is
// saturated the remainder of the burst is dropped, never queued
func (m *MeteorSpawner) spawnBurst() {
	want := m.cfg.BurstMin + m.rng.Intn(m.cfg.BurstMax-m.cfg.BurstMin+1)
	for i := range m.pool {
		if want == 0 {
			return
		}
		if m.pool[i].Active {
			continue
		}
		m.pool[i] = m.newMeteor()
		want--
	}
}

// newMeteor spawns outside the frustum along the camera's right axis
// and aims across the view with a downward bias
func (m *MeteorSpawner) newMeteor() Meteor {
	b := m.basis()

	side := 1.0
	if m.rng.Bool(0.5) {
		side = -1.0
	}

	start := vmath.V3Add(
		vmath.V3Scale(b.Right, side*parameter.MeteorSpawnDistance),
		vmath.V3Scale(b.Up, m.rng.Range(2.0, parameter.MeteorSpawnDistance*0.5)),
	)

	dir := vmath.V3Normalize(vmath.V3Add(
		vmath.V3Scale(b.Right, -side),
		vmath.V3Add(
			vmath.V3Scale(b.Up, m.rng.Range(-0.6, -0.2)),
			vmath.V3Scale(b.Forward, m.rng.Signed(0.2)),
		),
	))

	return Meteor{
		Active: true,
		Pos:    start,
		Dir:    dir,
		Speed:  m.rng.Range(m.cfg.SpeedMin, m.cfg.SpeedMax),
		Life:   m.rng.Range(parameter.MeteorLifeMin, parameter.MeteorLifeMax),
	}
}

func (m *MeteorSpawner) PoolSize() int {
	return len(m.pool)
}

// ActiveCount reports how many slots are currently occupied
func (m *MeteorSpawner) ActiveCount() int {
	n := 0
	for i := range m.pool {
		if m.pool[i].Active {
			n++
		}
	}
	return n
}

// Slot exposes slot i read-only for the render layer
func (m *MeteorSpawner) Slot(i int) Meteor {
	return m.pool[i]
}

// Brightness ramps linearly to zero over the fade window at the end
// of a meteor's life
func (m *MeteorSpawner) Brightness(i int) float64 {
	mt := &m.pool[i]
	if !mt.Active {
		return 0
	}
	remaining := mt.Life - mt.Age
	if remaining >= m.cfg.FadeS {
		return 1
	}
	if m.cfg.FadeS <= 0 {
		return 1
	}
	return vmath.Clamp01(remaining / m.cfg.FadeS)
}
