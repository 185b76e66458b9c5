package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/happyletty/particle/parameter"
)

// Config bundles every tunable of the visualization. Decoding starts
// from the parameter package defaults, so keys absent from a YAML
// file keep the built-in values and a partial override file only
// lists what it changes.
type Config struct {
	Particles ParticleConfig `yaml:"particles"`
	Galaxy    GalaxyConfig   `yaml:"galaxy"`
	Tree      TreeConfig     `yaml:"tree"`
	Dust      DustConfig     `yaml:"dust"`
	Meteor    MeteorConfig   `yaml:"meteor"`
	Selector  SelectorConfig `yaml:"selector"`
}

// ParticleConfig covers the pool and the morph engine
type ParticleConfig struct {
	Count         int     `yaml:"count"`
	SmoothingRate float64 `yaml:"smoothingRate"`
	SceneSpinRate float64 `yaml:"sceneSpinRate"`
}

// GalaxyConfig parameterizes the spiral target generator
type GalaxyConfig struct {
	Radius       float64 `yaml:"radius"`
	BranchCount  int     `yaml:"branchCount"`
	SpiralPitch  float64 `yaml:"spiralPitch"`
	DensityPower float64 `yaml:"densityPower"`
	HaloFraction float64 `yaml:"haloFraction"`
}

// TreeConfig parameterizes the cone target generator and its bands
type TreeConfig struct {
	Height       float64 `yaml:"height"`
	Radius       float64 `yaml:"radius"`
	StarCount    int     `yaml:"starCount"`
	GarlandCount int     `yaml:"garlandCount"`
	GarlandTurns float64 `yaml:"garlandTurns"`
	HighlightGap int     `yaml:"highlightGap"`
}

// DustConfig parameterizes the orbiting mote field
type DustConfig struct {
	Count     int     `yaml:"count"`
	RadiusMin float64 `yaml:"radiusMin"`
	RadiusMax float64 `yaml:"radiusMax"`
}

// MeteorConfig parameterizes the pooled meteor spawner
type MeteorConfig struct {
	PoolSize  int     `yaml:"poolSize"`
	BurstMin  int     `yaml:"burstMin"`
	BurstMax  int     `yaml:"burstMax"`
	IdleMinS  float64 `yaml:"idleMinSeconds"`
	IdleMaxS  float64 `yaml:"idleMaxSeconds"`
	FadeS     float64 `yaml:"fadeSeconds"`
	SpeedMin  float64 `yaml:"speedMin"`
	SpeedMax  float64 `yaml:"speedMax"`
}

// SelectorConfig parameterizes the shape selector debounce
type SelectorConfig struct {
	GestureHoldMs      int `yaml:"gestureHoldMs"`
	ClickDragThreshold int `yaml:"clickDragThreshold"`
}

// Default returns the built-in tuning from the parameter package
func Default() *Config {
	return &Config{
		Particles: ParticleConfig{
			Count:         parameter.ParticleCount,
			SmoothingRate: parameter.MorphSmoothingRate,
			SceneSpinRate: parameter.SceneSpinRate,
		},
		Galaxy: GalaxyConfig{
			Radius:       parameter.GalaxyRadius,
			BranchCount:  parameter.GalaxyBranchCount,
			SpiralPitch:  parameter.GalaxySpiralPitch,
			DensityPower: parameter.GalaxyDensityPower,
			HaloFraction: parameter.GalaxyHaloFraction,
		},
		Tree: TreeConfig{
			Height:       parameter.TreeHeight,
			Radius:       parameter.TreeRadius,
			StarCount:    parameter.TreeStarCount,
			GarlandCount: parameter.TreeGarlandCount,
			GarlandTurns: parameter.GarlandTurns,
			HighlightGap: parameter.GarlandHighlightGap,
		},
		Dust: DustConfig{
			Count:     parameter.DustCount,
			RadiusMin: parameter.DustRadiusMin,
			RadiusMax: parameter.DustRadiusMax,
		},
		Meteor: MeteorConfig{
			PoolSize: parameter.MeteorPoolSize,
			BurstMin: parameter.MeteorBurstMin,
			BurstMax: parameter.MeteorBurstMax,
			IdleMinS: parameter.MeteorIdleMin.Seconds(),
			IdleMaxS: parameter.MeteorIdleMax.Seconds(),
			FadeS:    parameter.MeteorFadeDuration,
			SpeedMin: parameter.MeteorSpeedMin,
			SpeedMax: parameter.MeteorSpeedMax,
		},
		Selector: SelectorConfig{
			GestureHoldMs:      int(parameter.GestureHoldTime.Milliseconds()),
			ClickDragThreshold: parameter.ClickDragThreshold,
		},
	}
}

// Load reads a YAML override file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameter combinations the generators cannot honor
func (c *Config) Validate() error {
	if c.Particles.Count <= 0 {
		return fmt.Errorf("particles.count must be positive, got %d", c.Particles.Count)
	}
	if c.Particles.SmoothingRate <= 0 {
		return fmt.Errorf("particles.smoothingRate must be positive, got %v", c.Particles.SmoothingRate)
	}
	if c.Galaxy.Radius <= 0 {
		return fmt.Errorf("galaxy.radius must be positive, got %v", c.Galaxy.Radius)
	}
	if c.Galaxy.BranchCount <= 0 {
		return fmt.Errorf("galaxy.branchCount must be positive, got %d", c.Galaxy.BranchCount)
	}
	if c.Galaxy.HaloFraction < 0 || c.Galaxy.HaloFraction > 1 {
		return fmt.Errorf("galaxy.haloFraction must be in [0,1], got %v", c.Galaxy.HaloFraction)
	}
	if c.Tree.Height <= 0 || c.Tree.Radius <= 0 {
		return fmt.Errorf("tree dimensions must be positive, got height=%v radius=%v", c.Tree.Height, c.Tree.Radius)
	}
	if c.Tree.StarCount < 1 {
		return fmt.Errorf("tree.starCount must include the hero particle, got %d", c.Tree.StarCount)
	}
	if c.Tree.GarlandCount < 0 {
		return fmt.Errorf("tree.garlandCount must be non-negative, got %d", c.Tree.GarlandCount)
	}
	if c.Tree.StarCount+c.Tree.GarlandCount > c.Particles.Count {
		return fmt.Errorf("star (%d) + garland (%d) bands exceed particle count %d",
			c.Tree.StarCount, c.Tree.GarlandCount, c.Particles.Count)
	}
	if c.Tree.HighlightGap < 1 {
		return fmt.Errorf("tree.highlightGap must be at least 1, got %d", c.Tree.HighlightGap)
	}
	if c.Dust.Count < 0 {
		return fmt.Errorf("dust.count must be non-negative, got %d", c.Dust.Count)
	}
	if c.Dust.RadiusMin > c.Dust.RadiusMax {
		return fmt.Errorf("dust radius range inverted: [%v, %v]", c.Dust.RadiusMin, c.Dust.RadiusMax)
	}
	if c.Meteor.PoolSize < 0 {
		return fmt.Errorf("meteor.poolSize must be non-negative, got %d", c.Meteor.PoolSize)
	}
	if c.Meteor.BurstMin < 1 || c.Meteor.BurstMax < c.Meteor.BurstMin {
		return fmt.Errorf("meteor burst range invalid: [%d, %d]", c.Meteor.BurstMin, c.Meteor.BurstMax)
	}
	if c.Meteor.IdleMinS < 0 || c.Meteor.IdleMaxS < c.Meteor.IdleMinS {
		return fmt.Errorf("meteor idle range invalid: [%v, %v]", c.Meteor.IdleMinS, c.Meteor.IdleMaxS)
	}
	if c.Selector.GestureHoldMs < 0 {
		return fmt.Errorf("selector.gestureHoldMs must be non-negative, got %d", c.Selector.GestureHoldMs)
	}
	return nil
}
