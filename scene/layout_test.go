package scene

import (
	"math"
	"testing"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/vmath"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Particles.Count = 6200
	cfg.Tree.StarCount = 800
	cfg.Tree.GarlandCount = 2500
	return cfg
}

func mustGenerate(t *testing.T, cfg *config.Config, seed uint64) *Layout {
	t.Helper()
	l, err := Generate(cfg, vmath.NewFastRand(seed))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return l
}

func TestBandPartition(t *testing.T) {
	l := mustGenerate(t, testConfig(), 1)

	if l.Count != 6200 {
		t.Fatalf("count = %d, want 6200", l.Count)
	}
	if l.Bands.StarEnd != 800 || l.Bands.GarlandEnd != 3300 {
		t.Fatalf("band boundaries = %d/%d, want 800/3300", l.Bands.StarEnd, l.Bands.GarlandEnd)
	}

	counts := map[Band]int{}
	for i := 0; i < l.Count; i++ {
		counts[l.Bands.Of(i)]++
	}
	if counts[BandStar] != 800 || counts[BandGarland] != 2500 || counts[BandBody] != 2900 {
		t.Errorf("band sizes = %d/%d/%d, want 800/2500/2900",
			counts[BandStar], counts[BandGarland], counts[BandBody])
	}
}

func TestArrayLengths(t *testing.T) {
	l := mustGenerate(t, testConfig(), 1)

	for s := 0; s < core.ShapeCount; s++ {
		if len(l.TargetPos[s]) != l.Count || len(l.TargetColor[s]) != l.Count {
			t.Fatalf("shape %d target arrays sized %d/%d, want %d",
				s, len(l.TargetPos[s]), len(l.TargetColor[s]), l.Count)
		}
	}
	if len(l.Scale) != l.Count || len(l.Kind) != l.Count || len(l.SpinVel) != l.Count {
		t.Fatal("attribute arrays must match particle count")
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	cfg := testConfig()
	a := mustGenerate(t, cfg, 99)
	b := mustGenerate(t, cfg, 99)

	for i := 0; i < a.Count; i++ {
		for s := 0; s < core.ShapeCount; s++ {
			if a.TargetPos[s][i] != b.TargetPos[s][i] {
				t.Fatalf("particle %d shape %d position differs across identical seeds", i, s)
			}
			if a.TargetColor[s][i] != b.TargetColor[s][i] {
				t.Fatalf("particle %d shape %d color differs across identical seeds", i, s)
			}
		}
		if a.Scale[i] != b.Scale[i] || a.Kind[i] != b.Kind[i] {
			t.Fatalf("particle %d baked attributes differ across identical seeds", i)
		}
	}
}

func TestHighlightSpacing(t *testing.T) {
	cfg := testConfig()
	l := mustGenerate(t, cfg, 7)

	last := -cfg.Tree.HighlightGap
	found := 0
	for i := l.Bands.StarEnd; i < l.Bands.GarlandEnd; i++ {
		if !l.Highlight[i] {
			continue
		}
		k := i - l.Bands.StarEnd
		if k-last < cfg.Tree.HighlightGap && found > 0 {
			t.Fatalf("highlights at band offsets %d and %d violate gap %d", last, k, cfg.Tree.HighlightGap)
		}
		last = k
		found++
	}
	if found == 0 {
		t.Error("expected at least one garland highlight in 2500 indices")
	}

	// Highlights never appear outside the garland band
	for i := 0; i < l.Count; i++ {
		if l.Highlight[i] && l.Bands.Of(i) != BandGarland {
			t.Fatalf("highlight flag on particle %d outside garland band", i)
		}
	}
}

func TestHeroOverrides(t *testing.T) {
	cfg := testConfig()
	l := mustGenerate(t, cfg, 3)

	if l.TargetPos[core.ShapeGalaxy][HeroIndex] != (vmath.Vec3{}) {
		t.Error("hero galaxy target must be the origin")
	}
	if l.Scale[HeroIndex] != 0 {
		t.Error("hero scale must be zero")
	}

	apex := l.TargetPos[core.ShapeTree][HeroIndex]
	wantY := parameter.TreeBaseY + cfg.Tree.Height
	if apex.X != 0 || apex.Z != 0 || math.Abs(apex.Y-wantY) > 1e-12 {
		t.Errorf("hero tree target = %v, want apex (0, %v, 0)", apex, wantY)
	}
}

func TestGalaxyWithinRadius(t *testing.T) {
	cfg := testConfig()
	l := mustGenerate(t, cfg, 11)

	for i := 0; i < l.Count; i++ {
		p := l.TargetPos[core.ShapeGalaxy][i]
		planar := math.Hypot(p.X, p.Z)
		if planar > cfg.Galaxy.Radius+1e-9 {
			t.Fatalf("particle %d planar radius %v exceeds galaxy radius %v", i, planar, cfg.Galaxy.Radius)
		}
	}
}

func TestBodyInsideCone(t *testing.T) {
	cfg := testConfig()
	l := mustGenerate(t, cfg, 13)

	for i := l.Bands.GarlandEnd; i < l.Count; i++ {
		p := l.TargetPos[core.ShapeTree][i]
		h := p.Y - parameter.TreeBaseY
		if h < -1e-9 || h > cfg.Tree.Height+1e-9 {
			t.Fatalf("body particle %d height %v outside [0, %v]", i, h, cfg.Tree.Height)
		}
		maxR := cfg.Tree.Radius * (1 - h/cfg.Tree.Height)
		if math.Hypot(p.X, p.Z) > maxR+1e-9 {
			t.Fatalf("body particle %d outside cone cross-section at height %v", i, h)
		}
	}
}

func TestHaloIncludesHighlights(t *testing.T) {
	l := mustGenerate(t, testConfig(), 17)

	for i := 0; i < l.Count; i++ {
		if l.Highlight[i] && !l.Halo[i] {
			t.Fatalf("highlight particle %d missing halo overlay", i)
		}
	}

	halo := l.HaloIndices()
	if len(halo) == 0 {
		t.Fatal("expected a non-empty halo subsample")
	}
	// Roughly 10% plus highlights; sanity bounds, not exact statistics
	if len(halo) < l.Count/20 || len(halo) > l.Count/4 {
		t.Errorf("halo subsample size %d implausible for fraction %v of %d",
			len(halo), parameter.GalaxyHaloFraction, l.Count)
	}
}

func TestKindsCoverClosedSet(t *testing.T) {
	l := mustGenerate(t, testConfig(), 19)

	seen := map[core.Kind]int{}
	for _, k := range l.Kind {
		if int(k) >= parameter.ParticleKindCount {
			t.Fatalf("kind %d outside closed set", k)
		}
		seen[k]++
	}
	if len(seen) != parameter.ParticleKindCount {
		t.Errorf("expected all %d kinds across %d particles, saw %d",
			parameter.ParticleKindCount, l.Count, len(seen))
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Particles.Count = -1
	if _, err := Generate(cfg, vmath.NewFastRand(1)); err == nil {
		t.Error("expected error for negative particle count")
	}
}

func TestStarBoundaryRange(t *testing.T) {
	for a := 0.0; a < 2*math.Pi; a += 0.01 {
		r := starBoundary(a, parameter.StarSpikes, parameter.StarInnerRadius, parameter.StarOuterRadius)
		if r < parameter.StarInnerRadius-1e-12 || r > parameter.StarOuterRadius+1e-12 {
			t.Fatalf("boundary %v at angle %v outside [inner, outer]", r, a)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	cfg := testConfig()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(cfg, vmath.NewFastRand(uint64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
