// layout-dump prints the procedural layout for a given seed without
// opening a terminal screen. Useful for eyeballing band boundaries
// and color/halo distribution while tuning config values.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/scene"
	"github.com/happyletty/particle/vmath"
)

var (
	seedFlag   = flag.Uint64("seed", 1, "Layout RNG seed")
	configFlag = flag.String("config", "", "Path to YAML config overriding defaults")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	layout, err := scene.Generate(cfg, vmath.NewFastRand(*seedFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "layout: %v\n", err)
		os.Exit(1)
	}

	n := len(layout.Scale)
	fmt.Printf("seed %d, %d particles\n\n", *seedFlag, n)

	fmt.Printf("tree bands:\n")
	fmt.Printf("  star    [%6d, %6d)  %d particles\n", 0, layout.Bands.StarEnd, layout.Bands.StarEnd)
	fmt.Printf("  garland [%6d, %6d)  %d particles\n", layout.Bands.StarEnd, layout.Bands.GarlandEnd,
		layout.Bands.GarlandEnd-layout.Bands.StarEnd)
	fmt.Printf("  body    [%6d, %6d)  %d particles\n\n", layout.Bands.GarlandEnd, n, n-layout.Bands.GarlandEnd)

	halos := 0
	highlights := 0
	kinds := make(map[core.Kind]int)
	for i := 0; i < n; i++ {
		if layout.Halo[i] {
			halos++
		}
		if layout.Highlight[i] {
			highlights++
		}
		kinds[layout.Kind[i]]++
	}
	fmt.Printf("halo particles:      %d\n", halos)
	fmt.Printf("garland highlights:  %d\n", highlights)

	fmt.Printf("\nkinds:\n")
	for k := core.Kind(0); k < parameter.ParticleKindCount; k++ {
		fmt.Printf("  %-10s %d\n", k, kinds[k])
	}

	for shape := core.Shape(0); shape < core.ShapeCount; shape++ {
		fmt.Printf("\n%s extents:\n", shape)
		printExtents(layout.TargetPos[shape])
	}
}

func printExtents(pos []vmath.Vec3) {
	lo := vmath.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := vmath.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range pos {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		lo.Z = math.Min(lo.Z, p.Z)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		hi.Z = math.Max(hi.Z, p.Z)
	}
	fmt.Printf("  x [%7.2f, %7.2f]\n", lo.X, hi.X)
	fmt.Printf("  y [%7.2f, %7.2f]\n", lo.Y, hi.Y)
	fmt.Printf("  z [%7.2f, %7.2f]\n", lo.Z, hi.Z)
}
