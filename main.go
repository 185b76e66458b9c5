package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/happyletty/particle/config"
	"github.com/happyletty/particle/engine"
	"github.com/happyletty/particle/input"
	"github.com/happyletty/particle/parameter"
	"github.com/happyletty/particle/render"
	"github.com/happyletty/particle/scene"
	"github.com/happyletty/particle/vmath"
)

var (
	seedFlag    = flag.Uint64("seed", 0, "Layout RNG seed (0 uses the clock)")
	configFlag  = flag.String("config", "", "Path to YAML config overriding defaults")
	debugFlag   = flag.String("debug", "", "Write debug log to this file")
	gestureFlag = flag.Bool("gesture", true, "Simulated gesture pipeline availability")
)

// gesturePulseWindow is how long a simulated pinch stays up after the
// last keypress before the raw signal drops
const gesturePulseWindow = 150 * time.Millisecond

func main() {
	flag.Parse()

	if *debugFlag != "" {
		f, err := os.Create(*debugFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// The screen owns the terminal; stray log writes would tear it
		log.SetOutput(io.Discard)
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	layout, err := scene.Generate(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "layout: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	if err := run(screen, cfg, layout, rng, seed); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, cfg *config.Config, layout *scene.Layout, rng *vmath.FastRand, seed uint64) error {
	clock := engine.NewMonotonicTimeProvider()

	store := engine.NewStore(layout)
	selector := engine.NewShapeSelector(clock, time.Duration(cfg.Selector.GestureHoldMs)*time.Millisecond)
	selector.SetAvailable(*gestureFlag)

	camera := render.NewCamera(cfg.Particles.SceneSpinRate)

	dust := engine.NewDustField(cfg, rng)
	meteors := engine.NewMeteorSpawner(cfg, rng, camera.Basis)

	runner := engine.NewRunner()
	runner.Add(engine.NewMorphSystem(store, selector, cfg.Particles.SmoothingRate))
	runner.Add(dust)
	runner.Add(meteors)

	width, height := screen.Size()
	renderer := render.NewRenderer(store, dust, meteors, selector, camera, width, height)

	pump := input.NewPump(cfg.Selector.ClickDragThreshold)
	pump.Start(screen)

	log.Printf("seed=%d particles=%d", seed, store.Count())

	ticker := time.NewTicker(time.Second / parameter.RenderTargetFPS)
	defer ticker.Stop()

	last := clock.Now()
	paused := false
	var lastGesturePulse time.Time
	fps := float64(parameter.RenderTargetFPS)

	for {
		select {
		case intent, ok := <-pump.Intents():
			if !ok {
				return nil
			}
			switch intent.Type {
			case input.IntentQuit:
				return nil
			case input.IntentResize:
				screen.Sync()
				renderer.Resize(intent.X, intent.Y)
			case input.IntentToggleShape:
				selector.Toggle()
			case input.IntentGesturePulse:
				selector.SetGesture(true)
				lastGesturePulse = clock.Now()
			case input.IntentPause:
				paused = !paused
			case input.IntentZoomIn:
				camera.Zoom(-2)
			case input.IntentZoomOut:
				camera.Zoom(2)
			case input.IntentTiltUp:
				camera.Tilt(0.1)
			case input.IntentTiltDown:
				camera.Tilt(-0.1)
			}

		case <-ticker.C:
			now := clock.Now()
			dt := now.Sub(last).Seconds()
			last = now

			if !lastGesturePulse.IsZero() && now.Sub(lastGesturePulse) > gesturePulseWindow {
				selector.SetGesture(false)
				lastGesturePulse = time.Time{}
			}

			if !paused {
				camera.Update(dt)
				runner.Update(dt)
			}
			if dt > 0 {
				fps = fps*0.9 + (1.0/dt)*0.1
			}
			renderer.Frame(screen, fps, paused)
		}
	}
}
