package engine

import (
	"testing"
	"time"

	"github.com/happyletty/particle/core"
	"github.com/happyletty/particle/parameter"
)

func newTestSelector() (*ShapeSelector, *MockTimeProvider) {
	clock := NewMockTimeProvider()
	return NewShapeSelector(clock, parameter.GestureHoldTime), clock
}

func TestSelectorDefaultsToGalaxy(t *testing.T) {
	sel, _ := newTestSelector()
	if got := sel.Current(); got != core.ShapeGalaxy {
		t.Errorf("default shape = %v, want galaxy", got)
	}
}

func TestManualToggle(t *testing.T) {
	sel, _ := newTestSelector()

	sel.Toggle()
	if got := sel.Current(); got != core.ShapeTree {
		t.Errorf("after toggle = %v, want tree", got)
	}

	sel.Toggle()
	if got := sel.Current(); got != core.ShapeGalaxy {
		t.Errorf("after second toggle = %v, want galaxy", got)
	}
}

func TestGestureSelectsTree(t *testing.T) {
	sel, _ := newTestSelector()

	sel.SetGesture(true)
	if got := sel.Current(); got != core.ShapeTree {
		t.Errorf("pinch active = %v, want tree", got)
	}
}

func TestGestureDebounceAbsorbsDropout(t *testing.T) {
	sel, clock := newTestSelector()

	sel.SetGesture(true)
	sel.SetGesture(false) // momentary tracking loss

	clock.Advance(100 * time.Millisecond)
	if got := sel.Current(); got != core.ShapeTree {
		t.Error("shape must hold through dropout shorter than the hold time")
	}

	clock.Advance(parameter.GestureHoldTime)
	if got := sel.Current(); got != core.ShapeGalaxy {
		t.Error("shape must revert once the signal has been absent past the hold time")
	}
}

func TestGestureReacquireResetsHold(t *testing.T) {
	sel, clock := newTestSelector()

	sel.SetGesture(true)
	sel.SetGesture(false)
	clock.Advance(200 * time.Millisecond)

	// Signal comes back before expiry; hold window restarts
	sel.SetGesture(true)
	sel.SetGesture(false)
	clock.Advance(200 * time.Millisecond)

	if got := sel.Current(); got != core.ShapeTree {
		t.Error("reacquired pinch must restart the hold window")
	}
}

func TestORCombineManualAndGesture(t *testing.T) {
	sel, clock := newTestSelector()

	sel.Toggle()
	sel.SetGesture(true)
	sel.SetGesture(false)
	clock.Advance(parameter.GestureHoldTime * 2)

	// Gesture expired but manual still holds TREE
	if got := sel.Current(); got != core.ShapeTree {
		t.Error("manual toggle must hold shape independent of gesture expiry")
	}
}

func TestDegradeToManualOnPipelineFailure(t *testing.T) {
	sel, _ := newTestSelector()

	sel.SetGesture(true)
	sel.SetAvailable(false)

	if sel.Available() {
		t.Error("selector should report degraded pipeline")
	}
	if got := sel.Current(); got != core.ShapeGalaxy {
		t.Error("failed pipeline must not keep the gesture shape latched")
	}

	// Manual path still works
	sel.Toggle()
	if got := sel.Current(); got != core.ShapeTree {
		t.Error("manual toggle must survive pipeline failure")
	}
}
