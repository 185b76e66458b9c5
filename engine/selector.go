package engine

import (
	"sync/atomic"
	"time"

	"github.com/happyletty/particle/core"
)

// ShapeSelector owns the single authoritative current-shape value.
// Writers are the input goroutine (manual toggle) and the gesture
// bridge; the frame loop polls Current once per frame. All fields
// cross goroutines through atomics, last-value-wins, no queueing.
type ShapeSelector struct {
	clock TimeProvider
	hold  time.Duration

	manual    atomic.Bool  // pointer/keyboard toggle: true selects TREE
	gestureUp atomic.Bool  // raw pinch signal from the classifier
	lastPinch atomic.Int64 // UnixNano of the most recent raw pinch
	available atomic.Bool  // gesture pipeline health
}

func NewShapeSelector(clock TimeProvider, hold time.Duration) *ShapeSelector {
	s := &ShapeSelector{
		clock: clock,
		hold:  hold,
	}
	s.available.Store(true)
	return s
}

// Toggle flips the manual selection (click/tap or keyboard)
func (s *ShapeSelector) Toggle() {
	for {
		old := s.manual.Load()
		if s.manual.CompareAndSwap(old, !old) {
			return
		}
	}
}

// SetGesture records the classifier's latest pinch state. Loss of the
// signal is absorbed for the hold window before the shape reverts.
func (s *ShapeSelector) SetGesture(pinching bool) {
	if pinching {
		s.lastPinch.Store(s.clock.Now().UnixNano())
	}
	s.gestureUp.Store(pinching)
}

// SetAvailable marks the gesture pipeline healthy or failed. On
// failure the selector degrades to manual toggle only.
func (s *ShapeSelector) SetAvailable(ok bool) {
	s.available.Store(ok)
	if !ok {
		s.gestureUp.Store(false)
	}
}

// Available reports gesture pipeline health for the HUD
func (s *ShapeSelector) Available() bool {
	return s.available.Load()
}

// gestureActive applies the debounce: active while the raw signal is
// up, and for the hold window after it drops
func (s *ShapeSelector) gestureActive() bool {
	if !s.available.Load() {
		return false
	}
	if s.gestureUp.Load() {
		return true
	}
	last := s.lastPinch.Load()
	if last == 0 {
		return false
	}
	return s.clock.Now().Sub(time.Unix(0, last)) < s.hold
}

// Current OR-combines the debounced gesture and the manual toggle
func (s *ShapeSelector) Current() core.Shape {
	if s.manual.Load() || s.gestureActive() {
		return core.ShapeTree
	}
	return core.ShapeGalaxy
}
