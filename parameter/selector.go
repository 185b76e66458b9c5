package parameter

import (
	"time"
)

// Shape selector
const (
	// GestureHoldTime is the debounce window: the pinch signal must be
	// absent this long before the shape reverts, absorbing momentary
	// tracking dropout
	GestureHoldTime = 300 * time.Millisecond

	// ClickDragThreshold is the pixel distance between pointer press
	// and release beyond which the interaction counts as a drag, not
	// a toggle click
	ClickDragThreshold = 4
)
