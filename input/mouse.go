package input

// ClickTracker classifies a press/release pair as a click or a drag.
// Movement beyond the pixel threshold between press and release
// suppresses the toggle so camera drags never flip the shape.
type ClickTracker struct {
	threshold int
	pressed   bool
	pressX    int
	pressY    int
	dragged   bool
}

func NewClickTracker(threshold int) *ClickTracker {
	if threshold < 0 {
		threshold = 0
	}
	return &ClickTracker{threshold: threshold}
}

func (c *ClickTracker) Press(x, y int) {
	c.pressed = true
	c.pressX = x
	c.pressY = y
	c.dragged = false
}

// Move records pointer motion while the button is held
func (c *ClickTracker) Move(x, y int) {
	if !c.pressed || c.dragged {
		return
	}
	if abs(x-c.pressX) > c.threshold || abs(y-c.pressY) > c.threshold {
		c.dragged = true
	}
}

// Release ends the press; it reports true only for a clean click
func (c *ClickTracker) Release(x, y int) bool {
	if !c.pressed {
		return false
	}
	c.Move(x, y)
	c.pressed = false
	return !c.dragged
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
