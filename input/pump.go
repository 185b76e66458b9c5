package input

import (
	"github.com/gdamore/tcell/v2"
)

// Pump decodes terminal events into intents on a buffered channel.
// The decoder runs on its own goroutine so the frame loop never
// blocks on terminal input.
type Pump struct {
	intents chan Intent
	clicks  *ClickTracker
}

// NewPump builds a pump with the given click-vs-drag pixel threshold
func NewPump(clickThreshold int) *Pump {
	return &Pump{
		intents: make(chan Intent, 64),
		clicks:  NewClickTracker(clickThreshold),
	}
}

// Intents is the consumer side of the pump
func (p *Pump) Intents() <-chan Intent {
	return p.intents
}

// Start begins polling the screen. The goroutine exits when the
// screen is finalized and PollEvent returns nil.
func (p *Pump) Start(screen tcell.Screen) {
	go func() {
		defer close(p.intents)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			intent := p.decode(ev)
			if intent.Type == IntentNone {
				continue
			}
			select {
			case p.intents <- intent:
			default:
				// Frame loop is behind; drop rather than stall
			}
		}
	}()
}

func (p *Pump) decode(ev tcell.Event) Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Intent{Type: IntentResize, X: w, Y: h}

	case *tcell.EventKey:
		return decodeKey(e)

	case *tcell.EventMouse:
		return p.decodeMouse(e)
	}
	return Intent{}
}

func decodeKey(e *tcell.EventKey) Intent {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return Intent{Type: IntentTiltUp}
	case tcell.KeyDown:
		return Intent{Type: IntentTiltDown}
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return Intent{Type: IntentQuit}
		case 't', 'T':
			return Intent{Type: IntentToggleShape}
		case 'g', 'G':
			return Intent{Type: IntentGesturePulse}
		case ' ':
			return Intent{Type: IntentPause}
		case '+', '=':
			return Intent{Type: IntentZoomIn}
		case '-', '_':
			return Intent{Type: IntentZoomOut}
		}
	}
	return Intent{}
}

func (p *Pump) decodeMouse(e *tcell.EventMouse) Intent {
	x, y := e.Position()
	switch {
	case e.Buttons()&tcell.Button1 != 0:
		if p.clicks.pressed {
			p.clicks.Move(x, y)
		} else {
			p.clicks.Press(x, y)
		}
	case p.clicks.pressed:
		if p.clicks.Release(x, y) {
			return Intent{Type: IntentToggleShape, X: x, Y: y}
		}
	case e.Buttons()&tcell.WheelUp != 0:
		return Intent{Type: IntentZoomIn}
	case e.Buttons()&tcell.WheelDown != 0:
		return Intent{Type: IntentZoomOut}
	}
	return Intent{}
}
