package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, ESC, Ctrl+C
	IntentResize // terminal resize event

	IntentToggleShape  // keyboard toggle or mouse click
	IntentGesturePulse // simulated pinch frame while held
	IntentPause        // space

	IntentZoomIn
	IntentZoomOut
	IntentTiltUp
	IntentTiltDown
)

// Intent is one decoded user action
type Intent struct {
	Type IntentType
	X    int // resize width, or click column
	Y    int // resize height, or click row
}
