package editor

// Event is one unit of input from the windowing layer.
type Event interface {
	isEvent()
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key is a keyboard key the editor reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyL
	KeyC
	KeyK
	KeyM
	KeyS
	KeyO
	KeyA
	KeyT
	KeyDelete
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyHome
	// KeyChar carries a printable character in KeyPress.Char.
	KeyChar
)

type (
	// PointerMove reports the cursor position in screen pixels.
	PointerMove struct {
		X, Y float64
	}

	PointerPress struct {
		Button Button
		X, Y   float64
	}

	PointerRelease struct {
		Button Button
		X, Y   float64
	}

	// Scroll carries the vertical wheel delta; positive zooms in.
	Scroll struct {
		DeltaY float64
	}

	KeyPress struct {
		Key  Key
		Char rune
	}

	ModifiersChanged struct {
		Ctrl  bool
		Shift bool
	}

	// Resize reports the new viewport size in pixels.
	Resize struct {
		Width, Height float64
	}
)

func (PointerMove) isEvent()      {}
func (PointerPress) isEvent()     {}
func (PointerRelease) isEvent()   {}
func (Scroll) isEvent()           {}
func (KeyPress) isEvent()         {}
func (ModifiersChanged) isEvent() {}
func (Resize) isEvent()           {}

// Request is an action the editor cannot perform itself and hands to the
// application shell.
type Request int

const (
	RequestNone Request = iota
	RequestSave
	RequestOpen
)
