package sapling

// MouseEvent reports a mouse button edge at the last known pointer position.
type MouseEvent struct {
	X, Y   float64
	Button MouseButton
	State  ButtonState
}

// KeyEvent reports a key edge. Text holds the literal character for events
// that came from character input and is empty for polled keys.
type KeyEvent struct {
	Key   Key
	State ButtonState
	Text  string
}

// Event is one input change produced by InputTracker.Track.
type Event interface {
	// Dirty reports whether the event requires the adapter to run again.
	Dirty() bool
	isEvent()
}

// MouseMoveEvent reports a new pointer position.
type MouseMoveEvent struct{ X, Y float64 }

// MouseButtonEvent reports a button press or release.
type MouseButtonEvent struct{ MouseEvent }

// ScrollEvent reports a scroll wheel delta.
type ScrollEvent struct{ DX, DY float64 }

// KeyInputEvent reports a key press or release.
type KeyInputEvent struct{ KeyEvent }

// ResizeEvent reports a new window size.
type ResizeEvent struct{ Width, Height int }

// ActiveEvent reports the window gaining or losing focus.
type ActiveEvent struct{ Active bool }

func (MouseMoveEvent) isEvent()   {}
func (MouseButtonEvent) isEvent() {}
func (ScrollEvent) isEvent()      {}
func (KeyInputEvent) isEvent()    {}
func (ResizeEvent) isEvent()      {}
func (ActiveEvent) isEvent()      {}

func (MouseMoveEvent) Dirty() bool   { return true }
func (MouseButtonEvent) Dirty() bool { return true }
func (ScrollEvent) Dirty() bool      { return true }
func (KeyInputEvent) Dirty() bool    { return true }
func (ResizeEvent) Dirty() bool      { return true }
func (ActiveEvent) Dirty() bool      { return false }
