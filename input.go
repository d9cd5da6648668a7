package sapling

import "math"

// --- Cached state ---

// MouseState is the last observed pointer position (floored) and button
// state of a window.
type MouseState struct {
	X, Y                float64
	Left, Middle, Right bool
}

// WindowState is the last observed size and focus of a window. It is only
// used to detect changes; the platform stays authoritative.
type WindowState struct {
	Width, Height int
	Active        bool
}

// --- Samples ---

// KeySample is the result of polling one tracked key this frame.
type KeySample struct {
	State    KeyState
	Pressed  bool // went down, or repeated for keys that repeat
	Released bool
}

// InputSample is everything a native window reports in one poll.
type InputSample struct {
	MouseX, MouseY float64
	MouseOK        bool // false when the cursor is outside the window

	Left, Middle, Right bool

	ScrollX, ScrollY float64
	ScrollOK         bool // false when there was no scroll this poll

	Width, Height int
	Active        bool

	Keys []KeySample
}

// SampleInput polls native for everything InputTracker compares.
func SampleInput(native NativeWindow, keys []KeyState) InputSample {
	var s InputSample
	s.MouseX, s.MouseY, s.MouseOK = native.MousePos()
	s.Left = native.MouseDown(MouseButtonLeft)
	s.Middle = native.MouseDown(MouseButtonMiddle)
	s.Right = native.MouseDown(MouseButtonRight)
	s.ScrollX, s.ScrollY, s.ScrollOK = native.ScrollWheel()
	s.Width, s.Height = native.Size()
	s.Active = native.IsActive()
	if len(keys) > 0 {
		s.Keys = make([]KeySample, len(keys))
		for i, k := range keys {
			s.Keys[i] = KeySample{
				State:    k,
				Pressed:  native.KeyPressed(k.Code, k.Code.Repeats()),
				Released: native.KeyReleased(k.Code),
			}
		}
	}
	return s
}

// --- Tracker ---

// InputTracker turns level-triggered samples into edge-triggered events by
// comparing each sample with the previous one.
type InputTracker struct {
	Mouse  MouseState
	Window WindowState
}

// Track compares sample with the cached state, updates the cache and
// returns the resulting events in a fixed order: move, buttons (left,
// middle, right), scroll, resize, active, then keys.
func (t *InputTracker) Track(sample InputSample) []Event {
	var events []Event

	if sample.MouseOK {
		fx, fy := math.Floor(sample.MouseX), math.Floor(sample.MouseY)
		if fx != t.Mouse.X || fy != t.Mouse.Y {
			events = append(events, MouseMoveEvent{X: sample.MouseX, Y: sample.MouseY})
			t.Mouse.X, t.Mouse.Y = fx, fy
		}
	}

	events = t.button(events, &t.Mouse.Left, sample.Left, MouseButtonLeft)
	events = t.button(events, &t.Mouse.Middle, sample.Middle, MouseButtonMiddle)
	events = t.button(events, &t.Mouse.Right, sample.Right, MouseButtonRight)

	if sample.ScrollOK {
		events = append(events, ScrollEvent{DX: sample.ScrollX, DY: sample.ScrollY})
	}

	if sample.Width != t.Window.Width || sample.Height != t.Window.Height {
		t.Window.Width, t.Window.Height = sample.Width, sample.Height
		events = append(events, ResizeEvent{Width: sample.Width, Height: sample.Height})
	}

	if sample.Active != t.Window.Active {
		t.Window.Active = sample.Active
		events = append(events, ActiveEvent{Active: sample.Active})
	}

	for _, k := range sample.Keys {
		if k.Pressed {
			events = append(events, KeyInputEvent{KeyEvent{Key: k.State.Key, State: ButtonDown}})
		}
		if k.Released {
			events = append(events, KeyInputEvent{KeyEvent{Key: k.State.Key, State: ButtonUp}})
		}
	}

	return events
}

func (t *InputTracker) button(events []Event, cached *bool, down bool, b MouseButton) []Event {
	if down == *cached {
		return events
	}
	*cached = down
	state := ButtonUp
	if down {
		state = ButtonDown
	}
	return append(events, MouseButtonEvent{MouseEvent{
		X:      t.Mouse.X,
		Y:      t.Mouse.Y,
		Button: b,
		State:  state,
	}})
}
