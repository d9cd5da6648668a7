package sapling

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRouterDispatch(t *testing.T) {
	a := &recordingAdapter{}
	s := newRecordingRenderer(100, 100)
	r := Router{Adapter: a, Surface: s}

	dirty := r.Dispatch([]Event{
		MouseMoveEvent{X: 1.5, Y: 2},
		MouseButtonEvent{MouseEvent{X: 1, Y: 2, Button: MouseButtonRight, State: ButtonDown}},
		ScrollEvent{DX: 0, DY: -3},
		ResizeEvent{Width: 640, Height: 480},
		KeyInputEvent{KeyEvent{Key: KeyEnter, State: ButtonUp}},
	})
	if !dirty {
		t.Error("Dispatch returned clean")
	}
	want := []string{
		"mouse 1.5,2",
		"button 2 down at 1,2",
		"scroll 0,-3",
		"resize 640x480",
		`key enter up ""`,
	}
	if diff := cmp.Diff(want, a.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if s.width != 640 || s.height != 480 {
		t.Errorf("surface size = %vx%v, want 640x480", s.width, s.height)
	}
}

func TestRouterActiveNotDirty(t *testing.T) {
	a := &recordingAdapter{}
	r := Router{Adapter: a}
	if r.Dispatch([]Event{ActiveEvent{Active: false}}) {
		t.Error("focus change marked dirty")
	}
	if diff := cmp.Diff([]string{"active false"}, a.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if r.Dispatch(nil) {
		t.Error("no events marked dirty")
	}
}

func TestRouterDispatchChars(t *testing.T) {
	a := &recordingAdapter{}
	r := Router{Adapter: a}

	// Backspace and escape arrive through key polling and are dropped here.
	dirty := r.DispatchChars([]rune{'h', '\b', 'I', 0x1b, ' ', 'é', '.', 0x7f})
	if !dirty {
		t.Error("DispatchChars returned clean")
	}
	want := []string{
		`key h down "h"`,
		`key i down "I"`,
		`key space down " "`,
		`key character down "é"`,
		`key punct down "."`,
	}
	if diff := cmp.Diff(want, a.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRouterDispatchCharsAllDropped(t *testing.T) {
	a := &recordingAdapter{}
	r := Router{Adapter: a}
	if r.DispatchChars([]rune{'\b', 0x7f, 0x01}) {
		t.Error("only dropped characters marked dirty")
	}
	if len(a.calls) != 0 {
		t.Errorf("calls = %v", a.calls)
	}
}

func TestCharBufferFIFO(t *testing.T) {
	var b charBuffer
	for _, r := range "abc" {
		b.push(r)
	}
	if got := string(b.drain()); got != "abc" {
		t.Errorf("drain = %q, want %q", got, "abc")
	}
	if got := b.drain(); len(got) != 0 {
		t.Errorf("second drain = %q", string(got))
	}
}
