package sapling

import (
	"errors"
	"fmt"
	"image"
)

// ErrWindowDestroyed is returned by HeadlessWindow.Present after Destroy.
var ErrWindowDestroyed = errors.New("sapling: window destroyed")

// HeadlessPlatform creates windows without a display. Input is injected
// with the Inject methods or a TestRunner script, and presented frames are
// kept in memory. It is used for tests and for rendering to PNG in CI.
type HeadlessPlatform struct {
	// Windows lists every window created, in creation order, including
	// destroyed ones.
	Windows []*HeadlessWindow

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// NewHeadlessPlatform returns a platform with no windows.
func NewHeadlessPlatform() *HeadlessPlatform {
	return &HeadlessPlatform{ScreenshotDir: "screenshots"}
}

// NewWindow creates an open, focused window with the cursor outside it.
func (p *HeadlessPlatform) NewWindow(opts WindowOptions) (NativeWindow, error) {
	if opts.Bounds.Width < 0 || opts.Bounds.Height < 0 {
		return nil, fmt.Errorf("headless window %q: negative size %vx%v",
			opts.Title, opts.Bounds.Width, opts.Bounds.Height)
	}
	w := &HeadlessWindow{
		Title:         opts.Title,
		Options:       opts,
		ScreenshotDir: p.ScreenshotDir,
		width:         int(opts.Bounds.Width),
		height:        int(opts.Bounds.Height),
		active:        true,
		open:          true,
		pressed:       make(map[ScanCode]bool),
		released:      make(map[ScanCode]bool),
	}
	p.Windows = append(p.Windows, w)
	return w, nil
}

// HeadlessWindow is a NativeWindow driven by injected input. Each Update
// applies at most one queued injection, so multi-frame gestures such as a
// click span several polls.
type HeadlessWindow struct {
	Title   string
	Options WindowOptions

	// Frame is a copy of the last presented image.
	Frame *image.RGBA
	// Presents counts successful Present calls.
	Presents int
	// Updates counts Update calls.
	Updates int
	// PresentErr, when set, is returned by Present and no frame is kept.
	PresentErr error

	ScreenshotDir string

	width, height int
	active        bool
	open          bool
	destroyed     bool

	mouseX, mouseY float64
	mouseIn        bool
	buttons        [3]bool

	scrollX, scrollY float64
	scrolled         bool

	pressed  map[ScanCode]bool
	released map[ScanCode]bool

	onChar      func(rune)
	queue       []func(*HeadlessWindow)
	runner      *TestRunner
	screenshots []string
}

// Update clears last poll's edges, advances an attached TestRunner and
// applies the next queued injection.
func (w *HeadlessWindow) Update() {
	w.Updates++
	w.scrolled = false
	w.scrollX, w.scrollY = 0, 0
	clear(w.pressed)
	clear(w.released)

	if w.runner != nil {
		w.runner.step(w)
		defer w.runner.settle(w)
	}
	if len(w.queue) == 0 {
		return
	}
	next := w.queue[0]
	copy(w.queue, w.queue[1:])
	w.queue[len(w.queue)-1] = nil
	w.queue = w.queue[:len(w.queue)-1]
	next(w)
}

func (w *HeadlessWindow) MousePos() (x, y float64, ok bool) {
	return w.mouseX, w.mouseY, w.mouseIn
}

func (w *HeadlessWindow) MouseDown(b MouseButton) bool {
	if int(b) >= len(w.buttons) {
		return false
	}
	return w.buttons[b]
}

func (w *HeadlessWindow) ScrollWheel() (dx, dy float64, ok bool) {
	return w.scrollX, w.scrollY, w.scrolled
}

func (w *HeadlessWindow) Size() (width, height int) { return w.width, w.height }
func (w *HeadlessWindow) IsActive() bool            { return w.active }
func (w *HeadlessWindow) IsOpen() bool              { return w.open && !w.destroyed }

// KeyPressed reports injected key presses. Headless keys never repeat.
func (w *HeadlessWindow) KeyPressed(c ScanCode, repeat bool) bool {
	return w.pressed[c]
}

func (w *HeadlessWindow) KeyReleased(c ScanCode) bool {
	return w.released[c]
}

func (w *HeadlessWindow) SetTitle(title string) { w.Title = title }

func (w *HeadlessWindow) SetInputCallback(fn func(r rune)) { w.onChar = fn }

// Present copies img into Frame and writes any queued screenshots.
func (w *HeadlessWindow) Present(img *image.RGBA) error {
	if w.destroyed {
		return ErrWindowDestroyed
	}
	if w.PresentErr != nil {
		return w.PresentErr
	}
	if w.Frame == nil || w.Frame.Rect != img.Rect {
		w.Frame = image.NewRGBA(img.Rect)
	}
	copy(w.Frame.Pix, img.Pix)
	w.Presents++
	return w.flushScreenshots()
}

// Destroy marks the window closed and drops pending injections.
func (w *HeadlessWindow) Destroy() {
	w.destroyed = true
	w.queue = nil
	w.screenshots = nil
}

// Destroyed reports whether Destroy was called.
func (w *HeadlessWindow) Destroyed() bool { return w.destroyed }
