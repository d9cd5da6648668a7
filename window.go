package sapling

import (
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
)

// NativeWindow is the platform window binding. Every query reflects the
// state observed by the last Update call; none of them block.
//
// The glfwshell and ebitenshell sub-packages provide implementations.
type NativeWindow interface {
	// Update pumps platform events.
	Update()

	// MousePos returns the cursor position, or false when the cursor is
	// outside the window.
	MousePos() (x, y float64, ok bool)
	MouseDown(b MouseButton) bool
	// ScrollWheel returns the scroll delta since the last Update, or false
	// when there was none.
	ScrollWheel() (dx, dy float64, ok bool)

	Size() (width, height int)
	IsActive() bool
	IsOpen() bool

	// KeyPressed reports a down edge for c since the last Update. With
	// repeat set, OS key repeat while held also counts.
	KeyPressed(c ScanCode, repeat bool) bool
	KeyReleased(c ScanCode) bool

	SetTitle(title string)
	// SetInputCallback registers the receiver of printable character input.
	SetInputCallback(fn func(r rune))

	// Present shows img in the window.
	Present(img *image.RGBA) error
	Destroy()
}

// Platform creates native windows.
type Platform interface {
	NewWindow(opts WindowOptions) (NativeWindow, error)
}

// DefaultUpdateInterval is the minimum time between two polls of a window
// when WindowOptions.UpdateInterval is zero.
const DefaultUpdateInterval = 16 * time.Millisecond

// WindowOptions configures a native window.
type WindowOptions struct {
	Title       string
	Bounds      Rect // position and size on screen
	Resizable   bool
	AlwaysOnTop bool
	Borderless  bool

	// UpdateInterval limits how often the native window is polled.
	// Negative disables the limit.
	UpdateInterval time.Duration
}

// --- Window ---

// Window is one live window of a Shell: a native handle, the adapter it
// drives, its surface and its request queue.
type Window struct {
	id      uuid.UUID
	native  NativeWindow
	adapter Adapter
	surface Surface
	logger  Logger

	requests *requestQueue
	chars    *charBuffer
	tracker  InputTracker
	router   Router
	keys     []KeyState

	update bool
	redraw bool
	close  bool
}

// ID returns the window's unique identifier.
func (w *Window) ID() uuid.UUID { return w.id }

// Sender returns a handle for posting requests to the window from any
// goroutine.
func (w *Window) Sender() RequestSender { return RequestSender{q: w.requests} }

// Adapter returns the adapter the window drives.
func (w *Window) Adapter() Adapter { return w.adapter }

// Surface returns the window's render target.
func (w *Window) Surface() Surface { return w.surface }

// State returns the cached window state.
func (w *Window) State() WindowState { return w.tracker.Window }

// Mouse returns the cached mouse state.
func (w *Window) Mouse() MouseState { return w.tracker.Mouse }

// IsOpen reports whether the native window is open and no close request
// has been processed.
func (w *Window) IsOpen() bool {
	return w.native.IsOpen() && !w.close
}

// drainEvents polls the platform and routes the resulting input to the
// adapter.
func (w *Window) drainEvents() {
	w.native.Update()
	events := w.tracker.Track(SampleInput(w.native, w.keys))
	if w.router.Dispatch(events) {
		w.update = true
	}
	if w.router.DispatchChars(w.chars.drain()) {
		w.update = true
	}
}

// receiveRequests applies every queued request in arrival order.
func (w *Window) receiveRequests() {
	for _, req := range w.requests.drain() {
		switch r := req.(type) {
		case RedrawRequest:
			w.update = true
			w.redraw = true
		case ChangeTitleRequest:
			w.native.SetTitle(r.Title)
		case CloseRequest:
			w.close = true
		}
	}
}

func (w *Window) runAdapter() {
	if !w.update {
		return
	}
	w.adapter.Run(w.surface)
	w.update = false
	w.redraw = true
}

func (w *Window) present() {
	if !w.redraw {
		return
	}
	img := w.surface.Image()
	if img == nil {
		return
	}
	if err := w.native.Present(img); err != nil {
		w.logger.Debug("present failed, frame dropped", "window", w.id, "err", err)
	}
	w.redraw = false
}

// poll runs one full cycle: events, requests, update, present.
func (w *Window) poll() {
	w.drainEvents()
	w.receiveRequests()
	w.runAdapter()
	w.present()
}

func (w *Window) destroy() {
	w.requests.close()
	w.native.Destroy()
}

// --- Builder ---

// WindowBuilder configures a window before it joins a Shell.
type WindowBuilder struct {
	shell   *Shell
	adapter Adapter
	opts    WindowOptions
	fonts   map[string][]byte
	order   []string
}

// Title sets the window title.
func (b *WindowBuilder) Title(title string) *WindowBuilder {
	b.opts.Title = title
	return b
}

// Resizable sets whether the user can resize the window.
func (b *WindowBuilder) Resizable(resizable bool) *WindowBuilder {
	b.opts.Resizable = resizable
	return b
}

// AlwaysOnTop keeps the window above others.
func (b *WindowBuilder) AlwaysOnTop(onTop bool) *WindowBuilder {
	b.opts.AlwaysOnTop = onTop
	return b
}

// Borderless removes window decorations.
func (b *WindowBuilder) Borderless(borderless bool) *WindowBuilder {
	b.opts.Borderless = borderless
	return b
}

// Bounds sets the screen position and size.
func (b *WindowBuilder) Bounds(r Rect) *WindowBuilder {
	b.opts.Bounds = r
	return b
}

// UpdateInterval sets the minimum time between polls.
func (b *WindowBuilder) UpdateInterval(d time.Duration) *WindowBuilder {
	b.opts.UpdateInterval = d
	return b
}

// Font registers font data under a family name. A later registration of the
// same family replaces the earlier one.
func (b *WindowBuilder) Font(family string, data []byte) *WindowBuilder {
	if _, ok := b.fonts[family]; !ok {
		b.order = append(b.order, family)
	}
	b.fonts[family] = data
	return b
}

// Options returns the options Build will pass to the platform.
func (b *WindowBuilder) Options() WindowOptions {
	return b.opts
}

// Build creates the native window and adds it to the shell.
func (b *WindowBuilder) Build() (*Window, error) {
	cfg := b.shell.cfg
	if cfg.Platform == nil {
		return nil, ErrNoPlatform
	}
	if cfg.NewSurface == nil {
		return nil, ErrNoSurface
	}
	native, err := cfg.Platform.NewWindow(b.opts)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", b.opts.Title, err)
	}

	surface := cfg.NewSurface(b.opts.Bounds.Width, b.opts.Bounds.Height)
	for _, family := range b.order {
		if err := surface.RegisterFont(family, b.fonts[family]); err != nil {
			native.Destroy()
			return nil, fmt.Errorf("create window %q: register font %q: %w", b.opts.Title, family, err)
		}
	}

	w := &Window{
		id:       uuid.New(),
		native:   native,
		adapter:  b.adapter,
		surface:  surface,
		logger:   b.shell.logger,
		requests: &requestQueue{},
		chars:    &charBuffer{},
		router:   Router{Adapter: b.adapter, Surface: surface},
		keys:     DefaultKeyStates(),
		update:   true,
		redraw:   true,
	}
	native.SetInputCallback(w.chars.push)

	b.shell.windows = append(b.shell.windows, w)
	b.shell.logger.Info("window created", "window", w.id, "title", b.opts.Title)
	return w, nil
}

// MustBuild is like Build but panics on failure. Window construction happens
// once at startup, so failure there is fatal.
func (b *WindowBuilder) MustBuild() *Window {
	w, err := b.Build()
	if err != nil {
		panic(err)
	}
	return w
}
