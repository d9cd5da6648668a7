package sapling

import "errors"

var (
	// ErrNoPlatform is returned by Build when the shell has no Platform.
	ErrNoPlatform = errors.New("sapling: shell has no platform")
	// ErrNoSurface is returned by Build when the shell has no surface factory.
	ErrNoSurface = errors.New("sapling: shell has no surface factory")
)

// ShellConfig holds the collaborators a Shell creates windows with.
type ShellConfig struct {
	Platform Platform

	// NewSurface creates the render target of a new window with the
	// window's initial size.
	NewSurface func(width, height float64) Surface

	// Logger receives lifecycle messages. Nil uses NopLogger.
	Logger Logger
}

// Shell owns every open window and runs them on one goroutine. Windows are
// polled in creation order; a window is removed as soon as its native
// handle closes or it processes a close request.
//
// A panic in an adapter is not recovered and ends the process.
type Shell struct {
	cfg     ShellConfig
	logger  Logger
	windows []*Window
}

// NewShell creates a shell with no windows.
func NewShell(cfg ShellConfig) *Shell {
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	return &Shell{cfg: cfg, logger: logger}
}

// CreateWindow starts building a window driven by adapter. The window joins
// the shell when the builder's Build is called.
func (s *Shell) CreateWindow(adapter Adapter) *WindowBuilder {
	return &WindowBuilder{
		shell:   s,
		adapter: adapter,
		opts: WindowOptions{
			Bounds: Rect{Width: 100, Height: 100},
		},
		fonts: make(map[string][]byte),
	}
}

// Len returns the number of open windows.
func (s *Shell) Len() int {
	return len(s.windows)
}

// Windows returns the open windows in poll order.
func (s *Shell) Windows() []*Window {
	out := make([]*Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// Step runs one iteration of the main loop: every window drains its events
// and requests, runs its adapter if dirty and presents if a redraw is
// pending. Closed windows are removed in place; the window that moves into
// the freed slot is still polled in the same iteration.
func (s *Shell) Step() {
	for i := 0; i < len(s.windows); {
		w := s.windows[i]
		w.poll()
		if w.IsOpen() {
			i++
			continue
		}
		copy(s.windows[i:], s.windows[i+1:])
		s.windows[len(s.windows)-1] = nil
		s.windows = s.windows[:len(s.windows)-1]
		w.destroy()
		s.logger.Info("window closed", "window", w.id, "remaining", len(s.windows))
	}
}

// Run calls Step until no windows remain.
func (s *Shell) Run() {
	for len(s.windows) > 0 {
		s.Step()
	}
}
