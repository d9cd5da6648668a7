// Package glfwshell implements sapling's native window layer with GLFW.
// Any number of windows may be open at once; frames are uploaded with
// glDrawPixels on a legacy OpenGL 2.1 context.
//
// GLFW must be driven from the main OS thread. Importing this package locks
// the main goroutine to it; call Shell.Run from main.
package glfwshell

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/phanxgames/sapling"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// Platform creates GLFW windows. GLFW is initialised by the first NewWindow.
type Platform struct {
	initialized bool
	glLoaded    bool
	limiter     *frameLimiter
}

// NewPlatform returns an uninitialised GLFW platform.
func NewPlatform() *Platform {
	return &Platform{limiter: newFrameLimiter()}
}

// Terminate releases GLFW. Call it after Shell.Run returns.
func (p *Platform) Terminate() {
	if p.initialized {
		glfw.Terminate()
		p.initialized = false
		p.glLoaded = false
	}
}

// NewWindow creates and shows a GLFW window configured by opts.
func (p *Platform) NewWindow(opts sapling.WindowOptions) (sapling.NativeWindow, error) {
	if !p.initialized {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("init glfw: %w", err)
		}
		p.initialized = true
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, hint(opts.Resizable))
	glfw.WindowHint(glfw.Floating, hint(opts.AlwaysOnTop))
	glfw.WindowHint(glfw.Decorated, hint(!opts.Borderless))

	w, h := int(opts.Bounds.Width), int(opts.Bounds.Height)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("create window: invalid size %dx%d", w, h)
	}
	gw, err := glfw.CreateWindow(w, h, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	gw.SetPos(int(opts.Bounds.X), int(opts.Bounds.Y))
	gw.MakeContextCurrent()
	if !p.glLoaded {
		if err := gl.Init(); err != nil {
			gw.Destroy()
			return nil, fmt.Errorf("init gl: %w", err)
		}
		p.glLoaded = true
	}
	glfw.SwapInterval(0)

	interval := opts.UpdateInterval
	if interval == 0 {
		interval = sapling.DefaultUpdateInterval
	}
	if p.limiter == nil {
		p.limiter = newFrameLimiter()
	}
	win := &window{
		w:        gw,
		interval: interval,
		limiter:  p.limiter,
		pending:  newKeyEdges(),
		current:  newKeyEdges(),
	}

	// Callbacks fire during any window's PollEvents; they write into
	// pending, which Update promotes for this window's next poll.
	gw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			win.pending.pressed[key] = true
		case glfw.Repeat:
			win.pending.repeated[key] = true
		case glfw.Release:
			win.pending.released[key] = true
		}
	})
	gw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		win.pending.scrollX += xoff
		win.pending.scrollY += yoff
		win.pending.scrolled = true
	})
	gw.SetCharCallback(func(_ *glfw.Window, r rune) {
		if win.onChar != nil {
			win.onChar(r)
		}
	})

	return win, nil
}

func hint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// keyEdges records key and scroll activity between two polls.
type keyEdges struct {
	pressed  map[glfw.Key]bool
	repeated map[glfw.Key]bool
	released map[glfw.Key]bool

	scrollX, scrollY float64
	scrolled         bool
}

func newKeyEdges() *keyEdges {
	return &keyEdges{
		pressed:  make(map[glfw.Key]bool),
		repeated: make(map[glfw.Key]bool),
		released: make(map[glfw.Key]bool),
	}
}

type window struct {
	w         *glfw.Window
	interval  time.Duration
	limiter   *frameLimiter
	pending   *keyEdges
	current   *keyEdges
	onChar    func(rune)
	destroyed bool
}

func (w *window) Update() {
	w.limiter.wait(w, w.interval)

	glfw.PollEvents()
	w.current = w.pending
	w.pending = newKeyEdges()
}

func (w *window) MousePos() (x, y float64, ok bool) {
	x, y = w.w.GetCursorPos()
	width, height := w.w.GetSize()
	if x < 0 || y < 0 || x >= float64(width) || y >= float64(height) {
		return 0, 0, false
	}
	return x, y, true
}

func (w *window) MouseDown(b sapling.MouseButton) bool {
	gb := glfw.MouseButtonLeft
	switch b {
	case sapling.MouseButtonMiddle:
		gb = glfw.MouseButtonMiddle
	case sapling.MouseButtonRight:
		gb = glfw.MouseButtonRight
	}
	return w.w.GetMouseButton(gb) == glfw.Press
}

func (w *window) ScrollWheel() (dx, dy float64, ok bool) {
	if !w.current.scrolled {
		return 0, 0, false
	}
	return w.current.scrollX, w.current.scrollY, true
}

func (w *window) Size() (width, height int) {
	return w.w.GetSize()
}

func (w *window) IsActive() bool {
	return w.w.GetAttrib(glfw.Focused) == glfw.True
}

func (w *window) IsOpen() bool {
	return !w.destroyed && !w.w.ShouldClose()
}

func (w *window) KeyPressed(c sapling.ScanCode, repeat bool) bool {
	k, ok := keyMap[c]
	if !ok {
		return false
	}
	return w.current.pressed[k] || (repeat && w.current.repeated[k])
}

func (w *window) KeyReleased(c sapling.ScanCode) bool {
	k, ok := keyMap[c]
	if !ok {
		return false
	}
	return w.current.released[k]
}

func (w *window) SetTitle(title string) {
	w.w.SetTitle(title)
}

func (w *window) SetInputCallback(fn func(r rune)) {
	w.onChar = fn
}

func (w *window) Present(img *image.RGBA) error {
	if w.destroyed {
		return fmt.Errorf("present: window destroyed")
	}
	w.w.MakeContextCurrent()

	fbw, fbh := w.w.GetFramebufferSize()
	ww, wh := w.w.GetSize()
	if fbw < 1 || fbh < 1 || ww < 1 || wh < 1 {
		return fmt.Errorf("present: window has no area")
	}
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	b := img.Bounds()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.RasterPos2f(-1, 1)
	gl.PixelZoom(float32(fbw)/float32(ww), -float32(fbh)/float32(wh))
	gl.DrawPixels(int32(b.Dx()), int32(b.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("present: gl error 0x%x", e)
	}
	w.w.SwapBuffers()
	return nil
}

func (w *window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.limiter.forget(w)
	w.w.Destroy()
}

var keyMap = map[sapling.ScanCode]glfw.Key{
	sapling.ScanBackspace:  glfw.KeyBackspace,
	sapling.ScanLeft:       glfw.KeyLeft,
	sapling.ScanRight:      glfw.KeyRight,
	sapling.ScanUp:         glfw.KeyUp,
	sapling.ScanDown:       glfw.KeyDown,
	sapling.ScanDelete:     glfw.KeyDelete,
	sapling.ScanEnter:      glfw.KeyEnter,
	sapling.ScanLeftCtrl:   glfw.KeyLeftControl,
	sapling.ScanRightCtrl:  glfw.KeyRightControl,
	sapling.ScanLeftShift:  glfw.KeyLeftShift,
	sapling.ScanRightShift: glfw.KeyRightShift,
	sapling.ScanLeftAlt:    glfw.KeyLeftAlt,
	sapling.ScanRightAlt:   glfw.KeyRightAlt,
	sapling.ScanEscape:     glfw.KeyEscape,
	sapling.ScanHome:       glfw.KeyHome,
	sapling.ScanA:          glfw.KeyA,
	sapling.ScanC:          glfw.KeyC,
	sapling.ScanV:          glfw.KeyV,
	sapling.ScanX:          glfw.KeyX,
}
