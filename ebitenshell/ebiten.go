// Package ebitenshell implements sapling's native window layer on
// [Ebitengine]. Ebitengine owns the main loop and a single window, so the
// platform creates at most one window and Run drives Shell.Step from the
// game's Update.
//
//	p := ebitenshell.NewPlatform()
//	shell := sapling.NewShell(sapling.ShellConfig{Platform: p, NewSurface: raster.NewSurface})
//	shell.CreateWindow(adapter).Title("demo").MustBuild()
//	if err := ebitenshell.Run(shell, p); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenshell

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/sapling"
)

// ErrWindowExists is returned by NewWindow when the platform already has a
// window; Ebitengine supports only one.
var ErrWindowExists = errors.New("ebitenshell: only one window is supported")

// Platform creates the single Ebitengine window.
type Platform struct {
	win *window
}

// NewPlatform returns a platform with no window.
func NewPlatform() *Platform {
	return &Platform{}
}

// NewWindow applies opts to the Ebitengine window. The window appears when
// Run starts.
func (p *Platform) NewWindow(opts sapling.WindowOptions) (sapling.NativeWindow, error) {
	if p.win != nil && !p.win.destroyed {
		return nil, ErrWindowExists
	}
	ebiten.SetWindowTitle(opts.Title)
	w, h := int(opts.Bounds.Width), int(opts.Bounds.Height)
	if w > 0 && h > 0 {
		ebiten.SetWindowSize(w, h)
	}
	ebiten.SetWindowPosition(int(opts.Bounds.X), int(opts.Bounds.Y))
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowFloating(opts.AlwaysOnTop)
	ebiten.SetWindowDecorated(!opts.Borderless)
	ebiten.SetWindowClosingHandled(true)

	interval := opts.UpdateInterval
	if interval == 0 {
		interval = sapling.DefaultUpdateInterval
	}
	if interval > 0 {
		ebiten.SetTPS(max(1, int(time.Second/interval)))
	}

	p.win = &window{width: w, height: h}
	return p.win, nil
}

// Run starts Ebitengine and steps shell once per tick until it has no
// windows left.
func Run(shell *sapling.Shell, p *Platform) error {
	return ebiten.RunGame(&game{shell: shell, platform: p})
}

type game struct {
	shell    *sapling.Shell
	platform *Platform
	frame    *ebiten.Image
}

func (g *game) Update() error {
	if w := g.platform.win; w != nil && !w.destroyed {
		w.collectChars()
	}
	g.shell.Step()
	if g.shell.Len() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.platform.win
	if w == nil || w.frame == nil {
		return
	}
	size := w.frame.Bounds().Size()
	if g.frame == nil || g.frame.Bounds().Size() != size {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(size.X, size.Y)
	}
	if w.dirty {
		g.frame.WritePixels(w.frame.Pix)
		w.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w := g.platform.win; w != nil {
		w.width, w.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

type window struct {
	width, height int
	onChar        func(rune)
	chars         []rune
	frame         *image.RGBA
	dirty         bool
	destroyed     bool
}

func (w *window) collectChars() {
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	if w.onChar == nil {
		return
	}
	for _, r := range w.chars {
		w.onChar(r)
	}
}

// Update does nothing: Ebitengine polls input before every tick.
func (w *window) Update() {}

func (w *window) MousePos() (x, y float64, ok bool) {
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 || cx >= w.width || cy >= w.height {
		return 0, 0, false
	}
	return float64(cx), float64(cy), true
}

func (w *window) MouseDown(b sapling.MouseButton) bool {
	switch b {
	case sapling.MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	case sapling.MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	default:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
}

func (w *window) ScrollWheel() (dx, dy float64, ok bool) {
	dx, dy = ebiten.Wheel()
	return dx, dy, dx != 0 || dy != 0
}

func (w *window) Size() (width, height int) {
	return w.width, w.height
}

func (w *window) IsActive() bool {
	return ebiten.IsFocused()
}

func (w *window) IsOpen() bool {
	return !w.destroyed && !ebiten.IsWindowBeingClosed()
}

func (w *window) KeyPressed(c sapling.ScanCode, repeat bool) bool {
	k, ok := keyMap[c]
	if !ok {
		return false
	}
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	return repeat && repeating(inpututil.KeyPressDuration(k), ebiten.TPS())
}

func (w *window) KeyReleased(c sapling.ScanCode) bool {
	k, ok := keyMap[c]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustReleased(k)
}

func (w *window) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (w *window) SetInputCallback(fn func(r rune)) {
	w.onChar = fn
}

// Present keeps img for the next Draw. The surface buffer is reused across
// frames, so only the reference is stored.
func (w *window) Present(img *image.RGBA) error {
	if w.destroyed {
		return errors.New("present: window destroyed")
	}
	w.frame = img
	w.dirty = true
	return nil
}

func (w *window) Destroy() {
	w.destroyed = true
	w.frame = nil
}

// Key repeat timing, in seconds.
const (
	repeatDelay    = 0.5
	repeatInterval = 0.05
)

// repeating reports whether a key held for ticks ticks fires a repeat this
// tick.
func repeating(ticks, tps int) bool {
	delay := int(repeatDelay * float64(tps))
	interval := max(1, int(repeatInterval*float64(tps)))
	if ticks <= delay {
		return false
	}
	return (ticks-delay)%interval == 0
}

var keyMap = map[sapling.ScanCode]ebiten.Key{
	sapling.ScanBackspace:  ebiten.KeyBackspace,
	sapling.ScanLeft:       ebiten.KeyArrowLeft,
	sapling.ScanRight:      ebiten.KeyArrowRight,
	sapling.ScanUp:         ebiten.KeyArrowUp,
	sapling.ScanDown:       ebiten.KeyArrowDown,
	sapling.ScanDelete:     ebiten.KeyDelete,
	sapling.ScanEnter:      ebiten.KeyEnter,
	sapling.ScanLeftCtrl:   ebiten.KeyControlLeft,
	sapling.ScanRightCtrl:  ebiten.KeyControlRight,
	sapling.ScanLeftShift:  ebiten.KeyShiftLeft,
	sapling.ScanRightShift: ebiten.KeyShiftRight,
	sapling.ScanLeftAlt:    ebiten.KeyAltLeft,
	sapling.ScanRightAlt:   ebiten.KeyAltRight,
	sapling.ScanEscape:     ebiten.KeyEscape,
	sapling.ScanHome:       ebiten.KeyHome,
	sapling.ScanA:          ebiten.KeyA,
	sapling.ScanC:          ebiten.KeyC,
	sapling.ScanV:          ebiten.KeyV,
	sapling.ScanX:          ebiten.KeyX,
}
