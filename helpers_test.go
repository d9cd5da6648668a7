package sapling

import (
	"fmt"
	"image"
	"image/color"
)

// --- Recording renderer ---

type rectCall struct {
	Bounds      Rect
	Parent      Rect
	Global      Point
	Background  color.RGBA
	BorderWidth uint
	BorderColor color.RGBA
	Opacity     float64
}

// recordingRenderer is a Surface that records every call. log interleaves
// rectangle calls with entries render objects append, to check draw order.
type recordingRenderer struct {
	log     []string
	fills   []color.RGBA
	rects   []rectCall
	texts   []string
	images  int
	fonts   []string
	fontErr error

	width, height float64
	img           *image.RGBA
}

func newRecordingRenderer(w, h float64) *recordingRenderer {
	r := &recordingRenderer{}
	r.Resize(w, h)
	return r
}

func (r *recordingRenderer) Render(c color.RGBA) {
	r.fills = append(r.fills, c)
	r.log = append(r.log, "fill")
}

func (r *recordingRenderer) RenderRectangle(bounds, parentBounds Rect, global Point, radius uint,
	background color.RGBA, borderWidth uint, borderColor color.RGBA, opacity float64) {
	r.rects = append(r.rects, rectCall{bounds, parentBounds, global, background, borderWidth, borderColor, opacity})
	r.log = append(r.log, fmt.Sprintf("rect %v,%v", global.X+bounds.X, global.Y+bounds.Y))
}

func (r *recordingRenderer) RenderText(text, family string, size float64, c color.RGBA, at Point) {
	r.texts = append(r.texts, text)
	r.log = append(r.log, fmt.Sprintf("text %q %s %v at %v,%v", text, family, size, at.X, at.Y))
}

func (r *recordingRenderer) RenderImage(img image.Image, at Point) {
	r.images++
	r.log = append(r.log, fmt.Sprintf("image at %v,%v", at.X, at.Y))
}

func (r *recordingRenderer) Image() *image.RGBA { return r.img }

func (r *recordingRenderer) Resize(w, h float64) {
	r.width, r.height = w, h
	if w <= 0 || h <= 0 {
		r.img = nil
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
}

func (r *recordingRenderer) RegisterFont(family string, data []byte) error {
	if r.fontErr != nil {
		return r.fontErr
	}
	r.fonts = append(r.fonts, family)
	return nil
}

// drawLogger returns a render object that appends "draw <name>" to r's log.
func drawLogger(r *recordingRenderer, name string) RenderObject {
	return RenderObjectFunc(func(_ Renderer, _ *Context, global Point) {
		r.log = append(r.log, fmt.Sprintf("draw %s at %v,%v", name, global.X, global.Y))
	})
}

// --- Theme ---

// testTheme keys properties as "selector.property".
type testTheme struct {
	colors  map[string]color.RGBA
	uints   map[string]uint
	floats  map[string]float64
	strings map[string]string
}

func newTestTheme() *testTheme {
	return &testTheme{
		colors: map[string]color.RGBA{
			"window.background":       {R: 0x20, G: 0x20, B: 0x28, A: 0xff},
			"debugborder.border-color": {R: 0xff, B: 0xff, A: 0xff},
			"button.background":       {R: 0x50, G: 0xb4, B: 0xff, A: 0xff},
		},
		uints: map[string]uint{
			"debugborder.border-width": 1,
			"button.border-radius":     4,
		},
		floats: map[string]float64{
			"debugborder.opacity": 1,
		},
		strings: map[string]string{},
	}
}

func (t *testTheme) Color(p, s string) color.RGBA { return t.colors[s+"."+p] }
func (t *testTheme) Uint(p, s string) uint        { return t.uints[s+"."+p] }
func (t *testTheme) Float(p, s string) float64    { return t.floats[s+"."+p] }
func (t *testTheme) String(p, s string) string    { return t.strings[s+"."+p] }

func (t *testTheme) Has(p, s string) bool {
	k := s + "." + p
	_, c := t.colors[k]
	_, u := t.uints[k]
	_, f := t.floats[k]
	_, str := t.strings[k]
	return c || u || f || str
}

// --- Recording adapter ---

type recordingAdapter struct {
	calls []string
	runs  int

	// onRun, when set, is called from Run.
	onRun func(s Surface)
}

func (a *recordingAdapter) Mouse(x, y float64) {
	a.calls = append(a.calls, fmt.Sprintf("mouse %v,%v", x, y))
}

func (a *recordingAdapter) MouseEvent(e MouseEvent) {
	state := "down"
	if e.State == ButtonUp {
		state = "up"
	}
	a.calls = append(a.calls, fmt.Sprintf("button %d %s at %v,%v", e.Button, state, e.X, e.Y))
}

func (a *recordingAdapter) Scroll(dx, dy float64) {
	a.calls = append(a.calls, fmt.Sprintf("scroll %v,%v", dx, dy))
}

func (a *recordingAdapter) KeyEvent(e KeyEvent) {
	state := "down"
	if e.State == ButtonUp {
		state = "up"
	}
	a.calls = append(a.calls, fmt.Sprintf("key %s %s %q", e.Key, state, e.Text))
}

func (a *recordingAdapter) Resize(w, h float64) {
	a.calls = append(a.calls, fmt.Sprintf("resize %vx%v", w, h))
}

func (a *recordingAdapter) Active(active bool) {
	a.calls = append(a.calls, fmt.Sprintf("active %v", active))
}

func (a *recordingAdapter) Run(s Surface) {
	a.runs++
	a.calls = append(a.calls, "run")
	if a.onRun != nil {
		a.onRun(s)
	}
}

func (a *recordingAdapter) reset() {
	a.calls = nil
}
