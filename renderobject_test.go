package sapling

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func renderOne(t *testing.T, ro RenderObject, e Entity, r Renderer) {
	t.Helper()
	f := newRenderFixture(t)
	f.sys.RenderObjects = map[Entity]RenderObject{e: ro}
	f.rc.Renderer = r
	f.run()
}

func TestRectangleObjectClipsToParent(t *testing.T) {
	r := newRecordingRenderer(640, 480)
	renderOne(t, RectangleObject{Selector: "button"}, 4, r)

	if len(r.rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(r.rects))
	}
	want := rectCall{
		Bounds:     Rect{5, 5, 50, 20},
		Parent:     Rect{10, 20, 200, 100},
		Global:     Point{10, 20},
		Background: color.RGBA{R: 0x50, G: 0xb4, B: 0xff, A: 0xff},
		Opacity:    1,
	}
	if diff := cmp.Diff(want, r.rects[0]); diff != "" {
		t.Errorf("rect mismatch (-want +got):\n%s", diff)
	}
}

func TestRectangleObjectOpacity(t *testing.T) {
	f := newRenderFixture(t)
	theme := newTestTheme()
	theme.floats["button.opacity"] = 0.25
	f.rc.Theme = theme
	f.sys.RenderObjects = map[Entity]RenderObject{2: RectangleObject{Selector: "button"}}
	f.run()

	if got := f.r.rects[0].Opacity; got != 0.25 {
		t.Errorf("Opacity = %v, want 0.25", got)
	}
}

func TestRectangleObjectWithoutBounds(t *testing.T) {
	f := newRenderFixture(t)
	f.store.Remove(3)
	f.sys.RenderObjects = map[Entity]RenderObject{3: RectangleObject{Selector: "button"}}
	f.run()
	if len(f.r.rects) != 0 {
		t.Errorf("drew %d rects for entity without Bounds", len(f.r.rects))
	}
}

func TestTextObject(t *testing.T) {
	f := newRenderFixture(t)
	theme := newTestTheme()
	theme.strings["label.font-family"] = "mono"
	theme.floats["label.font-size"] = 18
	f.rc.Theme = theme
	f.sys.RenderObjects = map[Entity]RenderObject{
		4: TextObject{Text: "hello", Selector: "label"},
		3: TextObject{Text: "plain"},
		2: TextObject{},
	}
	f.run()

	want := []string{
		"fill",
		`text "hello" mono 18 at 15,25`,
		`text "plain" default 12 at 300,0`,
	}
	if diff := cmp.Diff(want, f.r.log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

// plainRenderer has no optional capabilities.
type plainRenderer struct{ rects int }

func (p *plainRenderer) Render(color.RGBA) {}
func (p *plainRenderer) RenderRectangle(Rect, Rect, Point, uint, color.RGBA, uint, color.RGBA, float64) {
	p.rects++
}
func (p *plainRenderer) Image() *image.RGBA { return nil }

func TestCapabilityObjectsSkipPlainRenderer(t *testing.T) {
	p := &plainRenderer{}
	renderOne(t, TextObject{Text: "x"}, 2, p)
	renderOne(t, ImageObject{Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}, 2, p)
	renderOne(t, NewFPSObject(""), 2, p)
	if p.rects != 0 {
		t.Errorf("rects = %d", p.rects)
	}
}

func TestImageObject(t *testing.T) {
	r := newRecordingRenderer(640, 480)
	renderOne(t, ImageObject{Image: image.NewRGBA(image.Rect(0, 0, 4, 4))}, 4, r)
	renderOne(t, ImageObject{}, 4, r)
	if r.images != 1 {
		t.Fatalf("images = %d, want 1", r.images)
	}
	if got := r.log[len(r.log)-2]; got != "image at 15,25" {
		t.Errorf("log = %v", r.log)
	}
}

func TestFPSObject(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := NewFPSObject("")
	o.now = func() time.Time { return now }

	for range 30 {
		o.tick()
		now = now.Add(20 * time.Millisecond)
	}
	// 26 frames in the first 500ms window.
	if got := o.FPS(); got < 49 || got > 53 {
		t.Errorf("FPS = %v, want ~50", got)
	}

	r := newRecordingRenderer(640, 480)
	f := newRenderFixture(t)
	f.rc.Renderer = r
	f.sys.RenderObjects = map[Entity]RenderObject{3: o}
	f.run()
	if len(r.texts) != 1 || r.texts[0][:5] != "FPS: " {
		t.Errorf("texts = %v", r.texts)
	}
}

func TestFPSObjectZeroValue(t *testing.T) {
	o := &FPSObject{Selector: "fps"}
	r := newRecordingRenderer(640, 480)
	f := newRenderFixture(t)
	f.rc.Renderer = r
	f.sys.RenderObjects = map[Entity]RenderObject{3: o}
	f.run()
	if o.FPS() != 0 {
		t.Errorf("FPS after one frame = %v, want 0", o.FPS())
	}
	if len(r.texts) != 1 || r.texts[0][:5] != "FPS: " {
		t.Errorf("texts = %v", r.texts)
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	q.Push("a")
	q.Push(2)
	if q.Len() != 2 {
		t.Fatalf("Len = %d", q.Len())
	}
	if diff := cmp.Diff([]any{"a", 2}, q.Drain()); diff != "" {
		t.Errorf("Drain mismatch (-want +got):\n%s", diff)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue not empty after Drain")
	}
}
