package sapling

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// renderFixture builds:
//
//	1 (0,0 640x480)
//	├── 2 (10,20 200x100)
//	│   └── 4 (5,5 50x20)
//	└── 3 (300,0 100x100)
//
// with logging render objects A, B, C on 2, 4, 3.
type renderFixture struct {
	tree  *Tree
	store *MapStore
	sys   *RenderSystem
	r     *recordingRenderer
	rc    *RenderContext
}

func newRenderFixture(t *testing.T) *renderFixture {
	t.Helper()
	f := &renderFixture{
		tree:  newTestTree(t),
		store: NewMapStore(),
		sys:   NewRenderSystem(),
		r:     newRecordingRenderer(640, 480),
	}
	f.store.AddBounds(1, Rect{0, 0, 640, 480})
	f.store.AddBounds(2, Rect{10, 20, 200, 100})
	f.store.AddBounds(4, Rect{5, 5, 50, 20})
	f.store.AddBounds(3, Rect{300, 0, 100, 100})
	f.sys.RenderObjects[2] = drawLogger(f.r, "A")
	f.sys.RenderObjects[4] = drawLogger(f.r, "B")
	f.sys.RenderObjects[3] = drawLogger(f.r, "C")
	f.rc = &RenderContext{Renderer: f.r, Theme: newTestTheme(), Events: &EventQueue{}}
	return f
}

func (f *renderFixture) run() { f.sys.Run(f.tree, f.store, f.rc) }

func (f *renderFixture) point(t *testing.T, e Entity) Point {
	t.Helper()
	p, ok := f.store.Point(e)
	if !ok {
		t.Fatalf("entity %d has no Point", e)
	}
	return p
}

func TestRenderSystemOrderAndOffsets(t *testing.T) {
	f := newRenderFixture(t)
	f.run()

	want := []string{
		"fill",
		"draw A at 0,0",
		"draw B at 10,20",
		"draw C at 0,0",
	}
	if diff := cmp.Diff(want, f.r.log); diff != "" {
		t.Errorf("draw log mismatch (-want +got):\n%s", diff)
	}
	if got := f.r.fills[0]; got != (color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}) {
		t.Errorf("background = %v, want window background", got)
	}

	points := map[Entity]Point{1: {0, 0}, 2: {10, 20}, 4: {15, 25}, 3: {300, 0}}
	for e, want := range points {
		if got := f.point(t, e); got != want {
			t.Errorf("Point(%d) = %v, want %v", e, got, want)
		}
	}
}

func TestRenderSystemOffsetFromRootBounds(t *testing.T) {
	f := newRenderFixture(t)
	f.store.SetBounds(1, Rect{7, 3, 640, 480})
	f.run()

	if got := f.point(t, 4); got != (Point{22, 28}) {
		t.Errorf("Point(4) = %v, want {22 28}", got)
	}
}

func TestRenderSystemHiddenSubtree(t *testing.T) {
	for _, v := range []Visibility{Hidden, Collapsed} {
		t.Run(v.String(), func(t *testing.T) {
			f := newRenderFixture(t)
			f.store.AddVisibility(2, v)
			f.run()

			want := []string{"fill", "draw C at 0,0"}
			if diff := cmp.Diff(want, f.r.log); diff != "" {
				t.Errorf("draw log mismatch (-want +got):\n%s", diff)
			}
			// Hidden nodes keep their stale position.
			if got := f.point(t, 2); got != (Point{}) {
				t.Errorf("Point(2) = %v, want unchanged", got)
			}
			if got := f.point(t, 4); got != (Point{}) {
				t.Errorf("Point(4) = %v, want unchanged", got)
			}
		})
	}
}

func TestRenderSystemHiddenLeafKeepsSiblings(t *testing.T) {
	f := newRenderFixture(t)
	f.store.AddVisibility(4, Hidden)
	f.run()

	want := []string{"fill", "draw A at 0,0", "draw C at 0,0"}
	if diff := cmp.Diff(want, f.r.log); diff != "" {
		t.Errorf("draw log mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSystemDebugBorders(t *testing.T) {
	f := newRenderFixture(t)
	f.sys.Debug = true
	f.run()

	want := []string{
		"fill",
		"rect 10,20",
		"draw A at 0,0",
		"rect 15,25",
		"draw B at 10,20",
		"rect 300,0",
		"draw C at 0,0",
	}
	if diff := cmp.Diff(want, f.r.log); diff != "" {
		t.Errorf("draw log mismatch (-want +got):\n%s", diff)
	}

	wantB := rectCall{
		Bounds:      Rect{5, 5, 50, 20},
		Parent:      Rect{10, 20, 200, 100},
		Global:      Point{10, 20},
		BorderWidth: 1,
		BorderColor: color.RGBA{R: 0xff, B: 0xff, A: 0xff},
		Opacity:     1,
	}
	if diff := cmp.Diff(wantB, f.r.rects[1]); diff != "" {
		t.Errorf("debug border of 4 mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSystemDebugBorderOfHiddenNode(t *testing.T) {
	f := newRenderFixture(t)
	f.sys.Debug = true
	f.store.AddVisibility(2, Hidden)
	f.run()

	// The hidden node itself still gets a border; its subtree does not.
	want := []string{"fill", "rect 10,20", "rect 300,0", "draw C at 0,0"}
	if diff := cmp.Diff(want, f.r.log); diff != "" {
		t.Errorf("draw log mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSystemDebugNeedsParentBounds(t *testing.T) {
	f := newRenderFixture(t)
	f.sys.Debug = true
	f.store.Remove(2)
	f.store.AddPoint(2)
	f.run()

	// 2 has no Bounds, so neither it nor its child 4 get a border.
	want := []string{
		"fill",
		"draw A at 0,0",
		"draw B at 0,0",
		"rect 300,0",
		"draw C at 0,0",
	}
	if diff := cmp.Diff(want, f.r.log); diff != "" {
		t.Errorf("draw log mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSystemNodeWithoutBoundsPassesOffset(t *testing.T) {
	f := newRenderFixture(t)
	f.store.SetBounds(1, Rect{10, 10, 640, 480})
	f.store.Remove(2)
	f.store.AddPoint(2)
	f.store.SetPoint(2, Point{-1, -1})
	f.run()

	if got := f.point(t, 4); got != (Point{15, 15}) {
		t.Errorf("Point(4) = %v, want {15 15}", got)
	}
	if got := f.point(t, 2); got != (Point{-1, -1}) {
		t.Errorf("Point(2) = %v, want untouched {-1 -1}", got)
	}
}

func TestRenderSystemSkips(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		f := newRenderFixture(t)
		f.sys.SetDirty(false)
		f.run()
		if len(f.r.log) != 0 {
			t.Errorf("clean system drew %v", f.r.log)
		}
	})
	t.Run("root only", func(t *testing.T) {
		f := newRenderFixture(t)
		f.tree = NewTree(1)
		f.run()
		if len(f.r.log) != 0 {
			t.Errorf("root-only tree drew %v", f.r.log)
		}
	})
	t.Run("nil tree", func(t *testing.T) {
		f := newRenderFixture(t)
		f.tree = nil
		f.run()
		if len(f.r.log) != 0 {
			t.Errorf("nil tree drew %v", f.r.log)
		}
	})
}

func TestRenderSystemStaysDirty(t *testing.T) {
	f := newRenderFixture(t)
	if !f.sys.Dirty() {
		t.Fatal("new render system is not dirty")
	}
	f.run()
	if !f.sys.Dirty() {
		t.Error("Run cleared the dirty flag")
	}
}

func TestRenderSystemContext(t *testing.T) {
	f := newRenderFixture(t)
	var got *Context
	f.sys.RenderObjects[4] = RenderObjectFunc(func(_ Renderer, ctx *Context, _ Point) {
		got = ctx
	})
	f.run()

	if got == nil {
		t.Fatal("render object not called")
	}
	if got.Entity != 4 || got.Tree != f.tree || got.Events != f.rc.Events {
		t.Errorf("context = %+v", got)
	}
	if b, ok := got.Bounds(); !ok || b != (Rect{5, 5, 50, 20}) {
		t.Errorf("ctx.Bounds() = %v, %v", b, ok)
	}
}

type captureLogger struct {
	NopLogger
	msgs []string
}

func (l *captureLogger) Debug(msg string, _ ...any) { l.msgs = append(l.msgs, msg) }

func TestRenderSystemStats(t *testing.T) {
	f := newRenderFixture(t)
	logger := &captureLogger{}
	f.sys.Debug = true
	f.sys.Logger = logger
	f.store.AddVisibility(3, Hidden)
	f.run()

	s := f.sys.Stats()
	want := FrameStats{Visited: 4, Rendered: 2, Hidden: 1, DebugBorders: 3}
	s.Duration = 0
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"frame"}, logger.msgs); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}
