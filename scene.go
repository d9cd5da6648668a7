package sapling

import (
	"time"

	"github.com/tanema/gween/ease"
)

// SceneAdapter is an Adapter that renders a widget tree with a
// RenderSystem. Input is queued on Events as the Event values produced by
// InputTracker, and the render system is marked dirty so the next Run draws.
type SceneAdapter struct {
	Tree   *Tree
	Store  Store
	Theme  Theme
	System *RenderSystem
	Events EventQueue

	// OnEvents, when set, receives the queued events at the start of every
	// Run, before tweens advance and the frame is drawn. Without it queued
	// events are discarded.
	OnEvents func(a *SceneAdapter, events []any)

	requests RequestSender
	tweens   []*TweenGroup
	now      func() time.Time
	lastRun  time.Time
	width    float64
	height   float64
	active   bool
}

// NewSceneAdapter creates an adapter for tree with a fresh render system.
func NewSceneAdapter(tree *Tree, store Store, theme Theme) *SceneAdapter {
	return &SceneAdapter{
		Tree:   tree,
		Store:  store,
		Theme:  theme,
		System: NewRenderSystem(),
		now:    time.Now,
	}
}

// Attach gives the adapter a sender for its own window so running tweens
// can request redraws.
func (a *SceneAdapter) Attach(s RequestSender) {
	a.requests = s
}

// SetRenderObject registers ro for e.
func (a *SceneAdapter) SetRenderObject(e Entity, ro RenderObject) {
	a.System.RenderObjects[e] = ro
}

// Animate starts a tween on e's Bounds. It does nothing when e has no
// Bounds.
func (a *SceneAdapter) Animate(e Entity, to Rect, duration float32, fn ease.TweenFunc) {
	g := TweenBounds(a.Store, e, to, duration, fn)
	if g == nil {
		return
	}
	if len(a.tweens) == 0 {
		// Time spent idle before the first tween does not count.
		a.lastRun = a.now()
	}
	a.tweens = append(a.tweens, g)
	a.Invalidate()
}

// Animating reports whether any tween is still running.
func (a *SceneAdapter) Animating() bool {
	return len(a.tweens) > 0
}

// Invalidate marks the scene dirty and asks the window for a redraw.
func (a *SceneAdapter) Invalidate() {
	a.System.SetDirty(true)
	a.requests.Redraw()
}

// Size returns the last size reported by Resize.
func (a *SceneAdapter) Size() (width, height float64) {
	return a.width, a.height
}

// IsActive returns the last focus state reported by Active.
func (a *SceneAdapter) IsActive() bool {
	return a.active
}

func (a *SceneAdapter) queue(ev Event) {
	a.Events.Push(ev)
	if ev.Dirty() {
		a.System.SetDirty(true)
	}
}

func (a *SceneAdapter) Mouse(x, y float64)      { a.queue(MouseMoveEvent{X: x, Y: y}) }
func (a *SceneAdapter) MouseEvent(e MouseEvent) { a.queue(MouseButtonEvent{e}) }
func (a *SceneAdapter) Scroll(dx, dy float64)   { a.queue(ScrollEvent{DX: dx, DY: dy}) }
func (a *SceneAdapter) KeyEvent(e KeyEvent)     { a.queue(KeyInputEvent{e}) }

func (a *SceneAdapter) Resize(width, height float64) {
	a.width, a.height = width, height
	a.queue(ResizeEvent{Width: int(width), Height: int(height)})
}

func (a *SceneAdapter) Active(active bool) {
	a.active = active
	a.queue(ActiveEvent{Active: active})
}

// Run handles queued events, advances tweens and draws the tree onto s.
func (a *SceneAdapter) Run(s Surface) {
	now := a.now()
	var dt float32
	if !a.lastRun.IsZero() {
		dt = float32(now.Sub(a.lastRun).Seconds())
	}
	a.lastRun = now

	if a.Events.Len() > 0 {
		events := a.Events.Drain()
		if a.OnEvents != nil {
			a.OnEvents(a, events)
		}
	}

	if len(a.tweens) > 0 {
		live := a.tweens[:0]
		for _, g := range a.tweens {
			g.Update(dt)
			if !g.Done {
				live = append(live, g)
			}
		}
		clear(a.tweens[len(live):])
		a.tweens = live
		a.System.SetDirty(true)
		if len(a.tweens) > 0 {
			a.requests.Redraw()
		}
	}

	a.System.Run(a.Tree, a.Store, &RenderContext{
		Renderer: s,
		Theme:    a.Theme,
		Events:   &a.Events,
	})
	a.System.SetDirty(false)
}
