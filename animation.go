package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates the Bounds of one entity. Create one with TweenBounds
// or TweenPosition and call Update(dt) each frame; SceneAdapter does this for
// tweens added with Animate. If the entity loses its Bounds component the
// group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]bool // which of x, y, width, height are animated
	target Entity
	store  Store
	Done   bool
}

// Update advances all tweens by dt seconds and writes the result back to
// the target's Bounds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	b, ok := g.store.Bounds(g.target)
	if !ok {
		g.Done = true
		return
	}

	vals := [4]*float64{&b.X, &b.Y, &b.Width, &b.Height}
	allDone := true
	for i, t := range g.tweens {
		if !g.fields[i] {
			continue
		}
		val, finished := t.Update(dt)
		*vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.store.SetBounds(g.target, b)
}

// TweenBounds creates a TweenGroup that animates every field of e's Bounds
// to the target rectangle. It returns nil when e has no Bounds.
func TweenBounds(store Store, e Entity, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	b, ok := store.Bounds(e)
	if !ok {
		return nil
	}
	g := &TweenGroup{target: e, store: store, fields: [4]bool{true, true, true, true}}
	g.tweens[0] = gween.New(float32(b.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(b.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(b.Height), float32(to.Height), duration, fn)
	return g
}

// TweenPosition creates a TweenGroup that animates the X and Y of e's
// Bounds. It returns nil when e has no Bounds.
func TweenPosition(store Store, e Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b, ok := store.Bounds(e)
	if !ok {
		return nil
	}
	g := &TweenGroup{target: e, store: store, fields: [4]bool{true, true, false, false}}
	g.tweens[0] = gween.New(float32(b.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(toY), duration, fn)
	return g
}
