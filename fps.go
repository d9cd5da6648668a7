package sapling

import (
	"fmt"
	"time"
)

// FPSObject is a RenderObject that draws how many frames per second its
// node is drawn, as "FPS: 60.0". The value is recomputed every half second.
// Renderers without the TextRenderer capability draw nothing.
type FPSObject struct {
	Selector string

	now    func() time.Time
	since  time.Time
	frames int
	fps    float64
}

// NewFPSObject returns an FPS counter styled with selector. The zero value
// with a Selector set works too.
func NewFPSObject(selector string) *FPSObject {
	return &FPSObject{Selector: selector, now: time.Now}
}

// FPS returns the last computed rate.
func (o *FPSObject) FPS() float64 {
	return o.fps
}

func (o *FPSObject) tick() {
	if o.now == nil {
		o.now = time.Now
	}
	now := o.now()
	if o.since.IsZero() {
		o.since = now
	}
	o.frames++
	if elapsed := now.Sub(o.since); elapsed >= 500*time.Millisecond {
		o.fps = float64(o.frames) / elapsed.Seconds()
		o.frames = 0
		o.since = now
	}
}

func (o *FPSObject) Render(r Renderer, ctx *Context, global Point) {
	o.tick()
	TextObject{Text: fmt.Sprintf("FPS: %.1f", o.fps), Selector: o.Selector}.Render(r, ctx, global)
}
