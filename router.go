package sapling

import "sync"

// charBuffer collects character input from the platform callback until the
// next poll drains it.
type charBuffer struct {
	mu    sync.Mutex
	runes []rune
}

func (b *charBuffer) push(r rune) {
	b.mu.Lock()
	b.runes = append(b.runes, r)
	b.mu.Unlock()
}

func (b *charBuffer) drain() []rune {
	b.mu.Lock()
	out := b.runes
	b.runes = nil
	b.mu.Unlock()
	return out
}

// Router forwards tracked input to an adapter, one callback per event.
type Router struct {
	Adapter Adapter
	Surface Surface
}

// Dispatch delivers events in order and reports whether any of them needs
// the adapter to run. Resize events are also applied to the surface.
func (r *Router) Dispatch(events []Event) (dirty bool) {
	for _, ev := range events {
		switch e := ev.(type) {
		case MouseMoveEvent:
			r.Adapter.Mouse(e.X, e.Y)
		case MouseButtonEvent:
			r.Adapter.MouseEvent(e.MouseEvent)
		case ScrollEvent:
			r.Adapter.Scroll(e.DX, e.DY)
		case KeyInputEvent:
			r.Adapter.KeyEvent(e.KeyEvent)
		case ResizeEvent:
			w, h := float64(e.Width), float64(e.Height)
			if r.Surface != nil {
				r.Surface.Resize(w, h)
			}
			r.Adapter.Resize(w, h)
		case ActiveEvent:
			r.Adapter.Active(e.Active)
		}
		if ev.Dirty() {
			dirty = true
		}
	}
	return dirty
}

// DispatchChars delivers buffered character input in FIFO order, dropping
// characters of keys that are polled directly.
func (r *Router) DispatchChars(runes []rune) (dirty bool) {
	for _, c := range runes {
		ev, ok := KeyEventFromRune(c)
		if !ok {
			continue
		}
		r.Adapter.KeyEvent(ev)
		dirty = true
	}
	return dirty
}
