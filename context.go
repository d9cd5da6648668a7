package sapling

// Context is handed to a RenderObject for one node. The walker builds a
// fresh one per node; render objects must not keep it past the call.
type Context struct {
	Entity Entity
	Store  Store
	Tree   *Tree
	Events *EventQueue
	Theme  Theme
	Parent *Context
}

// Bounds returns the Bounds of the context's entity.
func (c *Context) Bounds() (Rect, bool) {
	return c.Store.Bounds(c.Entity)
}

// RenderContext is the shared state of one frame: the target renderer, the
// theme and the application event queue.
type RenderContext struct {
	Renderer Renderer
	Theme    Theme
	Events   *EventQueue
}

// EventQueue is a FIFO of application events. Input routed through a
// SceneAdapter lands here, and render objects may push their own.
// It is not safe for concurrent use.
type EventQueue struct {
	events []any
}

// Push appends ev to the queue.
func (q *EventQueue) Push(ev any) {
	q.events = append(q.events, ev)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns every queued event in arrival order and empties the queue.
func (q *EventQueue) Drain() []any {
	out := q.events
	q.events = nil
	return out
}
