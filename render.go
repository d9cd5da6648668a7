package sapling

import "time"

// RenderSystem walks the widget tree once per frame, resolves absolute
// positions from relative Bounds, skips hidden subtrees and invokes each
// node's RenderObject in tree order (parents before children, so nested
// widgets composite back to front).
type RenderSystem struct {
	RenderObjects map[Entity]RenderObject

	// Debug draws a themed "debugborder" rectangle behind every node that
	// has Bounds and whose parent has Bounds, and collects FrameStats.
	Debug bool

	// Logger receives per-frame stats in debug mode. Nil disables them.
	Logger Logger

	dirty bool
	stats FrameStats
}

// NewRenderSystem creates a render system with an empty render object map.
// It starts dirty so the first frame is drawn.
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		RenderObjects: make(map[Entity]RenderObject),
		dirty:         true,
	}
}

// SetDirty sets the flag Run checks before drawing anything.
func (s *RenderSystem) SetDirty(dirty bool) {
	s.dirty = dirty
}

// Dirty reports whether the next Run will draw.
func (s *RenderSystem) Dirty() bool {
	return s.dirty
}

// Stats returns the stats of the last frame drawn in debug mode.
func (s *RenderSystem) Stats() FrameStats {
	return s.stats
}

// Run draws one frame of tree into rc. It does nothing when the system is
// not dirty or the tree has no nodes besides its root.
//
// Absolute positions are written back with store.SetPoint for every drawn
// node that has Bounds. A node without Bounds passes its parent's offset
// through unchanged to its children.
func (s *RenderSystem) Run(tree *Tree, store Store, rc *RenderContext) {
	if !s.dirty || tree == nil || tree.Len() == 0 {
		return
	}

	var stats FrameStats
	var t0 time.Time
	if s.Debug {
		t0 = time.Now()
	}

	r := rc.Renderer
	theme := rc.Theme

	r.Render(theme.Color("background", SelectorWindow))

	hidden := make(map[Entity]struct{})
	offsets := map[Entity]Point{tree.Root: {}}

	for node := range tree.All() {
		stats.Visited++
		parent, hasParent := tree.Parent(node)
		global := offsets[parent]

		// Hide all children of a hidden parent.
		if _, ok := hidden[parent]; ok && hasParent {
			hidden[node] = struct{}{}
			stats.Hidden++
			continue
		}

		if s.Debug && hasParent {
			if b, ok := store.Bounds(node); ok {
				if pb, ok := store.Bounds(parent); ok {
					r.RenderRectangle(b, pb, global,
						theme.Uint("border-radius", SelectorDebugBorder),
						theme.Color("background", SelectorDebugBorder),
						theme.Uint("border-width", SelectorDebugBorder),
						theme.Color("border-color", SelectorDebugBorder),
						theme.Float("opacity", SelectorDebugBorder))
					stats.DebugBorders++
				}
			}
		}

		if v, ok := store.Visibility(node); ok && v != Visible {
			hidden[node] = struct{}{}
			stats.Hidden++
			continue
		}

		if ro, ok := s.RenderObjects[node]; ok {
			ro.Render(r, &Context{
				Entity: node,
				Store:  store,
				Tree:   tree,
				Events: rc.Events,
				Theme:  theme,
			}, global)
			stats.Rendered++
		}

		b, ok := store.Bounds(node)
		if !ok {
			offsets[node] = global
			continue
		}
		abs := global.Add(b.X, b.Y)
		offsets[node] = abs
		store.SetPoint(node, abs)
	}

	if s.Debug {
		stats.Duration = time.Since(t0)
		s.stats = stats
		s.debugLog(stats)
	}
}
