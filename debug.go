package sapling

import "time"

// FrameStats holds per-frame counters of the render walker.
// Only populated when RenderSystem.Debug is true.
type FrameStats struct {
	Visited      int // nodes yielded by the tree
	Rendered     int // render objects invoked
	Hidden       int // nodes skipped by visibility, including descendants
	DebugBorders int // debug rectangles drawn
	Duration     time.Duration
}

// debugLog reports frame stats at debug level.
func (s *RenderSystem) debugLog(stats FrameStats) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("frame",
		"visited", stats.Visited,
		"rendered", stats.Rendered,
		"hidden", stats.Hidden,
		"debug_borders", stats.DebugBorders,
		"duration", stats.Duration)
}
