package sapling

import (
	"image/color"
	"math"
)

// Entity identifies one node in the widget tree and its components in a Store.
// It carries no data of its own.
type Entity uint64

// Point is an absolute position in window coordinates. The render walker
// writes one per visited node that has Bounds.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Floor returns p with both coordinates rounded down.
func (p Point) Floor() Point {
	return Point{math.Floor(p.X), math.Floor(p.Y)}
}

// Rect is an axis-aligned rectangle. As a Bounds component it is relative to
// the content origin of the entity's parent. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlap of r and other. The result has zero size
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Visibility controls whether a node and its subtree are drawn.
// An entity without a Visibility component is visible.
type Visibility uint8

const (
	Visible   Visibility = iota // drawn normally
	Hidden                      // not drawn, children not drawn
	Collapsed                   // not drawn, children not drawn, takes no space in layout
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Collapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
)

// ButtonState is the edge a button or key event reports.
type ButtonState uint8

const (
	ButtonDown ButtonState = iota // pressed this poll
	ButtonUp                      // released this poll
)

// Transparent is the zero colour; theme lookups return it for unknown keys.
var Transparent = color.RGBA{}
