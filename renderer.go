package sapling

import (
	"image"
	"image/color"
)

// Renderer is the 2D drawing backend the render walker and render objects
// draw with. The raster sub-package provides a software implementation.
type Renderer interface {
	// Render fills the whole surface with c.
	Render(c color.RGBA)

	// RenderRectangle draws a rectangle with the size of bounds at
	// global + (bounds.X, bounds.Y), clipped to parentBounds placed at global.
	RenderRectangle(bounds, parentBounds Rect, global Point, radius uint,
		background color.RGBA, borderWidth uint, borderColor color.RGBA, opacity float64)

	// Image returns the pixel buffer of the last frame, or nil when the
	// surface has no pixels yet.
	Image() *image.RGBA
}

// TextRenderer is an optional Renderer capability for drawing text.
type TextRenderer interface {
	RenderText(text, family string, size float64, c color.RGBA, at Point)
}

// ImageRenderer is an optional Renderer capability for drawing images.
type ImageRenderer interface {
	RenderImage(img image.Image, at Point)
}

// Surface is the per-window render target handed to Adapter.Run.
type Surface interface {
	Renderer
	Resize(width, height float64)
	RegisterFont(family string, data []byte) error
}

// Theme resolves style properties by selector, e.g. ("background", "window").
// Unknown properties resolve to the zero value.
type Theme interface {
	Color(property, selector string) color.RGBA
	Uint(property, selector string) uint
	Float(property, selector string) float64
}

// Selectors the render walker queries.
const (
	SelectorWindow      = "window"
	SelectorDebugBorder = "debugborder"
)
