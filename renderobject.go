package sapling

import (
	"image"
	"image/color"
)

// RenderObject is the per-entity drawing behaviour the render walker
// invokes. global is the absolute position of the node's parent content
// origin; the node's own Bounds are relative to it.
type RenderObject interface {
	Render(r Renderer, ctx *Context, global Point)
}

// RenderObjectFunc adapts a function to the RenderObject interface.
type RenderObjectFunc func(r Renderer, ctx *Context, global Point)

// Render calls f(r, ctx, global).
func (f RenderObjectFunc) Render(r Renderer, ctx *Context, global Point) {
	f(r, ctx, global)
}

// propertyLookup is implemented by themes that can tell a missing property
// from a zero one.
type propertyLookup interface {
	Has(property, selector string) bool
}

func themeFloat(t Theme, property, selector string, def float64) float64 {
	if pl, ok := t.(propertyLookup); ok && !pl.Has(property, selector) {
		return def
	}
	return t.Float(property, selector)
}

// --- Stock render objects ---

// RectangleObject draws the node's Bounds as a themed rectangle using the
// background, border-color, border-width, border-radius and opacity
// properties of Selector.
type RectangleObject struct {
	Selector string
}

func (o RectangleObject) Render(r Renderer, ctx *Context, global Point) {
	b, ok := ctx.Bounds()
	if !ok {
		return
	}
	clip := b
	if p, ok := ctx.Tree.Parent(ctx.Entity); ok {
		if pb, ok := ctx.Store.Bounds(p); ok {
			clip = pb
		}
	}
	t := ctx.Theme
	r.RenderRectangle(b, clip, global,
		t.Uint("border-radius", o.Selector),
		t.Color("background", o.Selector),
		t.Uint("border-width", o.Selector),
		t.Color("border-color", o.Selector),
		themeFloat(t, "opacity", o.Selector, 1))
}

// TextObject draws Text at the node's position with the color, font-family
// and font-size properties of Selector. Renderers without the TextRenderer
// capability draw nothing.
type TextObject struct {
	Text     string
	Selector string
}

func (o TextObject) Render(r Renderer, ctx *Context, global Point) {
	tr, ok := r.(TextRenderer)
	if !ok || o.Text == "" {
		return
	}
	at := global
	if b, ok := ctx.Bounds(); ok {
		at = global.Add(b.X, b.Y)
	}
	t := ctx.Theme
	size := themeFloat(t, "font-size", o.Selector, 12)
	family := "default"
	if fs, ok := t.(interface {
		String(property, selector string) string
	}); ok {
		if f := fs.String("font-family", o.Selector); f != "" {
			family = f
		}
	}
	c := t.Color("color", o.Selector)
	if c == Transparent {
		c = color.RGBA{A: 0xff}
	}
	tr.RenderText(o.Text, family, size, c, at)
}

// ImageObject draws Image with its top-left corner at the node's position.
type ImageObject struct {
	Image image.Image
}

func (o ImageObject) Render(r Renderer, ctx *Context, global Point) {
	ir, ok := r.(ImageRenderer)
	if !ok || o.Image == nil {
		return
	}
	at := global
	if b, ok := ctx.Bounds(); ok {
		at = global.Add(b.X, b.Y)
	}
	ir.RenderImage(o.Image, at)
}
