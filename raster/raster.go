// Package raster is a software sapling.Surface backed by an *image.RGBA.
// Shapes are anti-aliased with golang.org/x/image/vector and text is drawn
// with OpenType fonts through golang.org/x/image/font.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/phanxgames/sapling"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultFamily is the font family every surface starts with (Go Regular).
const DefaultFamily = "default"

type faceKey struct {
	family string
	size   float64
}

// Surface draws into an in-memory RGBA buffer. It is not safe for
// concurrent use.
type Surface struct {
	img   *image.RGBA
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
	z     vector.Rasterizer
}

// New creates a surface of the given size. A non-positive dimension leaves
// the surface without pixels until Resize.
func New(width, height float64) *Surface {
	s := &Surface{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		s.fonts[DefaultFamily] = f
	}
	s.Resize(width, height)
	return s
}

// NewSurface is New with the signature sapling.ShellConfig.NewSurface
// expects.
func NewSurface(width, height float64) sapling.Surface {
	return New(width, height)
}

// Resize replaces the buffer with a cleared one of the new size.
func (s *Surface) Resize(width, height float64) {
	w, h := int(width), int(height)
	if w <= 0 || h <= 0 {
		s.img = nil
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image returns the pixel buffer, or nil when the surface has no size.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// RegisterFont parses OpenType/TrueType data and makes it available under
// family.
func (s *Surface) RegisterFont(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	s.fonts[family] = f
	for k, face := range s.faces {
		if k.family == family {
			_ = face.Close()
			delete(s.faces, k)
		}
	}
	return nil
}

// Render fills the whole buffer with c.
func (s *Surface) Render(c color.RGBA) {
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// RenderRectangle draws a rounded rectangle of bounds' size at
// global + (bounds.X, bounds.Y), clipped to the parent's rectangle at
// global. The background is filled first, then the border is drawn inside
// the edge. opacity scales both.
func (s *Surface) RenderRectangle(bounds, parentBounds sapling.Rect, global sapling.Point, radius uint,
	background color.RGBA, borderWidth uint, borderColor color.RGBA, opacity float64) {
	if s.img == nil || opacity <= 0 {
		return
	}
	rect := sapling.Rect{X: global.X + bounds.X, Y: global.Y + bounds.Y, Width: bounds.Width, Height: bounds.Height}
	clip := sapling.Rect{X: global.X, Y: global.Y, Width: parentBounds.Width, Height: parentBounds.Height}
	clipRect := toImageRect(clip).Intersect(s.img.Bounds())
	if clipRect.Empty() || rect.Empty() {
		return
	}

	r := math.Min(float64(radius), math.Min(rect.Width, rect.Height)/2)
	if background.A > 0 {
		s.fill(clipRect, scale(background, opacity), func(z *vector.Rasterizer, o sapling.Point) {
			roundedRect(z, rect, r, o, false)
		})
	}
	bw := float64(borderWidth)
	if bw > 0 && borderColor.A > 0 {
		inner := sapling.Rect{X: rect.X + bw, Y: rect.Y + bw, Width: rect.Width - 2*bw, Height: rect.Height - 2*bw}
		s.fill(clipRect, scale(borderColor, opacity), func(z *vector.Rasterizer, o sapling.Point) {
			roundedRect(z, rect, r, o, false)
			if !inner.Empty() {
				roundedRect(z, inner, math.Max(r-bw, 0), o, true)
			}
		})
	}
}

// RenderText draws text with its top-left corner at at. Unknown families
// fall back to DefaultFamily.
func (s *Surface) RenderText(text, family string, size float64, c color.RGBA, at sapling.Point) {
	if s.img == nil || text == "" {
		return
	}
	face, err := s.face(family, size)
	if err != nil {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.Int26_6(at.Y*64) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}

// RenderImage draws img with its top-left corner at at.
func (s *Surface) RenderImage(img image.Image, at sapling.Point) {
	if s.img == nil || img == nil {
		return
	}
	b := img.Bounds()
	pt := image.Pt(int(math.Round(at.X)), int(math.Round(at.Y)))
	draw.Draw(s.img, image.Rectangle{Min: pt, Max: pt.Add(b.Size())}, img, b.Min, draw.Over)
}

func (s *Surface) face(family string, size float64) (font.Face, error) {
	if _, ok := s.fonts[family]; !ok {
		family = DefaultFamily
	}
	k := faceKey{family, size}
	if f, ok := s.faces[k]; ok {
		return f, nil
	}
	f, ok := s.fonts[family]
	if !ok {
		return nil, fmt.Errorf("font family %q not registered", family)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	s.faces[k] = face
	return face, nil
}

// fill rasterises the path built by path into a mask the size of clip and
// composites c through it.
func (s *Surface) fill(clip image.Rectangle, c color.RGBA, path func(z *vector.Rasterizer, origin sapling.Point)) {
	w, h := clip.Dx(), clip.Dy()
	s.z.Reset(w, h)
	path(&s.z, sapling.Point{X: float64(clip.Min.X), Y: float64(clip.Min.Y)})
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	s.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, clip, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// roundedRect adds a closed rounded rectangle translated by -origin. reverse
// winds it the other way so it cuts a hole in a previous path.
func roundedRect(z *vector.Rasterizer, r sapling.Rect, radius float64, origin sapling.Point, reverse bool) {
	x0 := float32(r.X - origin.X)
	y0 := float32(r.Y - origin.Y)
	x1 := x0 + float32(r.Width)
	y1 := y0 + float32(r.Height)
	rr := float32(radius)
	k := rr * kappa

	if !reverse {
		z.MoveTo(x0+rr, y0)
		z.LineTo(x1-rr, y0)
		if rr > 0 {
			z.CubeTo(x1-rr+k, y0, x1, y0+rr-k, x1, y0+rr)
		}
		z.LineTo(x1, y1-rr)
		if rr > 0 {
			z.CubeTo(x1, y1-rr+k, x1-rr+k, y1, x1-rr, y1)
		}
		z.LineTo(x0+rr, y1)
		if rr > 0 {
			z.CubeTo(x0+rr-k, y1, x0, y1-rr+k, x0, y1-rr)
		}
		z.LineTo(x0, y0+rr)
		if rr > 0 {
			z.CubeTo(x0, y0+rr-k, x0+rr-k, y0, x0+rr, y0)
		}
		z.ClosePath()
		return
	}

	z.MoveTo(x0+rr, y0)
	if rr > 0 {
		z.CubeTo(x0+rr-k, y0, x0, y0+rr-k, x0, y0+rr)
	}
	z.LineTo(x0, y1-rr)
	if rr > 0 {
		z.CubeTo(x0, y1-rr+k, x0+rr-k, y1, x0+rr, y1)
	}
	z.LineTo(x1-rr, y1)
	if rr > 0 {
		z.CubeTo(x1-rr+k, y1, x1, y1-rr+k, x1, y1-rr)
	}
	z.LineTo(x1, y0+rr)
	if rr > 0 {
		z.CubeTo(x1, y0+rr-k, x1-rr+k, y0, x1-rr, y0)
	}
	z.ClosePath()
}

// scale multiplies a premultiplied colour by opacity in [0, 1].
func scale(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	m := func(v uint8) uint8 { return uint8(math.Round(float64(v) * opacity)) }
	return color.RGBA{m(c.R), m(c.G), m(c.B), m(c.A)}
}

func toImageRect(r sapling.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}
