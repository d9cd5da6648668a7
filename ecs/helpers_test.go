package ecs

import (
	"image"
	"image/color"

	"github.com/phanxgames/sapling"
)

type nopRenderer struct{}

func (nopRenderer) Render(color.RGBA) {}
func (nopRenderer) RenderRectangle(sapling.Rect, sapling.Rect, sapling.Point, uint, color.RGBA, uint, color.RGBA, float64) {
}
func (nopRenderer) Image() *image.RGBA                { return nil }
func (nopRenderer) Resize(float64, float64)           {}
func (nopRenderer) RegisterFont(string, []byte) error { return nil }

type nopTheme struct{}

func (nopTheme) Color(string, string) color.RGBA { return color.RGBA{} }
func (nopTheme) Uint(string, string) uint        { return 0 }
func (nopTheme) Float(string, string) float64    { return 0 }
