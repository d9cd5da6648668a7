// Package theme resolves style properties by selector for sapling render
// objects. Themes are tables of selectors, each holding property values:
//
//	[window]
//	background = "#1e1e1e"
//
//	[debugborder]
//	border-color = "#ff00ff"
//	border-width = 1
//	opacity = 1.0
//
// Colours are "#rgb", "#rrggbb", "#rrggbbaa" or "transparent". Numbers may be
// integers or floats. TOML and YAML files are supported.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Load for file extensions other than
// .toml, .yaml and .yml.
var ErrUnknownFormat = errors.New("theme: unknown file format")

// Format identifies a theme file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// Theme is an immutable set of selector tables. It implements
// sapling.Theme.
type Theme struct {
	selectors map[string]map[string]any
}

// New creates a theme from selector tables. The tables are copied.
func New(tables map[string]map[string]any) *Theme {
	t := &Theme{selectors: make(map[string]map[string]any, len(tables))}
	for sel, props := range tables {
		cp := make(map[string]any, len(props))
		for k, v := range props {
			cp[k] = v
		}
		t.selectors[sel] = cp
	}
	return t
}

// Default returns the built-in theme: a dark window background and a
// one-pixel magenta debug border.
func Default() *Theme {
	return New(map[string]map[string]any{
		"window": {
			"background": "#1e1e1e",
		},
		"debugborder": {
			"background":    "transparent",
			"border-color":  "#ff00ff",
			"border-width":  1,
			"border-radius": 0,
			"opacity":       1.0,
		},
		"text": {
			"color":       "#dddddd",
			"font-family": "default",
			"font-size":   14,
		},
	})
}

// Load reads a theme file, choosing the format by extension.
func Load(path string) (*Theme, error) {
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		f = FormatTOML
	case ".yaml", ".yml":
		f = FormatYAML
	default:
		return nil, fmt.Errorf("load theme %s: %w", path, ErrUnknownFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	t, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme in the given format.
func Parse(data []byte, f Format) (*Theme, error) {
	var tables map[string]map[string]any
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &tables)
	case FormatYAML:
		err = yaml.Unmarshal(data, &tables)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	for sel, props := range tables {
		for k, v := range props {
			if s, ok := v.(string); ok && isColorKey(k) {
				if _, err := ParseColor(s); err != nil {
					return nil, fmt.Errorf("parse theme: %s.%s: %w", sel, k, err)
				}
			}
		}
	}
	return New(tables), nil
}

// Merge returns a theme with the selectors of t overlaid by those of over,
// property by property.
func (t *Theme) Merge(over *Theme) *Theme {
	out := New(t.selectors)
	for sel, props := range over.selectors {
		dst, ok := out.selectors[sel]
		if !ok {
			dst = make(map[string]any, len(props))
			out.selectors[sel] = dst
		}
		for k, v := range props {
			dst[k] = v
		}
	}
	return out
}

func (t *Theme) lookup(property, selector string) (any, bool) {
	props, ok := t.selectors[selector]
	if !ok {
		return nil, false
	}
	v, ok := props[property]
	return v, ok
}

// Has reports whether selector defines property.
func (t *Theme) Has(property, selector string) bool {
	_, ok := t.lookup(property, selector)
	return ok
}

// Color returns a colour property, or transparent when it is missing or
// not a colour.
func (t *Theme) Color(property, selector string) color.RGBA {
	v, ok := t.lookup(property, selector)
	if !ok {
		return color.RGBA{}
	}
	s, ok := v.(string)
	if !ok {
		return color.RGBA{}
	}
	c, _ := ParseColor(s)
	return c
}

// Float returns a numeric property, or 0.
func (t *Theme) Float(property, selector string) float64 {
	v, ok := t.lookup(property, selector)
	if !ok {
		return 0
	}
	f, _ := toFloat(v)
	return f
}

// Uint returns a numeric property truncated to a non-negative integer, or 0.
func (t *Theme) Uint(property, selector string) uint {
	f := t.Float(property, selector)
	if f <= 0 {
		return 0
	}
	return uint(f)
}

// String returns a string property, or "".
func (t *Theme) String(property, selector string) string {
	v, ok := t.lookup(property, selector)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func isColorKey(k string) bool {
	return k == "color" || k == "background" || strings.HasSuffix(k, "-color")
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or "transparent" into a
// premultiplied colour.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "transparent" || s == "" {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color %q: missing #", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: bad length", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	// color.RGBA is alpha-premultiplied.
	a := uint32(n & 0xff)
	pre := func(c uint32) uint8 { return uint8(c * a / 0xff) }
	return color.RGBA{R: pre(uint32(n>>24) & 0xff), G: pre(uint32(n>>16) & 0xff), B: pre(uint32(n>>8) & 0xff), A: uint8(a)}, nil
}
