package sapling

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot of the next presented frame. The
// PNG is written to ScreenshotDir with a timestamped filename.
func (w *HeadlessWindow) Screenshot(label string) {
	w.screenshots = append(w.screenshots, label)
}

// flushScreenshots writes Frame once for every queued label.
func (w *HeadlessWindow) flushScreenshots() error {
	if len(w.screenshots) == 0 {
		return nil
	}
	labels := w.screenshots
	w.screenshots = w.screenshots[:0]

	if err := os.MkdirAll(w.ScreenshotDir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	img := unpremultiply(w.Frame)
	stamp := time.Now().Format("20060102_150405")

	var firstErr error
	for _, label := range labels {
		path := filepath.Join(w.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("screenshot: %w", err)
		}
	}
	return firstErr
}

// unpremultiply converts premultiplied RGBA to straight-alpha NRGBA.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	img := image.NewNRGBA(src.Rect)
	pix := src.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		r, g, b, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
