package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// buffers owns the persistent canvas and the transient preview. Both are
// always the same size once allocated.
type buffers struct {
	canvas  *image.RGBA
	preview *image.RGBA

	canvasPen  *pen
	previewPen *pen
}

func (b *buffers) allocated() bool { return b.canvas != nil }

func (b *buffers) bounds() image.Rectangle {
	if b.canvas == nil {
		return image.Rectangle{}
	}
	return b.canvas.Bounds()
}

// grow makes sure both buffers cover w×h. Buffers are only ever enlarged:
// existing content is kept at the origin and the preview is replaced with a
// transparent one. It reports whether a reallocation happened.
func (b *buffers) grow(w, h int, bg color.Color) bool {
	if b.canvas == nil {
		b.install(image.NewRGBA(image.Rect(0, 0, w, h)), image.NewRGBA(image.Rect(0, 0, w, h)))
		b.fillCanvas(bg)
		return true
	}

	old := b.canvas
	oldW, oldH := old.Bounds().Dx(), old.Bounds().Dy()
	if w <= oldW && h <= oldH {
		return false
	}

	size := image.Rect(0, 0, max(w, oldW), max(h, oldH))
	b.install(image.NewRGBA(size), image.NewRGBA(size))
	b.fillCanvas(bg)
	draw.Draw(b.canvas, old.Bounds(), old, image.Point{}, draw.Over)
	return true
}

func (b *buffers) install(canvas, preview *image.RGBA) {
	b.canvas = canvas
	b.preview = preview
	b.canvasPen = newPen(canvas)
	b.previewPen = newPen(preview)
}

// fillCanvas replaces every canvas pixel with bg.
func (b *buffers) fillCanvas(bg color.Color) {
	draw.Draw(b.canvas, b.canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// clearPreview resets the preview to fully transparent.
func (b *buffers) clearPreview() {
	draw.Draw(b.preview, b.preview.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
