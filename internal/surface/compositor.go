package surface

import (
	"image"

	"golang.org/x/image/draw"
)

// Render draws the canvas and then the preview onto dst at the origin.
// Transparent preview pixels leave the canvas visible. dst clips the
// result; nothing is drawn before the buffers exist.
func (s *Surface) Render(dst draw.Image) {
	if !s.bufs.allocated() {
		return
	}
	draw.Draw(dst, s.bufs.canvas.Bounds(), s.bufs.canvas, image.Point{}, draw.Over)
	draw.Draw(dst, s.bufs.preview.Bounds(), s.bufs.preview, image.Point{}, draw.Over)
}

// Image composes the surface into a new image of the buffer size.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(s.bufs.bounds())
	s.Render(img)
	return img
}
