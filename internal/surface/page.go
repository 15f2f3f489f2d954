package surface

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"

	"SketchBoard/internal/state"
)

// guideColor is the light translucent gray of page guides.
var guideColor = color.NRGBA{R: 204, G: 204, B: 204, A: 128}

// DrawPage paints the guide pattern of page over dst, one guide every step
// pixels starting at the origin. Guides are one pixel wide and aligned to
// the pixel grid; dots have a one pixel radius. Plain pages draw nothing.
//
// The pattern is a display overlay and never enters the canvas buffer.
func DrawPage(dst *image.RGBA, page state.Page, step float64) {
	if page == state.PagePlain || !page.Valid() || step <= 0 {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	f := rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, dst, b))
	f.SetColor(guideColor)

	maxX, maxY := float64(b.Max.X), float64(b.Max.Y)
	minX, minY := float64(b.Min.X), float64(b.Min.Y)
	switch page {
	case state.PageGrid:
		for x := 0.0; x < maxX; x += step {
			rasterx.AddRect(x, minY, x+1, maxY, 0, f)
		}
		fallthrough
	case state.PageLined:
		for y := 0.0; y < maxY; y += step {
			rasterx.AddRect(minX, y, maxX, y+1, 0, f)
		}
	case state.PageDotted:
		for x := 0.0; x < maxX; x += step {
			for y := 0.0; y < maxY; y += step {
				rasterx.AddCircle(x, y, 1, f)
			}
		}
	}
	f.Draw()
}
