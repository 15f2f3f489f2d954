package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"SketchBoard/internal/state"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// guide is white with the guide color composited over it.
var guide = color.NRGBA{R: 229, G: 229, B: 229, A: 255}

func TestDrawPagePatterns(t *testing.T) {
	tests := []struct {
		page   state.Page
		guides []image.Point
		blank  []image.Point
	}{
		{state.PagePlain, nil, []image.Point{{30, 7}, {7, 30}, {30, 30}, {15, 15}}},
		{state.PageGrid, []image.Point{{30, 7}, {7, 30}, {60, 44}, {0, 50}}, []image.Point{{15, 15}, {45, 72}}},
		{state.PageLined, []image.Point{{7, 30}, {44, 60}}, []image.Point{{30, 7}, {15, 15}}},
		{state.PageDotted, nil, []image.Point{{30, 7}, {7, 30}, {15, 15}}},
	}

	for _, tt := range tests {
		t.Run(tt.page.String(), func(t *testing.T) {
			img := whiteImage(100, 100)
			DrawPage(img, tt.page, 30)
			for _, p := range tt.guides {
				assertNear(t, guide, nrgbaAt(img, p.X, p.Y), 2, "guide at %v", p)
			}
			for _, p := range tt.blank {
				assert.Equal(t, white, nrgbaAt(img, p.X, p.Y), "blank at %v", p)
			}
		})
	}
}

func TestDrawPageDots(t *testing.T) {
	img := whiteImage(100, 100)
	DrawPage(img, state.PageDotted, 30)

	for _, p := range []image.Point{{30, 30}, {29, 59}, {60, 29}} {
		px := nrgbaAt(img, p.X, p.Y)
		assert.Less(t, px.R, uint8(250), "dot at %v", p)
		assert.Greater(t, px.R, uint8(200), "dot at %v", p)
	}
}

func TestDrawPageSkipsBadStep(t *testing.T) {
	img := whiteImage(40, 40)
	DrawPage(img, state.PageGrid, 0)
	DrawPage(img, state.Page(12), 30)
	for i, v := range img.Pix {
		assert.Equal(t, uint8(0xff), v, "byte %d", i)
	}
}

func TestPageStaysOutOfCanvas(t *testing.T) {
	s, _ := newTestSurface(t, 90, 90, func(st *Settings) { st.Page = state.PageGrid })
	s.ClearCanvas()

	out := s.Image()
	DrawPage(out, s.Settings().Page, s.Settings().GridStep)

	assertNear(t, guide, nrgbaAt(out, 30, 7), 2)
	for y := 0; y < 90; y++ {
		for x := 0; x < 90; x++ {
			if s.CanvasPixel(x, y) != white {
				t.Fatalf("canvas pixel (%d,%d) = %v, want background", x, y, s.CanvasPixel(x, y))
			}
		}
	}
}
