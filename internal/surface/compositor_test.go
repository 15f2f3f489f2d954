package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"SketchBoard/internal/state"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRenderLayersPreviewOverCanvas(t *testing.T) {
	s, _ := newTestSurface(t, 100, 100, func(st *Settings) {
		st.Tool = state.ToolLine
		st.Color = state.MustColor(1, 0, 0, 1)
	})
	s.HandlePointerDown(10, 50, ButtonPrimary)
	s.HandlePointerMove(90, 50)

	out := s.Image()
	assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())
	assertNear(t, red, nrgbaAt(out, 50, 50), 2, "preview on top")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, out.RGBAAt(50, 20), "canvas shows through")
	assert.Equal(t, white, s.CanvasPixel(50, 50), "preview is not merged into the canvas")
}

func TestRenderClipsToTarget(t *testing.T) {
	s, _ := newTestSurface(t, 100, 100, nil)
	drag(s, state.Point{X: 5, Y: 5}, state.Point{X: 95, Y: 5})

	small := image.NewRGBA(image.Rect(0, 0, 40, 40))
	s.Render(small)
	assertNear(t, black, nrgbaAt(small, 20, 5), 2)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, small.RGBAAt(20, 30))
}

func TestRenderBeforeAllocationLeavesTarget(t *testing.T) {
	s, err := New(DefaultSettings())
	assert.NoError(t, err)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst.SetRGBA(1, 1, color.RGBA{G: 255, A: 255})
	s.Render(dst)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, dst.RGBAAt(1, 1))
}
