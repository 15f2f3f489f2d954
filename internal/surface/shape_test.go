package surface

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"SketchBoard/internal/state"
)

func TestRectCorners(t *testing.T) {
	tests := []struct {
		name        string
		anchor, end state.Point
		lo, hi      state.Point
	}{
		{"down right", state.Point{X: 10, Y: 10}, state.Point{X: 110, Y: 60}, state.Point{X: 10, Y: 10}, state.Point{X: 110, Y: 60}},
		{"up left", state.Point{X: 110, Y: 60}, state.Point{X: 10, Y: 10}, state.Point{X: 10, Y: 10}, state.Point{X: 110, Y: 60}},
		{"up right", state.Point{X: 10, Y: 60}, state.Point{X: 110, Y: 10}, state.Point{X: 10, Y: 10}, state.Point{X: 110, Y: 60}},
		{"flat", state.Point{X: 5, Y: 5}, state.Point{X: 20, Y: 5}, state.Point{X: 5, Y: 5}, state.Point{X: 20, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := rectCorners(tt.anchor, tt.end)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestCircleRadius(t *testing.T) {
	assert.Equal(t, 30.0, circleRadius(state.Point{X: 50, Y: 50}, state.Point{X: 50, Y: 80}))
	assert.Equal(t, 5.0, circleRadius(state.Point{X: 0, Y: 0}, state.Point{X: -3, Y: -4}))
	assert.Zero(t, circleRadius(state.Point{X: 7, Y: 7}, state.Point{X: 7, Y: 7}))
}

func TestSnap(t *testing.T) {
	assert.Equal(t, state.Point{X: 30, Y: 60}, snap(state.Point{X: 44, Y: 46}, 30))
	assert.Equal(t, state.Point{X: 0, Y: -30}, snap(state.Point{X: 14, Y: -16}, 30))
	assert.Equal(t, state.Point{X: 13, Y: 17}, snap(state.Point{X: 13, Y: 17}, 0))
}

func TestPenReturnsTouchedArea(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	p := newPen(dst)
	br := brush{color: black, width: 4}

	r := p.segment(state.Point{X: 10, Y: 20}, state.Point{X: 50, Y: 20}, br)
	assert.Equal(t, image.Rect(6, 16, 54, 24), r)

	r = p.shape(state.ToolCircle, state.Point{X: 50, Y: 50}, state.Point{X: 50, Y: 60}, br)
	assert.Equal(t, image.Rect(36, 36, 64, 64), r)

	assert.True(t, p.segment(state.Point{X: 1, Y: 1}, state.Point{X: 1, Y: 1}, br).Empty())
	assert.True(t, p.shape(state.ToolRectangle, state.Point{X: 3, Y: 3}, state.Point{X: 3, Y: 3}, br).Empty())
	assert.True(t, p.shape(state.ToolPen, state.Point{X: 3, Y: 3}, state.Point{X: 9, Y: 9}, br).Empty())
}
