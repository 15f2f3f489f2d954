package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"SketchBoard/internal/state"
)

// brush is the paint applied by one stroke.
type brush struct {
	color color.Color
	width float64
}

// pen rasterizes stroked paths into one buffer. It is rebuilt whenever the
// buffer is reallocated so the scanner never outlives its destination.
type pen struct {
	dst     *image.RGBA
	stroker *rasterx.Stroker
}

func newPen(dst *image.RGBA) *pen {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &pen{
		dst:     dst,
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

func (p *pen) begin(b brush) *rasterx.Stroker {
	s := p.stroker
	s.Clear()
	s.SetStroke(fixed.Int26_6(b.width*64), fixed.Int26_6(4*64), rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	s.SetColor(b.color)
	return s
}

// segment strokes a straight line from a to b and returns the touched area.
func (p *pen) segment(a, b state.Point, br brush) image.Rectangle {
	if a == b {
		return image.Rectangle{}
	}
	s := p.begin(br)
	s.Start(rasterx.ToFixedP(a.X, a.Y))
	s.Line(rasterx.ToFixedP(b.X, b.Y))
	s.Stop(false)
	s.Draw()
	return boundsOf(br.width/2+aaPad, a, b)
}

// shape strokes the outline tool draws between anchor and end and returns
// the touched area. Degenerate shapes draw nothing.
func (p *pen) shape(tool state.Tool, anchor, end state.Point, br brush) image.Rectangle {
	switch tool {
	case state.ToolLine:
		return p.segment(anchor, end, br)

	case state.ToolRectangle:
		lo, hi := rectCorners(anchor, end)
		if lo.X == hi.X && lo.Y == hi.Y {
			return image.Rectangle{}
		}
		s := p.begin(br)
		rasterx.AddRect(lo.X, lo.Y, hi.X, hi.Y, 0, s)
		s.Draw()
		return boundsOf(br.width/2+aaPad, lo, hi)

	case state.ToolCircle:
		r := circleRadius(anchor, end)
		if r == 0 {
			return image.Rectangle{}
		}
		s := p.begin(br)
		rasterx.AddCircle(anchor.X, anchor.Y, r, s)
		s.Draw()
		return boundsOf(r+br.width/2+aaPad, anchor)
	}
	return image.Rectangle{}
}

// rectCorners normalizes the rectangle spanned by anchor and end so that
// negative extents flip it instead of producing an empty outline.
func rectCorners(anchor, end state.Point) (lo, hi state.Point) {
	lo = state.Point{X: math.Min(anchor.X, end.X), Y: math.Min(anchor.Y, end.Y)}
	hi = state.Point{X: math.Max(anchor.X, end.X), Y: math.Max(anchor.Y, end.Y)}
	return lo, hi
}

func circleRadius(center, edge state.Point) float64 {
	return math.Hypot(edge.X-center.X, edge.Y-center.Y)
}

// snap rounds p to the nearest grid intersection.
func snap(p state.Point, step float64) state.Point {
	if step <= 0 {
		return p
	}
	return state.Point{
		X: math.Round(p.X/step) * step,
		Y: math.Round(p.Y/step) * step,
	}
}
