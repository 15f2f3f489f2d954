package surface

import (
	"image"
	"math"

	"SketchBoard/internal/state"
)

// aaPad covers anti-aliased coverage that spills past the nominal stroke
// edge.
const aaPad = 2

// boundsOf returns the integer bounding box of points grown by pad on every
// side.
func boundsOf(pad float64, points ...state.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return image.Rect(
		int(math.Floor(minX-pad)),
		int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)),
		int(math.Ceil(maxY+pad)),
	)
}

// damage accumulates the area touched since the last flush.
type damage struct {
	rect image.Rectangle
}

func (d *damage) add(r image.Rectangle) {
	if r.Empty() {
		return
	}
	if d.rect.Empty() {
		d.rect = r
		return
	}
	d.rect = d.rect.Union(r)
}

// flush returns the accumulated area clipped to bounds and resets it.
func (d *damage) flush(bounds image.Rectangle) image.Rectangle {
	r := d.rect.Intersect(bounds)
	d.rect = image.Rectangle{}
	return r
}
