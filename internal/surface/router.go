package surface

import (
	"image"

	"SketchBoard/internal/state"
)

// Button identifies the pointer button of a press or release.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

// gesture is the per-gesture stroke state. The zero value is idle.
type gesture struct {
	active bool
	tool   state.Tool // latched at pointer-down
	anchor state.Point
	last   state.Point
	points int

	// previewArea is what the current preview occupies, so the next
	// redraw can report it as dirty after wiping it.
	previewArea image.Rectangle
}

// HandlePointerDown starts a gesture on a primary press.
func (s *Surface) HandlePointerDown(x, y float64, button Button) {
	if button != ButtonPrimary {
		return
	}
	if !s.bufs.allocated() {
		Logger().Warn("pointer down before buffers exist, ignored")
		return
	}

	p := state.Point{X: x, Y: y}
	tool := s.settings.Tool
	if tool.IsShape() {
		p = s.snapped(p)
	}
	s.gesture = gesture{
		active: true,
		tool:   tool,
		anchor: p,
		last:   p,
		points: 1,
	}
	if tool.IsShape() {
		s.bufs.clearPreview()
	}
	Logger().Debug("gesture started", "tool", tool.String(), "x", p.X, "y", p.Y)
}

// HandlePointerMove extends the active gesture. Freehand tools stroke the
// canvas directly; shape tools redraw the preview from the anchor.
func (s *Surface) HandlePointerMove(x, y float64) {
	if !s.gesture.active || !s.bufs.allocated() {
		return
	}

	p := state.Point{X: x, Y: y}
	switch g := &s.gesture; g.tool {
	case state.ToolPen, state.ToolEraser:
		s.damage.add(s.bufs.canvasPen.segment(g.last, p, s.freehandBrush(g.tool)))
		g.last = p
		g.points++
		s.emit(ChangeStroke)

	default:
		p = s.snapped(p)
		s.bufs.clearPreview()
		s.damage.add(g.previewArea)
		g.previewArea = s.bufs.previewPen.shape(g.tool, g.anchor, p, s.shapeBrush())
		s.damage.add(g.previewArea)
		g.last = p
		g.points++
		s.emit(ChangePreview)
	}
}

// HandlePointerUp ends the active gesture on a primary release. Shapes are
// rendered onto the canvas from the anchor to the release point and the
// preview is cleared; freehand strokes are already on the canvas.
func (s *Surface) HandlePointerUp(x, y float64, button Button) {
	if button != ButtonPrimary || !s.gesture.active {
		return
	}
	g := s.gesture
	s.gesture = gesture{}
	if !s.bufs.allocated() {
		return
	}

	if !g.tool.IsShape() {
		if g.points > 1 {
			s.record(state.OpStroke, g, g.last, s.freehandBrush(g.tool))
		}
		return
	}

	end := s.snapped(state.Point{X: x, Y: y})
	br := s.shapeBrush()
	s.damage.add(s.bufs.canvasPen.shape(g.tool, g.anchor, end, br))
	s.bufs.clearPreview()
	s.damage.add(g.previewArea)
	s.record(state.OpShape, g, end, br)
	s.emit(ChangeCommit)
}

func (s *Surface) freehandBrush(tool state.Tool) brush {
	if tool == state.ToolEraser {
		return brush{color: s.settings.Background.NRGBA(), width: float64(s.settings.EraserSize)}
	}
	return brush{color: s.settings.Color.NRGBA(), width: float64(s.settings.BrushSize)}
}

func (s *Surface) shapeBrush() brush {
	return brush{color: s.settings.Color.NRGBA(), width: float64(s.settings.BrushSize)}
}

func (s *Surface) snapped(p state.Point) state.Point {
	if !s.settings.SnapToGrid || !s.settings.Page.Snaps() {
		return p
	}
	return snap(p, s.settings.GridStep)
}

func (s *Surface) record(kind state.OpKind, g gesture, end state.Point, br brush) {
	if s.journal == nil {
		return
	}
	op := s.journal.Record(state.Op{
		Kind:   kind,
		Tool:   g.tool,
		Color:  state.FromColor(br.color),
		Width:  br.width,
		Anchor: g.anchor,
		End:    end,
		Points: g.points,
	})
	Logger().Info("gesture committed", "id", op.ID, "tool", g.tool.String(), "points", g.points)
}
