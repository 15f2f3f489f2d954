package surface

import "image"

type ChangeKind int

const (
	ChangeStroke  ChangeKind = iota // freehand segment written to the canvas
	ChangePreview                   // shape preview redrawn
	ChangeCommit                    // shape written to the canvas, preview cleared
	ChangeClear                     // canvas filled with the background
	ChangeResize                    // buffers reallocated
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeStroke:
		return "stroke"
	case ChangePreview:
		return "preview"
	case ChangeCommit:
		return "commit"
	case ChangeClear:
		return "clear"
	case ChangeResize:
		return "resize"
	}
	return "unknown"
}

// Change tells subscribers that surface content changed and needs a
// repaint. Dirty is the affected area in surface coordinates.
type Change struct {
	Kind  ChangeKind
	Dirty image.Rectangle
}

// Subscribe registers fn to be called after every content change. The
// returned function removes the subscription.
func (s *Surface) Subscribe(fn func(Change)) (cancel func()) {
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *Surface) emit(kind ChangeKind) {
	ch := Change{Kind: kind, Dirty: s.damage.flush(s.bufs.bounds())}
	Logger().Debug("content changed", "kind", kind.String(), "dirty", ch.Dirty.String())
	for _, fn := range s.listeners {
		fn(ch)
	}
}
