// Package surface implements the whiteboard's drawing model: a persistent
// canvas buffer, a transient preview buffer for shapes in progress, the
// pointer gesture state machine that writes into them, and the compositor
// that layers them for display.
//
// A Surface is not safe for concurrent use. Hosts deliver events and
// repaint requests from a single goroutine, or guard the Surface
// themselves.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"SketchBoard/internal/state"
)

var ErrInvalidSize = errors.New("invalid size")

// Settings is the drawing configuration a Surface starts with.
type Settings struct {
	Tool       state.Tool
	Color      state.Color
	Background state.Color
	BrushSize  uint
	EraserSize uint
	Page       state.Page
	SnapToGrid bool // takes effect on pages whose guides snap, see state.Page.Snaps
	GridStep   float64
}

// DefaultSettings mirrors the sidebar's initial control values.
func DefaultSettings() Settings {
	return Settings{
		Tool:       state.ToolPen,
		Color:      state.Black,
		Background: state.White,
		BrushSize:  3,
		EraserSize: 10,
		Page:       state.PagePlain,
		GridStep:   30,
	}
}

func (s Settings) Validate() error {
	if !s.Tool.Valid() {
		return fmt.Errorf("%w: %d", state.ErrUnknownTool, int(s.Tool))
	}
	if err := validColor(s.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if err := validColor(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if !s.Page.Valid() {
		return fmt.Errorf("%w: %d", state.ErrUnknownPage, int(s.Page))
	}
	if s.BrushSize == 0 {
		return fmt.Errorf("%w: brush size must be positive", ErrInvalidSize)
	}
	if s.EraserSize == 0 {
		return fmt.Errorf("%w: eraser size must be positive", ErrInvalidSize)
	}
	if (s.SnapToGrid || s.Page != state.PagePlain) && s.GridStep <= 0 {
		return fmt.Errorf("%w: grid step must be positive", ErrInvalidSize)
	}
	return nil
}

func validColor(c state.Color) error {
	_, err := state.NewColor(c.R, c.G, c.B, c.A)
	return err
}

// Option configures optional collaborators of a Surface.
type Option func(*Surface)

// WithJournal records every committed gesture and clear in j.
func WithJournal(j *state.Journal) Option {
	return func(s *Surface) { s.journal = j }
}

// Surface is the drawing surface behind the whiteboard canvas.
type Surface struct {
	settings Settings
	bufs     buffers
	gesture  gesture
	damage   damage
	journal  *state.Journal

	listeners    map[int]func(Change)
	nextListener int
}

// New creates a Surface. Buffers are allocated by the first HandleResize.
func New(settings Settings, opts ...Option) (*Surface, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("surface settings: %w", err)
	}
	s := &Surface{
		settings:  settings,
		listeners: make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Settings returns the current configuration.
func (s *Surface) Settings() Settings { return s.settings }

// Size returns the buffer dimensions, zero before the first resize.
func (s *Surface) Size() image.Point { return s.bufs.bounds().Size() }

// Drawing reports whether a gesture is in progress.
func (s *Surface) Drawing() bool { return s.gesture.active }

// CanvasPixel returns the committed pixel at (x, y).
func (s *Surface) CanvasPixel(x, y int) color.NRGBA {
	if !s.bufs.allocated() {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(s.bufs.canvas.At(x, y)).(color.NRGBA)
}

// PreviewPixel returns the preview pixel at (x, y).
func (s *Surface) PreviewPixel(x, y int) color.NRGBA {
	if !s.bufs.allocated() {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(s.bufs.preview.At(x, y)).(color.NRGBA)
}

func (s *Surface) SetTool(t state.Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", state.ErrUnknownTool, int(t))
	}
	s.settings.Tool = t
	Logger().Debug("tool selected", "tool", t.String())
	return nil
}

func (s *Surface) SetColor(c state.Color) error {
	if err := validColor(c); err != nil {
		return err
	}
	s.settings.Color = c
	return nil
}

// SetBackgroundColor stores c and immediately clears the canvas with it,
// discarding everything drawn so far.
func (s *Surface) SetBackgroundColor(c state.Color) error {
	if err := validColor(c); err != nil {
		return err
	}
	s.settings.Background = c
	s.ClearCanvas()
	return nil
}

func (s *Surface) SetBrushSize(size uint) error {
	if size == 0 {
		return fmt.Errorf("%w: brush size must be positive", ErrInvalidSize)
	}
	s.settings.BrushSize = size
	return nil
}

func (s *Surface) SetEraserSize(size uint) error {
	if size == 0 {
		return fmt.Errorf("%w: eraser size must be positive", ErrInvalidSize)
	}
	s.settings.EraserSize = size
	return nil
}

// SetPage selects the guide pattern. Canvas content is unaffected; hosts
// repaint the pattern themselves with DrawPage.
func (s *Surface) SetPage(p state.Page) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", state.ErrUnknownPage, int(p))
	}
	s.settings.Page = p
	Logger().Debug("page selected", "page", p.String())
	return nil
}

// SetSnapToGrid toggles rounding of shape endpoints to the grid step.
func (s *Surface) SetSnapToGrid(on bool) {
	s.settings.SnapToGrid = on
}

// ClearCanvas fills the whole canvas with the background color.
func (s *Surface) ClearCanvas() {
	if !s.bufs.allocated() {
		return
	}
	s.bufs.fillCanvas(s.settings.Background.NRGBA())
	s.damage.add(s.bufs.bounds())
	if s.journal != nil {
		s.journal.Record(state.Op{Kind: state.OpClear, Color: s.settings.Background})
	}
	Logger().Info("canvas cleared", "background", s.settings.Background.Hex())
	s.emit(ChangeClear)
}

// HandleResize grows both buffers to cover w×h. Smaller or equal sizes keep
// the current buffers untouched.
func (s *Surface) HandleResize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	before := s.Size()
	if !s.bufs.grow(w, h, s.settings.Background.NRGBA()) {
		return nil
	}
	s.gesture.previewArea = image.Rectangle{}
	s.damage.add(s.bufs.bounds())
	Logger().Info("buffers allocated",
		"from", before.String(),
		"to", s.Size().String(),
	)
	s.emit(ChangeResize)
	return nil
}
