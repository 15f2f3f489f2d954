package ui

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
)

// BoardWidget shows a drawing surface and forwards pointer and size events
// into it. Fyne delivers events and paints on one goroutine, so the surface
// needs no further locking.
type BoardWidget struct {
	widget.BaseWidget
	surface *surface.Surface
	journal *state.Journal
	raster  *canvas.Raster
	logger  *slog.Logger

	lastPos fyne.Position
	cancel  func()

	OnChange func(ch surface.Change)
	// OnGestureEnd fires after every pointer release, including freehand
	// strokes that produce no change notification of their own.
	OnGestureEnd func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

// NewBoardWidget wraps s. j may be nil; it only feeds the status line.
func NewBoardWidget(s *surface.Surface, j *state.Journal) *BoardWidget {
	b := &BoardWidget{
		surface: s,
		journal: j,
		logger:  slog.Default().With("component", "ui"),
	}
	b.raster = canvas.NewRaster(b.paint)
	b.raster.SetMinSize(fyne.NewSize(300, 300))
	b.cancel = s.Subscribe(b.contentChanged)
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Surface() *surface.Surface { return b.surface }
func (b *BoardWidget) Journal() *state.Journal  { return b.journal }

// paint is the raster generator: it composes the surface into an image the
// size of the widget, which fyne scales to the w×h output pixels, and lays
// the page guides over it.
func (b *BoardWidget) paint(w, h int) image.Image {
	size := b.Size()
	iw, ih := int(math.Ceil(float64(size.Width))), int(math.Ceil(float64(size.Height)))
	if iw <= 0 || ih <= 0 {
		iw, ih = w, h
	}
	iw, ih = max(iw, 1), max(ih, 1)

	var img *image.RGBA
	if b.surface.Size() == image.Pt(iw, ih) {
		img = b.surface.Image()
	} else {
		img = image.NewRGBA(image.Rect(0, 0, iw, ih))
		b.surface.Render(img)
	}
	settings := b.surface.Settings()
	surface.DrawPage(img, settings.Page, settings.GridStep)
	return img
}

func (b *BoardWidget) contentChanged(ch surface.Change) {
	b.raster.Refresh()
	if b.OnChange != nil {
		b.OnChange(ch)
	}
}

// Resize grows the surface buffers along with the widget.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	w, h := int(math.Ceil(float64(size.Width))), int(math.Ceil(float64(size.Height)))
	if err := b.surface.HandleResize(w, h); err != nil {
		if errors.Is(err, surface.ErrInvalidSize) {
			return
		}
		b.logger.Error("resize failed", "err", err)
	}
}

func toButton(btn desktop.MouseButton) surface.Button {
	switch btn {
	case desktop.MouseButtonPrimary:
		return surface.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return surface.ButtonSecondary
	}
	return surface.ButtonTertiary
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	b.lastPos = e.Position
	b.surface.HandlePointerDown(float64(e.Position.X), float64(e.Position.Y), toButton(e.Button))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	b.lastPos = e.Position
	b.release(e.Position, toButton(e.Button))
}

func (b *BoardWidget) release(pos fyne.Position, btn surface.Button) {
	drawing := b.surface.Drawing()
	b.surface.HandlePointerUp(float64(pos.X), float64(pos.Y), btn)
	if drawing && !b.surface.Drawing() && b.OnGestureEnd != nil {
		b.OnGestureEnd()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.move(e.Position)
}

// DragEnd finishes a gesture whose release landed outside the widget.
func (b *BoardWidget) DragEnd() {
	if b.surface.Drawing() {
		b.release(b.lastPos, surface.ButtonPrimary)
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.move(e.Position)
}

func (b *BoardWidget) move(pos fyne.Position) {
	if !b.surface.Drawing() {
		return
	}
	b.lastPos = pos
	b.surface.HandlePointerMove(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

func (b *BoardWidget) SetTool(t state.Tool) {
	if err := b.surface.SetTool(t); err != nil {
		b.logger.Error("set tool", "err", err)
	}
}

func (b *BoardWidget) SetColor(c color.Color) {
	if err := b.surface.SetColor(state.FromColor(c)); err != nil {
		b.logger.Error("set color", "err", err)
	}
}

func (b *BoardWidget) SetBackgroundColor(c color.Color) {
	if err := b.surface.SetBackgroundColor(state.FromColor(c)); err != nil {
		b.logger.Error("set background", "err", err)
	}
}

func (b *BoardWidget) SetBrushSize(size uint) {
	if err := b.surface.SetBrushSize(size); err != nil {
		b.logger.Error("set brush size", "err", err)
	}
}

func (b *BoardWidget) SetEraserSize(size uint) {
	if err := b.surface.SetEraserSize(size); err != nil {
		b.logger.Error("set eraser size", "err", err)
	}
}

// SetPage switches the guide pattern and repaints.
func (b *BoardWidget) SetPage(p state.Page) {
	if err := b.surface.SetPage(p); err != nil {
		b.logger.Error("set page", "err", err)
		return
	}
	b.raster.Refresh()
}

func (b *BoardWidget) SetSnapToGrid(on bool) { b.surface.SetSnapToGrid(on) }

// ClearCanvas is called by the sidebar's clear button.
func (b *BoardWidget) ClearCanvas() { b.surface.ClearCanvas() }

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

// Destroy drops the surface subscription.
func (b *BoardWidget) Destroy() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
