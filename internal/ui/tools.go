package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/config"
	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return &swatchRenderer{
		WidgetRenderer: widget.NewSimpleRenderer(container.NewStack(rect, border)),
		swatch:         s,
		fill:           rect,
	}
}

// swatchRenderer repaints the fill when the swatch color changes.
type swatchRenderer struct {
	fyne.WidgetRenderer
	swatch *colorSwatch
	fill   *canvas.Rectangle
}

func (r *swatchRenderer) Refresh() {
	r.fill.FillColor = r.swatch.Color
	r.WidgetRenderer.Refresh()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var toolIcons = map[state.Tool]fyne.Resource{
	state.ToolPen:       theme.DocumentCreateIcon(),
	state.ToolEraser:    theme.ContentClearIcon(),
	state.ToolLine:      theme.ContentRemoveIcon(),
	state.ToolRectangle: theme.CheckButtonIcon(),
	state.ToolCircle:    theme.RadioButtonIcon(),
}

// Sidebar holds the drawing controls next to the board.
type Sidebar struct {
	board  *BoardWidget
	parent fyne.Window

	toolButtons  map[state.Tool]*widget.Button
	brushSlider  *widget.Slider
	brushLabel   *widget.Label
	eraserSlider *widget.Slider
	eraserLabel  *widget.Label
	current      *colorSwatch
	pageSelect   *widget.Select
	snapCheck    *widget.Check
	clearButton  *widget.Button
	status       *widget.Label

	content fyne.CanvasObject
}

// NewSidebar builds the controls for board. parent hosts the color pickers.
func NewSidebar(board *BoardWidget, parent fyne.Window) *Sidebar {
	sb := &Sidebar{
		board:       board,
		parent:      parent,
		toolButtons: make(map[state.Tool]*widget.Button),
		status:      widget.NewLabel(""),
	}
	settings := board.Surface().Settings()

	// --- Tools ---
	tools := container.NewVBox()
	for _, t := range state.Tools() {
		tool := t
		btn := widget.NewButtonWithIcon(label(tool), toolIcons[tool], func() { sb.selectTool(tool) })
		btn.Alignment = widget.ButtonAlignLeading
		sb.toolButtons[tool] = btn
		tools.Add(btn)
	}
	sb.highlight(settings.Tool)

	// --- Sizes ---
	sb.brushLabel = widget.NewLabel("")
	sb.brushSlider = widget.NewSlider(config.MinBrushSize, config.MaxBrushSize)
	sb.brushSlider.Step = 1
	sb.brushSlider.SetValue(float64(settings.BrushSize))
	sb.brushSlider.OnChanged = sb.brushChanged
	sb.setSizeLabel(sb.brushLabel, "Brush", settings.BrushSize)

	sb.eraserLabel = widget.NewLabel("")
	sb.eraserSlider = widget.NewSlider(config.MinEraserSize, config.MaxEraserSize)
	sb.eraserSlider.Step = 5
	sb.eraserSlider.SetValue(float64(settings.EraserSize))
	sb.eraserSlider.OnChanged = sb.eraserChanged
	sb.setSizeLabel(sb.eraserLabel, "Eraser", settings.EraserSize)

	// --- Color Palette ---
	sb.current = newColorSwatch(settings.Color.NRGBA(), nil)
	palette := container.NewGridWithColumns(state.PaletteColumns)
	for _, c := range state.Palette() {
		palette.Add(newColorSwatch(c.NRGBA(), sb.pickColor))
	}
	custom := widget.NewButtonWithIcon("Custom…", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Stroke color", "Pick a drawing color", sb.pickColor, parent)
		picker.Advanced = true
		picker.Show()
	})
	background := widget.NewButtonWithIcon("Background…", theme.ColorChromaticIcon(), sb.showBackgroundPicker)

	// --- Page ---
	var pageNames []string
	for _, p := range state.Pages() {
		pageNames = append(pageNames, pageLabel(p))
	}
	sb.pageSelect = widget.NewSelect(pageNames, nil)
	sb.pageSelect.SetSelected(pageLabel(settings.Page))
	sb.pageSelect.OnChanged = sb.pageChanged

	// --- Actions ---
	sb.snapCheck = widget.NewCheck("Snap shapes to grid or dots", board.SetSnapToGrid)
	sb.snapCheck.SetChecked(settings.SnapToGrid)
	sb.clearButton = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.ClearCanvas)
	sb.clearButton.Importance = widget.DangerImportance

	board.OnChange = func(ch surface.Change) {
		if ch.Kind == surface.ChangeCommit || ch.Kind == surface.ChangeClear {
			sb.refreshStatus()
		}
	}
	board.OnGestureEnd = sb.refreshStatus
	sb.refreshStatus()

	sb.content = container.NewVScroll(container.NewVBox(
		widget.NewCard("Tools", "", tools),
		widget.NewCard("Brush Size", "", container.NewVBox(sb.brushLabel, sb.brushSlider, sb.eraserLabel, sb.eraserSlider)),
		widget.NewCard("Colors", "", container.NewVBox(
			container.NewHBox(widget.NewLabel("Current:"), sb.current),
			palette,
			custom,
		)),
		widget.NewCard("Page", "", container.NewVBox(sb.pageSelect, background)),
		widget.NewCard("Actions", "", container.NewVBox(sb.snapCheck, sb.clearButton)),
		sb.status,
	))
	return sb
}

func (sb *Sidebar) Content() fyne.CanvasObject { return sb.content }

func label(t state.Tool) string { return capitalize(t.String()) }

func pageLabel(p state.Page) string { return capitalize(p.String()) + " page" }

func capitalize(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

func (sb *Sidebar) pageChanged(name string) {
	for _, p := range state.Pages() {
		if pageLabel(p) == name {
			sb.board.SetPage(p)
			return
		}
	}
}

func (sb *Sidebar) selectTool(t state.Tool) {
	sb.board.SetTool(t)
	sb.highlight(t)
}

func (sb *Sidebar) highlight(selected state.Tool) {
	for t, btn := range sb.toolButtons {
		if t == selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (sb *Sidebar) brushChanged(v float64) {
	size := uint(v)
	sb.board.SetBrushSize(size)
	sb.setSizeLabel(sb.brushLabel, "Brush", size)
}

func (sb *Sidebar) eraserChanged(v float64) {
	size := uint(v)
	sb.board.SetEraserSize(size)
	sb.setSizeLabel(sb.eraserLabel, "Eraser", size)
}

func (sb *Sidebar) setSizeLabel(l *widget.Label, name string, size uint) {
	l.SetText(fmt.Sprintf("%s: %d px", name, size))
}

func (sb *Sidebar) pickColor(c color.Color) {
	sb.board.SetColor(c)
	sb.current.Color = c
	sb.current.Refresh()
}

func (sb *Sidebar) showBackgroundPicker() {
	picker := dialog.NewColorPicker("Background", "Changing the background clears the board", func(c color.Color) {
		sb.board.SetBackgroundColor(c)
	}, sb.parent)
	picker.Advanced = true
	picker.Show()
}

func (sb *Sidebar) refreshStatus() {
	j := sb.board.Journal()
	if j == nil {
		sb.status.SetText("")
		return
	}
	sb.status.SetText(statusText(j.SinceClear(), j.CountByTool()))
}

// statusText reads like "3 gestures since clear (pen 2, circle 1)".
func statusText(n int, byTool map[state.Tool]int) string {
	text := fmt.Sprintf("%d gestures since clear", n)
	if n == 1 {
		text = "1 gesture since clear"
	}
	var parts []string
	for _, t := range state.Tools() {
		if c := byTool[t]; c > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", t, c))
		}
	}
	if len(parts) == 0 {
		return text
	}
	return text + " (" + strings.Join(parts, ", ") + ")"
}
