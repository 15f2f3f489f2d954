package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/config"
)

// NewMainWindow lays out the sidebar and the board in a window of a.
func NewMainWindow(a fyne.App, cfg config.Config, board *BoardWidget) fyne.Window {
	w := a.NewWindow(cfg.Window.Title)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	sidebar := NewSidebar(board, w)
	left := container.NewHBox(sidebar.Content(), widget.NewSeparator())

	// Set up the main layout
	w.SetContent(container.NewBorder(nil, nil, left, nil, board))
	w.SetOnClosed(board.Destroy)
	return w
}

func RunApp(cfg config.Config, board *BoardWidget) {
	myApp := app.New()
	NewMainWindow(myApp, cfg, board).ShowAndRun()
}
