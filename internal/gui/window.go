package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/tui"
)

// AppID identifies the application to fyne preferences storage.
const AppID = "dev.aboutlibs.viewer"

// Default window size.
const (
	windowWidth  = 640
	windowHeight = 720
)

// WindowOptions configures Run.
type WindowOptions struct {
	Title    string
	Display  tui.DisplayOptions
	OnSelect func(library.Library)
}

// Run opens a window listing the libraries in data and blocks until it closes.
func Run(ctx context.Context, load tui.LoadFunc, data string, opts WindowOptions) {
	a := app.NewWithID(AppID)
	title := opts.Title
	if title == "" {
		title = "Open Source Libraries"
	}

	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	panel := NewLibrariesPanel(opts.Display, opts.OnSelect)
	w.SetContent(panel.Container())
	panel.LoadAsync(ctx, load, data)

	w.ShowAndRun()
}
