package gui

import (
	"context"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/logging"
	"github.com/rshade/aboutlibs/internal/tui"
)

// LibrariesPanel is a scrollable fyne list of libraries.
type LibrariesPanel struct {
	opts     tui.DisplayOptions
	onSelect func(library.Library)

	records    atomic.Pointer[library.Libraries]
	generation atomic.Uint64

	list      *widget.List
	container *fyne.Container
}

// NewLibrariesPanel creates an empty panel. onSelect may be nil.
func NewLibrariesPanel(opts tui.DisplayOptions, onSelect func(library.Library)) *LibrariesPanel {
	p := &LibrariesPanel{opts: opts, onSelect: onSelect}

	p.list = widget.NewList(p.length, p.createRow, p.updateRow)
	p.list.OnSelected = func(id widget.ListItemID) {
		lib, ok := p.At(id)
		if ok && p.onSelect != nil {
			p.onSelect(lib)
		}
	}

	p.container = container.NewBorder(nil, nil, nil, nil, p.list)
	return p
}

// Container returns the panel's root object.
func (p *LibrariesPanel) Container() fyne.CanvasObject {
	return p.container
}

// Len returns the number of rows currently held.
func (p *LibrariesPanel) Len() int {
	return p.length()
}

// At returns the library at row id.
func (p *LibrariesPanel) At(id int) (library.Library, bool) {
	libs := p.records.Load()
	if libs == nil || id < 0 || id >= len(*libs) {
		return library.Library{}, false
	}
	return (*libs)[id], true
}

func (p *LibrariesPanel) length() int {
	libs := p.records.Load()
	if libs == nil {
		return 0
	}
	return len(*libs)
}

// createRow builds a template row: bold name, detail line, license badges.
func (p *LibrariesPanel) createRow() fyne.CanvasObject {
	name := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	detail := widget.NewLabel("")
	badges := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	return container.NewVBox(name, detail, badges)
}

func (p *LibrariesPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	lib, ok := p.At(id)
	if !ok {
		return
	}
	box, ok := obj.(*fyne.Container)
	if !ok || len(box.Objects) != 3 { //nolint:mnd // name, detail, badges
		return
	}

	text := NewRowText(lib, p.opts)
	setLabel(box.Objects[0], text.Name)
	setLabel(box.Objects[1], text.Detail)
	setLabel(box.Objects[2], text.Badges)
}

func setLabel(obj fyne.CanvasObject, text string) {
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}
	label.SetText(text)
	if text == "" {
		label.Hide()
	} else {
		label.Show()
	}
}

// LoadAsync loads data off the UI goroutine and publishes the result with
// fyne.Do. A newer LoadAsync call supersedes any load still in flight; its
// result is dropped. Failures are logged and leave the list empty.
func (p *LibrariesPanel) LoadAsync(ctx context.Context, load tui.LoadFunc, data string) {
	gen := p.generation.Add(1)
	logger := logging.FromContext(ctx)

	go func() {
		libs, err := load(ctx, data)
		if err != nil {
			logger.Warn().Ctx(ctx).Err(err).Msg("library load failed")
			libs = nil
		}

		fyne.Do(func() {
			p.publish(gen, libs)
		})
	}()
}

// publish swaps in libs if gen is still the latest load. It reports whether
// the result was kept.
func (p *LibrariesPanel) publish(gen uint64, libs library.Libraries) bool {
	if p.generation.Load() != gen {
		return false
	}
	p.records.Store(&libs)
	p.list.UnselectAll()
	p.list.Refresh()
	return true
}
