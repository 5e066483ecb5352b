package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/tui/list"
)

// LibrariesView is a scrollable list with one row per library, realised lazily:
// each View call renders only the rows in and around the viewport.
type LibrariesView struct {
	list   *list.VirtualListModel[library.Library]
	opts   DisplayOptions
	layout Layout
}

// Render builds the list view for libs. It never fails; a nil or empty
// sequence yields a view with zero rows.
func Render(libs library.Libraries, opts DisplayOptions, layout Layout) *LibrariesView {
	v := &LibrariesView{opts: opts, layout: layout}
	v.list = list.NewVirtualListModel([]library.Library(libs), layout.innerHeight(), layout.innerWidth(), v.renderRow)
	return v
}

func (v *LibrariesView) renderRow(lib library.Library, selected bool) string {
	row := RenderRow(lib, v.opts, selected)
	if w := v.layout.innerWidth(); w > 0 {
		row = lipgloss.NewStyle().MaxWidth(w).Render(row)
	}
	return row
}

// SetLibraries replaces every row and moves the cursor to the top. The
// viewport size is kept.
func (v *LibrariesView) SetLibraries(libs library.Libraries) {
	v.list.SetItems([]library.Library(libs))
}

// Update forwards navigation and resize messages to the list.
func (v *LibrariesView) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetSize(size.Width, size.Height)
		return nil
	}
	_, cmd := v.list.Update(msg)
	return cmd
}

// SetSize resizes the outer viewport; padding is subtracted before sizing the list.
func (v *LibrariesView) SetSize(width, height int) {
	v.layout.Width = width
	v.layout.Height = height
	v.list.SetSize(v.layout.innerWidth(), v.layout.innerHeight())
}

// View renders the visible rows inside the configured padding.
func (v *LibrariesView) View() string {
	body := v.list.View()
	p := v.layout.Padding
	if p == (Padding{}) {
		return body
	}
	return lipgloss.NewStyle().Padding(p.Top, p.Right, p.Bottom, p.Left).Render(body)
}

// RowCount is the number of rows in the list, one per library.
func (v *LibrariesView) RowCount() int {
	return v.list.ItemCount()
}

// Rendered is the number of rows materialised by the last View call.
func (v *LibrariesView) Rendered() int {
	return v.list.RenderedCount()
}

// Selected returns the library under the cursor, or nil when the list is empty.
func (v *LibrariesView) Selected() *library.Library {
	return v.list.GetSelectedItem()
}
