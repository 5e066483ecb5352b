package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows rendered above/below the viewport.
const defaultBufferSize = 5

// halfViewportDivisor is used to centre the selection in the viewport.
const halfViewportDivisor = 2

// RenderFunc renders the item at a row. selected reports whether the row has the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel renders only the visible window of a list.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected int

	// visibleFrom/visibleTo bound the viewport (to is exclusive).
	visibleFrom int
	visibleTo   int

	height     int
	width      int
	bufferSize int

	// rendered is the number of rows materialised by the last View call.
	rendered int
}

// NewVirtualListModel creates a list over items with the given viewport size.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 0),
		width:      width,
		bufferSize: defaultBufferSize,
	}

	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

//nolint:gocognit,exhaustive // One branch per navigation key.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - max(m.height, 1))
	case tea.KeyPgDown:
		m.SetSelected(m.selected + max(m.height, 1))
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.move(1)
			case 'k':
				m.move(-1)
			case 'g':
				m.SetSelected(0)
			case 'G':
				m.SetSelected(len(m.items) - 1)
			}
		}
	default:
	}

	return m
}

func (m *VirtualListModel[T]) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.items) {
		return
	}
	m.selected = next
	m.updateVisibleRange()
}

// updateVisibleRange keeps the selection inside the viewport, centred where possible.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 || m.height == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	halfViewport := m.height / halfViewportDivisor

	idealFrom := m.selected - halfViewport
	idealTo := m.selected + halfViewport

	if idealFrom < 0 {
		idealFrom = 0
		idealTo = m.height
	}

	if idealTo > len(m.items) {
		idealTo = len(m.items)
		idealFrom = max(idealTo-m.height, 0)
	}

	m.visibleFrom = idealFrom
	m.visibleTo = idealTo
}

// View renders the viewport rows plus the buffer.
func (m *VirtualListModel[T]) View() string {
	m.rendered = 0
	if len(m.items) == 0 || m.visibleTo == 0 {
		return ""
	}

	renderFrom := max(m.visibleFrom-m.bufferSize, 0)
	renderTo := min(m.visibleTo+m.bufferSize, len(m.items))

	var sb strings.Builder
	for i := renderFrom; i < renderTo; i++ {
		if i > renderFrom {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	m.rendered = renderTo - renderFrom

	return sb.String()
}

// SetItems replaces the whole item slice and resets the cursor.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize changes the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 0)
	m.updateVisibleRange()
}

// ItemCount returns the total number of items.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// RenderedCount returns how many rows the last View call rendered.
func (m *VirtualListModel[T]) RenderedCount() int {
	return m.rendered
}

// Selected returns the cursor index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, clamped to the item range.
func (m *VirtualListModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// VisibleFrom returns the first visible index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the item under the cursor, or nil for an empty list.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
