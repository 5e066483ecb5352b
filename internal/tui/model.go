package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/logging"
)

// LoadState is the state of the load-and-render flow.
type LoadState int

const (
	StateUnloaded LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// LoadFunc turns a descriptor into records. (*library.Loader).Load satisfies it.
type LoadFunc func(ctx context.Context, data string) (library.Libraries, error)

// footerLines is the height reserved below the list for the help line.
const footerLines = 1

// librariesLoadedMsg carries a load result back to the update loop. generation
// identifies the source it was started for.
type librariesLoadedMsg struct {
	generation uint64
	libs       library.Libraries
	err        error
}

// LibrariesModel is the Bubble Tea model that loads a descriptor off the
// update loop and renders whatever records are currently available.
//
// Unloaded, Loading and Failed all render as an empty list. A result that
// arrives for a superseded source is dropped.
type LibrariesModel struct {
	ctx    context.Context
	load   LoadFunc
	source string

	generation uint64
	state      LoadState
	err        error

	view   *LibrariesView
	opts   DisplayOptions
	layout Layout
	keys   keyMap

	onSelect func(library.Library)
}

// NewLibrariesModel creates a model for source. Nothing is loaded until Init.
func NewLibrariesModel(
	ctx context.Context,
	source string,
	load LoadFunc,
	opts DisplayOptions,
	layout Layout,
) *LibrariesModel {
	m := &LibrariesModel{
		ctx:      ctx,
		load:     load,
		source:   source,
		state:    StateUnloaded,
		opts:     opts,
		layout:   layout,
		keys:     newKeyMap(),
		onSelect: func(library.Library) {},
	}
	m.view = Render(nil, opts, m.listLayout())
	return m
}

// OnSelect sets the callback fired when a row is activated. nil restores the no-op.
func (m *LibrariesModel) OnSelect(fn func(library.Library)) {
	if fn == nil {
		fn = func(library.Library) {}
	}
	m.onSelect = fn
}

// Init starts the first load.
func (m *LibrariesModel) Init() tea.Cmd {
	return m.startLoad()
}

// SetSource replaces the descriptor. A new input restarts the flow at Unloaded
// and the returned command performs the load. The input the model already
// loaded, or is loading, is a no-op and returns nil.
func (m *LibrariesModel) SetSource(source string) tea.Cmd {
	if source == m.source && m.state != StateUnloaded {
		return nil
	}

	m.source = source
	m.generation++
	m.state = StateUnloaded
	m.err = nil
	m.view.SetLibraries(nil)
	return m.startLoad()
}

func (m *LibrariesModel) startLoad() tea.Cmd {
	m.state = StateLoading

	ctx, load, source, generation := m.ctx, m.load, m.source, m.generation
	return func() tea.Msg {
		libs, err := load(ctx, source)
		return librariesLoadedMsg{generation: generation, libs: libs, err: err}
	}
}

// Update handles load results, resizes and keys.
func (m *LibrariesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case librariesLoadedMsg:
		m.handleLoaded(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.layout.Width = msg.Width
		m.layout.Height = msg.Height
		l := m.listLayout()
		m.view.SetSize(l.Width, l.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if lib := m.view.Selected(); lib != nil {
				m.onSelect(*lib)
			}
			return m, nil
		}
		return m, m.view.Update(msg)
	}

	return m, nil
}

func (m *LibrariesModel) handleLoaded(msg librariesLoadedMsg) {
	logger := logging.FromContext(m.ctx)

	if msg.generation != m.generation {
		logger.Debug().Ctx(m.ctx).
			Uint64("generation", msg.generation).
			Uint64("current", m.generation).
			Msg("discarding stale library load")
		return
	}

	if msg.err != nil {
		m.state = StateFailed
		m.err = msg.err
		m.view.SetLibraries(nil)
		logger.Warn().Ctx(m.ctx).Err(msg.err).Msg("library load failed")
		return
	}

	m.state = StateLoaded
	m.err = nil
	m.view.SetLibraries(msg.libs)
}

// listLayout is the model layout minus the footer.
func (m *LibrariesModel) listLayout() Layout {
	l := m.layout
	l.Height = max(l.Height-footerLines, 0)
	return l
}

// View renders the list followed by a one-line footer: the key help, or the
// load error once the flow has failed.
func (m *LibrariesModel) View() string {
	return m.view.View() + "\n" + m.footer()
}

func (m *LibrariesModel) footer() string {
	if m.state != StateFailed || m.err == nil {
		return MutedStyle.Render(m.keys.helpLine())
	}

	msg, _, _ := strings.Cut(m.err.Error(), "\n")
	style := ErrorStyle
	if m.layout.Width > 0 {
		style = style.MaxWidth(m.layout.Width)
	}
	return style.Render("error: " + msg)
}

// State returns the current load state.
func (m *LibrariesModel) State() LoadState {
	return m.state
}

// Err returns the load failure when State is StateFailed.
func (m *LibrariesModel) Err() error {
	return m.err
}

// RowCount is the number of rows currently in the list.
func (m *LibrariesModel) RowCount() int {
	return m.view.RowCount()
}

// ListView exposes the current list view.
func (m *LibrariesModel) ListView() *LibrariesView {
	return m.view
}
