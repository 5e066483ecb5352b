package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/aboutlibs/internal/library"
)

const kotlinJSON = `[{"name":"Kotlin","author":["JetBrains"],"version":"1.9.0","licenses":["Apache-2.0"]}]`

func loaderFunc() LoadFunc {
	return library.NewLoader().Load
}

// runCmd executes a load command synchronously and feeds the result back.
func runCmd(t *testing.T, m *LibrariesModel, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())
	assert.Nil(t, next)
}

func TestLibrariesModel_LoadLifecycle(t *testing.T) {
	m := NewLibrariesModel(context.Background(), kotlinJSON, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())
	assert.Equal(t, StateUnloaded, m.State())
	assert.Equal(t, 0, m.RowCount())

	cmd := m.Init()
	assert.Equal(t, StateLoading, m.State())
	assert.Equal(t, 0, m.RowCount(), "loading renders an empty list")

	runCmd(t, m, cmd)
	assert.Equal(t, StateLoaded, m.State())
	require.Equal(t, 1, m.RowCount())
	require.NoError(t, m.Err())

	view := m.View()
	for _, s := range []string{"Kotlin", "JetBrains", "1.9.0", "Apache-2.0"} {
		assert.Contains(t, view, s)
	}
}

func TestLibrariesModel_VersionHidden(t *testing.T) {
	opts := DisplayOptions{ShowAuthor: true, ShowLicenseBadges: true}
	m := NewLibrariesModel(context.Background(), kotlinJSON, loaderFunc(), opts, DefaultLayout())
	runCmd(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "Kotlin")
	assert.Contains(t, view, "JetBrains")
	assert.Contains(t, view, "Apache-2.0")
	assert.NotContains(t, view, "1.9.0")
}

func TestLibrariesModel_ParseFailureRendersEmpty(t *testing.T) {
	m := NewLibrariesModel(context.Background(), `{not json`, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())

	assert.NotPanics(t, func() {
		runCmd(t, m, m.Init())
	})
	assert.Equal(t, StateFailed, m.State())
	assert.ErrorIs(t, m.Err(), library.ErrParse)
	assert.Equal(t, 0, m.RowCount())
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestLibrariesModel_EmptyArray(t *testing.T) {
	m := NewLibrariesModel(context.Background(), `[]`, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())
	runCmd(t, m, m.Init())

	assert.Equal(t, StateLoaded, m.State())
	assert.Equal(t, 0, m.RowCount())
}

func TestLibrariesModel_SetSourceDiscardsStaleResult(t *testing.T) {
	m := NewLibrariesModel(context.Background(), kotlinJSON, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())
	first := m.Init()

	second := m.SetSource(`[{"name":"a"},{"name":"b"}]`)
	assert.Equal(t, StateLoading, m.State())

	// The newer load lands first, then the superseded one arrives late.
	runCmd(t, m, second)
	runCmd(t, m, first)

	assert.Equal(t, StateLoaded, m.State())
	assert.Equal(t, 2, m.RowCount())
	assert.NotContains(t, m.View(), "Kotlin")
}

func TestLibrariesModel_SetSourceSameInputIsNoop(t *testing.T) {
	calls := 0
	load := func(ctx context.Context, data string) (library.Libraries, error) {
		calls++
		return library.NewLoader().Load(ctx, data)
	}

	m := NewLibrariesModel(context.Background(), kotlinJSON, load, DefaultDisplayOptions(), DefaultLayout())
	runCmd(t, m, m.Init())
	require.Equal(t, StateLoaded, m.State())

	assert.Nil(t, m.SetSource(kotlinJSON))
	assert.Equal(t, StateLoaded, m.State())
	assert.Equal(t, 1, m.RowCount())
	assert.Equal(t, 1, calls)

	// A different input still reloads, and going back to the first one does too.
	runCmd(t, m, m.SetSource(`[{"name":"a"},{"name":"b"}]`))
	runCmd(t, m, m.SetSource(kotlinJSON))
	assert.Equal(t, 1, m.RowCount())
	assert.Equal(t, 3, calls)
}

func TestLibrariesModel_SetSourceSameInputWhileLoading(t *testing.T) {
	m := NewLibrariesModel(context.Background(), kotlinJSON, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())
	first := m.Init()

	assert.Nil(t, m.SetSource(kotlinJSON), "in-flight load already covers this input")
	runCmd(t, m, first)
	assert.Equal(t, StateLoaded, m.State())
	assert.Equal(t, 1, m.RowCount())
}

func TestLibrariesModel_FailureFooter(t *testing.T) {
	m := NewLibrariesModel(context.Background(), `[{"name":""}]`, loaderFunc(), DefaultDisplayOptions(),
		Layout{Width: 40, Height: 10})
	runCmd(t, m, m.Init())
	require.Equal(t, StateFailed, m.State())

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2, "empty list plus one status line")
	assert.Equal(t, "", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error: "))
	assert.LessOrEqual(t, len([]rune(lines[1])), 40)
	assert.NotContains(t, m.View(), "quit")
}

func TestLibrariesModel_SetSourceResetsFailure(t *testing.T) {
	m := NewLibrariesModel(context.Background(), `nope`, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())
	runCmd(t, m, m.Init())
	require.Equal(t, StateFailed, m.State())

	cmd := m.SetSource(kotlinJSON)
	assert.NoError(t, m.Err())
	runCmd(t, m, cmd)
	assert.Equal(t, StateLoaded, m.State())
	assert.Equal(t, 1, m.RowCount())
}

func TestLibrariesModel_OnSelect(t *testing.T) {
	m := NewLibrariesModel(context.Background(), `[{"name":"a"},{"name":"b"}]`, loaderFunc(),
		DefaultDisplayOptions(), DefaultLayout())

	// Enter before anything is loaded is a no-op.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	runCmd(t, m, m.Init())

	var picked []string
	m.OnSelect(func(lib library.Library) {
		picked = append(picked, lib.Name)
	})

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"b"}, picked)

	m.OnSelect(nil)
	assert.NotPanics(t, func() { _, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter}) })
}

func TestLibrariesModel_Quit(t *testing.T) {
	m := NewLibrariesModel(context.Background(), `[]`, loaderFunc(), DefaultDisplayOptions(), DefaultLayout())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLibrariesModel_WindowSize(t *testing.T) {
	libs := make([]string, 0, 200)
	for i := range 200 {
		libs = append(libs, `{"name":"lib`+strings.Repeat("x", i%3)+`"}`)
	}
	m := NewLibrariesModel(context.Background(), "["+strings.Join(libs, ",")+"]", loaderFunc(),
		DefaultDisplayOptions(), DefaultLayout())
	runCmd(t, m, m.Init())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 11})
	view := m.View()

	// 10 list rows + 5 buffer rows + help footer.
	assert.Len(t, strings.Split(view, "\n"), 10+defaultBufferRows+1)
	assert.Equal(t, 200, m.RowCount())
}

func TestLibrariesModel_CustomLoadFuncError(t *testing.T) {
	boom := errors.New("boom")
	load := func(context.Context, string) (library.Libraries, error) { return nil, boom }

	m := NewLibrariesModel(context.Background(), "ignored", load, DefaultDisplayOptions(), DefaultLayout())
	runCmd(t, m, m.Init())

	assert.Equal(t, StateFailed, m.State())
	assert.ErrorIs(t, m.Err(), boom)
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "unloaded", StateUnloaded.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "LoadState(9)", LoadState(9).String())
}
