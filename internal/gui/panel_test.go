package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/tui"
)

func TestLibrariesPanel_PublishAndSelect(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	var picked []string
	p := NewLibrariesPanel(tui.DefaultDisplayOptions(), func(lib library.Library) {
		picked = append(picked, lib.Name)
	})
	assert.Equal(t, 0, p.Len())

	gen := p.generation.Add(1)
	require.True(t, p.publish(gen, library.Libraries{kotlin(), {Name: "okio"}}))
	assert.Equal(t, 2, p.Len())

	lib, ok := p.At(1)
	require.True(t, ok)
	assert.Equal(t, "okio", lib.Name)
	_, ok = p.At(2)
	assert.False(t, ok)

	p.list.Select(0)
	assert.Equal(t, []string{"Kotlin"}, picked)
}

func TestLibrariesPanel_StaleResultDropped(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewLibrariesPanel(tui.DefaultDisplayOptions(), nil)

	stale := p.generation.Add(1)
	current := p.generation.Add(1)

	require.True(t, p.publish(current, library.Libraries{kotlin()}))
	assert.False(t, p.publish(stale, library.Libraries{{Name: "a"}, {Name: "b"}}))
	assert.Equal(t, 1, p.Len())
}

func TestLibrariesPanel_FailedLoadIsEmpty(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewLibrariesPanel(tui.DefaultDisplayOptions(), nil)
	gen := p.generation.Add(1)
	require.True(t, p.publish(gen, nil))
	assert.Equal(t, 0, p.Len())
	assert.NotPanics(t, func() { p.list.Select(0) })
}
