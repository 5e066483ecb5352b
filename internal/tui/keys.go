package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Select key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

// helpLine renders the footer from the enabled bindings.
func (k keyMap) helpLine() string {
	parts := []key.Binding{k.Select, k.Quit}
	out := "↑/↓ navigate"
	for _, b := range parts {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out += " • " + h.Key + " " + h.Desc
	}
	return out
}
