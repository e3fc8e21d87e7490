package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the application key bindings.
type KeyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Home    key.Binding
	Catalog key.Binding
	Info    key.Binding
	Logout  key.Binding
	Enter   key.Binding
	Search  key.Binding
	Grid    key.Binding
	Table   key.Binding
	Toggle  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Reload  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Home:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Catalog: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pokédex")),
		Info:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "info")),
		Logout:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Grid:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		Table:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "table")),
		Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle view")),
		Prev:    key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←", "previous")),
		Next:    key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→", "next")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

// helpLine renders enabled bindings as "key action" pairs.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return SubtleStyle.Render(strings.Join(parts, "  "))
}
