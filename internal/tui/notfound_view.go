package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NotFoundTitle is shown for unknown paths and ids.
const NotFoundTitle = "404 - Not Found!"

// NotFoundView is the catch-all page.
type NotFoundView struct {
	path string
	keys KeyMap
}

// NewNotFoundView creates the page for path.
func NewNotFoundView(path string) *NotFoundView {
	return &NotFoundView{path: path, keys: DefaultKeyMap()}
}

// Init implements tea.Model.
func (v *NotFoundView) Init() tea.Cmd { return nil }

// Dismiss implements View.
func (v *NotFoundView) Dismiss() {}

// Update implements tea.Model.
func (v *NotFoundView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, v.keys.Back) {
		return v, NavigateBack()
	}
	return v, nil
}

// View implements tea.Model.
func (v *NotFoundView) View() string {
	return CriticalStyle.Render(NotFoundTitle) + "\n\n" +
		LabelStyle.Render(v.path) + "\n\n" +
		helpLine(v.keys.Back, v.keys.Home)
}
