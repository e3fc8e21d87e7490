package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingState drives the spinner shown while remote data is pending.
type LoadingState struct {
	Spinner spinner.Model
	Message string
}

// NewLoadingState returns a spinner with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle
	return &LoadingState{Spinner: s, Message: "Loading..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.Spinner.Tick
}

// Update advances the spinner on its own tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.Spinner, cmd = l.Spinner.Update(msg)
	return cmd
}

// RenderLoading renders the spinner and message.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return SubtleStyle.Render("Loading...")
	}
	return l.Spinner.View() + " " + SubtleStyle.Render(l.Message)
}
