package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

// NavigateMsg asks the App to show the view for Path.
type NavigateMsg struct {
	Path string
	// Replace swaps the current history entry instead of pushing one.
	Replace bool
}

// NavigateBackMsg returns to the previous path.
type NavigateBackMsg struct{}

// LoggedInMsg is sent after a successful sign-in.
type LoggedInMsg struct {
	User session.UserProfile
}

// LoggedOutMsg is sent after sign-out.
type LoggedOutMsg struct{}

// Navigate returns a command emitting NavigateMsg for path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// NavigateBack returns a command emitting NavigateBackMsg.
func NavigateBack() tea.Cmd {
	return func() tea.Msg { return NavigateBackMsg{} }
}
