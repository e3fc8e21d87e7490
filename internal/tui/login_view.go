package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

// LoginPrompt heads the sign-in form.
const LoginPrompt = "Sign in to see the Pokédex"

// LoginView asks for a user name and signs it in.
type LoginView struct {
	sess      session.Authenticator
	path      string
	textInput textinput.Model
	err       error
}

// NewLoginView creates a sign-in form shown in place of path.
func NewLoginView(sess session.Authenticator, path string) *LoginView {
	ti := newTextInput("your name")
	ti.Prompt = "Name: "
	return &LoginView{sess: sess, path: path, textInput: ti}
}

// Init focuses the input.
func (v *LoginView) Init() tea.Cmd {
	return v.textInput.Focus()
}

// Dismiss implements View.
func (v *LoginView) Dismiss() {}

// CapturingInput implements inputCapturer; the form owns all keys.
func (v *LoginView) CapturingInput() bool { return true }

// Update implements tea.Model.
func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type { //nolint:exhaustive // Other keys go to the text input.
		case tea.KeyEnter:
			return v, v.submit()
		case tea.KeyEsc:
			return v, NavigateBack()
		}
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

func (v *LoginView) submit() tea.Cmd {
	if err := v.sess.Login(v.textInput.Value()); err != nil {
		v.err = err
		return nil
	}
	v.err = nil
	user, _ := v.sess.CurrentUser()
	return func() tea.Msg { return LoggedInMsg{User: user} }
}

// Err returns the last sign-in error.
func (v *LoginView) Err() error { return v.err }

// View implements tea.Model.
func (v *LoginView) View() string {
	out := HeaderStyle.Render(LoginPrompt) + "\n" +
		LabelStyle.Render(v.path) + "\n\n" +
		v.textInput.View()

	switch {
	case errors.Is(v.err, session.ErrUserNotAllowed):
		out += "\n\n" + CriticalStyle.Render("That trainer is not on the list.")
	case errors.Is(v.err, session.ErrEmptyName):
		out += "\n\n" + WarningStyle.Render("Please enter a name.")
	case v.err != nil:
		out += "\n\n" + CriticalStyle.Render(v.err.Error())
	}
	return out + "\n\n" + SubtleStyle.Render("enter sign in  esc back")
}
