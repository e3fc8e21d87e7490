package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

// GateView renders a protected view only for a signed-in session. While
// closed it shows a LoginView and the target is not constructed, so the
// target's side effects never start.
type GateView struct {
	sess   session.Authenticator
	path   string
	build  func() View
	target View
	login  *LoginView

	size *tea.WindowSizeMsg
}

// NewGateView wraps the view produced by build.
func NewGateView(sess session.Authenticator, path string, build func() View) *GateView {
	return &GateView{sess: sess, path: path, build: build}
}

// Init opens the gate for an authenticated session, otherwise shows the
// sign-in form.
func (g *GateView) Init() tea.Cmd {
	if g.sess.IsAuthenticated() {
		return g.open()
	}
	return g.close()
}

func (g *GateView) open() tea.Cmd {
	g.login = nil
	if g.target != nil {
		return nil
	}
	g.target = g.build()
	g.resize(g.target)
	return g.target.Init()
}

func (g *GateView) close() tea.Cmd {
	if g.target != nil {
		g.target.Dismiss()
		g.target = nil
	}
	if g.login == nil {
		g.login = NewLoginView(g.sess, g.path)
		g.resize(g.login)
		return g.login.Init()
	}
	return nil
}

func (g *GateView) resize(v tea.Model) {
	if g.size != nil {
		v.Update(*g.size)
	}
}

// Update implements tea.Model.
func (g *GateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoggedInMsg:
		if g.sess.IsAuthenticated() {
			return g, g.open()
		}
		return g, nil
	case LoggedOutMsg:
		return g, g.close()
	case tea.WindowSizeMsg:
		g.size = &msg
	}

	var cmd tea.Cmd
	switch {
	case g.target != nil:
		_, cmd = g.target.Update(msg)
	case g.login != nil:
		_, cmd = g.login.Update(msg)
	}
	return g, cmd
}

// View implements tea.Model.
func (g *GateView) View() string {
	switch {
	case g.target != nil:
		return g.target.View()
	case g.login != nil:
		return g.login.View()
	default:
		return ""
	}
}

// Dismiss dismisses the target if it was built.
func (g *GateView) Dismiss() {
	if g.target != nil {
		g.target.Dismiss()
	}
}

// CapturingInput delegates to the visible child.
func (g *GateView) CapturingInput() bool {
	if g.target != nil {
		return capturing(g.target)
	}
	return g.login != nil
}

// Open reports whether the target is shown.
func (g *GateView) Open() bool { return g.target != nil }

// Target returns the protected view, or nil while the gate is closed.
func (g *GateView) Target() View { return g.target }
