package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/router"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

// Lines taken by the header (nav plus blank line) and footer (border plus
// text).
const (
	headerLines = 2
	footerLines = 2
)

// Options wires the App to its collaborators.
type Options struct {
	// Context carries the logger and trace id.
	Context context.Context

	Dataset  *pokedex.Dataset
	Router   *router.Router
	Session  session.Authenticator
	API      DetailFetcher
	Images   ImageLoader
	Resolver artwork.Resolver

	CatalogMode    string
	CatalogColumns GridColumns
	Featured       []int
	HomeColumns    GridColumns

	// InfoStyle is the glamour style of the info page.
	InfoStyle string
	Version   string
}

// WithConfig returns o with the display options taken from cfg.
func (o Options) WithConfig(cfg *config.Config) Options {
	o.CatalogMode = cfg.Catalog.DefaultMode
	o.CatalogColumns = GridColumnsFrom(cfg.Catalog.Columns)
	o.Featured = append([]int(nil), cfg.Home.Featured...)
	o.HomeColumns = GridColumnsFrom(cfg.Home.Columns)
	o.Resolver = artwork.NewResolver(cfg.Artwork.BaseURL)
	return o
}

// App is the root model: it resolves paths to views, gates protected
// routes, keeps the navigation history and draws the header and footer.
type App struct {
	opts   Options
	ctx    context.Context
	router *router.Router
	nav    []NavEntry
	keys   KeyMap

	current View
	match   router.Match
	history []string

	width    int
	height   int
	quitting bool
}

// NewApp creates the App showing startPath once initialized.
func NewApp(opts Options, startPath string) *App {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	r := opts.Router
	if r == nil {
		r = router.MustDefault()
	}
	if opts.Session == nil {
		opts.Session = session.NewLocal(nil)
	}
	return &App{
		opts:    opts,
		ctx:     ctx,
		router:  r,
		nav:     DefaultNav(),
		keys:    DefaultKeyMap(),
		history: []string{router.Normalize(startPath)},
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init shows the start path.
func (a *App) Init() tea.Cmd {
	return a.show(a.history[len(a.history)-1])
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forward(a.bodySize())

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case NavigateMsg:
		return a, a.navigate(msg.Path, msg.Replace)

	case NavigateBackMsg:
		return a, a.back()
	}

	return a, a.forward(msg)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, a.quit()
	}
	if capturing(a.current) {
		return a, a.forward(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keys.Home):
		return a, a.navigate(router.PathHome, false)
	case key.Matches(msg, a.keys.Catalog):
		return a, a.navigate(router.PathCatalog, false)
	case key.Matches(msg, a.keys.Info):
		return a, a.navigate(router.PathInfo, false)
	case key.Matches(msg, a.keys.Logout):
		if a.opts.Session != nil && a.opts.Session.IsAuthenticated() {
			a.opts.Session.Logout()
			logging.FromContext(a.ctx).Info().Ctx(a.ctx).Str("component", "app").Msg("signed out")
			return a, a.forward(LoggedOutMsg{})
		}
		return a, nil
	}
	return a, a.forward(msg)
}

func (a *App) quit() tea.Cmd {
	if a.current != nil {
		a.current.Dismiss()
	}
	a.quitting = true
	return tea.Quit
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	if a.current == nil {
		return nil
	}
	_, cmd := a.current.Update(msg)
	return cmd
}

// navigate pushes path (or replaces the top entry) and shows it.
func (a *App) navigate(path string, replace bool) tea.Cmd {
	path = router.Normalize(path)
	if path == a.Path() {
		return nil
	}
	if replace && len(a.history) > 0 {
		a.history[len(a.history)-1] = path
	} else {
		a.history = append(a.history, path)
	}
	return a.show(path)
}

// back pops the history; an empty history returns home.
func (a *App) back() tea.Cmd {
	if len(a.history) <= 1 {
		if a.Path() == router.PathHome {
			return nil
		}
		a.history = []string{router.PathHome}
		return a.show(router.PathHome)
	}
	a.history = a.history[:len(a.history)-1]
	return a.show(a.history[len(a.history)-1])
}

// show resolves path and swaps in its view. Moving between detail pages
// keeps the detail view and restarts it for the new id.
func (a *App) show(path string) tea.Cmd {
	m := a.router.Resolve(path)

	logging.FromContext(a.ctx).Debug().Ctx(a.ctx).
		Str("component", "app").
		Str("path", m.Path).
		Str("view", string(m.Route.View)).
		Str("match", m.Reason.String()).
		Bool("protected", m.Route.Protected).
		Msg("navigate")

	if cmd, ok := a.reuseDetail(m); ok {
		a.match = m
		return cmd
	}

	if a.current != nil {
		a.current.Dismiss()
	}
	a.match = m
	a.current = a.build(m)

	if a.width > 0 {
		a.current.Update(a.bodySize())
	}
	return a.current.Init()
}

func (a *App) reuseDetail(m router.Match) (tea.Cmd, bool) {
	if m.Route.View != router.ViewDetail || a.match.Route.View != router.ViewDetail {
		return nil, false
	}
	gate, ok := a.current.(*GateView)
	if !ok {
		return nil, false
	}
	dv, ok := gate.Target().(*DetailView)
	if !ok {
		return nil, false
	}
	rec, ok := a.lookup(m)
	if !ok {
		return nil, false
	}
	return dv.SetID(rec), true
}

func (a *App) lookup(m router.Match) (pokedex.Record, bool) {
	param, _ := m.Param(router.ParamID)
	id, err := a.opts.Dataset.ParseID(param)
	if err != nil {
		return pokedex.Record{}, false
	}
	rec, err := a.opts.Dataset.Lookup(id)
	return rec, err == nil
}

// build constructs the view for m. Protected targets are wrapped in a gate
// and only built once it opens.
func (a *App) build(m router.Match) View {
	target := func() View { return a.buildTarget(m) }
	if m.Route.Protected {
		return NewGateView(a.opts.Session, m.Path, target)
	}
	return target()
}

func (a *App) buildTarget(m router.Match) View {
	switch m.Route.View {
	case router.ViewHome:
		return NewHomeView(a.opts.Dataset, a.opts.Featured, a.opts.HomeColumns)
	case router.ViewInfo:
		return NewInfoView(a.opts.Version, a.opts.InfoStyle)
	case router.ViewCatalog:
		return NewCatalogView(a.opts.Dataset, a.opts.CatalogMode, a.opts.CatalogColumns)
	case router.ViewDetail:
		rec, ok := a.lookup(m)
		if !ok {
			logging.FromContext(a.ctx).Debug().Ctx(a.ctx).
				Str("component", "app").
				Str("path", m.Path).
				Msg("unknown pokemon id")
			return NewNotFoundView(m.Path)
		}
		return NewDetailView(a.ctx, a.opts.Dataset, a.opts.API, a.opts.Images, a.opts.Resolver, rec)
	default:
		return NewNotFoundView(m.Path)
	}
}

func (a *App) bodySize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(a.height-headerLines-footerLines, 1)}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(RenderHeader(a.Path(), a.nav, a.opts.Session, a.width))
	b.WriteString("\n\n")
	if a.current != nil {
		b.WriteString(a.current.View())
	}
	b.WriteString("\n")
	b.WriteString(RenderFooter(a.width))
	return b.String()
}

// Path returns the current path.
func (a *App) Path() string {
	if len(a.history) == 0 {
		return router.PathHome
	}
	return a.history[len(a.history)-1]
}

// Current returns the current top-level view.
func (a *App) Current() View { return a.current }

// History returns a copy of the navigation history.
func (a *App) History() []string { return append([]string(nil), a.history...) }
