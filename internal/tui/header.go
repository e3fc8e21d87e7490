package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/router"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

// Footer content.
const (
	FooterCourseName = "Applicazioni Web: Progettazione e Sviluppo"
	FooterCourseLink = "https://elearning.unimib.it/course/view.php?id=61231"
)

const logo = "◓ Pokédex"

// NavEntry is a top-level navigation item.
type NavEntry struct {
	URL   string
	Label string
	// Exact entries are active only on their own path, not on sub-paths.
	Exact bool
	// Key is the shortcut shown next to the label.
	Key string
}

// Active reports whether the entry is highlighted at currentPath.
func (e NavEntry) Active(currentPath string) bool {
	return router.IsActive(e.URL, currentPath, e.Exact)
}

// DefaultNav returns the header navigation.
func DefaultNav() []NavEntry {
	return []NavEntry{
		{URL: router.PathHome, Label: "Home", Exact: true, Key: "1"},
		{URL: router.PathCatalog, Label: "Pokédex", Key: "2"},
		{URL: router.PathInfo, Label: "Info", Exact: true, Key: "3"},
	}
}

// RenderHeader renders the logo, navigation and user area.
func RenderHeader(currentPath string, entries []NavEntry, sess session.Session, width int) string {
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		label := e.Label
		if e.Key != "" {
			label = e.Key + " " + label
		}
		if e.Active(currentPath) {
			items = append(items, NavActiveStyle.Render(label))
			continue
		}
		items = append(items, NavStyle.Render(label))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top, TitleStyle.Render(logo), "  ", strings.Join(items, ""))
	right := renderUserArea(sess)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderUserArea renders the signed-in user and the log out affordance, or
// a sign-in hint.
func renderUserArea(sess session.Session) string {
	if sess == nil {
		return ""
	}
	user, ok := sess.CurrentUser()
	if !ok {
		return SubtleStyle.Render("not signed in")
	}
	profile := ValueStyle.Render(user.DisplayName())
	if user.Email != "" {
		profile += " " + LabelStyle.Render("<"+user.Email+">")
	}
	return profile + "  " + SubtleStyle.Render("o log out")
}

// RenderFooter renders the course credit line.
func RenderFooter(width int) string {
	text := FooterCourseName + " · " + FooterCourseLink
	return FooterStyle.Width(max(width, 1)).Render(text)
}
