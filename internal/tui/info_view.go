package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// InfoTitle is the heading of the info page.
const InfoTitle = "About This Pokédex"

// GlamourStyleAuto picks a glamour style from the terminal background.
const GlamourStyleAuto = "auto"

// InfoMarkdown returns the info page source.
func InfoMarkdown(version string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", InfoTitle)
	b.WriteString("A terminal Pokédex for browsing the first generation of Pokémon ")
	b.WriteString("as a card grid or a table, with detail pages enriched by ")
	b.WriteString("[PokeAPI](https://pokeapi.co).\n\n")
	b.WriteString("- Press **2** to open the Pokédex (sign-in required)\n")
	b.WriteString("- Press **/** in the Pokédex to search by name, `#id` or type\n")
	b.WriteString("- Use **←** and **→** on a detail page to page through the list\n\n")
	if version != "" {
		fmt.Fprintf(&b, "Version `%s`.\n", version)
	}
	return b.String()
}

// RenderMarkdown renders md with glamour at the given wrap width. Errors
// fall back to the raw markdown.
func RenderMarkdown(md, style string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width-borderPadding, 20))} //nolint:mnd // minimum wrap
	if style == "" || style == GlamourStyleAuto {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// InfoView is the static about page.
type InfoView struct {
	markdown string
	style    string
	keys     KeyMap
	viewport viewport.Model
	width    int
}

// NewInfoView creates the about page rendered with the given glamour style.
func NewInfoView(version, style string) *InfoView {
	v := &InfoView{
		markdown: InfoMarkdown(version),
		style:    style,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
	}
	v.render()
	return v
}

func (v *InfoView) render() {
	v.viewport.SetContent(RenderMarkdown(v.markdown, v.style, v.width))
}

// Init implements tea.Model.
func (v *InfoView) Init() tea.Cmd { return nil }

// Dismiss implements View.
func (v *InfoView) Dismiss() {}

// Update implements tea.Model.
func (v *InfoView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewport.Height = max(msg.Height, 1)
		v.viewport.Width = msg.Width
		if msg.Width != v.width {
			v.width = msg.Width
			v.render()
		}
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Back) {
			return v, NavigateBack()
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v *InfoView) View() string {
	return v.viewport.View()
}
