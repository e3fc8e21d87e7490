package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
)

// maxBaseStat is the upper bound used to scale stat bars.
const maxBaseStat = 255

const statBarWidth = 20

// DetailData is everything needed to render a detail page. Nil remote
// values are simply not rendered; the Pending flags show a loading marker
// in their place.
type DetailData struct {
	Record  pokedex.Record
	Pokemon *pokeapi.Pokemon
	Species *pokeapi.Species
	Picture *artwork.Picture

	PokemonPending bool
	SpeciesPending bool
	ImagePending   bool
	// Loading replaces the default pending marker, e.g. with a spinner.
	Loading string

	HasPrev bool
	HasNext bool
	Width   int
}

// RenderDetail renders the detail page for d.
func RenderDetail(d DetailData) string {
	width := d.Width
	if width <= 0 {
		width = defaultWidth
	}
	loading := d.Loading
	if loading == "" {
		loading = RenderLoading(nil)
	}

	var sections []string
	if nav := renderPrevNext(d, width); nav != "" {
		sections = append(sections, nav)
	}
	sections = append(sections, renderHeading(d))

	gallery := renderGallery(d, loading)
	sections = append(sections, gallery)

	if text := flavorText(d.Species); text != "" {
		sections = append(sections, lipgloss.NewStyle().Width(max(width-borderPadding, 1)).Render(text))
	}

	if boxes := renderInfoBoxes(d); boxes != "" {
		sections = append(sections, boxes)
	}

	switch {
	case d.Pokemon != nil:
		sections = append(sections, renderStatsAndAbilities(d.Pokemon))
	case d.PokemonPending:
		sections = append(sections, loading)
	}

	return strings.Join(sections, "\n\n")
}

func renderPrevNext(d DetailData, width int) string {
	var prev, next string
	if d.HasPrev {
		prev = LabelStyle.Render("< Prev")
	}
	if d.HasNext {
		next = LabelStyle.Render("Next >")
	}
	if prev == "" && next == "" {
		return ""
	}
	gap := max(width-lipgloss.Width(prev)-lipgloss.Width(next), 1)
	return prev + strings.Repeat(" ", gap) + next
}

func renderHeading(d DetailData) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render(format.Number(d.Record.ID)))
	b.WriteString("  ")
	b.WriteString(TitleStyle.Render(d.Record.DisplayName()))
	if d.Species != nil && d.Species.Generation != "" {
		b.WriteString("  ")
		b.WriteString(SubtleStyle.Render(format.RemoveDashesAndUnderscores(d.Species.Generation)))
	}
	return b.String()
}

func renderGallery(d DetailData, loading string) string {
	var art string
	switch {
	case d.Picture != nil:
		art = d.Picture.Art
	case d.ImagePending:
		art = loading
	}

	right := []string{TypeBadges(d.Record.Type)}
	if d.Pokemon != nil && len(d.Pokemon.Sprites) > 0 {
		right = append(right, "", HeaderStyle.Render("Sprites"))
		for _, s := range d.Pokemon.Sprites {
			right = append(right, ValueStyle.Render(format.RemoveDashesAndUnderscores(s.Name))+" "+SubtleStyle.Render(s.URL))
		}
	}
	info := lipgloss.JoinVertical(lipgloss.Left, right...)

	if art == "" {
		return info
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", info)
}

func flavorText(s *pokeapi.Species) string {
	text, ok := s.FlavorText(pokeapi.English)
	if !ok {
		return ""
	}
	return format.CleanText(text)
}

func renderInfoBoxes(d DetailData) string {
	var boxes []string
	if genus, ok := d.Species.Genus(pokeapi.English); ok {
		boxes = append(boxes, infoBox(genus, "Genera"))
	}
	if d.Pokemon != nil && d.Pokemon.Weight != 0 {
		boxes = append(boxes, infoBox(strconv.Itoa(d.Pokemon.Weight), "Weight"))
	}
	if d.Pokemon != nil && d.Pokemon.Height != 0 {
		boxes = append(boxes, infoBox(strconv.Itoa(d.Pokemon.Height), "Height"))
	}
	if len(boxes) == 0 {
		if d.SpeciesPending {
			return RenderLoading(nil)
		}
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpaces(boxes)...)
}

func infoBox(value, label string) string {
	return BoxStyle.Align(lipgloss.Center).Render(ValueStyle.Render(value) + "\n" + LabelStyle.Render(label))
}

func renderStatsAndAbilities(p *pokeapi.Pokemon) string {
	var stats strings.Builder
	stats.WriteString(HeaderStyle.Render("Stats"))
	for _, s := range p.Stats {
		stats.WriteString("\n")
		stats.WriteString(RenderStatBar(s.Name, s.BaseValue))
	}

	var abilities strings.Builder
	abilities.WriteString(HeaderStyle.Render("Abilities"))
	for _, a := range p.Abilities {
		abilities.WriteString("\n• ")
		abilities.WriteString(format.RemoveDashesAndUnderscores(a))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, stats.String(), "     ", abilities.String())
}

// RenderStatBar renders "name  ███░░░ value" scaled to maxBaseStat.
func RenderStatBar(name string, value int) string {
	filled := min(max(value*statBarWidth/maxBaseStat, 0), statBarWidth)
	if value > 0 && filled == 0 {
		filled = 1
	}
	bar := InfoStyle.Render(strings.Repeat("█", filled)) + LabelStyle.Render(strings.Repeat("░", statBarWidth-filled))
	label := fmt.Sprintf("%-16s", format.Label(name))
	return LabelStyle.Render(label) + bar + " " + ValueStyle.Render(strconv.Itoa(value))
}
