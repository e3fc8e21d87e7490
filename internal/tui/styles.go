package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
)

// Layout defaults.
const (
	defaultWidth  = 80
	defaultHeight = 24
	borderPadding = 2
)

// Palette.
const (
	ColorPrimary   = lipgloss.Color("#E3350D")
	ColorAccent    = lipgloss.Color("#FFCB05")
	ColorText      = lipgloss.Color("#F5F5F5")
	ColorSubtle    = lipgloss.Color("#8A8A8A")
	ColorBorder    = lipgloss.Color("#3B4CCA")
	ColorCritical  = lipgloss.Color("#D32F2F")
	ColorWarning   = lipgloss.Color("#F9A825")
	ColorInfo      = lipgloss.Color("#0288D1")
	ColorSelection = lipgloss.Color("#30A7D7")
)

// Text styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)

	CriticalStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)

// Container styles.
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorSelection)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorSubtle)

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				Background(ColorSelection)

	NavStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Underline(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorSubtle)
)

// typeColors maps type keys to badge backgrounds.
var typeColors = map[string]lipgloss.Color{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

// TypeColor returns the badge colour for t, or the subtle colour for an
// unknown type.
func TypeColor(t pokedex.TypeName) lipgloss.Color {
	if c, ok := typeColors[t.Key()]; ok {
		return c
	}
	return ColorSubtle
}

// TypeBadge renders t as a coloured badge.
func TypeBadge(t pokedex.TypeName) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(TypeColor(t)).
		Padding(0, 1).
		Render(t.String())
}

// TypeBadges renders all types separated by a space.
func TypeBadges(types []pokedex.TypeName) string {
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, TypeBadge(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpaces(badges)...)
}

func joinWithSpaces(parts []string) []string {
	if len(parts) < 2 { //nolint:mnd // nothing to separate
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
