package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
)

// cardHeight is the rendered height of a card: three content lines plus
// the border.
const cardHeight = 5

// minCardWidth keeps names and badges readable in narrow columns.
const minCardWidth = 18

// RenderCard renders one record as a bordered card of the given outer width.
func RenderCard(rec pokedex.Record, selected bool, width int) string {
	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	inner := max(width, minCardWidth) - borderPadding

	name := ValueStyle.Render(rec.DisplayName())
	if selected {
		name = HeaderStyle.Render(rec.DisplayName())
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		name,
		LabelStyle.Render(format.Number(rec.ID)),
		TypeBadges(rec.Type),
	)
	return style.Width(inner).Align(lipgloss.Center).Render(body)
}

// cardWidth splits the available width between columns.
func cardWidth(total, columns int) int {
	if columns < 1 {
		columns = 1
	}
	return max(total/columns, minCardWidth)
}

// RenderCardGrid lays records out as rows of cards filling width.
func RenderCardGrid(records []pokedex.Record, columns, width int) string {
	columns = max(columns, 1)
	w := cardWidth(width, columns)
	rows := make([]string, 0, (len(records)+columns-1)/columns)
	for start := 0; start < len(records); start += columns {
		end := min(start+columns, len(records))
		cards := make([]string, 0, end-start)
		for _, rec := range records[start:end] {
			cards = append(cards, RenderCard(rec, false, w))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
