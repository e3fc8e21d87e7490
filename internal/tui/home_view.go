package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/router"
	listview "github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui/list"
)

// CatchEmAllLabel is the home page call to action.
const CatchEmAllLabel = "Gotta Catch 'em all"

// HomeView shows the featured records and a call to action opening the
// catalog. Focus starts on the call to action.
type HomeView struct {
	columns GridColumns
	grid    *listview.GridModel[pokedex.Record]
	keys    KeyMap

	// onButton is true while the call to action has focus.
	onButton bool
	width    int
}

// NewHomeView creates the home page for the featured ids.
func NewHomeView(dataset *pokedex.Dataset, featured []int, columns GridColumns) *HomeView {
	v := &HomeView{
		columns:  columns,
		keys:     DefaultKeyMap(),
		onButton: true,
		width:    defaultWidth,
	}
	v.grid = listview.NewGridModel(dataset.Select(featured...), columns.For(v.width), cardHeight, defaultHeight, v.renderCard)
	return v
}

func (v *HomeView) renderCard(rec pokedex.Record, selected bool) string {
	return RenderCard(rec, selected && !v.onButton, cardWidth(v.width, v.grid.Columns()))
}

// Init implements tea.Model.
func (v *HomeView) Init() tea.Cmd { return nil }

// Dismiss implements View.
func (v *HomeView) Dismiss() {}

// Update implements tea.Model.
func (v *HomeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.grid.SetColumns(v.columns.For(msg.Width))
		v.grid.SetHeight(max(msg.Height-3, cardHeight)) //nolint:mnd // button and help lines
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Enter):
			if v.onButton {
				return v, Navigate(router.PathCatalog)
			}
			if rec := v.grid.GetSelectedItem(); rec != nil {
				return v, Navigate(router.DetailPath(rec.ID))
			}
			return v, nil
		case msg.Type == tea.KeyTab, msg.Type == tea.KeyShiftTab:
			v.onButton = !v.onButton || v.grid.ItemCount() == 0
			return v, nil
		}
		if !v.onButton {
			v.grid.Update(msg)
		}
	}
	return v, nil
}

// Featured returns the ids shown on the page.
func (v *HomeView) Featured() []int {
	items := v.grid.Items()
	ids := make([]int, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.ID)
	}
	return ids
}

// View implements tea.Model.
func (v *HomeView) View() string {
	button := NavStyle.Render("[ " + CatchEmAllLabel + " ]")
	if v.onButton {
		button = NavActiveStyle.Render("[ " + CatchEmAllLabel + " ]")
	}
	body := lipgloss.JoinVertical(lipgloss.Center, v.grid.View(), "", button)
	help := helpLine(v.keys.Toggle, v.keys.Enter)
	return lipgloss.PlaceHorizontal(max(v.width, 1), lipgloss.Center, body) + "\n" + help
}
