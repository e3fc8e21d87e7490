package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/router"
	listview "github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui/list"
)

// Catalog table column widths.
const (
	colWidthNumber = 6
	colWidthName   = 16
	colWidthTypes  = 20
)

// catalogChromeLines is the status line plus the help line.
const catalogChromeLines = 2

// CatalogView lists the whole dataset as a card grid or a table. It never
// touches the network.
type CatalogView struct {
	dataset *pokedex.Dataset
	columns GridColumns
	keys    KeyMap

	mode    string
	query   string
	records []pokedex.Record

	grid      *listview.GridModel[pokedex.Record]
	table     table.Model
	textInput textinput.Model
	searching bool

	width  int
	height int
}

// NewCatalogView creates the listing in the given initial mode.
func NewCatalogView(dataset *pokedex.Dataset, mode string, columns GridColumns) *CatalogView {
	if mode != config.ModeTable {
		mode = config.ModeGrid
	}
	v := &CatalogView{
		dataset:   dataset,
		columns:   columns,
		keys:      DefaultKeyMap(),
		mode:      mode,
		records:   dataset.All(),
		textInput: newTextInput("Search name, #id or type"),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	v.grid = listview.NewGridModel(v.records, columns.For(v.width), cardHeight, v.bodyHeight(), v.renderCard)
	v.table = v.buildTable()
	return v
}

// newTextInput returns an unfocused single-line input with a steady cursor.
func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

func (v *CatalogView) renderCard(rec pokedex.Record, selected bool) string {
	return RenderCard(rec, selected, cardWidth(v.width, v.grid.Columns()))
}

func (v *CatalogView) bodyHeight() int {
	h := v.height - catalogChromeLines
	if v.searching {
		h--
	}
	return max(h, 1)
}

// buildTable builds the table for the current records.
func (v *CatalogView) buildTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: colWidthNumber},
		{Title: "Name", Width: colWidthName},
		{Title: "Type", Width: colWidthTypes},
	}

	rows := make([]table.Row, 0, len(v.records))
	for _, r := range v.records {
		types := make([]string, 0, len(r.Type))
		for _, t := range r.Type {
			types = append(types, t.String())
		}
		rows = append(rows, table.Row{format.Number(r.ID), r.DisplayName(), strings.Join(types, ", ")})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(v.bodyHeight()),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

// Init implements tea.Model.
func (v *CatalogView) Init() tea.Cmd { return nil }

// Dismiss implements View.
func (v *CatalogView) Dismiss() {}

// CapturingInput reports whether the search box owns key input.
func (v *CatalogView) CapturingInput() bool { return v.searching }

// Update implements tea.Model.
func (v *CatalogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.resize()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.handleSearchKey(msg)
		}
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *CatalogView) resize() {
	v.grid.SetColumns(v.columns.For(v.width))
	v.grid.SetHeight(v.bodyHeight())
	v.table.SetHeight(v.bodyHeight())
}

func (v *CatalogView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Search):
		v.searching = true
		v.textInput.SetValue(v.query)
		v.resize()
		return v, v.textInput.Focus()
	case key.Matches(msg, v.keys.Grid):
		v.SetMode(config.ModeGrid)
		return v, nil
	case key.Matches(msg, v.keys.Table):
		v.SetMode(config.ModeTable)
		return v, nil
	case key.Matches(msg, v.keys.Toggle):
		v.ToggleMode()
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		if rec := v.Selected(); rec != nil {
			return v, Navigate(router.DetailPath(rec.ID))
		}
		return v, nil
	case key.Matches(msg, v.keys.Back):
		if v.query == "" {
			return v, NavigateBack()
		}
		v.SetQuery("")
		return v, nil
	}

	if v.mode == config.ModeTable {
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return v, cmd
	}
	v.grid.Update(msg)
	return v, nil
}

func (v *CatalogView) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // Other keys go to the text input.
	case tea.KeyEnter:
		v.stopSearch()
		return v, nil
	case tea.KeyEsc:
		v.SetQuery("")
		v.stopSearch()
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	if v.textInput.Value() != v.query {
		v.SetQuery(v.textInput.Value())
	}
	return v, cmd
}

func (v *CatalogView) stopSearch() {
	v.searching = false
	v.textInput.Blur()
	v.resize()
}

// SetQuery narrows the listing to records matching q.
func (v *CatalogView) SetQuery(q string) {
	v.query = q
	v.records = v.dataset.Search(q)
	v.grid.SetItems(v.records)
	v.table = v.buildTable()
	v.table.SetCursor(v.grid.Selected())
}

// Query returns the active search text.
func (v *CatalogView) Query() string { return v.query }

// Mode returns the display mode.
func (v *CatalogView) Mode() string { return v.mode }

// SetMode switches between grid and table, keeping the selection.
func (v *CatalogView) SetMode(mode string) {
	if mode == v.mode || (mode != config.ModeGrid && mode != config.ModeTable) {
		return
	}
	if mode == config.ModeTable {
		v.table.SetCursor(v.grid.Selected())
	} else {
		v.grid.SetSelected(v.table.Cursor())
	}
	v.mode = mode
}

// ToggleMode flips the display mode.
func (v *CatalogView) ToggleMode() {
	if v.mode == config.ModeGrid {
		v.SetMode(config.ModeTable)
		return
	}
	v.SetMode(config.ModeGrid)
}

// Selected returns the highlighted record, or nil when the listing is empty.
func (v *CatalogView) Selected() *pokedex.Record {
	if v.mode == config.ModeTable {
		i := v.table.Cursor()
		if i < 0 || i >= len(v.records) {
			return nil
		}
		return &v.records[i]
	}
	return v.grid.GetSelectedItem()
}

// RenderedIDs returns the ids the current mode presents, read back from
// the grid items or the table rows.
func (v *CatalogView) RenderedIDs() []int {
	if v.mode == config.ModeTable {
		rows := v.table.Rows()
		ids := make([]int, 0, len(rows))
		for _, row := range rows {
			id, err := strconv.Atoi(strings.TrimLeft(strings.TrimPrefix(row[0], "#"), "0"))
			if err == nil {
				ids = append(ids, id)
			}
		}
		return ids
	}
	items := v.grid.Items()
	ids := make([]int, 0, len(items))
	for _, r := range items {
		ids = append(ids, r.ID)
	}
	return ids
}

// View implements tea.Model.
func (v *CatalogView) View() string {
	var b strings.Builder

	status := fmt.Sprintf("%d Pokémon · %s", len(v.records), v.mode)
	if v.query != "" {
		status += fmt.Sprintf(" · search %q", v.query)
	}
	b.WriteString(LabelStyle.Render(status))
	b.WriteString("\n")

	if v.searching {
		b.WriteString(LabelStyle.Render("Search: ") + v.textInput.View())
		b.WriteString("\n")
	}

	switch {
	case len(v.records) == 0:
		b.WriteString(InfoStyle.Render("No Pokémon match your search."))
	case v.mode == config.ModeTable:
		b.WriteString(v.table.View())
	default:
		b.WriteString(v.grid.View())
	}

	b.WriteString("\n")
	b.WriteString(helpLine(v.keys.Enter, v.keys.Search, v.keys.Grid, v.keys.Table, v.keys.Toggle))
	return b.String()
}
