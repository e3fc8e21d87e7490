package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultBufferRows is the number of extra rows rendered below the viewport.
const defaultBufferRows = 0

// RenderFunc renders an item. The selected parameter indicates whether this
// item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// GridModel is a virtual scrolling grid. Only rows between VisibleFrom and
// VisibleTo are rendered.
type GridModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// columns is the number of items per row, at least 1.
	columns int

	// rowHeight is the height of one rendered row in lines, at least 1.
	rowHeight int

	// selected is the selected item index (0-based).
	selected int

	// visibleFrom and visibleTo delimit the visible rows (to is exclusive).
	visibleFrom int
	visibleTo   int

	// height is the viewport height in lines.
	height int

	bufferRows int
}

// NewGridModel creates a grid.
// items: the complete list of items to display.
// columns: items per row.
// rowHeight: lines occupied by one rendered row.
// height: viewport height in lines.
func NewGridModel[T any](items []T, columns, rowHeight, height int, renderFunc RenderFunc[T]) *GridModel[T] {
	m := &GridModel[T]{
		items:      items,
		renderFunc: renderFunc,
		columns:    max(columns, 1),
		rowHeight:  max(rowHeight, 1),
		height:     height,
		bufferRows: defaultBufferRows,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *GridModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys. Window sizing is left to the owner, which
// knows how much of the screen the grid may use.
func (m *GridModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.handleKeyMsg(key)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *GridModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.move(-m.columns)
	case tea.KeyDown:
		m.move(m.columns)
	case tea.KeyLeft:
		m.move(-1)
	case tea.KeyRight:
		m.move(1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.pageRows()*m.columns)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.pageRows()*m.columns)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'k':
			m.move(-m.columns)
		case 'j':
			m.move(m.columns)
		case 'h':
			m.move(-1)
		case 'l':
			m.move(1)
		}
	default:
	}
}

// move shifts the selection by delta, ignoring moves that leave the grid.
func (m *GridModel[T]) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.items) {
		return
	}
	m.selected = next
	m.updateVisibleRange()
}

func (m *GridModel[T]) rowCount() int {
	return (len(m.items) + m.columns - 1) / m.columns
}

func (m *GridModel[T]) pageRows() int {
	return max(m.height/m.rowHeight, 1)
}

// updateVisibleRange scrolls the minimum amount needed to keep the selected
// row on screen.
func (m *GridModel[T]) updateVisibleRange() {
	rows := m.rowCount()
	if rows == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	page := m.pageRows()
	selRow := m.selected / m.columns

	from := m.visibleFrom
	if selRow < from {
		from = selRow
	}
	if selRow >= from+page {
		from = selRow - page + 1
	}
	if from+page > rows {
		from = max(rows-page, 0)
	}

	m.visibleFrom = from
	m.visibleTo = min(from+page, rows)
}

// View renders the visible rows.
func (m *GridModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	renderTo := min(m.visibleTo+m.bufferRows, m.rowCount())
	rows := make([]string, 0, renderTo-m.visibleFrom)
	for row := m.visibleFrom; row < renderTo; row++ {
		start := row * m.columns
		end := min(start+m.columns, len(m.items))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderFunc(m.items[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// SetItems replaces the items, keeping the selection in bounds.
func (m *GridModel[T]) SetItems(items []T) {
	m.items = items
	m.visibleFrom = 0
	m.SetSelected(m.selected)
}

// SetColumns changes the number of items per row.
func (m *GridModel[T]) SetColumns(columns int) {
	m.columns = max(columns, 1)
	m.visibleFrom = m.selected / m.columns
	m.updateVisibleRange()
}

// SetHeight changes the viewport height in lines.
func (m *GridModel[T]) SetHeight(height int) {
	m.height = height
	m.updateVisibleRange()
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *GridModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		m.updateVisibleRange()
		return
	}
	m.selected = min(max(index, 0), len(m.items)-1)
	m.updateVisibleRange()
}

// ItemCount returns the total number of items.
func (m *GridModel[T]) ItemCount() int {
	return len(m.items)
}

// Items returns the items in display order.
func (m *GridModel[T]) Items() []T {
	return m.items
}

// Columns returns the number of items per row.
func (m *GridModel[T]) Columns() int {
	return m.columns
}

// Selected returns the selected item index.
func (m *GridModel[T]) Selected() int {
	return m.selected
}

// VisibleFrom returns the first visible row (inclusive).
func (m *GridModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible row (exclusive).
func (m *GridModel[T]) VisibleTo() int {
	return m.visibleTo
}

// VisibleItems returns the items on visible rows.
func (m *GridModel[T]) VisibleItems() []T {
	start := m.visibleFrom * m.columns
	end := min(m.visibleTo*m.columns, len(m.items))
	if start >= end {
		return nil
	}
	return m.items[start:end]
}

// GetSelectedItem returns the selected item, or nil if the grid is empty.
func (m *GridModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
