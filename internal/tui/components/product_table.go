package components

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/product-catalog/internal/tui/themes"
	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// userColumn is the index of the User column.
const userColumn = 3

// ProductTableModel renders the visible products. The bubbles table owns the
// cursor and key handling; drawing goes through lipgloss/table so the user
// cell can be colored per cell without escape codes being cut by width
// truncation.
type ProductTableModel struct {
	theme  themes.Theme
	view   viewmodel.CatalogView
	nav    table.Model
	width  int
	height int
}

// NewProductTable creates a product table.
func NewProductTable(theme themes.Theme) ProductTableModel {
	nav := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithColumns(navColumns()),
	)

	return ProductTableModel{
		theme:  theme,
		nav:    nav,
		width:  80,
		height: 14,
	}
}

// SetView replaces the rows shown by the table.
func (m *ProductTableModel) SetView(v viewmodel.CatalogView) {
	m.view = v

	rows := make([]table.Row, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = table.Row{strconv.Itoa(r.ID), r.Name, r.CategoryLabel, userText(r)}
	}
	m.nav.SetRows(rows)

	if m.nav.Cursor() >= len(v.Rows) {
		m.nav.SetCursor(max(0, len(v.Rows)-1))
	}
}

// Cursor returns the index of the highlighted row.
func (m ProductTableModel) Cursor() int {
	return m.nav.Cursor()
}

// SelectedRow returns the highlighted row, if any.
func (m ProductTableModel) SelectedRow() (viewmodel.ProductRowView, bool) {
	i := m.nav.Cursor()
	if i < 0 || i >= len(m.view.Rows) {
		return viewmodel.ProductRowView{}, false
	}
	return m.view.Rows[i], true
}

// Update handles navigation keys.
func (m ProductTableModel) Update(msg tea.Msg) (ProductTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, cmd
}

// Resize sets the table dimensions.
func (m *ProductTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.nav.SetHeight(m.pageSize())
}

// View renders the table, or the no-results message above an empty table.
func (m ProductTableModel) View() string {
	count := m.theme.Subtitle.Render(fmt.Sprintf("%d of %d products", m.view.VisibleCount(), m.view.TotalCount))

	if m.view.ShowNoMatching() {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.StatusWarning.Render(viewmodel.NoMatchingMessage),
			m.renderTable(),
			count,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTable(), count)
}

// pageSize is the number of rows that fit below the header, leaving a line
// for the product count.
func (m ProductTableModel) pageSize() int {
	return max(1, m.height-3)
}

// window returns the slice of rows to draw so the cursor stays visible.
func (m ProductTableModel) window() (start, end int) {
	n := len(m.view.Rows)
	size := m.pageSize()
	if n <= size {
		return 0, n
	}
	start = max(0, m.nav.Cursor()-size+1)
	return start, min(n, start+size)
}

func (m ProductTableModel) renderTable() string {
	start, end := m.window()
	rows := m.view.Rows[start:end]
	cursor := m.nav.Cursor()

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{strconv.Itoa(r.ID), r.Name, r.CategoryLabel, userText(r)}
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Width(max(40, m.width)).
		Headers(headers(m.view.Columns)...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == ltable.HeaderRow {
				return style.Bold(true)
			}
			if col == userColumn {
				if c, ok := m.userColor(rows[row]); ok {
					style = style.Foreground(c)
				}
			}
			if start+row == cursor {
				style = style.Inherit(m.theme.Selected)
			}
			return style
		})

	return t.Render()
}

// userColor returns the theme color for a row's user cell.
func (m ProductTableModel) userColor(r viewmodel.ProductRowView) (lipgloss.Color, bool) {
	if !r.HasUserCell() {
		return "", false
	}
	switch r.UserColor {
	case viewmodel.ColorLink:
		return m.theme.Link, true
	case viewmodel.ColorDanger:
		return m.theme.Danger, true
	default:
		return "", false
	}
}

func userText(r viewmodel.ProductRowView) string {
	if !r.HasUserCell() {
		return ""
	}
	return r.UserName
}

func headers(columns []viewmodel.ColumnView) []string {
	if len(columns) == 0 {
		columns = viewmodel.DefaultColumns()
	}
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Title + " " + sortGlyph(c.SortIcon)
	}
	return out
}

func navColumns() []table.Column {
	titles := headers(nil)
	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		cols[i] = table.Column{Title: title, Width: 12}
	}
	return cols
}

func sortGlyph(icon viewmodel.SortIcon) string {
	switch icon {
	case viewmodel.SortIconDown:
		return "▼"
	case viewmodel.SortIconUp:
		return "▲"
	default:
		return "↕"
	}
}
