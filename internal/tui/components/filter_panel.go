package components

import (
	"strings"

	"github.com/Veraticus/product-catalog/internal/tui/themes"
	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FilterPanelModel renders the filters box: user tabs, the search field with
// its clear control, category buttons and the reset-all control.
type FilterPanelModel struct {
	theme  themes.Theme
	view   viewmodel.CatalogView
	search textinput.Model
	width  int
}

// NewFilterPanel creates a filter panel.
func NewFilterPanel(theme themes.Theme) FilterPanelModel {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "🔍 "
	// No limit; any query length is matched as typed.
	search.CharLimit = 0

	return FilterPanelModel{
		theme:  theme,
		search: search,
		width:  80,
	}
}

// SetView replaces the data the panel renders. The search field is synced
// to the view's query so external resets clear it.
func (m *FilterPanelModel) SetView(v viewmodel.CatalogView) {
	m.view = v
	if m.search.Value() != v.Query {
		m.search.SetValue(v.Query)
	}
}

// Focus gives the search field keyboard focus.
func (m *FilterPanelModel) Focus() tea.Cmd {
	return m.search.Focus()
}

// Blur removes keyboard focus from the search field.
func (m *FilterPanelModel) Blur() {
	m.search.Blur()
}

// Focused reports whether the search field has focus.
func (m FilterPanelModel) Focused() bool {
	return m.search.Focused()
}

// Value returns the current search field text.
func (m FilterPanelModel) Value() string {
	return m.search.Value()
}

// Resize sets the panel width.
func (m *FilterPanelModel) Resize(width int) {
	m.width = width
	m.search.Width = max(10, width-12)
}

// Update handles key presses while the search field is focused. Enter, Esc
// and Tab give focus back without touching the query. Callers read Value
// after every update.
func (m FilterPanelModel) Update(msg tea.Msg) (FilterPanelModel, tea.Cmd) {
	if !m.search.Focused() {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc", "tab":
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View renders the panel.
func (m FilterPanelModel) View() string {
	heading := m.theme.Bold.Render("Filters")

	userTabs := m.renderLinks(m.view.UserLinks, m.theme.TabActive, m.theme.Normal)

	searchLine := m.search.View()
	if m.view.ShowClearButton() {
		searchLine += "  " + m.theme.StatusError.Render("[x] clear (ctrl+x)")
	}

	categories := m.renderLinks(m.view.CategoryLinks, m.theme.ButtonAccent, m.theme.Button)

	reset := m.theme.Button.
		Foreground(m.theme.Link).
		Render("[ " + viewmodel.ResetAllLabel + " (ctrl+r) ]")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		userTabs,
		searchLine,
		categories,
		reset,
	)

	return m.theme.BorderedBox.Width(max(20, m.width-2)).Render(content)
}

func (m FilterPanelModel) renderLinks(links []viewmodel.LinkView, allStyle, style lipgloss.Style) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		if l.All {
			parts = append(parts, allStyle.Render(l.Label))
			continue
		}
		parts = append(parts, style.Render(l.Label))
	}
	return strings.Join(parts, " ")
}
