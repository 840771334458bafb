package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Product Categories"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading fixtures..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderError renders a load failure.
func (m Model) renderError() string {
	msg := "unknown error"
	if m.lastError != nil {
		msg = m.lastError.Error()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("Could not load the catalog"),
		"",
		m.theme.Normal.Render(viewmodel.SanitizeForDisplay(msg)),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Width(min(70, max(20, m.width-4))).Render(content),
	)
}

// renderCatalog renders the filter panel above the product table.
func (m Model) renderCatalog() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Product Categories"),
		m.filters.View(),
		m.products.View(),
	)

	return m.wrapWithStatusBar(content)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Product Categories - Help")

	m.help.ShowAll = true
	body := m.help.View(m.keymap)

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			MaxHeight(max(5, m.height-2)).
			Render(lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer)),
	)
}

// wrapWithStatusBar appends the status bar to content.
func (m Model) wrapWithStatusBar(content string) string {
	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.modeLabel())

	var center string
	if q := m.view.Query; q != "" {
		center = fmt.Sprintf("Search: %q", viewmodel.TruncateString(q, 30))
	}

	hints := make([]string, 0, 6)
	for _, kb := range viewmodel.ActiveKeyBindings(m.keyBindings()) {
		hints = append(hints, fmt.Sprintf("[%s] %s", kb.Key, kb.Description))
	}
	right := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.theme.Normal.Render(center), "  ", right)
}

// modeLabel names the current state for the status bar.
func (m Model) modeLabel() string {
	switch m.state {
	case viewmodel.StateSearching:
		return "Search"
	default:
		return "Browse"
	}
}

// keyBindings lists the status bar hints; the clear hint follows the clear
// control's visibility.
func (m Model) keyBindings() []viewmodel.KeyBinding {
	searching := m.state == viewmodel.StateSearching
	return []viewmodel.KeyBinding{
		{Key: "/", Description: "Search", IsActive: !searching},
		{Key: "Enter", Description: "Done", IsActive: searching},
		{Key: "Ctrl+X", Description: "Clear", IsActive: m.view.ShowClearButton()},
		{Key: "Ctrl+R", Description: "Reset", IsActive: true},
		{Key: "?", Description: "Help", IsActive: !searching},
		{Key: "q", Description: "Quit", IsActive: !searching},
	}
}
