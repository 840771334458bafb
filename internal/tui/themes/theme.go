// Package themes defines the visual styles of the catalog TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	Button        lipgloss.Style
	ButtonAccent  lipgloss.Style
	TabActive     lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Link          lipgloss.Color
	Danger        lipgloss.Color
	Success       lipgloss.Color
	Info          lipgloss.Color
}

// Names lists the registered theme names.
var Names = []string{"default", "catppuccin-mocha"}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#7c3aed",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	border:     "#404040",
	muted:      "#737373",
	link:       "#3b82f6",
	danger:     "#ef4444",
	success:    "#10b981",
	info:       "#3b82f6",
	warning:    "#f59e0b",
	selectedFg: "#fafafa",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	border:     "#45475a",
	muted:      "#6c7086",
	link:       "#89b4fa",
	danger:     "#f38ba8",
	success:    "#a6e3a1",
	info:       "#89dceb",
	warning:    "#f9e2af",
	selectedFg: "#1e1e2e",
})

type palette struct {
	primary    string
	foreground string
	subtle     string
	border     string
	muted      string
	link       string
	danger     string
	success    string
	info       string
	warning    string
	selectedFg string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)

	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Foreground: fg,
		Border:     lipgloss.Color(p.border),
		Muted:      lipgloss.Color(p.muted),
		Link:       lipgloss.Color(p.link),
		Danger:     lipgloss.Color(p.danger),
		Success:    lipgloss.Color(p.success),
		Info:       lipgloss.Color(p.info),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.selectedFg)).
			Bold(true),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Padding(0, 1),
		ButtonAccent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(fg),

		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// IsKnown reports whether name is a registered theme.
func IsKnown(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}
