package tui

import "github.com/charmbracelet/lipgloss"

// Colour palette (ANSI 256).
const (
	colorAccent  = lipgloss.Color("57")
	colorHilite  = lipgloss.Color("229")
	colorBorder  = lipgloss.Color("240")
	colorMuted   = lipgloss.Color("245")
	colorWarning = lipgloss.Color("214")
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("42")
)

// Shared styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorHilite).
				Background(colorAccent)

	FooterStyle = lipgloss.NewStyle().Foreground(colorMuted)

	TitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

// Named cell styles returned by CellHooks.Style.
const (
	StyleMuted   = "muted"
	StyleWarning = "warning"
	StyleError   = "error"
	StyleSuccess = "success"
	StyleBold    = "bold"
)

//nolint:gochecknoglobals // Immutable style lookup.
var cellStyles = map[string]lipgloss.Style{
	StyleMuted:   lipgloss.NewStyle().Foreground(colorMuted),
	StyleWarning: lipgloss.NewStyle().Foreground(colorWarning),
	StyleError:   lipgloss.NewStyle().Foreground(colorError),
	StyleSuccess: lipgloss.NewStyle().Foreground(colorSuccess),
	StyleBold:    lipgloss.NewStyle().Bold(true),
}

// CellStyle returns the lipgloss style registered under name, or an empty
// style for unknown names.
func CellStyle(name string) lipgloss.Style {
	if s, ok := cellStyles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// sortIndicator marks the active sort column in headers.
func sortIndicator(asc bool) string {
	if asc {
		return "▲"
	}
	return "▼"
}
