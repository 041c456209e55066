package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- UI Styles ---
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#8942E1"))
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	warnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AC4BA"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#8942E1")).
			Padding(0, 1)
)

// renderFooter creates a consistent footer across all views
// statusLine: optional status information (shown in subtleStyle)
// helpLines: help text lines (shown in helpStyle)
func renderFooter(statusLine string, helpLines ...string) string {
	var b strings.Builder

	if statusLine != "" {
		b.WriteString(subtleStyle.Render(statusLine) + "\n")
	}

	for _, line := range helpLines {
		b.WriteString(helpStyle.Render(line) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
