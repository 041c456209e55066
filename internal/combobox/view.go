package combobox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the trigger and the option rows.
type Styles struct {
	Trigger     lipgloss.Style
	Disabled    lipgloss.Style
	Placeholder lipgloss.Style
	Row         lipgloss.Style
	Highlight   lipgloss.Style
	Check       lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles matches the dashboard palette.
func DefaultStyles() Styles {
	return Styles{
		Trigger:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("252")),
		Disabled:    lipgloss.NewStyle().Faint(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#8942E1")),
		Check:       lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Empty:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
	}
}

// TriggerText is the text of the closed control: the loading text while
// loading, else the label of the selected option, else the placeholder.
func (m Model) TriggerText() string {
	if m.loading {
		return m.loadingText
	}
	if m.hasValue {
		if l, ok := labelFor(m.options, m.value); ok {
			return l
		}
	}
	return m.placeholder
}

func (m Model) viewTrigger() string {
	text := m.TriggerText()
	if m.loading {
		text = m.spinner.View() + " " + text
	}
	arrow := "▾"
	if m.open {
		arrow = "▴"
	}
	line := text + " " + arrow
	if !m.Interactive() {
		return m.Styles.Disabled.Render(line)
	}
	if _, ok := labelFor(m.options, m.value); !m.hasValue || !ok {
		return m.Styles.Placeholder.Render(line)
	}
	return m.Styles.Trigger.Render(line)
}

// View renders the trigger and, when open, the filter and option rows.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTrigger())
	if !m.open {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(m.filter.View())

	rows := m.Presented()
	end := min(m.offset+m.maxVisible, len(rows))
	for i := m.offset; i < end; i++ {
		o := rows[i]
		check := "  "
		if m.hasValue && o.Value == m.value {
			check = m.Styles.Check.Render("✓") + " "
		}
		line := check + o.Label
		if i == m.cursor {
			line = m.Styles.Highlight.Render("▶ " + line)
		} else {
			line = m.Styles.Row.Render("  " + line)
		}
		b.WriteString("\n" + line)
	}
	if len(m.options) == 0 {
		b.WriteString("\n" + m.Styles.Empty.Render(m.emptyText))
	}
	return b.String()
}
