package ui

import (
	"fmt"
	"strings"

	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/table"
)

// ---------- View ----------
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	switch m.mode {
	case modeAssign:
		b.WriteString(m.viewAssign())
	case modeStatusFilter, modeStatusSet:
		b.WriteString(m.viewStatus())
	default:
		b.WriteString(m.viewPage())
	}
	return b.String()
}

// viewHeader renders the title, the divider and the tab bar.
func (m Model) viewHeader() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("crmdash") + "\n")
	w := m.width
	if w <= 0 {
		w = 80
	}
	b.WriteString(dividerStyle.Render(strings.Repeat("─", w)) + "\n")

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		label := p.kind.Title()
		if i == m.active {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	return b.String()
}

func (m Model) viewPage() string {
	p := m.activePage()
	if p == nil {
		return subtleStyle.Render("No pages.") + "\n"
	}
	var b strings.Builder
	b.WriteString(m.viewInfo(p) + "\n")
	b.WriteString(table.RenderHeader(p.columns, p.sorter, m.tstyles) + "\n")

	switch {
	case p.err != nil && len(p.records) == 0:
		b.WriteString(errorStyle.Render("⚠ "+p.err.Error()) + "\n")
	case p.loading && len(p.records) == 0:
		b.WriteString(m.spinner.View() + " Loading " + string(p.kind) + "…\n")
	case len(p.visible) == 0:
		b.WriteString(subtleStyle.Render(emptyText(p)) + "\n")
	default:
		b.WriteString(m.viewport.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter(p))
	return b.String()
}

// viewInfo is the line above the table: the search input while searching,
// otherwise counts, the sort state and active filters.
func (m Model) viewInfo(p *page) string {
	if m.mode == modeSearch {
		return m.search.input.View()
	}
	parts := []string{
		fmt.Sprintf("%d/%d", len(p.visible), len(p.records)),
		"sort: " + describeSort(p),
	}
	if p.sorter.Controlled() {
		parts[1] += " (saved)"
	}
	if p.query != "" {
		parts = append(parts, fmt.Sprintf("search: %q", p.query))
	}
	if p.statusFilter != "" {
		parts = append(parts, "status: "+p.statusFilter)
	}
	line := subtleStyle.Render(strings.Join(parts, " · "))
	if p.loading && len(p.records) > 0 {
		line += " " + m.spinner.View()
	}
	return line
}

func emptyText(p *page) string {
	if len(p.records) == 0 {
		return "No " + string(p.kind) + " yet."
	}
	return "No " + string(p.kind) + " match the current filters."
}

func (m Model) viewFooter(p *page) string {
	status := m.statusMsg
	if p != nil && p.err != nil {
		status = errorStyle.Render(status)
	}
	return renderFooter(status, m.help.ShortHelpView(keys.bindingsFor(p)))
}

func (m Model) viewAssign() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Assign vendor to "+m.assign.assetLabel) + "\n")
	b.WriteString(m.assign.box.View() + "\n")
	if m.assign.err != nil {
		b.WriteString(errorStyle.Render(m.assign.err.Error()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderFooter(m.statusMsg, "enter: open/select • ↑/↓: move • type to filter • esc: close/cancel"))
	return b.String()
}

func (m Model) viewStatus() string {
	title := "Filter leads by status"
	if m.mode == modeStatusSet {
		title = "Set lead status"
		if p := m.pageFor(crm.KindLeads); p != nil {
			if r, ok := p.selected(); ok {
				title += " of " + fmt.Sprint(r["name"])
			}
		}
	}
	var b strings.Builder
	b.WriteString(formTitleStyle.Render(title) + "\n")
	b.WriteString(m.status.box.View() + "\n\n")
	b.WriteString(renderFooter(m.statusMsg, "enter: open/select • ↑/↓: move • type to filter • esc: close/cancel"))
	return b.String()
}
