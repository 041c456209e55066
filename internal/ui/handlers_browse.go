package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/table"
)

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activePage()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextPage):
		m.switchPage(1)
		return m, nil
	case key.Matches(msg, keys.PrevPage):
		m.switchPage(-1)
		return m, nil
	}
	if p == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, keys.Sort):
		n := int(msg.String()[0] - '0')
		if !p.sortColumn(n) {
			m.statusMsg = fmt.Sprintf("Column %d is not sortable.", n)
			return m, nil
		}
		m.statusMsg = "Sorted by " + describeSort(p)
		m.syncViewport()
	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.search.input.SetValue(p.query)
		m.search.input.CursorEnd()
		m.search.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Clear):
		p.query = ""
		p.statusFilter = ""
		p.refresh()
		m.statusMsg = "Filters cleared."
		m.syncViewport()
	case key.Matches(msg, keys.Reload):
		p.loading = true
		m.statusMsg = fmt.Sprintf("Reloading %s…", p.kind)
		return m, m.loadCmd(p.kind)
	case p.kind == crm.KindAssets && key.Matches(msg, keys.Assign):
		return m.openAssign(p)
	case p.kind == crm.KindLeads && key.Matches(msg, keys.Filter):
		return m.openStatusFilter(p)
	case p.kind == crm.KindLeads && key.Matches(msg, keys.SetStatus):
		return m.openStatusSet(p)
	}
	return m, nil
}

func (m *Model) switchPage(delta int) {
	n := len(m.pages)
	if n == 0 {
		return
	}
	m.active = (m.active + delta + n) % n
	m.viewport.SetYOffset(0)
	m.syncViewport()
	if p := m.activePage(); p != nil {
		m.statusMsg = p.kind.Title()
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activePage()
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeBrowse
		m.search.input.Blur()
		if p != nil {
			p.query = ""
			p.refresh()
			m.syncViewport()
		}
		return m, nil
	case "enter":
		m.mode = modeBrowse
		m.search.input.Blur()
		if p != nil {
			m.statusMsg = fmt.Sprintf("%d of %d %s match %q.", len(p.visible), len(p.records), p.kind, p.query)
		}
		return m, nil
	case "up", "down":
		if msg.String() == "up" {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if p != nil && p.query != m.search.input.Value() {
		p.query = m.search.input.Value()
		p.refresh()
		m.syncViewport()
	}
	return m, cmd
}

// describeSort renders the sort state of a page for the status line.
func describeSort(p *page) string {
	d := p.sorter.Descriptor()
	if !d.IsSet() {
		return "source order"
	}
	title := d.Key
	for _, c := range p.columns {
		if c.Key == d.Key {
			title = c.Title
			break
		}
	}
	arrow := table.AscendingActive.Glyph()
	if d.Direction == table.Descending {
		arrow = table.DescendingActive.Glyph()
	}
	return title + " " + arrow
}
