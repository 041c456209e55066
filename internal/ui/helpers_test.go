package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"crm-dashboard/internal/config"
	"crm-dashboard/internal/crm"
)

// newLoadedModel returns a dashboard over the seeded store with every page
// loaded and a fixed window size.
func newLoadedModel(t *testing.T) Model {
	t.Helper()
	m := InitialModel(config.Default(), crm.NewSeededMock(0))
	m = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	for _, kind := range crm.Kinds() {
		m = update(t, m, m.loadCmd(kind)())
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

// updateCmd is update but also returns the produced command.
func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func names(p *page, field string) []string {
	out := make([]string, len(p.visible))
	for i, r := range p.visible {
		out[i], _ = r[field].(string)
	}
	return out
}

func (m Model) gotoPage(t *testing.T, kind crm.Kind) Model {
	t.Helper()
	for i, p := range m.pages {
		if p.kind == kind {
			m.active = i
			m.syncViewport()
			return m
		}
	}
	t.Fatalf("no page %s", kind)
	return m
}
