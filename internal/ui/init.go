package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"crm-dashboard/internal/combobox"
	"crm-dashboard/internal/config"
	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/table"
)

func InitialModel(cfg config.Config, store crm.Store) Model {
	m := Model{
		mode:      modeBrowse,
		cfg:       cfg,
		store:     store,
		statusMsg: "Loading records…",
		tstyles:   table.DefaultStyles(),
		help:      help.New(),
	}

	filterCfg := FilterConfig{
		MinCoverage: 0.6, // stricter -> higher (e.g. 0.7)
		MaxSpread:   40,  // stricter -> lower (e.g. 25)
		MaxResults:  500,
	}

	leadSort := cfg.SortFor(crm.KindLeads)
	m.leadSort = &leadSort
	for i, kind := range crm.Kinds() {
		var p *page
		if kind == crm.KindLeads {
			p = newPage(kind, table.Descriptor{}, m.leadSort, filterCfg)
		} else {
			p = newPage(kind, cfg.SortFor(kind), nil, filterCfg)
		}
		p.loading = true
		m.pages = append(m.pages, p)
		if string(kind) == cfg.StartPage {
			m.active = i
		}
	}

	// search
	si := textinput.New()
	si.Placeholder = "Search…"
	si.CharLimit = 120
	si.Width = 40
	m.search.input = si

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle
	m.spinner = sp

	// viewport
	m.viewport = viewport.New(80, 20) // resized on WindowSizeMsg

	return m
}

func newStatusBox(placeholder, unset string) combobox.Model {
	opts := make([]combobox.Option, len(crm.LeadStatuses))
	for i, s := range crm.LeadStatuses {
		opts[i] = combobox.Option{Value: s, Label: s}
	}
	return combobox.New(combobox.Config{
		Options:     opts,
		Placeholder: placeholder,
		UnsetLabel:  unset,
		EmptyText:   "No statuses configured.",
	})
}

func newVendorBox() combobox.Model {
	return combobox.New(combobox.Config{
		Placeholder: "Select a vendor",
		UnsetLabel:  "No vendor",
		EmptyText:   "No vendors yet. Add one on the vendors page.",
		LoadingText: "Loading vendors…",
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for _, p := range m.pages {
		cmds = append(cmds, m.loadCmd(p.kind))
	}
	return tea.Batch(cmds...)
}

func (m Model) activePage() *page {
	if m.active < 0 || m.active >= len(m.pages) {
		return nil
	}
	return m.pages[m.active]
}

func (m Model) pageFor(kind crm.Kind) *page {
	for _, p := range m.pages {
		if p.kind == kind {
			return p
		}
	}
	return nil
}
