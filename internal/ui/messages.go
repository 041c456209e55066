package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"crm-dashboard/internal/combobox"
	"crm-dashboard/internal/crm"
)

const storeTimeout = 10 * time.Second

// ---------- Messages / Cmds ----------
type loadedMsg struct {
	kind    crm.Kind
	records []crm.Entity
	err     error
}

type vendorOptionsMsg struct {
	options []combobox.Option
	err     error
}

type assignedMsg struct {
	asset crm.Asset
	err   error
}

type leadStatusMsg struct {
	lead crm.Lead
	err  error
}

func (m Model) loadCmd(kind crm.Kind) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		list, err := store.List(ctx, kind)
		return loadedMsg{kind: kind, records: list, err: err}
	}
}

func (m Model) vendorOptionsCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		list, err := store.List(ctx, crm.KindVendors)
		if err != nil {
			return vendorOptionsMsg{err: err}
		}
		opts := make([]combobox.Option, len(list))
		for i, v := range list {
			opts[i] = combobox.Option{Value: v.Key(), Label: v.Label()}
		}
		return vendorOptionsMsg{options: opts}
	}
}

func (m Model) assignCmd(assetID, vendorID string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		a, err := store.AssignVendor(ctx, assetID, vendorID)
		return assignedMsg{asset: a, err: err}
	}
}

func (m Model) setLeadStatusCmd(leadID, status string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		l, err := store.SetLeadStatus(ctx, leadID, status)
		return leadStatusMsg{lead: l, err: err}
	}
}
