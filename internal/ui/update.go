package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"crm-dashboard/internal/combobox"
	"crm-dashboard/internal/infra/logx"
	"crm-dashboard/internal/table"
)

// Screen rows used to map mouse events back onto widgets.
const (
	headerRowY  = 4 // table header in browse mode
	bodyTopY    = 5 // first table row
	formBoxY    = 4 // dropdown trigger in form modes
	chromeLines = 8 // rows around the table body
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeLines)
		m.help.Width = msg.Width
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		m.assign.box, cmd = m.assign.box.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case loadedMsg:
		p := m.pageFor(msg.kind)
		if p == nil {
			return m, nil
		}
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			logx.Errorf("ui: load %s: %v", msg.kind, msg.err)
			m.statusMsg = fmt.Sprintf("Loading %s failed: %v", msg.kind.Title(), msg.err)
			return m, nil
		}
		p.setRecords(msg.records)
		m.statusMsg = fmt.Sprintf("%d %s loaded.", len(msg.records), msg.kind)
		m.syncViewport()
		return m, nil

	case vendorOptionsMsg:
		return m.handleVendorOptions(msg)

	case assignedMsg:
		return m.handleAssigned(msg)

	case leadStatusMsg:
		return m.handleLeadStatus(msg)

	case combobox.ChangeMsg:
		return m.handleChange(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.handleSearchKey(msg)
		case modeAssign, modeStatusFilter, modeStatusSet:
			return m.handleFormKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.mode == modeBrowse {
			m.moveCursor(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.mode == modeBrowse {
			m.moveCursor(1)
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.mode {
	case modeAssign:
		var cmd tea.Cmd
		m.assign.box, cmd = m.assign.box.ClickAt(msg.Y - formBoxY)
		return m, cmd
	case modeStatusFilter, modeStatusSet:
		var cmd tea.Cmd
		m.status.box, cmd = m.status.box.ClickAt(msg.Y - formBoxY)
		return m, cmd
	case modeBrowse:
		p := m.activePage()
		if p == nil {
			return m, nil
		}
		if msg.Y == headerRowY {
			table.ActivateAt(p.columns, msg.X, p.sorter)
			m.syncViewport()
			return m, nil
		}
		if row := msg.Y - bodyTopY + m.viewport.YOffset; msg.Y >= bodyTopY && row < len(p.visible) {
			p.cursor = row
			m.syncViewport()
		}
	}
	return m, nil
}
