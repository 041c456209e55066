package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"crm-dashboard/internal/combobox"
	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/infra/logx"
)

// openAssign starts the "assign vendor" form for the highlighted asset. The
// dropdown stays in its loading state until the vendor list arrives.
func (m Model) openAssign(p *page) (tea.Model, tea.Cmd) {
	r, ok := p.selected()
	if !ok {
		m.statusMsg = "No asset selected."
		return m, nil
	}
	m.mode = modeAssign
	m.assign = AssignForm{
		assetID:    fmt.Sprint(r["id"]),
		assetLabel: fmt.Sprintf("%v %v", r["tag"], r["name"]),
		box:        newVendorBox(),
	}
	if v, _ := r["vendor_id"].(string); v != "" {
		m.assign.box.SetValue(v)
	}
	tick := m.assign.box.StartLoading()
	return m, tea.Batch(tick, m.vendorOptionsCmd())
}

func (m Model) handleVendorOptions(msg vendorOptionsMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeAssign {
		return m, nil
	}
	m.assign.box.SetLoading(false)
	if msg.err != nil {
		m.assign.err = msg.err
		m.statusMsg = "Loading vendors failed: " + msg.err.Error()
		return m, nil
	}
	m.assign.box.SetOptions(msg.options)
	m.assign.box.Open()
	return m, textinput.Blink
}

func (m Model) openStatusFilter(p *page) (tea.Model, tea.Cmd) {
	m.mode = modeStatusFilter
	m.status = StatusForm{box: newStatusBox("All statuses", "Any status")}
	if p.statusFilter != "" {
		m.status.box.SetValue(p.statusFilter)
	}
	m.status.box.Open()
	return m, textinput.Blink
}

func (m Model) openStatusSet(p *page) (tea.Model, tea.Cmd) {
	r, ok := p.selected()
	if !ok {
		m.statusMsg = "No lead selected."
		return m, nil
	}
	m.mode = modeStatusSet
	m.status = StatusForm{
		leadID: fmt.Sprint(r["id"]),
		box:    newStatusBox("Choose a status", "(none)"),
	}
	if s, _ := r["status"].(string); s != "" {
		m.status.box.SetValue(s)
	}
	m.status.box.Open()
	return m, textinput.Blink
}

// handleFormKey forwards keys to the dropdown of the open form. Esc on a
// closed dropdown leaves the form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := &m.status.box
	if m.mode == modeAssign {
		box = &m.assign.box
	}
	if msg.String() == "esc" && !box.IsOpen() {
		m.mode = modeBrowse
		m.statusMsg = "Cancelled."
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	*box, cmd = box.Update(msg)
	return m, cmd
}

func (m Model) handleChange(msg combobox.ChangeMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.mode == modeAssign && msg.ID == m.assign.box.ID():
		return m.commitAssign(msg.Change)
	case m.mode == modeStatusFilter && msg.ID == m.status.box.ID():
		return m.commitStatusFilter(msg.Change)
	case m.mode == modeStatusSet && msg.ID == m.status.box.ID():
		return m.commitStatusSet(msg.Change)
	}
	logx.Debugf("ui: stale dropdown change %d ignored", msg.ID)
	return m, nil
}

func (m Model) commitAssign(c combobox.Change) (tea.Model, tea.Cmd) {
	m.assign.box.Apply(c)
	m.mode = modeBrowse
	switch {
	case c.Cleared:
		m.statusMsg = "Vendor cleared from " + m.assign.assetLabel + "…"
	case c.Blank():
		m.statusMsg = "No vendor for " + m.assign.assetLabel + "…"
	default:
		m.statusMsg = "Assigning vendor to " + m.assign.assetLabel + "…"
	}
	// both the cleared and the blank outcome unassign
	return m, m.assignCmd(m.assign.assetID, c.Value)
}

func (m Model) handleAssigned(msg assignedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = "Assign failed: " + msg.err.Error()
		return m, nil
	}
	if msg.asset.VendorName == "" {
		m.statusMsg = "Unassigned " + msg.asset.Label() + "."
	} else {
		m.statusMsg = fmt.Sprintf("Assigned %s to %s.", msg.asset.VendorName, msg.asset.Label())
	}
	if p := m.pageFor(crm.KindAssets); p != nil {
		p.loading = true
	}
	return m, m.loadCmd(crm.KindAssets)
}

func (m Model) commitStatusFilter(c combobox.Change) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	p := m.pageFor(crm.KindLeads)
	if p == nil {
		return m, nil
	}
	// explicit blank and cleared both mean "every lead"
	p.statusFilter = c.Value
	p.refresh()
	if p.statusFilter == "" {
		m.statusMsg = "Showing leads of any status."
	} else {
		m.statusMsg = fmt.Sprintf("Showing %s leads.", p.statusFilter)
	}
	m.syncViewport()
	return m, nil
}

func (m Model) commitStatusSet(c combobox.Change) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	switch {
	case c.Cleared:
		m.statusMsg = "Status unchanged."
		return m, nil
	case c.Blank():
		m.statusMsg = "A lead needs a status."
		return m, nil
	}
	m.statusMsg = "Updating status…"
	return m, m.setLeadStatusCmd(m.status.leadID, c.Value)
}

func (m Model) handleLeadStatus(msg leadStatusMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.statusMsg = "Status update failed: " + msg.err.Error()
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("%s is now %s.", msg.lead.Name, msg.lead.Status)
	if p := m.pageFor(crm.KindLeads); p != nil {
		p.loading = true
	}
	return m, m.loadCmd(crm.KindLeads)
}
