package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"crm-dashboard/internal/combobox"
	"crm-dashboard/internal/config"
	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/table"
)

// --- Model / State ---
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeAssign       // vendor dropdown for the highlighted asset
	modeStatusFilter // lead status filter dropdown
	modeStatusSet    // lead status dropdown for the highlighted lead
)

type SearchState struct {
	input textinput.Model
}

// AssignForm is the "assign vendor" form of the assets page.
type AssignForm struct {
	assetID    string
	assetLabel string
	box        combobox.Model
	err        error
}

// StatusForm drives the lead status dropdown in both of its uses.
type StatusForm struct {
	leadID string
	box    combobox.Model
}

type Model struct {
	mode          mode
	cfg           config.Config
	store         crm.Store
	statusMsg     string
	width, height int

	pages  []*page
	active int

	// leadSort is owned by the dashboard; the leads page controller only
	// reads it.
	leadSort *table.Descriptor

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	tstyles  table.Styles

	search SearchState
	assign AssignForm
	status StatusForm
}
