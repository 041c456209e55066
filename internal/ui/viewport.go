package ui

import "crm-dashboard/internal/table"

// scrollMargin is the number of rows kept between the cursor and the edge
// of the table body; small windows use 1.
const scrollMargin = 3

func (m *Model) moveCursor(delta int) {
	p := m.activePage()
	if p == nil {
		return
	}
	p.moveCursor(delta)
	m.syncViewport()
}

// syncViewport re-renders the active page body into the viewport and keeps
// the cursor row visible.
func (m *Model) syncViewport() {
	p := m.activePage()
	if p == nil {
		return
	}
	m.viewport.SetContent(table.RenderRows(p.columns, p.visible, p.cursor, table.DefaultStringifier, m.tstyles))
	m.scrollToRow(p.cursor)
}

// scrollToRow moves the viewport so row stays inside the body with a
// margin above and below it.
func (m *Model) scrollToRow(row int) {
	margin := scrollMargin
	if m.viewport.Height < 8 {
		margin = 1
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	switch {
	case row < top+margin:
		m.viewport.SetYOffset(max(0, row-margin))
	case row > bottom-margin:
		m.viewport.SetYOffset(max(0, row-m.viewport.Height+margin+1))
	}
}
