package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultCellWidth = 16
	cellGap          = " "
)

// Styles controls how headers and rows are drawn.
type Styles struct {
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Indicator    lipgloss.Style
	Cell         lipgloss.Style
	Selected     lipgloss.Style
}

// DefaultStyles returns the dashboard palette.
func DefaultStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		HeaderActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8942E1")),
		Indicator:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cell:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:     lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#2A2B3D")),
	}
}

func fit(style lipgloss.Style, s string, w int) string {
	return style.Width(w).MaxWidth(w).Inline(true).Render(s)
}

// HeaderCell renders a single header. Sortable columns carry the glyph of
// their indicator; plain headers carry none.
func HeaderCell(col Column, s Sorter, st Styles) string {
	w := cellWidth(col)
	if !col.Sortable() || s == nil {
		return fit(st.Header, col.Title, w)
	}
	ind := s.Indicator(col.Key)
	style := st.Header
	if ind != Neutral {
		style = st.HeaderActive
	}
	glyph := st.Indicator.Render(ind.Glyph())
	if ind != Neutral {
		glyph = st.HeaderActive.Render(ind.Glyph())
	}
	title := col.Title
	room := w - lipgloss.Width(ind.Glyph()) - 1
	if room < 0 {
		room = 0
	}
	if lipgloss.Width(title) > room {
		title = fit(lipgloss.NewStyle(), title, room)
	}
	return fit(style, title+" "+glyph, w)
}

// RenderHeader renders the header row of cols.
func RenderHeader(cols []Column, s Sorter, st Styles) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = HeaderCell(c, s, st)
	}
	return strings.Join(cells, cellGap)
}

// RenderRow renders one record. stringify may be nil.
func RenderRow(cols []Column, r Record, stringify Stringifier, style lipgloss.Style) string {
	if stringify == nil {
		stringify = DefaultStringifier
	}
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = fit(style, stringify(r[c.Key]), cellWidth(c))
	}
	return strings.Join(cells, cellGap)
}

// RenderRows renders the body, highlighting the row at cursor (-1 for none).
func RenderRows(cols []Column, records []Record, cursor int, stringify Stringifier, st Styles) string {
	lines := make([]string, len(records))
	for i, r := range records {
		style := st.Cell
		if i == cursor {
			style = st.Selected
		}
		lines[i] = RenderRow(cols, r, stringify, style)
	}
	return strings.Join(lines, "\n")
}

// Width returns the total rendered width of a row of cols.
func Width(cols []Column) int {
	if len(cols) == 0 {
		return 0
	}
	w := 0
	for _, c := range cols {
		w += cellWidth(c)
	}
	return w + (len(cols)-1)*len(cellGap)
}
