package table

// Column describes one table column. A column without a Key, or one marked
// Unsortable, renders as a plain header and never requests a sort.
type Column struct {
	Key        string
	Title      string
	Width      int
	Unsortable bool
}

// Sortable reports whether activating the header should sort.
func (c Column) Sortable() bool { return c.Key != "" && !c.Unsortable }

// Activate is what happens when a header is clicked.
func Activate(col Column, s Sorter) {
	if s == nil || !col.Sortable() {
		return
	}
	s.RequestSort(col.Key)
}

// ColumnAt returns the column under horizontal offset x of a header row
// rendered by RenderHeader.
func ColumnAt(cols []Column, x int) (Column, bool) {
	if x < 0 {
		return Column{}, false
	}
	pos := 0
	for _, c := range cols {
		w := cellWidth(c)
		if x < pos+w {
			return c, true
		}
		pos += w + len(cellGap)
		if x < pos {
			// on the gap between two cells
			return Column{}, false
		}
	}
	return Column{}, false
}

// ActivateAt activates the column under x, if any.
func ActivateAt(cols []Column, x int, s Sorter) bool {
	col, ok := ColumnAt(cols, x)
	if !ok || !col.Sortable() {
		return false
	}
	Activate(col, s)
	return true
}

func cellWidth(c Column) int {
	if c.Width > 0 {
		return c.Width
	}
	return defaultCellWidth
}
