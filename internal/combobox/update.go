package combobox

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ChangeMsg is emitted after a commit so the owning model can react.
type ChangeMsg struct {
	ID     int
	Change Change
}

// KeyMap lists the bindings of an open or focused dropdown.
type KeyMap struct {
	Open   key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Commit key.Binding
}

// DefaultKeyMap is used by Update.
var DefaultKeyMap = KeyMap{
	Open:   key.NewBinding(key.WithKeys("enter", " ", "down"), key.WithHelp("enter", "open")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
	Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
}

// StartLoading puts the dropdown into the loading state and returns the
// spinner tick that animates it.
func (m *Model) StartLoading() tea.Cmd {
	m.SetLoading(true)
	return m.spinner.Tick
}

func (m Model) changeCmd(c Change) tea.Cmd {
	id := m.id
	return func() tea.Msg { return ChangeMsg{ID: id, Change: c} }
}

// Update handles key presses for a focused dropdown and drives the loading
// spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.Interactive() {
			return m, nil
		}
		if !m.open {
			if key.Matches(msg, DefaultKeyMap.Open) {
				m.Open()
				return m, textinput.Blink
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, DefaultKeyMap.Close):
			m.Close()
			return m, nil
		case key.Matches(msg, DefaultKeyMap.Up):
			m.MoveCursor(-1)
			return m, nil
		case key.Matches(msg, DefaultKeyMap.Down):
			m.MoveCursor(1)
			return m, nil
		case key.Matches(msg, DefaultKeyMap.Commit):
			rows := m.Presented()
			c := m.Commit(rows[m.cursor].Value)
			return m, m.changeCmd(c)
		}
		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.cursor, m.offset = 0, 0
		}
		return m, cmd
	}
	return m, nil
}

// ClickAt handles a mouse click at line y of the rendered view, counted
// from the trigger line. Clicking the trigger toggles the list; clicking a
// row commits it.
func (m Model) ClickAt(y int) (Model, tea.Cmd) {
	if !m.Interactive() {
		return m, nil
	}
	if y == 0 {
		m.Toggle()
		return m, nil
	}
	row, ok := m.RowAt(y)
	if !ok {
		return m, nil
	}
	c := m.Commit(m.Presented()[row].Value)
	return m, m.changeCmd(c)
}

// RowAt maps line y of the rendered view to an index of the presented
// list.
func (m Model) RowAt(y int) (int, bool) {
	if !m.open {
		return 0, false
	}
	// trigger, filter input
	i := y - 2 + m.offset
	if y < 2 || i >= len(m.Presented()) || i >= m.offset+m.maxVisible {
		return 0, false
	}
	return i, true
}
