package combobox

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// Config holds the caller-provided options and display texts.
type Config struct {
	Options     []Option
	Placeholder string
	UnsetLabel  string
	EmptyText   string
	LoadingText string
	// MaxVisible caps the number of rows drawn at once; 0 means 8.
	MaxVisible int
	// OnValueChange, when set, is called synchronously on every commit.
	OnValueChange func(Change)
}

// Model is the dropdown state. The selected value belongs to the caller:
// Commit reports a Change and the caller answers with SetValue or
// ClearValue.
type Model struct {
	id int

	options  []Option
	value    string
	hasValue bool

	open     bool
	cursor   int
	offset   int
	loading  bool
	disabled bool

	filter  textinput.Model
	spinner spinner.Model

	placeholder string
	unsetLabel  string
	emptyText   string
	loadingText string
	maxVisible  int
	onChange    func(Change)

	Styles Styles
}

// New creates a closed dropdown with no value.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Search…"
	ti.Prompt = "/ "
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		id:          nextID(),
		options:     cfg.Options,
		filter:      ti,
		spinner:     sp,
		placeholder: cfg.Placeholder,
		unsetLabel:  cfg.UnsetLabel,
		emptyText:   cfg.EmptyText,
		loadingText: cfg.LoadingText,
		maxVisible:  cfg.MaxVisible,
		onChange:    cfg.OnValueChange,
		Styles:      DefaultStyles(),
	}
	if m.placeholder == "" {
		m.placeholder = "Select…"
	}
	if m.unsetLabel == "" {
		m.unsetLabel = "None"
	}
	if m.emptyText == "" {
		m.emptyText = "No options available."
	}
	if m.loadingText == "" {
		m.loadingText = "Loading…"
	}
	if m.maxVisible <= 0 {
		m.maxVisible = 8
	}
	return m
}

// ID identifies the dropdown in ChangeMsg.
func (m Model) ID() int { return m.id }

// Value returns the current value and whether one is set.
func (m Model) Value() (string, bool) { return m.value, m.hasValue }

// SetValue sets the current value.
func (m *Model) SetValue(v string) { m.value, m.hasValue = v, true }

// ClearValue drops the current value.
func (m *Model) ClearValue() { m.value, m.hasValue = "", false }

// Apply updates the value the way a caller normally reacts to c.
func (m *Model) Apply(c Change) {
	if c.Cleared {
		m.ClearValue()
		return
	}
	m.SetValue(c.Value)
}

// Options returns the caller-supplied options.
func (m Model) Options() []Option { return m.options }

// SetOptions replaces the option list and re-clamps the highlight.
func (m *Model) SetOptions(opts []Option) {
	m.options = opts
	m.clampCursor()
}

// SetLoading toggles the loading state. A loading dropdown is closed and
// ignores input.
func (m *Model) SetLoading(v bool) {
	m.loading = v
	if v {
		m.Close()
	}
}

// Loading reports whether the dropdown is loading.
func (m Model) Loading() bool { return m.loading }

// SetDisabled toggles the disabled state.
func (m *Model) SetDisabled(v bool) {
	m.disabled = v
	if v {
		m.Close()
	}
}

// Disabled reports whether the trigger is disabled.
func (m Model) Disabled() bool { return m.disabled }

// Interactive reports whether the trigger reacts to input.
func (m Model) Interactive() bool { return !m.disabled && !m.loading }

// IsOpen reports whether the option list is shown.
func (m Model) IsOpen() bool { return m.open }

// FilterText returns the current filter.
func (m Model) FilterText() string { return m.filter.Value() }

// Cursor returns the highlighted row of the presented list.
func (m Model) Cursor() int { return m.cursor }

// Presented returns the rows currently offered to the user.
func (m Model) Presented() []Option {
	return Present(m.options, m.filter.Value(), Option{Label: m.unsetLabel})
}

// Open shows the option list. The filter is left as it is.
func (m *Model) Open() {
	if !m.Interactive() || m.open {
		return
	}
	m.open = true
	m.filter.Focus()
	m.cursor = 0
	if m.hasValue {
		for i, o := range m.Presented() {
			if o.Value == m.value {
				m.cursor = i
				break
			}
		}
	}
	m.scrollToCursor()
}

// Close hides the option list and clears the filter.
func (m *Model) Close() {
	m.open = false
	m.filter.Blur()
	m.filter.SetValue("")
	m.cursor, m.offset = 0, 0
}

// Toggle opens a closed list and closes an open one.
func (m *Model) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// SetFilter replaces the filter text; the list stays open.
func (m *Model) SetFilter(text string) {
	m.filter.SetValue(text)
	m.filter.CursorEnd()
	m.cursor, m.offset = 0, 0
}

// Commit resolves a selection of value selected:
//
//   - the current value again clears the selection,
//   - the unset entry ("") is an explicit blank choice,
//   - anything else selects that value.
//
// The list closes in every case.
func (m *Model) Commit(selected string) Change {
	var c Change
	switch {
	case m.hasValue && selected == m.value:
		c = Change{Cleared: true}
	case selected == "":
		c = Change{}
	default:
		c = Change{Value: selected}
	}
	if m.onChange != nil {
		m.onChange(c)
	}
	m.Close()
	return c
}

// MoveCursor moves the highlight by delta rows within the presented list.
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.scrollToCursor()
}

func (m *Model) clampCursor() {
	n := len(m.Presented())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxVisible {
		m.offset = m.cursor - m.maxVisible + 1
	}
}
