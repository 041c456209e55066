package combobox

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newColors(value string) (Model, *[]Change) {
	var got []Change
	m := New(Config{
		Options:       colors,
		Placeholder:   "Pick a color",
		OnValueChange: func(c Change) { got = append(got, c) },
	})
	if value != "" {
		m.SetValue(value)
	}
	return m, &got
}

func TestCommitSameValueClears(t *testing.T) {
	m, got := newColors("1")
	m.Open()
	c := m.Commit("1")
	if !c.Cleared {
		t.Fatalf("committing the current value should clear, got %+v", c)
	}
	if len(*got) != 1 || !(*got)[0].Cleared {
		t.Fatalf("callback = %+v", *got)
	}
	if m.IsOpen() {
		t.Fatal("list should close after commit")
	}
}

func TestCommitBlankAndValue(t *testing.T) {
	m, got := newColors("1")
	if c := m.Commit(""); c != (Change{}) || c.Cleared {
		t.Fatalf("blank commit = %+v", c)
	}
	if c := m.Commit("2"); c != (Change{Value: "2"}) {
		t.Fatalf("value commit = %+v", c)
	}
	if len(*got) != 2 {
		t.Fatalf("callback fired %d times", len(*got))
	}
	if (*got)[0] == (*got)[1] {
		t.Fatal("blank and value commits must be distinguishable")
	}
}

func TestCommitBlankWhenBlankSelectedClears(t *testing.T) {
	m, _ := newColors("")
	m.SetValue("")
	if c := m.Commit(""); !c.Cleared {
		t.Fatalf("re-picking the blank entry should clear, got %+v", c)
	}
}

func TestCommitWithoutValue(t *testing.T) {
	m, _ := newColors("")
	if c := m.Commit("1"); c != (Change{Value: "1"}) {
		t.Fatalf("got %+v", c)
	}
}

func TestCloseClearsFilter(t *testing.T) {
	m, _ := newColors("")
	m.Open()
	m.SetFilter("bl")
	if !m.IsOpen() {
		t.Fatal("SetFilter must keep the list open")
	}
	if n := len(m.Presented()); n != 2 {
		t.Fatalf("presented %d rows, want 2", n)
	}
	m.Close()
	if m.FilterText() != "" {
		t.Fatalf("filter = %q after close", m.FilterText())
	}
	m.Open()
	if m.FilterText() != "" {
		t.Fatal("opening must not restore a filter")
	}
}

func TestOpenKeepsFilter(t *testing.T) {
	m, _ := newColors("")
	m.SetFilter("re")
	m.Open()
	if m.FilterText() != "re" {
		t.Fatalf("open changed the filter to %q", m.FilterText())
	}
}

func TestCommitAfterFilterResets(t *testing.T) {
	m, _ := newColors("")
	m.Open()
	m.SetFilter("blue")
	m.Commit("2")
	if m.IsOpen() || m.FilterText() != "" {
		t.Fatalf("open=%v filter=%q after commit", m.IsOpen(), m.FilterText())
	}
}

func TestTriggerText(t *testing.T) {
	m, _ := newColors("")
	if m.TriggerText() != "Pick a color" {
		t.Fatalf("placeholder = %q", m.TriggerText())
	}
	m.SetValue("2")
	if m.TriggerText() != "Blue" {
		t.Fatalf("label = %q", m.TriggerText())
	}
	m.SetValue("missing")
	if m.TriggerText() != "Pick a color" {
		t.Fatalf("unknown value should fall back to the placeholder, got %q", m.TriggerText())
	}
	m.SetValue("2")
	m.SetLoading(true)
	if m.TriggerText() != "Loading…" {
		t.Fatalf("loading text = %q", m.TriggerText())
	}
}

func TestDuplicateValuesUseFirstLabel(t *testing.T) {
	m := New(Config{Options: []Option{{Value: "x", Label: "First"}, {Value: "x", Label: "Second"}}})
	m.SetValue("x")
	if m.TriggerText() != "First" {
		t.Fatalf("trigger = %q", m.TriggerText())
	}
}

func TestDisabledAndLoadingIgnoreOpen(t *testing.T) {
	m, _ := newColors("")
	m.SetDisabled(true)
	m.Open()
	if m.IsOpen() {
		t.Fatal("disabled dropdown opened")
	}
	m.SetDisabled(false)
	m.SetLoading(true)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsOpen() {
		t.Fatal("loading dropdown opened")
	}
}

func TestSetLoadingClosesList(t *testing.T) {
	m, _ := newColors("")
	m.Open()
	m.SetLoading(true)
	if m.IsOpen() {
		t.Fatal("loading should close the list")
	}
}

func TestViewCheckmarkAndEmptyState(t *testing.T) {
	m, _ := newColors("2")
	m.Open()
	out := m.View()
	lines := strings.Split(out, "\n")
	checked := 0
	for _, l := range lines {
		if strings.Contains(l, "✓") {
			checked++
			if !strings.Contains(l, "Blue") {
				t.Fatalf("check mark on the wrong row: %q", l)
			}
		}
	}
	if checked != 1 {
		t.Fatalf("want exactly one check mark, got %d in\n%s", checked, out)
	}

	empty := New(Config{EmptyText: "No vendors yet."})
	empty.Open()
	if !strings.Contains(empty.View(), "No vendors yet.") {
		t.Fatalf("empty state missing:\n%s", empty.View())
	}
	if !strings.Contains(empty.View(), "None") {
		t.Fatal("unset row missing from an empty list")
	}
}

func TestViewEmptyStateOnlyForEmptyOptions(t *testing.T) {
	m := New(Config{Options: colors, EmptyText: "nothing here"})
	m.Open()
	m.SetFilter("zzz")
	if strings.Contains(m.View(), "nothing here") {
		t.Fatal("empty state shown for a filter without matches")
	}
}
