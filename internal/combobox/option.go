// Package combobox implements a searchable single-selection dropdown for
// Bubble Tea programs: a trigger line, a filter input and a list of options
// headed by a synthetic "unset" entry.
package combobox

import "strings"

// Option is one selectable entry. Values must be unique within a list.
type Option struct {
	Value string
	Label string
}

// Change is the outcome of a committed selection.
//
// Cleared is set when the already selected value was picked again and the
// selection was dropped. An empty Value with Cleared unset means the user
// explicitly picked the blank entry.
type Change struct {
	Value   string
	Cleared bool
}

// Blank reports whether the change was an explicit "no selection" choice.
func (c Change) Blank() bool { return !c.Cleared && c.Value == "" }

func (c Change) String() string {
	switch {
	case c.Cleared:
		return "cleared"
	case c.Value == "":
		return "blank"
	default:
		return c.Value
	}
}

// Present returns the list shown to the user: the unset option followed by
// every option whose label contains filter, ignoring case. An empty filter
// keeps all options.
func Present(options []Option, filter string, unset Option) []Option {
	out := make([]Option, 0, len(options)+1)
	out = append(out, Option{Value: "", Label: unset.Label})
	if filter == "" {
		return append(out, options...)
	}
	q := strings.ToLower(filter)
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	return out
}

// labelFor returns the label of the first option carrying value.
func labelFor(options []Option, value string) (string, bool) {
	for _, o := range options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}
