package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"crm-dashboard/internal/crm"
)

type keyMap struct {
	Quit      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Up        key.Binding
	Down      key.Binding
	Sort      key.Binding
	Search    key.Binding
	Clear     key.Binding
	Reload    key.Binding
	Assign    key.Binding
	Filter    key.Binding
	SetStatus key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextPage:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next page")),
	PrevPage:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev page")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Sort:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort column")),
	Search:    key.NewBinding(key.WithKeys("/", "f"), key.WithHelp("/", "search")),
	Clear:     key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "clear filters")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Assign:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "assign vendor")),
	Filter:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "status filter")),
	SetStatus: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set status")),
}

// bindingsFor returns the help bindings that apply on page kind.
func (k keyMap) bindingsFor(p *page) []key.Binding {
	b := []key.Binding{k.NextPage, k.Up, k.Down, k.Sort, k.Search, k.Clear, k.Reload}
	if p != nil {
		switch p.kind {
		case crm.KindAssets:
			b = append(b, k.Assign)
		case crm.KindLeads:
			b = append(b, k.Filter, k.SetStatus)
		}
	}
	return append(b, k.Quit)
}
