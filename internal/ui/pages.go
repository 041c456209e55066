package ui

import (
	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/infra/logx"
	"crm-dashboard/internal/table"
)

// columnsFor returns the column layout of a collection.
func columnsFor(kind crm.Kind) []table.Column {
	switch kind {
	case crm.KindVendors:
		return []table.Column{
			{Key: "name", Title: "Name", Width: 20},
			{Key: "contact", Title: "Contact", Width: 14},
			{Key: "email", Title: "Email", Width: 24, Unsortable: true},
			{Key: "city", Title: "City", Width: 10},
			{Key: "category", Title: "Category", Width: 11},
			{Key: "status", Title: "Status", Width: 9},
			{Key: "since", Title: "Since", Width: 11},
		}
	case crm.KindAssets:
		return []table.Column{
			{Key: "tag", Title: "Tag", Width: 9},
			{Key: "name", Title: "Name", Width: 18},
			{Key: "category", Title: "Category", Width: 10},
			{Key: "status", Title: "Status", Width: 8},
			{Key: "vendor", Title: "Vendor", Width: 18},
			{Key: "purchased", Title: "Purchased", Width: 11},
			{Key: "cost", Title: "Cost", Width: 8},
		}
	case crm.KindCampaigns:
		return []table.Column{
			{Key: "name", Title: "Name", Width: 18},
			{Key: "channel", Title: "Channel", Width: 9},
			{Key: "status", Title: "Status", Width: 9},
			{Key: "budget", Title: "Budget", Width: 9},
			{Key: "starts", Title: "Starts", Width: 11},
			{Key: "ends", Title: "Ends", Width: 11},
		}
	case crm.KindDeals:
		return []table.Column{
			{Key: "title", Title: "Title", Width: 16},
			{Key: "company", Title: "Company", Width: 10},
			{Key: "stage", Title: "Stage", Width: 14},
			{Key: "amount", Title: "Amount", Width: 9},
			{Key: "owner", Title: "Owner", Width: 7},
			{Key: "close", Title: "Close", Width: 11},
		}
	case crm.KindLeads:
		return []table.Column{
			{Key: "name", Title: "Name", Width: 14},
			{Key: "company", Title: "Company", Width: 10},
			{Key: "email", Title: "Email", Width: 22, Unsortable: true},
			{Key: "source", Title: "Source", Width: 9},
			{Key: "status", Title: "Status", Width: 10},
			{Key: "score", Title: "Score", Width: 7},
			{Key: "created", Title: "Created", Width: 11},
		}
	}
	return nil
}

// page is one tab of the dashboard: the loaded records of a collection and
// the view derived from them.
type page struct {
	kind    crm.Kind
	columns []table.Column
	sorter  *table.Controller

	records []table.Record // source order
	visible []table.Record // sorted and filtered

	loading bool
	err     error
	cursor  int

	query        string
	statusFilter string
	filterCfg    FilterConfig
}

// newPage builds a page. With a non-nil external descriptor the page's
// controller is controlled and the owner's descriptor is updated on every
// sort request; otherwise the controller starts from initial.
func newPage(kind crm.Kind, initial table.Descriptor, external *table.Descriptor, cfg FilterConfig) *page {
	p := &page{kind: kind, columns: columnsFor(kind), filterCfg: cfg}
	onChange := func(d table.Descriptor) { p.applySort(d) }
	opts := []table.Option{table.WithDefault(initial.Key, initial.Direction)}
	if external != nil {
		onChange = func(d table.Descriptor) {
			*external = d
			p.applySort(d)
		}
		opts = append(opts, table.WithExternal(external))
	}
	p.sorter = table.New(nil, onChange, opts...)
	return p
}

// setRecords replaces the page data with freshly loaded entities.
func (p *page) setRecords(list []crm.Entity) {
	p.records = make([]table.Record, len(list))
	for i, e := range list {
		p.records[i] = e.Fields()
	}
	p.sorter.SetData(p.records)
	p.err = nil
	p.refresh()
}

func (p *page) applySort(d table.Descriptor) {
	logx.Debugf("ui: %s sorted by %q", p.kind, d.String())
	p.rebuild(d)
}

// refresh re-derives the visible rows from the current descriptor.
func (p *page) refresh() { p.rebuild(p.sorter.Descriptor()) }

func (p *page) rebuild(d table.Descriptor) {
	selected := p.selectedID()

	sorted := table.Sort(p.records, d)
	idx := filterByField(sorted, "status", p.statusFilter)
	idx = quickSearch(p.query, searchCorpus(sorted, p.columns), idx, p.filterCfg)

	p.visible = make([]table.Record, len(idx))
	for i, j := range idx {
		p.visible[i] = sorted[j]
	}

	// keep the cursor on the same record when it is still visible
	p.cursor = 0
	for i, r := range p.visible {
		if selected != "" && r["id"] == selected {
			p.cursor = i
			break
		}
	}
}

func (p *page) selectedID() string {
	r, ok := p.selected()
	if !ok {
		return ""
	}
	id, _ := r["id"].(string)
	return id
}

// selected returns the record under the cursor.
func (p *page) selected() (table.Record, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return nil, false
	}
	return p.visible[p.cursor], true
}

func (p *page) moveCursor(delta int) {
	p.cursor += delta
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// sortColumn activates the n-th header (1-based), as a click would.
func (p *page) sortColumn(n int) bool {
	if n < 1 || n > len(p.columns) {
		return false
	}
	col := p.columns[n-1]
	if !col.Sortable() {
		return false
	}
	table.Activate(col, p.sorter)
	return true
}
