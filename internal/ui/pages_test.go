package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/table"
)

func leadEntities() []crm.Entity {
	return []crm.Entity{
		crm.Lead{ID: crm.SeedID("b"), Name: "Bob", Status: "new"},
		crm.Lead{ID: crm.SeedID("a"), Name: "alice", Status: "lost"},
		crm.Lead{ID: crm.SeedID("c"), Name: "Carol", Status: "new"},
	}
}

func TestPageUncontrolledSortsOnRequest(t *testing.T) {
	p := newPage(crm.KindLeads, table.Descriptor{}, nil, FilterConfig{MinCoverage: 0.6, MaxSpread: 40, MaxResults: 100})
	p.setRecords(leadEntities())

	if diff := cmp.Diff([]string{"Bob", "alice", "Carol"}, names(p, "name")); diff != "" {
		t.Fatalf("source order (-want +got):\n%s", diff)
	}
	if !p.sortColumn(1) {
		t.Fatalf("name column should be sortable")
	}
	if diff := cmp.Diff([]string{"alice", "Bob", "Carol"}, names(p, "name")); diff != "" {
		t.Fatalf("ascending (-want +got):\n%s", diff)
	}
	p.sortColumn(1)
	if diff := cmp.Diff([]string{"Carol", "Bob", "alice"}, names(p, "name")); diff != "" {
		t.Fatalf("descending (-want +got):\n%s", diff)
	}
	if p.sortColumn(3) {
		t.Fatalf("email column must not sort")
	}
}

func TestPageControlledWritesOwnerDescriptor(t *testing.T) {
	owned := table.Descriptor{Key: "name", Direction: table.Descending}
	p := newPage(crm.KindLeads, table.Descriptor{}, &owned, FilterConfig{MaxResults: 100})
	p.setRecords(leadEntities())

	if diff := cmp.Diff([]string{"Carol", "Bob", "alice"}, names(p, "name")); diff != "" {
		t.Fatalf("initial order (-want +got):\n%s", diff)
	}
	p.sortColumn(1)
	if want := (table.Descriptor{Key: "name", Direction: table.Ascending}); owned != want {
		t.Fatalf("owner descriptor = %v, want %v", owned, want)
	}
	if got := p.sorter.Indicator("name"); got != table.AscendingActive {
		t.Fatalf("indicator = %v", got)
	}
}

func TestPageStatusFilterAndCursor(t *testing.T) {
	p := newPage(crm.KindLeads, table.Descriptor{Key: "name"}, nil, FilterConfig{MaxResults: 100})
	p.setRecords(leadEntities())
	p.moveCursor(2) // Carol

	p.statusFilter = "new"
	p.refresh()
	if diff := cmp.Diff([]string{"Bob", "Carol"}, names(p, "name")); diff != "" {
		t.Fatalf("filtered (-want +got):\n%s", diff)
	}
	if r, _ := p.selected(); r["name"] != "Carol" {
		t.Fatalf("cursor should follow the selected record, got %v", r["name"])
	}

	p.moveCursor(10)
	if p.cursor != 1 {
		t.Fatalf("cursor not clamped: %d", p.cursor)
	}
}
