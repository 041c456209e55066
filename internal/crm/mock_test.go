package crm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Leads ")
	if err != nil || k != KindLeads {
		t.Fatalf("ParseKind = %q, %v", k, err)
	}
	if _, err := ParseKind("trash"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if KindDeals.Title() != "Deals" {
		t.Fatalf("Title = %q", KindDeals.Title())
	}
}

func TestSeededMockListsEveryKind(t *testing.T) {
	s := NewSeededMock(0)
	for _, k := range Kinds() {
		list, err := s.List(context.Background(), k)
		if err != nil {
			t.Fatalf("List(%s): %v", k, err)
		}
		if len(list) == 0 {
			t.Fatalf("List(%s) returned no records", k)
		}
		for _, e := range list {
			if e.Kind() != k {
				t.Fatalf("%s list contains a %s", k, e.Kind())
			}
			if e.Fields()["id"] != e.Key() {
				t.Fatalf("id field mismatch for %s", e.Key())
			}
		}
	}
	if _, err := s.List(context.Background(), Kind("trash")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSeedIDStable(t *testing.T) {
	if SeedID("vendor/contoso") != SeedID("vendor/contoso") {
		t.Fatal("seed ids must be deterministic")
	}
	if SeedID("a") == SeedID("b") {
		t.Fatal("distinct names should give distinct ids")
	}
}

func TestAssignVendor(t *testing.T) {
	s := NewSeededMock(0)
	ctx := context.Background()
	asset := SeedID("asset/LT-0010").String()
	vendor := SeedID("vendor/contoso").String()

	a, err := s.AssignVendor(ctx, asset, vendor)
	if err != nil {
		t.Fatalf("AssignVendor: %v", err)
	}
	if a.VendorName != "Contoso" || a.Fields()["vendor"] != "Contoso" {
		t.Fatalf("asset after assign: %+v", a)
	}

	got, err := s.Get(ctx, KindAssets, asset)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.(Asset).VendorID != vendor {
		t.Fatal("assignment not stored")
	}

	a, err = s.AssignVendor(ctx, asset, "")
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if a.VendorID != "" || a.Fields()["vendor"] != nil {
		t.Fatalf("asset after unassign: %+v", a)
	}

	if _, err := s.AssignVendor(ctx, asset, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for vendor, got %v", err)
	}
	if _, err := s.AssignVendor(ctx, "nope", vendor); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for asset, got %v", err)
	}
}

func TestSetLeadStatus(t *testing.T) {
	s := NewSeededMock(0)
	ctx := context.Background()
	id := SeedID("lead/bob").String()
	l, err := s.SetLeadStatus(ctx, id, "qualified")
	if err != nil || l.Status != "qualified" {
		t.Fatalf("SetLeadStatus = %+v, %v", l, err)
	}
	if _, err := s.SetLeadStatus(ctx, id, "bogus"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestMockFailAndCancel(t *testing.T) {
	s := NewSeededMock(0)
	boom := errors.New("backend down")
	s.SetFail(boom)
	if _, err := s.List(context.Background(), KindLeads); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}
	s.SetFail(nil)

	s.Latency = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.List(ctx, KindLeads); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
