package crm

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"crm-dashboard/internal/infra/logx"
)

// Store is the data source the dashboard talks to.
type Store interface {
	List(ctx context.Context, kind Kind) ([]Entity, error)
	Get(ctx context.Context, kind Kind, id string) (Entity, error)
	AssignVendor(ctx context.Context, assetID, vendorID string) (Asset, error)
	SetLeadStatus(ctx context.Context, leadID, status string) (Lead, error)
}

// Mock is an in-memory Store. Every call waits Latency before answering
// and fails with Fail when it is set.
type Mock struct {
	mu sync.Mutex

	Latency time.Duration
	Fail    error

	vendors   []Vendor
	assets    []Asset
	campaigns []Campaign
	deals     []Deal
	leads     []Lead
}

// NewMock returns an empty store.
func NewMock() *Mock { return &Mock{} }

func (s *Mock) wait(ctx context.Context) error {
	s.mu.Lock()
	d, fail := s.Latency, s.Fail
	s.mu.Unlock()
	if d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	return fail
}

// SetFail makes every following call return err (nil to recover).
func (s *Mock) SetFail(err error) {
	s.mu.Lock()
	s.Fail = err
	s.mu.Unlock()
}

func entities[T Entity](in []T) []Entity {
	out := make([]Entity, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}

func (s *Mock) List(ctx context.Context, kind Kind) ([]Entity, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Entity
	switch kind {
	case KindVendors:
		out = entities(s.vendors)
	case KindAssets:
		out = entities(s.assets)
	case KindCampaigns:
		out = entities(s.campaigns)
	case KindDeals:
		out = entities(s.deals)
	case KindLeads:
		out = entities(s.leads)
	default:
		return nil, fmt.Errorf("list %q: %w", kind, ErrUnknownKind)
	}
	logx.Debugf("mock: list %s -> %d records", kind, len(out))
	return out, nil
}

func (s *Mock) Get(ctx context.Context, kind Kind, id string) (Entity, error) {
	all, err := s.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.Key() == id {
			return e, nil
		}
	}
	return nil, fmt.Errorf("get %s %s: %w", kind, id, ErrNotFound)
}

func indexByID[T Entity](list []T, id string) int {
	return slices.IndexFunc(list, func(e T) bool { return e.Key() == id })
}

// AssignVendor links an asset to a vendor. An empty vendorID unassigns it.
func (s *Mock) AssignVendor(ctx context.Context, assetID, vendorID string) (Asset, error) {
	if err := s.wait(ctx); err != nil {
		return Asset{}, fmt.Errorf("assign vendor: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ai := indexByID(s.assets, assetID)
	if ai < 0 {
		return Asset{}, fmt.Errorf("assign vendor: asset %s: %w", assetID, ErrNotFound)
	}
	a := &s.assets[ai]
	if vendorID == "" {
		a.VendorID, a.VendorName = "", ""
		logx.Infof("mock: asset %s unassigned", a.Tag)
		return *a, nil
	}
	vi := indexByID(s.vendors, vendorID)
	if vi < 0 {
		return Asset{}, fmt.Errorf("assign vendor: vendor %s: %w", vendorID, ErrNotFound)
	}
	a.VendorID, a.VendorName = vendorID, s.vendors[vi].Name
	logx.Infof("mock: asset %s assigned to %s", a.Tag, a.VendorName)
	return *a, nil
}

// SetLeadStatus moves a lead to one of LeadStatuses.
func (s *Mock) SetLeadStatus(ctx context.Context, leadID, status string) (Lead, error) {
	if !slices.Contains(LeadStatuses, status) {
		return Lead{}, fmt.Errorf("set lead status: unknown status %q", status)
	}
	if err := s.wait(ctx); err != nil {
		return Lead{}, fmt.Errorf("set lead status: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.leads, leadID)
	if i < 0 {
		return Lead{}, fmt.Errorf("set lead status: lead %s: %w", leadID, ErrNotFound)
	}
	s.leads[i].Status = status
	return s.leads[i], nil
}

// Add inserts records into the store, keyed by their concrete type.
func (s *Mock) Add(records ...Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		switch v := r.(type) {
		case Vendor:
			s.vendors = append(s.vendors, v)
		case Asset:
			s.assets = append(s.assets, v)
		case Campaign:
			s.campaigns = append(s.campaigns, v)
		case Deal:
			s.deals = append(s.deals, v)
		case Lead:
			s.leads = append(s.leads, v)
		}
	}
}

var seedNS = uuid.MustParse("6f1c2a4e-3b7d-4c1a-9e2f-8d5b0a7c9e11")

// SeedID derives a stable id from a name so seeded data is reproducible.
func SeedID(name string) uuid.UUID { return uuid.NewSHA1(seedNS, []byte(name)) }
