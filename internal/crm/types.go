// Package crm holds the dashboard's records and the in-memory store that
// stands in for the backend API.
package crm

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownKind = errors.New("unknown record kind")
	// ErrUnavailable marks a transient failure worth retrying.
	ErrUnavailable = errors.New("store unavailable")
)

// Kind names a record collection.
type Kind string

const (
	KindVendors   Kind = "vendors"
	KindAssets    Kind = "assets"
	KindCampaigns Kind = "campaigns"
	KindDeals     Kind = "deals"
	KindLeads     Kind = "leads"
)

// Kinds lists every collection in display order.
func Kinds() []Kind {
	return []Kind{KindVendors, KindAssets, KindCampaigns, KindDeals, KindLeads}
}

// ParseKind resolves a collection name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Title is the human name of the collection.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Entity is any record the dashboard can list.
type Entity interface {
	Key() string
	Kind() Kind
	Label() string
	Fields() map[string]any
}

const dateLayout = "2006-01-02"

func date(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

type Vendor struct {
	ID       uuid.UUID
	Name     string
	Contact  string
	Email    string
	City     string
	Category string
	Active   bool
	Since    time.Time
}

func (v Vendor) Key() string   { return v.ID.String() }
func (v Vendor) Kind() Kind    { return KindVendors }
func (v Vendor) Label() string { return v.Name }

func (v Vendor) Fields() map[string]any {
	status := "inactive"
	if v.Active {
		status = "active"
	}
	return map[string]any{
		"id":       v.Key(),
		"name":     v.Name,
		"contact":  v.Contact,
		"email":    v.Email,
		"city":     v.City,
		"category": v.Category,
		"status":   status,
		"since":    date(v.Since),
	}
}

type Asset struct {
	ID          uuid.UUID
	Tag         string
	Name        string
	Category    string
	Status      string
	VendorID    string // empty when unassigned
	VendorName  string
	PurchasedAt time.Time
	Cost        float64
}

func (a Asset) Key() string   { return a.ID.String() }
func (a Asset) Kind() Kind    { return KindAssets }
func (a Asset) Label() string { return a.Tag + " " + a.Name }

func (a Asset) Fields() map[string]any {
	var vendor any
	if a.VendorName != "" {
		vendor = a.VendorName
	}
	return map[string]any{
		"id":        a.Key(),
		"tag":       a.Tag,
		"name":      a.Name,
		"category":  a.Category,
		"status":    a.Status,
		"vendor":    vendor,
		"vendor_id": a.VendorID,
		"purchased": date(a.PurchasedAt),
		"cost":      a.Cost,
	}
}

type Campaign struct {
	ID       uuid.UUID
	Name     string
	Channel  string
	Status   string
	Budget   float64
	StartsAt time.Time
	EndsAt   time.Time
}

func (c Campaign) Key() string   { return c.ID.String() }
func (c Campaign) Kind() Kind    { return KindCampaigns }
func (c Campaign) Label() string { return c.Name }

func (c Campaign) Fields() map[string]any {
	return map[string]any{
		"id":      c.Key(),
		"name":    c.Name,
		"channel": c.Channel,
		"status":  c.Status,
		"budget":  c.Budget,
		"starts":  date(c.StartsAt),
		"ends":    date(c.EndsAt),
	}
}

type Deal struct {
	ID        uuid.UUID
	Title     string
	Company   string
	Stage     string
	Amount    float64
	Owner     string
	CloseDate time.Time
}

func (d Deal) Key() string   { return d.ID.String() }
func (d Deal) Kind() Kind    { return KindDeals }
func (d Deal) Label() string { return d.Title }

func (d Deal) Fields() map[string]any {
	return map[string]any{
		"id":      d.Key(),
		"title":   d.Title,
		"company": d.Company,
		"stage":   d.Stage,
		"amount":  d.Amount,
		"owner":   d.Owner,
		"close":   date(d.CloseDate),
	}
}

// LeadStatuses are the states a lead moves through.
var LeadStatuses = []string{"new", "contacted", "qualified", "converted", "lost"}

type Lead struct {
	ID        uuid.UUID
	Name      string
	Company   string
	Email     string
	Source    string
	Status    string
	Score     int
	CreatedAt time.Time
}

func (l Lead) Key() string   { return l.ID.String() }
func (l Lead) Kind() Kind    { return KindLeads }
func (l Lead) Label() string { return l.Name }

func (l Lead) Fields() map[string]any {
	return map[string]any{
		"id":      l.Key(),
		"name":    l.Name,
		"company": l.Company,
		"email":   l.Email,
		"source":  l.Source,
		"status":  l.Status,
		"score":   l.Score,
		"created": date(l.CreatedAt),
	}
}
