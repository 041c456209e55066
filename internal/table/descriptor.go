// Package table holds the sort comparator, the sort controller shared by
// header cells, and fixed-width rendering of table rows.
package table

import (
	"fmt"
	"strings"
)

// Direction is the order applied to the active sort column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Descriptor describes the current sort state of a table. An empty Key
// means "unsorted" and Direction is then ignored.
type Descriptor struct {
	Key       string
	Direction Direction
}

// IsSet reports whether the descriptor names a sort column.
func (d Descriptor) IsSet() bool { return d.Key != "" }

// String renders the descriptor as "key:asc" / "key:desc", or "" when unset.
func (d Descriptor) String() string {
	if !d.IsSet() {
		return ""
	}
	return d.Key + ":" + d.Direction.String()
}

// ParseDescriptor parses the textual form produced by Descriptor.String.
// A bare key sorts ascending; an empty string yields the unset descriptor.
func ParseDescriptor(s string) (Descriptor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Descriptor{}, nil
	}
	key, dir, hasDir := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if key == "" {
		return Descriptor{}, fmt.Errorf("sort descriptor %q: missing key", s)
	}
	d := Descriptor{Key: key}
	if !hasDir {
		return d, nil
	}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc", "ascending":
		d.Direction = Ascending
	case "desc", "descending":
		d.Direction = Descending
	default:
		return Descriptor{}, fmt.Errorf("sort descriptor %q: unknown direction %q", s, dir)
	}
	return d, nil
}
