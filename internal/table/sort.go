package table

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Record is one table row keyed by column.
type Record = map[string]any

// Stringifier renders a field value to the canonical string used for
// comparison.
type Stringifier func(any) string

// DefaultStringifier maps nil (and missing fields) to "", keeps strings as
// they are and formats everything else with fmt.
func DefaultStringifier(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

type sortOptions struct {
	stringify Stringifier
	tag       language.Tag
}

// SortOption customizes Sort and SortFunc.
type SortOption func(*sortOptions)

// WithStringifier replaces DefaultStringifier.
func WithStringifier(s Stringifier) SortOption {
	return func(o *sortOptions) {
		if s != nil {
			o.stringify = s
		}
	}
}

// WithLocale sets the collation locale. The root locale is used otherwise.
func WithLocale(tag language.Tag) SortOption {
	return func(o *sortOptions) { o.tag = tag }
}

func newSortOptions(opts []SortOption) sortOptions {
	o := sortOptions{stringify: DefaultStringifier, tag: language.Und}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Sort returns a new slice of records ordered by d. The input is never
// modified. Values are compared as lowercase strings with locale-aware
// collation, so numeric strings sort lexically ("10" before "9").
func Sort(records []Record, d Descriptor, opts ...SortOption) []Record {
	return SortFunc(records, d, func(r Record, key string) any { return r[key] }, opts...)
}

// SortFunc is Sort for arbitrary row types; field extracts the value of
// the named column from a row.
func SortFunc[T any](rows []T, d Descriptor, field func(T, string) any, opts ...SortOption) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	if !d.IsSet() || len(out) < 2 {
		return out
	}

	o := newSortOptions(opts)
	// a collator keeps scratch buffers, one per call
	col := collate.New(o.tag)

	keys := make([]string, len(out))
	for i, row := range out {
		keys[i] = strings.ToLower(o.stringify(field(row, d.Key)))
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		c := col.CompareString(keys[idx[i]], keys[idx[j]])
		if d.Direction == Descending {
			c = -c
		}
		return c < 0
	})

	sorted := make([]T, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}
