package ui

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"crm-dashboard/internal/table"
)

// FilterConfig bundles tuning parameters for the quick search.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// searchCorpus joins the lowercase cell text of every record so one query
// can match any visible column.
func searchCorpus(records []table.Record, cols []table.Column) []string {
	base := make([]string, len(records))
	var b strings.Builder
	for i, r := range records {
		b.Reset()
		for _, c := range cols {
			if c.Key == "" {
				continue
			}
			b.WriteString(table.DefaultStringifier(r[c.Key]))
			b.WriteString("  ")
		}
		base[i] = strings.ToLower(b.String())
	}
	return base
}

// filterByField returns indices of records whose field equals want. An
// empty want keeps every record.
func filterByField(records []table.Record, field, want string) []int {
	idx := make([]int, 0, len(records))
	for i, r := range records {
		if want == "" || table.DefaultStringifier(r[field]) == want {
			idx = append(idx, i)
		}
	}
	return idx
}

// filterBySubstring performs a simple substring check against the prepared base
// list and returns matching indices limited by cfg.MaxResults.
func filterBySubstring(q string, base []string, idx []int, cfg FilterConfig) []int {
	sub := make([]int, 0, min(cfg.MaxResults, len(idx)))
	for _, i := range idx {
		if strings.Contains(base[i], q) {
			sub = append(sub, i)
			if len(sub) >= cfg.MaxResults {
				break
			}
		}
	}
	return sub
}

// filterByFuzzy applies fuzzy matching on the subset defined by idx and
// filters results based on coverage and spread thresholds from cfg.
// The result keeps table order rather than match rank.
func filterByFuzzy(q string, base []string, idx []int, cfg FilterConfig) []int {
	subset := make([]string, len(idx))
	for j, i := range idx {
		subset[j] = base[i]
	}
	matches := fuzzy.Find(q, subset)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage || matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, idx[mt.Index])
		if len(pruned) >= cfg.MaxResults {
			break
		}
	}
	if len(pruned) == 0 {
		for i := 0; i < len(matches) && i < cfg.MaxResults; i++ {
			pruned = append(pruned, idx[matches[i].Index])
		}
	}
	sort.Ints(pruned)
	return pruned
}

// quickSearch narrows idx by q: substring matches first, fuzzy matches when
// nothing contains the query verbatim.
func quickSearch(q string, base []string, idx []int, cfg FilterConfig) []int {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" {
		return idx
	}
	if sub := filterBySubstring(q, base, idx, cfg); len(sub) > 0 {
		return sub
	}
	return filterByFuzzy(q, base, idx, cfg)
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}
