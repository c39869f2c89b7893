// Package exclusion suppresses matched names that an operator has curated
// out of the analysis. Membership is fuzzy so OCR-degraded variants of an
// excluded entity are still caught.
package exclusion

import (
	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Filter tests matched names against an exclusion list. It runs after
// matching, never before, so it suppresses exact and heuristic matches
// uniformly. Immutable once created.
type Filter struct {
	entries   []string
	threshold float64
}

// NewFilter creates a filter over the given exclusion entries with the given
// similarity threshold on a 0-100 scale.
func NewFilter(entries []string, threshold float64) *Filter {
	return &Filter{entries: entries, threshold: threshold}
}

// Excluded reports whether the name fuzzy-matches any exclusion entry at or
// above the threshold. Excluded names contribute to neither totals nor the
// possible-processor list.
func (f *Filter) Excluded(name string) bool {
	for _, entry := range f.entries {
		if textutils.Similarity(name, entry) >= f.threshold {
			return true
		}
	}
	return false
}
