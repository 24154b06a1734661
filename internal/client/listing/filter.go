// Package listing holds the canonical list of one resource kind and derives
// the visible list from it.
package listing

import (
	"strings"

	"github.com/dmitrijs2005/vmis/internal/resources"
)

// Filter returns the records for which at least one of fields contains query,
// ignoring case, in their original order. An empty or whitespace-only query
// returns records itself. Absent and null fields never match.
func Filter(records []resources.Record, query string, fields []string) []resources.Record {
	if strings.TrimSpace(query) == "" {
		return records
	}
	needle := strings.ToLower(query)

	out := make([]resources.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, needle, fields) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec resources.Record, needle string, fields []string) bool {
	for _, f := range fields {
		v, ok := rec.Text(f)
		if ok && strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
