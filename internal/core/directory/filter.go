package directory

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold lowercases with full unicode case folding so that queries in any
// script match the way the remote data is spelled
func fold(s string) string { return cases.Fold().String(s) }

// Filter returns the records whose first name, last name, or user tag
// contains query, each field matched independently and case-insensitively.
// An empty or whitespace-only query returns the input unchanged.
// Order is preserved and the call is idempotent for a fixed query.
func Filter(records []Employee, query string) []Employee {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]Employee, 0, len(records))
	for _, e := range records {
		if strings.Contains(fold(e.FirstName), q) ||
			strings.Contains(fold(e.LastName), q) ||
			strings.Contains(fold(e.UserTag), q) {
			out = append(out, e)
		}
	}
	return out
}
