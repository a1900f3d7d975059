package models

import "strings"

// Scope selects which partition of the catalog a listing shows
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeFeatured Scope = "featured"
)

// ParseScope maps user input to a Scope. Anything unrecognised is ScopeAll.
func ParseScope(s string) Scope {
	if strings.EqualFold(strings.TrimSpace(s), string(ScopeFeatured)) {
		return ScopeFeatured
	}
	return ScopeAll
}

// FilterState is the per-view search state of the full listing
type FilterState struct {
	Query string `json:"query"`
	Scope Scope  `json:"scope"`
}

// NewFilterState returns the state a listing starts from: no query, all projects.
func NewFilterState() FilterState {
	return FilterState{Query: "", Scope: ScopeAll}
}

// Filter returns the projects of c matching both query and scope, in
// catalog order. The result is a copy. It never reorders and never fails.
func Filter(c Catalog, query string, scope Scope) Catalog {
	filtered := make(Catalog, 0, len(c))
	for _, p := range c {
		if p.InScope(scope) && p.Matches(query) {
			filtered = append(filtered, p.Clone())
		}
	}
	return filtered
}
