package models

import (
	"fmt"
	"testing"
)

func sampleCatalog() Catalog {
	return Catalog{
		{ID: "1", Title: "E-Commerce Platform", Description: "Payments and inventory", Technologies: []string{"React", "Node.js", "PostgreSQL"}, Featured: true},
		{ID: "2", Title: "Task Management App", Description: "Drag-and-drop boards", Technologies: []string{"Vue.js", "Firebase"}, Featured: true},
		{ID: "3", Title: "Weather Dashboard", Description: "Forecasts and maps", Technologies: []string{"React", "TypeScript"}},
		{ID: "4", Title: "Game Hub", Description: "built with Mantine UI", Technologies: []string{"React", "TypeScript"}, Featured: true},
		{ID: "5", Title: "Blog Platform", Description: "Content management", Technologies: []string{"Next.js", "Prisma"}},
	}
}

func ids(c Catalog) []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.ID
	}
	return out
}

func isSubsequence(sub, full Catalog) bool {
	j := 0
	for _, p := range full {
		if j < len(sub) && sub[j].ID == p.ID {
			j++
		}
	}
	return j == len(sub)
}

func TestFilter(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name  string
		query string
		scope Scope
		want  []string
	}{
		{name: "empty query all", query: "", scope: ScopeAll, want: []string{"1", "2", "3", "4", "5"}},
		{name: "empty query featured", query: "", scope: ScopeFeatured, want: []string{"1", "2", "4"}},
		{name: "title match", query: "dashboard", scope: ScopeAll, want: []string{"3"}},
		{name: "description match", query: "mantine", scope: ScopeAll, want: []string{"4"}},
		{name: "technology match", query: "react", scope: ScopeAll, want: []string{"1", "3", "4"}},
		{name: "technology match featured", query: "react", scope: ScopeFeatured, want: []string{"1", "4"}},
		{name: "partial technology", query: ".js", scope: ScopeAll, want: []string{"1", "2", "5"}},
		{name: "no match", query: "zzz-nonexistent", scope: ScopeAll, want: []string{}},
		{name: "absent technology", query: "vue", scope: ScopeFeatured, want: []string{"2"}},
		{name: "whitespace is literal", query: " ", scope: ScopeAll, want: []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(catalog, tt.query, tt.scope))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.query, tt.scope, got, tt.want)
			}
		})
	}
}

func TestFilterSubsequenceAndMonotonicity(t *testing.T) {
	catalog := sampleCatalog()
	queries := []string{"", "a", "react", "REACT", "platform", "typescript", "x", "zzz"}

	for _, q := range queries {
		all := Filter(catalog, q, ScopeAll)
		featured := Filter(catalog, q, ScopeFeatured)

		if !isSubsequence(all, catalog) {
			t.Errorf("Filter(%q, all) = %v is not a subsequence of the catalog", q, ids(all))
		}
		if !isSubsequence(featured, all) {
			t.Errorf("Filter(%q, featured) = %v is not contained in Filter(%q, all) = %v", q, ids(featured), q, ids(all))
		}
		for _, p := range featured {
			if !p.Featured {
				t.Errorf("Filter(%q, featured) returned non-featured project %q", q, p.ID)
			}
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	catalog := sampleCatalog()
	upper := ids(Filter(catalog, "REACT", ScopeAll))
	lower := ids(Filter(catalog, "react", ScopeAll))
	if fmt.Sprint(upper) != fmt.Sprint(lower) {
		t.Errorf("REACT = %v, react = %v", upper, lower)
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	catalog := sampleCatalog()
	got := Filter(catalog, "", ScopeAll)
	if fmt.Sprint(ids(got)) != fmt.Sprint(ids(catalog)) {
		t.Errorf("Filter(C, \"\", all) = %v, want %v", ids(got), ids(catalog))
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	if got := Filter(nil, "react", ScopeFeatured); len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func TestFilterDoesNotAliasCatalog(t *testing.T) {
	catalog := sampleCatalog()
	got := Filter(catalog, "", ScopeAll)
	got[0].Title = "changed"
	if catalog[0].Title == "changed" {
		t.Fatal("Filter result shares elements with the catalog")
	}

	react := Filter(catalog, "react", ScopeAll)
	for i := range react {
		react[i].Technologies[0] = "Rust"
	}
	if again := Filter(catalog, "react", ScopeAll); len(again) != len(react) {
		t.Fatalf("editing technologies changed later results: %v vs %v", ids(again), ids(react))
	}
	if catalog[0].Technologies[0] != "React" {
		t.Fatalf("Filter result shares technologies with the catalog: %v", catalog[0].Technologies)
	}
}

func TestParseScope(t *testing.T) {
	tests := map[string]Scope{
		"":          ScopeAll,
		"all":       ScopeAll,
		"featured":  ScopeFeatured,
		"FEATURED":  ScopeFeatured,
		" featured": ScopeFeatured,
		"bogus":     ScopeAll,
	}
	for in, want := range tests {
		if got := ParseScope(in); got != want {
			t.Errorf("ParseScope(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewFilterState(t *testing.T) {
	state := NewFilterState()
	if state.Query != "" || state.Scope != ScopeAll {
		t.Errorf("NewFilterState() = %+v", state)
	}
}
