package models

import "strings"

// Project represents a portfolio project
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Image        string   `json:"image,omitempty" yaml:"image"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	LiveURL      string   `json:"live_url,omitempty" yaml:"live_url"`
	SourceURL    string   `json:"github_url,omitempty" yaml:"github_url"`
	Featured     bool     `json:"featured" yaml:"featured"`
}

// Matches reports whether query is a case-insensitive substring of the
// title, the description or any technology tag. The empty query matches.
func (p Project) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), q) {
			return true
		}
	}
	return false
}

// Clone returns a copy of p that shares no memory with it
func (p Project) Clone() Project {
	if p.Technologies != nil {
		p.Technologies = append([]string(nil), p.Technologies...)
	}
	return p
}

// InScope reports whether the project belongs to the given scope
func (p Project) InScope(scope Scope) bool {
	return scope != ScopeFeatured || p.Featured
}

// Catalog is the ordered, read-only list of projects.
// Insertion order is display order.
type Catalog []Project

// Len returns the number of projects
func (c Catalog) Len() int {
	return len(c)
}

// Head returns a copy of at most the first n projects
func (c Catalog) Head(n int) Catalog {
	if n < 0 {
		n = 0
	}
	if n > len(c) {
		n = len(c)
	}
	return c[:n].Clone()
}

// Clone returns a deep copy of the catalog
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, p := range c {
		out[i] = p.Clone()
	}
	return out
}

// FeaturedCount returns how many projects are flagged as featured
func (c Catalog) FeaturedCount() int {
	count := 0
	for _, p := range c {
		if p.Featured {
			count++
		}
	}
	return count
}

// Find returns a copy of the project with the given ID
func (c Catalog) Find(id string) (Project, bool) {
	for _, p := range c {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Project{}, false
}
