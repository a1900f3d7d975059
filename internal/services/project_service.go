package services

import (
	"errors"
	"fmt"

	"cjdelfin.dev/internal/models"
)

// TeaserLimit is how many projects the home page shows. The "view all" link
// appears only when the catalog is larger than this.
const TeaserLimit = 3

// ErrProjectNotFound is returned by GetByID for unknown IDs
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	catalog       models.Catalog
	featuredCount int
}

// NewProjectService creates a new ProjectService over its own copy of catalog
func NewProjectService(catalog models.Catalog) *ProjectService {
	catalog = catalog.Clone()
	return &ProjectService{
		catalog:       catalog,
		featuredCount: catalog.FeaturedCount(),
	}
}

// GetAll returns a copy of all projects
func (s *ProjectService) GetAll() models.Catalog {
	return s.catalog.Clone()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (models.Project, error) {
	project, ok := s.catalog.Find(id)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return project, nil
}

// Total is the catalog size
func (s *ProjectService) Total() int {
	return s.catalog.Len()
}

// FeaturedCount is the number of featured projects
func (s *ProjectService) FeaturedCount() int {
	return s.featuredCount
}

// TeaserView is the home page project section
type TeaserView struct {
	Projects    models.Catalog `json:"projects"`
	Total       int            `json:"total"`
	ShowViewAll bool           `json:"show_view_all"`
}

// Teaser returns the first TeaserLimit projects, unfiltered
func (s *ProjectService) Teaser() TeaserView {
	return TeaserView{
		Projects:    s.catalog.Head(TeaserLimit),
		Total:       s.catalog.Len(),
		ShowViewAll: s.catalog.Len() > TeaserLimit,
	}
}

// ListingView is the full listing page for one filter state
type ListingView struct {
	State         models.FilterState `json:"state"`
	Projects      models.Catalog     `json:"projects"`
	Count         int                `json:"count"`
	Total         int                `json:"total"`
	FeaturedCount int                `json:"featured_count"`
	Empty         bool               `json:"empty"`
}

// Listing recomputes the filtered listing for state
func (s *ProjectService) Listing(state models.FilterState) ListingView {
	if state.Scope != models.ScopeFeatured {
		state.Scope = models.ScopeAll
	}
	filtered := models.Filter(s.catalog, state.Query, state.Scope)
	return ListingView{
		State:         state,
		Projects:      filtered,
		Count:         filtered.Len(),
		Total:         s.catalog.Len(),
		FeaturedCount: s.featuredCount,
		Empty:         filtered.Len() == 0,
	}
}

// Summary is the live result count line
func (v ListingView) Summary() string {
	return fmt.Sprintf("Showing %d of %d projects", v.Count, v.Total)
}
