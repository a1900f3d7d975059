package services

import (
	"errors"
	"fmt"
	"testing"

	"cjdelfin.dev/internal/models"
)

func makeCatalog(n int, featured ...int) models.Catalog {
	isFeatured := make(map[int]bool, len(featured))
	for _, i := range featured {
		isFeatured[i] = true
	}
	catalog := make(models.Catalog, n)
	for i := range catalog {
		catalog[i] = models.Project{
			ID:           fmt.Sprint(i),
			Title:        fmt.Sprintf("Project %d", i),
			Description:  "demo",
			Technologies: []string{"Go"},
			Featured:     isFeatured[i],
		}
	}
	return catalog
}

func TestProjectService_Teaser(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		wantIDs     []string
		wantViewAll bool
	}{
		{name: "six projects", size: 6, wantIDs: []string{"0", "1", "2"}, wantViewAll: true},
		{name: "four projects", size: 4, wantIDs: []string{"0", "1", "2"}, wantViewAll: true},
		{name: "exactly three", size: 3, wantIDs: []string{"0", "1", "2"}, wantViewAll: false},
		{name: "two projects", size: 2, wantIDs: []string{"0", "1"}, wantViewAll: false},
		{name: "empty", size: 0, wantIDs: []string{}, wantViewAll: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProjectService(makeCatalog(tt.size, 4, 5))
			view := svc.Teaser()

			got := make([]string, 0, len(view.Projects))
			for _, p := range view.Projects {
				got = append(got, p.ID)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.wantIDs) {
				t.Errorf("Teaser().Projects = %v, want %v", got, tt.wantIDs)
			}
			if view.ShowViewAll != tt.wantViewAll {
				t.Errorf("Teaser().ShowViewAll = %v, want %v", view.ShowViewAll, tt.wantViewAll)
			}
			if view.Total != tt.size {
				t.Errorf("Teaser().Total = %d, want %d", view.Total, tt.size)
			}
		})
	}
}

func TestProjectService_ListingCounters(t *testing.T) {
	svc := NewProjectService(makeCatalog(5, 0, 2, 4))

	for _, state := range []models.FilterState{
		models.NewFilterState(),
		{Query: "project 1", Scope: models.ScopeAll},
		{Query: "nothing", Scope: models.ScopeFeatured},
	} {
		view := svc.Listing(state)
		if view.Total != 5 {
			t.Errorf("Listing(%+v).Total = %d, want 5", state, view.Total)
		}
		if view.FeaturedCount != 3 {
			t.Errorf("Listing(%+v).FeaturedCount = %d, want 3", state, view.FeaturedCount)
		}
	}
}

func TestProjectService_ListingEmptyState(t *testing.T) {
	svc := NewProjectService(makeCatalog(6))

	view := svc.Listing(models.FilterState{Query: "zzz-nonexistent", Scope: models.ScopeAll})
	if view.Count != 0 || !view.Empty {
		t.Errorf("expected empty listing, got count=%d empty=%v", view.Count, view.Empty)
	}
	if view.Total != 6 {
		t.Errorf("Total = %d, want 6", view.Total)
	}
	if got := view.Summary(); got != "Showing 0 of 6 projects" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestProjectService_ListingFeatured(t *testing.T) {
	svc := NewProjectService(makeCatalog(5, 1, 3))

	view := svc.Listing(models.FilterState{Scope: models.ScopeFeatured})
	if view.Count != 2 || view.Projects[0].ID != "1" || view.Projects[1].ID != "3" {
		t.Errorf("featured listing = %+v", view.Projects)
	}
	if view.Empty {
		t.Error("listing should not be empty")
	}
}

func TestProjectService_ListingNormalisesScope(t *testing.T) {
	svc := NewProjectService(makeCatalog(2))
	view := svc.Listing(models.FilterState{Scope: "weird"})
	if view.State.Scope != models.ScopeAll {
		t.Errorf("State.Scope = %q, want all", view.State.Scope)
	}
	if view.Count != 2 {
		t.Errorf("Count = %d, want 2", view.Count)
	}
}

func TestProjectService_GetByID(t *testing.T) {
	svc := NewProjectService(makeCatalog(3))

	p, err := svc.GetByID("2")
	if err != nil || p.Title != "Project 2" {
		t.Fatalf("GetByID(2) = %+v, %v", p, err)
	}

	_, err = svc.GetByID("404")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_GetAllIsReadOnlyView(t *testing.T) {
	svc := NewProjectService(makeCatalog(2))
	all := svc.GetAll()
	all = append(all, models.Project{ID: "extra"})
	if svc.Total() != 2 || len(svc.GetAll()) != 2 {
		t.Fatal("appending to GetAll changed the service catalog")
	}
}

func TestProjectService_ResultsDoNotLeakCatalog(t *testing.T) {
	t.Run("GetAll", func(t *testing.T) {
		svc := NewProjectService(makeCatalog(3, 0))
		all := svc.GetAll()
		all[0].Title = "mutated"
		all[1].Technologies[0] = "Rust"
		again := svc.GetAll()
		if again[0].Title != "Project 0" || again[1].Technologies[0] != "Go" {
			t.Fatalf("GetAll returned shared elements: %+v", again[:2])
		}
	})

	t.Run("Teaser", func(t *testing.T) {
		svc := NewProjectService(makeCatalog(5, 0))
		teaser := svc.Teaser()
		teaser.Projects[1].Featured = true
		if svc.FeaturedCount() != 1 || svc.Listing(models.FilterState{Scope: models.ScopeFeatured}).Count != 1 {
			t.Fatal("marking a teaser project featured changed the catalog")
		}
		if svc.GetAll()[1].Featured {
			t.Fatal("teaser edit is visible through GetAll")
		}
	})

	t.Run("Listing", func(t *testing.T) {
		svc := NewProjectService(makeCatalog(4))
		state := models.FilterState{Query: "go", Scope: models.ScopeAll}
		listing := svc.Listing(state)
		for i := range listing.Projects {
			listing.Projects[i].Technologies[0] = "Rust"
		}
		if got := svc.Listing(state).Count; got != 4 {
			t.Fatalf("Listing(go).Count = %d after editing results, want 4", got)
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		svc := NewProjectService(makeCatalog(2))
		p, err := svc.GetByID("1")
		if err != nil {
			t.Fatal(err)
		}
		p.Technologies[0] = "Rust"
		if again, _ := svc.GetByID("1"); again.Technologies[0] != "Go" {
			t.Fatal("GetByID returned shared technologies")
		}
	})

	t.Run("constructor input", func(t *testing.T) {
		catalog := makeCatalog(2, 1)
		svc := NewProjectService(catalog)
		catalog[0].Featured = true
		catalog[0].Technologies[0] = "Rust"
		if svc.FeaturedCount() != 1 || svc.Listing(models.FilterState{Scope: models.ScopeFeatured}).Count != 1 {
			t.Fatal("editing the caller's catalog changed the service")
		}
		if svc.GetAll()[0].Technologies[0] != "Go" {
			t.Fatal("service shares technologies with the caller's catalog")
		}
	})
}
