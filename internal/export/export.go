// Package export renders the site to static files.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"

	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
	"cjdelfin.dev/internal/views"
)

// File is one written output
type File struct {
	Path  string
	Bytes int
}

// Site writes index.html, projects/index.html, projects.json and the static
// assets under dir. Paths in the result are relative to dir. The exported
// listing carries every project and is filtered by static/listing.js.
func Site(ctx context.Context, dir string, portfolio *models.Portfolio, now time.Time) ([]File, error) {
	projectService := services.NewProjectService(portfolio.Projects)
	skillService := services.NewSkillService(portfolio.Skills)
	listing := projectService.Listing(models.NewFilterState())

	chrome := func(title string, onHome bool, scripts ...string) views.Chrome {
		return views.Chrome{Title: title, Owner: portfolio.Personal.Name, Year: now.Year(), OnHome: onHome, Scripts: scripts}
	}

	var files []File
	write := func(rel string, data []byte) error {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		files = append(files, File{Path: rel, Bytes: len(data)})
		return nil
	}
	page := func(rel string, c templ.Component) error {
		data, err := templ.ToGoHTML(ctx, c)
		if err != nil {
			return fmt.Errorf("render %s: %w", rel, err)
		}
		return write(rel, []byte(data))
	}

	home := views.HomePage(views.NewHomeData(portfolio, projectService, skillService))
	if err := page("index.html", views.Layout(chrome(portfolio.Personal.Name, true), home)); err != nil {
		return nil, err
	}
	// there is no server behind the export, so the listing filters in the browser
	listingPage := views.Layout(chrome("All Projects", false, views.ListingScript), views.StaticProjectsPage(listing))
	if err := page(filepath.Join("projects", "index.html"), listingPage); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal projects.json: %w", err)
	}
	if err := write("projects.json", data); err != nil {
		return nil, err
	}

	err = fs.WalkDir(views.Static(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		asset, err := fs.ReadFile(views.Static(), path)
		if err != nil {
			return err
		}
		return write(filepath.Join("static", path), asset)
	})
	if err != nil {
		return nil, fmt.Errorf("copy static assets: %w", err)
	}
	return files, nil
}
