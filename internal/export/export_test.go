package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cjdelfin.dev/internal/content"
	"cjdelfin.dev/internal/services"
	"cjdelfin.dev/internal/views"
)

func TestSite(t *testing.T) {
	dir := t.TempDir()
	files, err := Site(context.Background(), dir, content.Load(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Site: %v", err)
	}

	written := map[string]bool{}
	for _, f := range files {
		written[filepath.ToSlash(f.Path)] = true
		if f.Bytes == 0 {
			t.Errorf("%s is empty", f.Path)
		}
	}
	for _, want := range []string{"index.html", "projects/index.html", "projects.json", "static/site.css", "static/listing.js"} {
		if !written[want] {
			t.Errorf("missing %s in %v", want, files)
		}
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "Carl Jefferson") || !strings.Contains(string(index), "© 2026") {
		t.Error("home page is missing owner or year")
	}
	if got := strings.Count(string(index), `<article class="card"`); got != services.TeaserLimit {
		t.Errorf("teaser cards = %d", got)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "projects.json"))
	if err != nil {
		t.Fatal(err)
	}
	var listing services.ListingView
	if err := json.Unmarshal(raw, &listing); err != nil {
		t.Fatalf("decode projects.json: %v", err)
	}
	if listing.Count != 6 || listing.Total != 6 || listing.FeaturedCount != 3 {
		t.Errorf("listing counters = %d/%d/%d", listing.Count, listing.Total, listing.FeaturedCount)
	}
}

func TestSiteListingFiltersWithoutServer(t *testing.T) {
	dir := t.TempDir()
	if _, err := Site(context.Background(), dir, content.Load(), time.Now()); err != nil {
		t.Fatalf("Site: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "projects", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	page := string(raw)

	for _, unwanted := range []string{"hx-get", `action="/projects"`, `href="/projects?scope=featured"`} {
		if strings.Contains(page, unwanted) {
			t.Errorf("exported listing still needs the server: found %q", unwanted)
		}
	}
	for _, want := range []string{
		`<script src="` + views.ListingScript + `" defer></script>`,
		"data-static-listing",
		"Showing 6 of 6 projects",
		"Featured (3)",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("missing %q in exported listing", want)
		}
	}
	if got := strings.Count(page, "data-search="); got != 6 {
		t.Errorf("filterable items = %d, want 6", got)
	}
	if got := strings.Count(page, `data-featured="true"`); got != 3 {
		t.Errorf("featured items = %d, want 3", got)
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(views.ListingScript, "/")))); err != nil {
		t.Errorf("listing script not exported: %v", err)
	}
}
