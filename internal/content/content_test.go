package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	portfolio := Load()

	if portfolio.Personal.Name != "Carl Jefferson" {
		t.Errorf("Personal.Name = %q", portfolio.Personal.Name)
	}
	if got := portfolio.Projects.Len(); got != 6 {
		t.Errorf("projects = %d, want 6", got)
	}
	if got := portfolio.Projects.FeaturedCount(); got != 3 {
		t.Errorf("featured = %d, want 3", got)
	}
	if len(portfolio.Skills) != 3 {
		t.Errorf("skill categories = %d, want 3", len(portfolio.Skills))
	}

	first := portfolio.Projects[0]
	if first.ID != "1" || first.SourceURL == "" || first.LiveURL == "" {
		t.Errorf("first project = %+v", first)
	}
	if first.Technologies[0] != "React" || first.Technologies[len(first.Technologies)-1] != "Express" {
		t.Errorf("technology order not preserved: %v", first.Technologies)
	}
	if portfolio.Contact.Phone == "" {
		t.Error("expected phone to be set")
	}
}

func TestParseRejectsInvalidFixture(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: "projects: [::"},
		{name: "missing title", data: "personal: {name: A}\nprojects:\n  - id: a\n"},
		{name: "duplicate id", data: "personal: {name: A}\nprojects:\n  - {id: a, title: A}\n  - {id: a, title: B}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	data := "personal: {name: Test}\nprojects:\n  - {id: a, title: Alpha, technologies: [Go, Go]}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	portfolio, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := portfolio.Projects[0].Technologies; len(got) != 2 {
		t.Errorf("duplicate technologies should be kept, got %v", got)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
