package services

import (
	"testing"

	"cjdelfin.dev/internal/models"
)

func TestNewCard(t *testing.T) {
	tests := []struct {
		name        string
		project     models.Project
		wantActions []ActionKind
		wantImage   bool
	}{
		{
			name:        "both links",
			project:     models.Project{ID: "a", Title: "A", LiveURL: "https://a.dev", SourceURL: "https://github.com/a"},
			wantActions: []ActionKind{ActionLive, ActionSource},
		},
		{
			name:        "only source",
			project:     models.Project{ID: "b", Title: "B", SourceURL: "https://github.com/b"},
			wantActions: []ActionKind{ActionSource},
		},
		{
			name:        "only live",
			project:     models.Project{ID: "c", Title: "C", LiveURL: "https://c.dev"},
			wantActions: []ActionKind{ActionLive},
		},
		{
			name:        "no links with image",
			project:     models.Project{ID: "d", Title: "D", Image: "/static/d.png"},
			wantActions: []ActionKind{},
			wantImage:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewCard(tt.project)
			if len(card.Actions) != len(tt.wantActions) {
				t.Fatalf("actions = %+v, want kinds %v", card.Actions, tt.wantActions)
			}
			for i, kind := range tt.wantActions {
				if card.Actions[i].Kind != kind {
					t.Errorf("action[%d] = %q, want %q", i, card.Actions[i].Kind, kind)
				}
			}
			if card.HasImage() != tt.wantImage {
				t.Errorf("HasImage() = %v, want %v", card.HasImage(), tt.wantImage)
			}
			if !tt.wantImage && card.Placeholder != PlaceholderGlyph {
				t.Errorf("Placeholder = %q, want %q", card.Placeholder, PlaceholderGlyph)
			}
		})
	}
}

func TestNewCardPreservesTechnologiesAndFeatured(t *testing.T) {
	project := models.Project{
		ID:           "x",
		Title:        "X",
		Technologies: []string{"Go", "React", "Go"},
		Featured:     true,
	}
	card := NewCard(project)
	if len(card.Technologies) != 3 || card.Technologies[0] != "Go" || card.Technologies[1] != "React" || card.Technologies[2] != "Go" {
		t.Errorf("Technologies = %v", card.Technologies)
	}
	if !card.Featured {
		t.Error("expected featured card")
	}

	card.Technologies[0] = "changed"
	if project.Technologies[0] != "Go" {
		t.Error("NewCard aliases the project technologies")
	}
}

func TestNewCardIsDeterministic(t *testing.T) {
	project := models.Project{ID: "y", Title: "Y", LiveURL: "https://y.dev"}
	a, b := NewCard(project), NewCard(project)
	if a.Placeholder != b.Placeholder || len(a.Actions) != len(b.Actions) || a.Actions[0] != b.Actions[0] {
		t.Errorf("cards differ: %+v vs %+v", a, b)
	}
}
