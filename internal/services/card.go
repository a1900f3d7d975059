package services

import "cjdelfin.dev/internal/models"

// PlaceholderGlyph stands in for a missing project image
const PlaceholderGlyph = "</>"

// ActionKind identifies a card action
type ActionKind string

const (
	ActionLive   ActionKind = "live"
	ActionSource ActionKind = "source"
)

// Action is a link shown at the bottom of a project card
type Action struct {
	Kind  ActionKind `json:"kind"`
	Label string     `json:"label"`
	URL   string     `json:"url"`
}

// Card is the display model of one project
type Card struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	Actions      []Action `json:"actions"`
}

// HasImage reports whether the card shows the project image
func (c Card) HasImage() bool {
	return c.Image != ""
}

// NewCard maps a project to its card. It only reads p.
func NewCard(p models.Project) Card {
	card := Card{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: append([]string(nil), p.Technologies...),
		Featured:     p.Featured,
		Actions:      make([]Action, 0, 2),
	}
	if card.Image == "" {
		card.Placeholder = PlaceholderGlyph
	}
	if p.LiveURL != "" {
		card.Actions = append(card.Actions, Action{Kind: ActionLive, Label: "Live Demo", URL: p.LiveURL})
	}
	if p.SourceURL != "" {
		card.Actions = append(card.Actions, Action{Kind: ActionSource, Label: "Code", URL: p.SourceURL})
	}
	return card
}

// NewCards maps every project of c
func NewCards(c models.Catalog) []Card {
	cards := make([]Card, len(c))
	for i, p := range c {
		cards[i] = NewCard(p)
	}
	return cards
}
