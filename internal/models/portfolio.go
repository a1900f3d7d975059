package models

import (
	"errors"
	"fmt"
	"strings"
)

// SkillLevel is a self-assessed proficiency
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// Stars returns the number of stars shown for the level
func (l SkillLevel) Stars() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

// Valid reports whether l is one of the known levels
func (l SkillLevel) Valid() bool {
	return l.Stars() > 0
}

// Personal holds the hero banner content
type Personal struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Avatar      string `json:"avatar,omitempty" yaml:"avatar"`
}

// About holds the about section content
type About struct {
	Summary    string   `json:"summary" yaml:"summary"`
	Experience []string `json:"experience" yaml:"experience"`
	Interests  []string `json:"interests" yaml:"interests"`
}

// Skill is one entry in the skills matrix
type Skill struct {
	Name  string     `json:"name" yaml:"name"`
	Level SkillLevel `json:"level" yaml:"level"`
	Icon  string     `json:"icon,omitempty" yaml:"icon"`
}

// SkillCategory groups skills under a heading
type SkillCategory struct {
	Name   string  `json:"name" yaml:"name"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

// SocialLink points at an external profile
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Icon     string `json:"icon" yaml:"icon"`
}

// Contact holds the contact details shown next to the form
type Contact struct {
	Email    string       `json:"email" yaml:"email"`
	Phone    string       `json:"phone,omitempty" yaml:"phone"`
	Location string       `json:"location" yaml:"location"`
	Social   []SocialLink `json:"social" yaml:"social"`
}

// Portfolio is the whole static site fixture
type Portfolio struct {
	Personal Personal        `json:"personal" yaml:"personal"`
	About    About           `json:"about" yaml:"about"`
	Projects Catalog         `json:"projects" yaml:"projects"`
	Skills   []SkillCategory `json:"skills" yaml:"skills"`
	Contact  Contact         `json:"contact" yaml:"contact"`
}

// Validate checks the fixture invariants
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Personal.Name) == "" {
		errs = append(errs, errors.New("personal.name is required"))
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, project := range p.Projects {
		if project.ID == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
		} else if seen[project.ID] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, project.ID))
		}
		seen[project.ID] = true
		if strings.TrimSpace(project.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}

	for _, category := range p.Skills {
		for _, skill := range category.Skills {
			if !skill.Level.Valid() {
				errs = append(errs, fmt.Errorf("skills %q/%q: unknown level %q", category.Name, skill.Name, skill.Level))
			}
		}
	}
	return errors.Join(errs...)
}
