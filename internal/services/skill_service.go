package services

import (
	"strings"

	"cjdelfin.dev/internal/models"
)

// SkillStats are the totals under the skills matrix
type SkillStats struct {
	Total      int `json:"total"`
	Advanced   int `json:"advanced"`
	Categories int `json:"categories"`
}

// LevelLegend describes one skill level in the legend
type LevelLegend struct {
	Level       models.SkillLevel `json:"level"`
	Label       string            `json:"label"`
	Stars       string            `json:"stars"`
	Description string            `json:"description"`
}

// SkillService exposes the skills matrix
type SkillService struct {
	categories []models.SkillCategory
}

// NewSkillService creates a new SkillService
func NewSkillService(categories []models.SkillCategory) *SkillService {
	return &SkillService{categories: categories}
}

// Categories returns the skill categories in fixture order
func (s *SkillService) Categories() []models.SkillCategory {
	return s.categories
}

// Stats counts skills across all categories
func (s *SkillService) Stats() SkillStats {
	stats := SkillStats{Categories: len(s.categories)}
	for _, category := range s.categories {
		stats.Total += len(category.Skills)
		for _, skill := range category.Skills {
			if skill.Level == models.LevelAdvanced {
				stats.Advanced++
			}
		}
	}
	return stats
}

// Legend returns the level legend, lowest level first
func (s *SkillService) Legend() []LevelLegend {
	return []LevelLegend{
		{Level: models.LevelBeginner, Label: "Beginner", Stars: Stars(models.LevelBeginner), Description: "Learning & exploring"},
		{Level: models.LevelIntermediate, Label: "Intermediate", Stars: Stars(models.LevelIntermediate), Description: "Comfortable & productive"},
		{Level: models.LevelAdvanced, Label: "Advanced", Stars: Stars(models.LevelAdvanced), Description: "Expert level proficiency"},
	}
}

// Stars renders a level as a row of stars
func Stars(level models.SkillLevel) string {
	return strings.Repeat("⭐", level.Stars())
}
