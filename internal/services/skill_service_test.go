package services

import (
	"testing"

	"cjdelfin.dev/internal/models"
)

func TestSkillService_Stats(t *testing.T) {
	svc := NewSkillService([]models.SkillCategory{
		{Name: "Frontend", Skills: []models.Skill{
			{Name: "React", Level: models.LevelIntermediate},
			{Name: "CSS", Level: models.LevelAdvanced},
		}},
		{Name: "Tools", Skills: []models.Skill{
			{Name: "VS Code", Level: models.LevelAdvanced},
			{Name: "Git", Level: models.LevelBeginner},
			{Name: "Jest", Level: models.LevelBeginner},
		}},
	})

	stats := svc.Stats()
	if stats.Total != 5 || stats.Advanced != 2 || stats.Categories != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestSkillService_StatsEmpty(t *testing.T) {
	if stats := NewSkillService(nil).Stats(); stats != (SkillStats{}) {
		t.Errorf("Stats() = %+v, want zero", stats)
	}
}

func TestStars(t *testing.T) {
	if got := Stars(models.LevelAdvanced); got != "⭐⭐⭐" {
		t.Errorf("Stars(advanced) = %q", got)
	}
	if got := Stars("unknown"); got != "" {
		t.Errorf("Stars(unknown) = %q", got)
	}
	legend := NewSkillService(nil).Legend()
	if len(legend) != 3 || legend[0].Level != models.LevelBeginner || legend[2].Stars != "⭐⭐⭐" {
		t.Errorf("Legend() = %+v", legend)
	}
}
