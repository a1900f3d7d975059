package views

import (
	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
)

// HomeData feeds the single page home view
type HomeData struct {
	Personal    models.Personal
	About       models.About
	Teaser      services.TeaserView
	Skills      []models.SkillCategory
	SkillStats  services.SkillStats
	SkillLegend []services.LevelLegend
	Contact     models.Contact
}

// NewHomeData assembles everything the home page shows
func NewHomeData(p *models.Portfolio, ps *services.ProjectService, ss *services.SkillService) HomeData {
	return HomeData{
		Personal:    p.Personal,
		About:       p.About,
		Teaser:      ps.Teaser(),
		Skills:      ss.Categories(),
		SkillStats:  ss.Stats(),
		SkillLegend: ss.Legend(),
		Contact:     p.Contact,
	}
}
