package handlers

import (
	"net/http"

	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
)

// PortfolioHandler exposes the fixture as JSON
type PortfolioHandler struct {
	portfolio    *models.Portfolio
	skillService *services.SkillService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(p *models.Portfolio, ss *services.SkillService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: p, skillService: ss}
}

// GetPortfolio handles GET /api/portfolio
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolio)
}

// GetSkills handles GET /api/skills
func (h *PortfolioHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Categories []models.SkillCategory `json:"categories"`
		Stats      services.SkillStats    `json:"stats"`
		Legend     []services.LevelLegend `json:"legend"`
	}{
		Categories: h.skillService.Categories(),
		Stats:      h.skillService.Stats(),
		Legend:     h.skillService.Legend(),
	})
}
