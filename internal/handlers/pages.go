package handlers

import (
	"net/http"
	"time"

	"cjdelfin.dev/internal/metrics"
	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
	"cjdelfin.dev/internal/views"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	portfolio      *models.Portfolio
	projectService *services.ProjectService
	skillService   *services.SkillService
	now            func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(p *models.Portfolio, ps *services.ProjectService, ss *services.SkillService, now func() time.Time) *PageHandler {
	return &PageHandler{portfolio: p, projectService: ps, skillService: ss, now: now}
}

func (h *PageHandler) chrome(title string, onHome bool) views.Chrome {
	return views.Chrome{
		Title:  title,
		Owner:  h.portfolio.Personal.Name,
		Year:   h.now().Year(),
		OnHome: onHome,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	body := views.HomePage(views.NewHomeData(h.portfolio, h.projectService, h.skillService))
	respondHTML(w, r, http.StatusOK, views.Layout(h.chrome(h.portfolio.Personal.Name, true), body))
}

// Projects handles GET /projects. HTMX requests get only the results fragment.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	view := h.projectService.Listing(filterStateFrom(r))
	metrics.RecordProjectSearch(string(view.State.Scope), view.Empty)

	if isHTMX(r) {
		respondHTML(w, r, http.StatusOK, views.ProjectResults(view))
		return
	}
	respondHTML(w, r, http.StatusOK, views.Layout(h.chrome("All Projects", false), views.ProjectsPage(view)))
}
