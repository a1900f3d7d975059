package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cjdelfin.dev/internal/metrics"
	"cjdelfin.dev/internal/services"
)

// ProjectHandler handles the project JSON endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects?q=&scope=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	view := h.projectService.Listing(filterStateFrom(r))
	metrics.RecordProjectSearch(string(view.State.Scope), view.Empty)
	respondJSON(w, http.StatusOK, view)
}

// Teaser handles GET /api/projects/teaser
func (h *ProjectHandler) Teaser(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Teaser())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
