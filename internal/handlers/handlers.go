package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cjdelfin.dev/internal/config"
	"cjdelfin.dev/internal/contact"
	"cjdelfin.dev/internal/middleware"
	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
	"cjdelfin.dev/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, contactService *contact.Service, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)

	// Initialize services
	projectService := services.NewProjectService(cfg.Portfolio.Projects)
	skillService := services.NewSkillService(cfg.Portfolio.Skills)

	// Initialize handlers
	pageHandler := NewPageHandler(cfg.Portfolio, projectService, skillService, time.Now)
	projectHandler := NewProjectHandler(projectService)
	portfolioHandler := NewPortfolioHandler(cfg.Portfolio, skillService)
	contactHandler := NewContactHandler(contactService, logger)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/projects", pageHandler.Projects)
	r.Post("/contact", contactHandler.SubmitForm)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", portfolioHandler.GetPortfolio)
		r.Get("/skills", portfolioHandler.GetSkills)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/teaser", projectHandler.Teaser)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Post("/contact", contactHandler.SubmitJSON)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Static files
	fileServer := http.FileServer(http.FS(views.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// filterStateFrom reads ?q= and ?scope= into a filter state
func filterStateFrom(r *http.Request) models.FilterState {
	q := r.URL.Query()
	return models.FilterState{
		Query: q.Get("q"),
		Scope: models.ParseScope(q.Get("scope")),
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// respondHTML renders a component with the given status
func respondHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
