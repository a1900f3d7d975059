package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"cjdelfin.dev/internal/config"
	"cjdelfin.dev/internal/contact"
	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
)

func testPortfolio() *models.Portfolio {
	return &models.Portfolio{
		Personal: models.Personal{Name: "Carl Jefferson", Title: "Developer"},
		Projects: models.Catalog{
			{ID: "1", Title: "Weather App", Description: "Forecasts", Technologies: []string{"React"}, Featured: true},
			{ID: "2", Title: "Task Manager", Description: "Todos", Technologies: []string{"Vue"}},
			{ID: "3", Title: "Chat", Description: "Realtime chat", Technologies: []string{"Go"}, Featured: true},
			{ID: "4", Title: "Blog", Description: "Posts", Technologies: []string{"Hugo"}},
		},
		Skills: []models.SkillCategory{{Name: "Backend", Skills: []models.Skill{{Name: "Go", Level: models.LevelAdvanced}}}},
		Contact: models.Contact{Email: "carl@example.com"},
	}
}

func newTestRouter(t *testing.T, send contact.SenderFunc) http.Handler {
	t.Helper()
	logger := zaptest.NewLogger(t)
	if send == nil {
		send = func(context.Context, contact.Message) error { return nil }
	}
	cfg := &config.Config{Portfolio: testPortfolio()}
	return SetupRoutes(cfg, contact.NewService(send, nil, logger), logger)
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHomePage(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, `<article class="card"`); got != services.TeaserLimit {
		t.Errorf("teaser cards = %d, want %d", got, services.TeaserLimit)
	}
	if !strings.Contains(body, "View All Projects (4)") {
		t.Error("missing view all link")
	}
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("home page should be a full document")
	}
}

func TestProjectsPage(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name     string
		target   string
		htmx     bool
		want     []string
		wantFull bool
	}{
		{
			name:     "full page",
			target:   "/projects",
			want:     []string{"Showing 4 of 4 projects", "All (4)", "Featured (2)"},
			wantFull: true,
		},
		{
			name:   "htmx fragment with query",
			target: "/projects?q=REACT",
			htmx:   true,
			want:   []string{"Showing 1 of 4 projects", "Weather App"},
		},
		{
			name:   "featured scope",
			target: "/projects?scope=featured",
			htmx:   true,
			want:   []string{"Showing 2 of 4 projects", "Chat"},
		},
		{
			name:   "unknown scope falls back to all",
			target: "/projects?scope=archived",
			htmx:   true,
			want:   []string{"Showing 4 of 4 projects"},
		},
		{
			name:   "empty state",
			target: "/projects?q=nothing-matches",
			htmx:   true,
			want:   []string{"Showing 0 of 4 projects", "No projects found matching your criteria."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := do(t, router, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			body := rec.Body.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("missing %q", want)
				}
			}
			if got := strings.Contains(body, "<!DOCTYPE html>"); got != tt.wantFull {
				t.Errorf("full document = %v, want %v", got, tt.wantFull)
			}
		})
	}
}

func TestListProjectsJSON(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), httptest.NewRequest(http.MethodGet, "/api/projects?q=a&scope=featured", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var view services.ListingView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Total != 4 || view.FeaturedCount != 2 {
		t.Errorf("counters = %d/%d", view.Total, view.FeaturedCount)
	}
	for _, p := range view.Projects {
		if !p.Featured {
			t.Errorf("non-featured project %q in featured scope", p.ID)
		}
	}
	if view.Count != len(view.Projects) {
		t.Errorf("count = %d, projects = %d", view.Count, len(view.Projects))
	}
}

func TestTeaserJSON(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), httptest.NewRequest(http.MethodGet, "/api/projects/teaser", nil))
	var teaser services.TeaserView
	if err := json.Unmarshal(rec.Body.Bytes(), &teaser); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(teaser.Projects) != 3 || !teaser.ShowViewAll || teaser.Total != 4 {
		t.Errorf("teaser = %+v", teaser)
	}
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/api/projects/3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p models.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Title != "Chat" {
		t.Errorf("title = %q", p.Title)
	}

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/api/projects/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPortfolioAndSkillsJSON(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	var p models.Portfolio
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Personal.Name != "Carl Jefferson" || len(p.Projects) != 4 {
		t.Errorf("portfolio = %+v", p.Personal)
	}

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	var skills struct {
		Stats services.SkillStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &skills); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if skills.Stats != (services.SkillStats{Total: 1, Advanced: 1, Categories: 1}) {
		t.Errorf("stats = %+v", skills.Stats)
	}
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Project inquiry"},
		"message": {"Let us build something together."},
	}
}

func TestSubmitForm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got contact.Message
		router := newTestRouter(t, func(_ context.Context, m contact.Message) error {
			got = m
			return nil
		})
		rec := do(t, router, formRequest(validForm()))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Message sent successfully!") {
			t.Errorf("body = %s", rec.Body.String())
		}
		if got.Email != "ada@example.com" {
			t.Errorf("sent = %+v", got)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		form := validForm()
		form.Set("email", "nope")
		rec := do(t, newTestRouter(t, nil), formRequest(form))
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Please enter a valid email address") || !strings.Contains(body, `value="Ada Lovelace"`) {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		router := newTestRouter(t, func(context.Context, contact.Message) error {
			return errors.New("provider down")
		})
		rec := do(t, router, formRequest(validForm()))
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Something went wrong. Please try again or email me directly.") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestSubmitJSON(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "valid", body: `{"name":"Ada","email":"ada@example.com","subject":"Hello there","message":"A long enough message"}`, status: http.StatusOK},
		{name: "invalid", body: `{"name":"A"}`, status: http.StatusUnprocessableEntity},
		{name: "malformed", body: `{`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := do(t, router, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestStaticAndMetrics(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("static status = %d", rec.Code)
	}

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "http_request_duration_seconds") {
		t.Errorf("metrics status = %d", rec.Code)
	}
}
