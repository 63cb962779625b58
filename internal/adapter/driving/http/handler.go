// Package httphandler implements the read-only JSON API driving adapter.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/guijosegon/portfolio/internal/application"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	repos     *application.RepoCache
	showcase  application.Showcase
	healthSvc *application.HealthService
	now       func() time.Time
	logger    *slog.Logger
}

// HandlerOption configures optional Handler behavior.
type HandlerOption func(*Handler)

// WithClock replaces time.Now as the reference for activity tiers.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	repos *application.RepoCache,
	showcase application.Showcase,
	healthSvc *application.HealthService,
	logger *slog.Logger,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		repos:     repos,
		showcase:  showcase,
		healthSvc: healthSvc,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterAPIRoutes registers the JSON API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/repos", h.ListRepos)
	mux.HandleFunc("GET /api/v1/repos/showcase", h.Showcase)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ListRepos returns the full display list: forks and hidden names removed,
// most recently pushed first, without the page's cap.
func (h *Handler) ListRepos(w http.ResponseWriter, r *http.Request) {
	display := h.showcase.Project(h.repos.Load(r.Context()))
	featured, _ := h.showcase.Partition(display)

	featuredIDs := make(map[int64]bool, len(featured))
	for _, f := range featured {
		featuredIDs[f.ID] = true
	}

	now := h.now()
	resp := make([]RepoResponse, 0, len(display))
	for _, repo := range display {
		resp = append(resp, toRepoResponse(repo, h.showcase, featuredIDs[repo.ID], now))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Showcase returns the featured group and the capped group of other repositories.
func (h *Handler) Showcase(w http.ResponseWriter, r *http.Request) {
	display := h.showcase.Project(h.repos.Load(r.Context()))
	featured, other := h.showcase.Partition(display)

	now := h.now()
	writeJSON(w, http.StatusOK, ShowcaseResponse{
		Featured: toRepoResponses(featured, h.showcase, true, now),
		Other:    toRepoResponses(h.showcase.Cap(other), h.showcase, false, now),
	})
}

// Health reports liveness and the repository cache state without fetching.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toHealthResponse(h.healthSvc.Report(r.Context())))
}
