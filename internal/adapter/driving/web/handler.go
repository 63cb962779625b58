// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/guijosegon/portfolio/internal/adapter/driving/web/templates"
	vm "github.com/guijosegon/portfolio/internal/adapter/driving/web/viewmodel"
	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/domain/model"
)

// prefersColorSchemeHeader is the client hint carrying the visitor's system
// color scheme. Browsers send it once the server advertises it via Accept-CH.
const prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	repos         *application.RepoCache
	showcase      application.Showcase
	profile       vm.ProfileViewModel
	secureCookies bool
	now           func() time.Time
	logger        *slog.Logger
}

// HandlerOption configures optional Handler behavior.
type HandlerOption func(*Handler)

// WithClock replaces time.Now as the reference for activity badges and the
// footer year.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a Handler with all required dependencies. The profile's
// markdown is rendered once here.
func NewHandler(
	repos *application.RepoCache,
	showcase application.Showcase,
	profile model.Profile,
	secureCookies bool,
	logger *slog.Logger,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		repos:         repos,
		showcase:      showcase,
		profile:       toProfileViewModel(profile),
		secureCookies: secureCookies,
		now:           time.Now,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Home renders the portfolio page with the full HTML layout.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Accept-CH", prefersColorSchemeHeader)
	w.Header().Add("Vary", prefersColorSchemeHeader)
	w.Header().Add("Vary", "Cookie")

	token := csrfToken(w, r, h.secureCookies)
	themes := application.NewThemeStore(newCookieStore(w, r, h.secureCookies), h.logger)
	dark := themes.Read(ctx, prefersDark(r))

	list := h.showcase.Project(h.repos.Load(ctx))
	featured, other := h.showcase.Partition(list)
	other = h.showcase.Cap(other)

	page := toPageViewModel(h.profile, h.showcase, featured, other, dark, token, h.now())
	layout := templates.Layout(h.profile.Title, dark, templates.Home(page))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(ctx, w); err != nil {
		h.logger.Error("failed to render home page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// ToggleTheme flips the stored theme preference and redirects back to the
// page. It never touches the repository cache.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	themes := application.NewThemeStore(newCookieStore(w, r, h.secureCookies), h.logger)
	dark, err := themes.Toggle(r.Context(), prefersDark(r))
	if err != nil {
		h.logger.Warn("failed to persist theme", "error", err)
	}
	h.logger.Debug("theme toggled", "dark", dark)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func prefersDark(r *http.Request) bool {
	return r.Header.Get(prefersColorSchemeHeader) == "dark"
}
