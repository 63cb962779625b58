package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// RepoResponse is the JSON representation of a displayed repository.
type RepoResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"html_url"`
	Stars       int      `json:"stargazers_count"`
	Language    string   `json:"language"`
	PushedAt    string   `json:"pushed_at"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Activity    string   `json:"activity"`
}

// ShowcaseResponse is the JSON representation of the featured/other split.
type ShowcaseResponse struct {
	Featured []RepoResponse `json:"featured"`
	Other    []RepoResponse `json:"other"`
}

// HealthResponse is the JSON representation of the health endpoint.
type HealthResponse struct {
	Status  string              `json:"status"`
	Account string              `json:"account"`
	Uptime  string              `json:"uptime"`
	Cache   CacheStatusResponse `json:"cache"`
}

// CacheStatusResponse describes the stored repository cache.
type CacheStatusResponse struct {
	Present    bool    `json:"present"`
	Fresh      bool    `json:"fresh"`
	CapturedAt *string `json:"captured_at"`
	Count      int     `json:"count"`
}

// toRepoResponse converts a domain Repository to its JSON representation.
func toRepoResponse(r model.Repository, showcase application.Showcase, featured bool, now time.Time) RepoResponse {
	tags, ok := showcase.TagsFor(r.Name)
	if !ok {
		tags = []string{}
	}

	pushedAt := ""
	if !r.PushedAt.IsZero() {
		pushedAt = r.PushedAt.UTC().Format(time.RFC3339)
	}

	return RepoResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Stars:       r.Stars,
		Language:    r.Language,
		PushedAt:    pushedAt,
		Tags:        tags,
		Featured:    featured,
		Activity:    application.ClassifyActivity(r.PushedAt, now).String(),
	}
}

func toRepoResponses(repos []model.Repository, showcase application.Showcase, featured bool, now time.Time) []RepoResponse {
	resp := make([]RepoResponse, 0, len(repos))
	for _, r := range repos {
		resp = append(resp, toRepoResponse(r, showcase, featured, now))
	}
	return resp
}

func toHealthResponse(report application.HealthReport) HealthResponse {
	cache := CacheStatusResponse{
		Present: report.Cache.Present,
		Fresh:   report.Cache.Fresh,
		Count:   report.Cache.Count,
	}
	if report.Cache.Present {
		ts := report.Cache.CapturedAt.UTC().Format(time.RFC3339)
		cache.CapturedAt = &ts
	}

	return HealthResponse{
		Status:  report.Status,
		Account: report.Account,
		Uptime:  report.Uptime.String(),
		Cache:   cache,
	}
}
