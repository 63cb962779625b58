package application

import (
	"context"
	"time"

	"github.com/guijosegon/portfolio/internal/domain/model"
)

// HealthReport summarizes process liveness and the repository cache state.
type HealthReport struct {
	Status  string
	Account string
	Uptime  time.Duration
	Cache   model.CacheStatus
}

// HealthService builds health reports for the API. It never triggers a fetch,
// so health checks cannot spend GitHub rate limit.
type HealthService struct {
	cache   *RepoCache
	started time.Time
}

// NewHealthService creates a HealthService for the given cache.
func NewHealthService(cache *RepoCache) *HealthService {
	return &HealthService{
		cache:   cache,
		started: time.Now(),
	}
}

// Report returns the current health. The process is healthy whenever it can
// answer; a stale or missing cache is reported but does not fail the check.
func (s *HealthService) Report(ctx context.Context) HealthReport {
	return HealthReport{
		Status:  "ok",
		Account: s.cache.Account(),
		Uptime:  time.Since(s.started).Round(time.Second),
		Cache:   s.cache.Status(ctx),
	}
}
