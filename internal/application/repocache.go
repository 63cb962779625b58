// Package application contains use-case orchestration services.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guijosegon/portfolio/internal/domain/model"
	"github.com/guijosegon/portfolio/internal/domain/port/driven"
)

// Storage keys shared with the theme preference in the same store namespace.
const (
	KeyRepos     = "github_repos"
	KeyReposTime = "github_repos_time"
)

// DefaultFetchTimeout bounds a shared GitHub fetch. It stays below the HTTP
// server's write timeout so a slow fetch cannot outlive the page render.
const DefaultFetchTimeout = 20 * time.Second

// RepoCacheOption configures optional RepoCache behavior.
type RepoCacheOption func(*RepoCache)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) RepoCacheOption {
	return func(c *RepoCache) { c.now = now }
}

// WithFetchTimeout bounds each shared fetch. Non-positive values are ignored.
func WithFetchTimeout(d time.Duration) RepoCacheOption {
	return func(c *RepoCache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// WithLogger sets the logger used for fetch and cache diagnostics.
func WithLogger(logger *slog.Logger) RepoCacheOption {
	return func(c *RepoCache) { c.logger = logger }
}

// RepoCache serves an account's public repository list, reusing the stored
// copy while it is younger than the freshness window and fetching from GitHub
// otherwise. Failures are logged and degrade to an empty list.
type RepoCache struct {
	store        driven.KeyValueStore
	client       driven.GitHubClient
	account      string
	window       time.Duration
	fetchTimeout time.Duration
	now          func() time.Time
	logger       *slog.Logger
	group        singleflight.Group
}

// NewRepoCache creates a RepoCache for account. A non-positive window falls
// back to model.DefaultFreshnessWindow.
func NewRepoCache(
	store driven.KeyValueStore,
	client driven.GitHubClient,
	account string,
	window time.Duration,
	opts ...RepoCacheOption,
) *RepoCache {
	if window <= 0 {
		window = model.DefaultFreshnessWindow
	}

	c := &RepoCache{
		store:        store,
		client:       client,
		account:      account,
		window:       window,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Account returns the GitHub account whose repositories are served.
func (c *RepoCache) Account() string {
	return c.account
}

// Load returns the raw repository list. A fresh stored entry is returned
// without any network access. Otherwise exactly one request is made to GitHub
// and, on success, its result and the capture time are stored. On failure the
// error is logged and an empty, non-nil list is returned.
//
// Concurrent misses share one in-flight request. That request is detached
// from any single caller's cancellation and bounded by the fetch timeout
// instead; a caller whose own ctx ends stops waiting and gets an empty list.
// A fetch that runs past its timeout never writes the cache.
func (c *RepoCache) Load(ctx context.Context) []model.Repository {
	entry, ok := c.lookup(ctx)
	if ok && entry.Fresh(c.now(), c.window) {
		c.logger.Debug("repository cache hit",
			"account", c.account,
			"age", entry.Age(c.now()).Round(time.Second),
			"count", len(entry.Repos),
		)
		return entry.Repos
	}

	ch := c.group.DoChan(c.account, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		return c.fetch(fetchCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val.([]model.Repository)
	case <-ctx.Done():
		c.logger.Warn("repository load abandoned", "account", c.account, "error", ctx.Err())
		return []model.Repository{}
	}
}

// Status reports the stored cache state without fetching.
func (c *RepoCache) Status(ctx context.Context) model.CacheStatus {
	entry, ok := c.lookup(ctx)
	if !ok {
		return model.CacheStatus{}
	}
	return model.CacheStatus{
		Present:    true,
		Fresh:      entry.Fresh(c.now(), c.window),
		CapturedAt: entry.CapturedAt,
		Count:      len(entry.Repos),
	}
}

// lookup reads the stored entry. Missing keys, store errors and malformed
// values all report ok=false; the latter two are logged.
func (c *RepoCache) lookup(ctx context.Context) (model.CacheEntry, bool) {
	entry, found, err := readCacheEntry(ctx, c.store)
	if err != nil {
		c.logger.Warn("ignoring unreadable repository cache", "account", c.account, "error", err)
		return model.CacheEntry{}, false
	}
	return entry, found
}

// fetch performs the single network request of a cache miss and stores the result.
func (c *RepoCache) fetch(ctx context.Context) []model.Repository {
	started := c.now()

	repos, err := c.client.ListUserRepositories(ctx, c.account)
	if err != nil {
		c.logger.Error("failed to fetch repositories", "account", c.account, "error", err)
		return []model.Repository{}
	}
	if repos == nil {
		repos = []model.Repository{}
	}

	c.logger.Info("repositories fetched",
		"account", c.account,
		"count", len(repos),
		"duration", c.now().Sub(started).Round(time.Millisecond),
	)

	if err := ctx.Err(); err != nil {
		c.logger.Warn("discarding repositories from timed out fetch", "account", c.account, "error", err)
		return repos
	}

	// A newer capture may have landed while this request was in flight.
	if current, ok := c.lookup(ctx); ok && current.CapturedAt.After(started) {
		c.logger.Debug("newer repository cache present, skipping write", "account", c.account)
		return repos
	}

	if err := writeCacheEntry(ctx, c.store, model.CacheEntry{Repos: repos, CapturedAt: c.now()}); err != nil {
		c.logger.Error("failed to store repositories", "account", c.account, "error", err)
	}

	return repos
}

// readCacheEntry decodes the list and timestamp keys. found is false when
// either key is absent.
func readCacheEntry(ctx context.Context, store driven.KeyValueStore) (model.CacheEntry, bool, error) {
	rawList, found, err := store.Get(ctx, KeyRepos)
	if err != nil {
		return model.CacheEntry{}, false, fmt.Errorf("read %s: %w", KeyRepos, err)
	}
	if !found {
		return model.CacheEntry{}, false, nil
	}

	rawTime, found, err := store.Get(ctx, KeyReposTime)
	if err != nil {
		return model.CacheEntry{}, false, fmt.Errorf("read %s: %w", KeyReposTime, err)
	}
	if !found {
		return model.CacheEntry{}, false, nil
	}

	millis, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return model.CacheEntry{}, false, fmt.Errorf("parse %s %q: %w", KeyReposTime, rawTime, err)
	}

	var repos []model.Repository
	if err := json.Unmarshal([]byte(rawList), &repos); err != nil {
		return model.CacheEntry{}, false, fmt.Errorf("decode %s: %w", KeyRepos, err)
	}
	for _, r := range repos {
		if err := r.Validate(); err != nil {
			return model.CacheEntry{}, false, fmt.Errorf("decode %s: %w", KeyRepos, err)
		}
	}
	if repos == nil {
		repos = []model.Repository{}
	}

	return model.CacheEntry{Repos: repos, CapturedAt: time.UnixMilli(millis)}, true, nil
}

// writeCacheEntry stores the list first and the timestamp second, so a failed
// timestamp write leaves the previous (older) capture time in place.
func writeCacheEntry(ctx context.Context, store driven.KeyValueStore, entry model.CacheEntry) error {
	data, err := json.Marshal(entry.Repos)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyRepos, err)
	}

	if err := store.Set(ctx, KeyRepos, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", KeyRepos, err)
	}

	millis := strconv.FormatInt(entry.CapturedAt.UnixMilli(), 10)
	if err := store.Set(ctx, KeyReposTime, millis); err != nil {
		return fmt.Errorf("write %s: %w", KeyReposTime, err)
	}

	return nil
}
