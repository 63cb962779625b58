// Package github implements the GitHubClient port using the go-github library.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit/github_primary_ratelimit"

	"github.com/guijosegon/portfolio/internal/domain/model"
	"github.com/guijosegon/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit primary limiter (blocks requests until the reset time
//     once a category is exhausted; never sleeps or retries)
//  3. go-github (GitHub REST API client)
//
// A rate-limited listing fails after a single request so the cache can fall
// back to its stale entry. token may be empty, in which case requests are unauthenticated. baseURL may
// be empty to use the public api.github.com endpoint.
func NewClient(token, baseURL string) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	limiter := github_ratelimit.NewPrimaryLimiter(cacheTransport,
		github_primary_ratelimit.WithLimitDetectedCallback(func(cb *github_primary_ratelimit.CallbackContext) {
			slog.Warn("github primary rate limit reached", "category", cb.Category, "reset", cb.ResetTime)
		}),
		github_primary_ratelimit.WithRequestPreventedCallback(func(cb *github_primary_ratelimit.CallbackContext) {
			slog.Warn("github request blocked until rate limit reset", "category", cb.Category, "reset", cb.ResetTime)
		}),
	)

	client := gh.NewClient(&http.Client{Transport: limiter})
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if baseURL != "" {
		u, err := parseBaseURL(baseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = u
	}

	return &Client{gh: client}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListUserRepositories fetches GET /users/{account}/repos. Only the first page
// is requested, with the API's default page size. Every record is validated;
// one malformed record fails the whole call.
func (c *Client) ListUserRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	if account == "" {
		return nil, fmt.Errorf("listing repositories: empty account")
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, account, nil)
	if err != nil {
		var abuse *gh.AbuseRateLimitError
		if errors.As(err, &abuse) {
			slog.Warn("github secondary rate limit", "account", account, "retry_after", abuse.GetRetryAfter())
		}
		return nil, fmt.Errorf("listing repositories for %s: %w", account, err)
	}

	logRateLimit(resp, "users/"+account+"/repos", len(repos))

	out := make([]model.Repository, 0, len(repos))
	for i, r := range repos {
		repo := mapRepository(r)
		if err := repo.Validate(); err != nil {
			return nil, fmt.Errorf("decoding repository %d for %s: %w", i, account, err)
		}
		out = append(out, repo)
	}

	return out, nil
}

// mapRepository converts a go-github Repository to a domain model Repository.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func mapRepository(r *gh.Repository) model.Repository {
	return model.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		Fork:        r.GetFork(),
		Stars:       r.GetStargazersCount(),
		Language:    r.GetLanguage(),
		PushedAt:    r.GetPushedAt().Time,
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// parseBaseURL parses baseURL and guarantees the trailing slash go-github requires.
func parseBaseURL(baseURL string) (*url.URL, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	return u, nil
}
