// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubUsername string
	GitHubToken    string
	GitHubBaseURL  string
	CacheTTL       time.Duration
	ListenAddr     string
	DBPath         string
	SecureCookies  bool
}

// HasGitHubToken returns true when requests to GitHub will be authenticated.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
// All variables are optional: PORTFOLIO_GITHUB_USERNAME (guijosegon),
// PORTFOLIO_GITHUB_TOKEN (unauthenticated), PORTFOLIO_GITHUB_BASE_URL (api.github.com),
// PORTFOLIO_CACHE_TTL (1h), PORTFOLIO_LISTEN_ADDR (127.0.0.1:8080),
// PORTFOLIO_DB_PATH (portfolio.db), PORTFOLIO_SECURE_COOKIES (false).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	username := "guijosegon"
	if v, ok := os.LookupEnv("PORTFOLIO_GITHUB_USERNAME"); ok && v != "" {
		username = v
	}

	cacheTTL := time.Hour
	if v, ok := os.LookupEnv("PORTFOLIO_CACHE_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_CACHE_TTL has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("PORTFOLIO_CACHE_TTL must be positive, got %s", parsed)
		}
		cacheTTL = parsed
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("PORTFOLIO_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "portfolio.db"
	if v, ok := os.LookupEnv("PORTFOLIO_DB_PATH"); ok {
		dbPath = v
	}

	secureCookies := false
	if v, ok := os.LookupEnv("PORTFOLIO_SECURE_COOKIES"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_SECURE_COOKIES has invalid boolean %q: %w", v, err)
		}
		secureCookies = parsed
	}

	return &Config{
		GitHubUsername: username,
		GitHubToken:    os.Getenv("PORTFOLIO_GITHUB_TOKEN"),
		GitHubBaseURL:  os.Getenv("PORTFOLIO_GITHUB_BASE_URL"),
		CacheTTL:       cacheTTL,
		ListenAddr:     listenAddr,
		DBPath:         dbPath,
		SecureCookies:  secureCookies,
	}, nil
}
