package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PORTFOLIO_ env var that Load() reads.
var allConfigKeys = []string{
	"PORTFOLIO_GITHUB_USERNAME",
	"PORTFOLIO_GITHUB_TOKEN",
	"PORTFOLIO_GITHUB_BASE_URL",
	"PORTFOLIO_CACHE_TTL",
	"PORTFOLIO_LISTEN_ADDR",
	"PORTFOLIO_DB_PATH",
	"PORTFOLIO_SECURE_COOKIES",
}

// isolateConfigEnv saves and unsets all PORTFOLIO_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_GITHUB_USERNAME", "octocat")
	t.Setenv("PORTFOLIO_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("PORTFOLIO_GITHUB_BASE_URL", "https://ghe.example.com/api/v3/")
	t.Setenv("PORTFOLIO_CACHE_TTL", "15m")
	t.Setenv("PORTFOLIO_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("PORTFOLIO_DB_PATH", "/tmp/test.db")
	t.Setenv("PORTFOLIO_SECURE_COOKIES", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHubUsername)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.True(t, cfg.HasGitHubToken())
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.GitHubBaseURL)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.True(t, cfg.SecureCookies)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "guijosegon", cfg.GitHubUsername)
	assert.False(t, cfg.HasGitHubToken())
	assert.Equal(t, "", cfg.GitHubBaseURL)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.False(t, cfg.SecureCookies)
}

func TestLoad_EmptyUsernameKeepsDefault(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_GITHUB_USERNAME", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "guijosegon", cfg.GitHubUsername)
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a duration", "an hour"},
		{"zero", "0s"},
		{"negative", "-5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("PORTFOLIO_CACHE_TTL", tt.value)

			cfg, err := Load()

			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, "PORTFOLIO_CACHE_TTL")
		})
	}
}

func TestLoad_InvalidSecureCookies(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PORTFOLIO_SECURE_COOKIES", "sometimes")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "PORTFOLIO_SECURE_COOKIES")
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateConfigEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("PORTFOLIO_GITHUB_USERNAME=fromfile\nPORTFOLIO_LISTEN_ADDR=127.0.0.1:7000\n"), 0o600))
	t.Chdir(dir)

	// Explicit environment wins over the file.
	t.Setenv("PORTFOLIO_LISTEN_ADDR", "127.0.0.1:9000")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.GitHubUsername)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
}
