// Package cli defines the portfolio command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	githubadapter "github.com/guijosegon/portfolio/internal/adapter/driven/github"
	sqliteadapter "github.com/guijosegon/portfolio/internal/adapter/driven/sqlite"
	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Server-rendered personal portfolio backed by the GitHub repository list",
	Long: `Portfolio renders a personal page listing the owner's public GitHub
repositories. The repository list is cached in SQLite for an hour and shared
by every visitor. Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reposCmd)
}

// deps bundles the stores shared by every subcommand.
type deps struct {
	cfg   *config.Config
	db    *sqliteadapter.DB
	cache *application.RepoCache
}

// openDeps loads configuration, opens and migrates the database and wires
// the repository cache. Callers must close the returned deps.
func openDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"cache_ttl", cfg.CacheTTL,
		"github_username", cfg.GitHubUsername,
		"github_token", cfg.HasGitHubToken(),
	)

	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("database opened", "path", db.Path())

	version, err := sqliteadapter.RunMigrations(db.Writer)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Info("migrations complete", "version", version)

	ghClient, err := githubadapter.NewClient(cfg.GitHubToken, cfg.GitHubBaseURL)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create github client: %w", err)
	}

	cache := application.NewRepoCache(
		sqliteadapter.NewKVRepo(db),
		ghClient,
		cfg.GitHubUsername,
		cfg.CacheTTL,
		application.WithLogger(slog.Default()),
	)

	return &deps{cfg: cfg, db: db, cache: cache}, nil
}

func (d *deps) Close() {
	if err := d.db.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
