package driven

import (
	"context"

	"github.com/guijosegon/portfolio/internal/domain/model"
)

// GitHubClient defines the driven port for reading public repositories from GitHub.
type GitHubClient interface {
	// ListUserRepositories returns the first page of public repositories owned
	// by account, in the order the API returns them. Every returned record has
	// passed model.Repository.Validate.
	ListUserRepositories(ctx context.Context, account string) ([]model.Repository, error)
}
