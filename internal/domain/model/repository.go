package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRepository indicates a repository record that is missing a field
// the portfolio needs to render it.
var ErrInvalidRepository = errors.New("invalid repository record")

// Repository is one public repository as listed by the GitHub API. The JSON
// field names follow the GitHub REST payload so cached lists keep its shape.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"html_url"`
	Fork        bool      `json:"fork"`
	Stars       int       `json:"stargazers_count"`
	Language    string    `json:"language"`
	PushedAt    time.Time `json:"pushed_at"`
}

// Validate reports ErrInvalidRepository when the record has no ID, name or URL.
func (r Repository) Validate() error {
	switch {
	case r.ID == 0:
		return fmt.Errorf("%w: missing id", ErrInvalidRepository)
	case r.Name == "":
		return fmt.Errorf("%w: missing name (id %d)", ErrInvalidRepository, r.ID)
	case r.URL == "":
		return fmt.Errorf("%w: missing html_url for %s", ErrInvalidRepository, r.Name)
	}
	return nil
}

// DaysSincePush returns the number of whole days between the last push and now.
// Returns 0 when the push time is unknown.
func (r Repository) DaysSincePush(now time.Time) int {
	if r.PushedAt.IsZero() {
		return 0
	}
	return int(now.Sub(r.PushedAt).Hours() / 24)
}
