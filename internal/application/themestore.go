package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/guijosegon/portfolio/internal/domain/port/driven"
)

// KeyTheme is the storage key of the dark-mode preference.
const KeyTheme = "theme"

// ThemeStore reads and writes the visitor's dark-mode preference. The value is
// stored as JSON text ("true" or "false") and never expires.
type ThemeStore struct {
	store  driven.KeyValueStore
	logger *slog.Logger
}

// NewThemeStore creates a ThemeStore over the given key-value store.
func NewThemeStore(store driven.KeyValueStore, logger *slog.Logger) *ThemeStore {
	return &ThemeStore{store: store, logger: logger}
}

// Read returns the stored preference. When nothing is stored, or the stored
// value is not a JSON boolean, the platform signal prefersDark is returned.
func (s *ThemeStore) Read(ctx context.Context, prefersDark bool) bool {
	raw, found, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		s.logger.Warn("failed to read theme preference", "error", err)
		return prefersDark
	}
	if !found {
		return prefersDark
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		s.logger.Debug("ignoring malformed theme preference", "value", raw)
		return prefersDark
	}
	return dark
}

// Write persists the preference.
func (s *ThemeStore) Write(ctx context.Context, dark bool) error {
	if err := s.store.Set(ctx, KeyTheme, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("write %s: %w", KeyTheme, err)
	}
	return nil
}

// Toggle flips the current preference, persists it and returns the new value.
func (s *ThemeStore) Toggle(ctx context.Context, prefersDark bool) (bool, error) {
	dark := !s.Read(ctx, prefersDark)
	if err := s.Write(ctx, dark); err != nil {
		return !dark, err
	}
	return dark, nil
}
