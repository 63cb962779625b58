package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guijosegon/portfolio/internal/application"
)

func TestThemeStore_Read(t *testing.T) {
	tests := []struct {
		name        string
		values      map[string]string
		prefersDark bool
		want        bool
	}{
		{"absent falls back to dark system preference", nil, true, true},
		{"absent falls back to light system preference", nil, false, false},
		{"stored true wins over light system", map[string]string{"theme": "true"}, false, true},
		{"stored false wins over dark system", map[string]string{"theme": "false"}, true, false},
		{"malformed value falls back", map[string]string{"theme": "dark"}, true, true},
		{"non-boolean JSON falls back", map[string]string{"theme": `"true"`}, false, false},
		{"empty value falls back", map[string]string{"theme": ""}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := application.NewThemeStore(newMockStore(tt.values), slog.Default())
			assert.Equal(t, tt.want, store.Read(context.Background(), tt.prefersDark))
		})
	}
}

func TestThemeStore_ReadErrorFallsBack(t *testing.T) {
	kv := newMockStore(map[string]string{"theme": "false"})
	kv.getErr = errors.New("boom")

	store := application.NewThemeStore(kv, slog.Default())

	assert.True(t, store.Read(context.Background(), true))
}

func TestThemeStore_WritePersistsJSON(t *testing.T) {
	kv := newMockStore(nil)
	store := application.NewThemeStore(kv, slog.Default())

	require.NoError(t, store.Write(context.Background(), true))
	v, _ := kv.value(application.KeyTheme)
	assert.Equal(t, "true", v)

	require.NoError(t, store.Write(context.Background(), false))
	v, _ = kv.value(application.KeyTheme)
	assert.Equal(t, "false", v)
}

func TestThemeStore_WrittenValueReadsBack(t *testing.T) {
	for _, dark := range []bool{true, false} {
		kv := newMockStore(nil)
		store := application.NewThemeStore(kv, slog.Default())

		require.NoError(t, store.Write(context.Background(), dark))

		raw, _ := kv.value(application.KeyTheme)
		var decoded bool
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded), "stored value must be JSON text")
		assert.Equal(t, dark, decoded)
		assert.Equal(t, dark, store.Read(context.Background(), !dark))
	}
}

func TestThemeStore_Toggle(t *testing.T) {
	kv := newMockStore(nil)
	store := application.NewThemeStore(kv, slog.Default())
	ctx := context.Background()

	dark, err := store.Toggle(ctx, false)
	require.NoError(t, err)
	assert.True(t, dark)

	dark, err = store.Toggle(ctx, false)
	require.NoError(t, err)
	assert.False(t, dark)
	assert.False(t, store.Read(ctx, true))
}

func TestThemeStore_ToggleWriteError(t *testing.T) {
	kv := newMockStore(nil)
	kv.setErr = errors.New("no cookies")
	store := application.NewThemeStore(kv, slog.Default())

	dark, err := store.Toggle(context.Background(), true)

	require.Error(t, err)
	assert.True(t, dark, "failed toggle reports the unchanged preference")
}
