package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/domain/model"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func sampleList() []model.Repository {
	return []model.Repository{
		{ID: 1, Name: "portfolio-guijosegon", URL: "https://github.com/guijosegon/portfolio-guijosegon", PushedAt: now.Add(-30 * time.Minute)},
		{ID: 2, Name: "untagged", URL: "https://github.com/guijosegon/untagged", PushedAt: now.Add(-30 * 24 * time.Hour)},
	}
}

func TestPrintRepos_JSON(t *testing.T) {
	var buf bytes.Buffer

	err := printRepos(&buf, sampleList(), application.DefaultShowcase(), true, now)
	require.NoError(t, err)

	var got []repoLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "portfolio-guijosegon", got[0].Name)
	assert.True(t, got[0].Featured)
	assert.Equal(t, "hot", got[0].Activity)
	assert.Contains(t, got[0].Tags, "React")

	assert.False(t, got[1].Featured)
	assert.Equal(t, "stale", got[1].Activity)
	assert.NotNil(t, got[1].Tags)
	assert.Empty(t, got[1].Tags)
}

func TestPrintRepos_Table(t *testing.T) {
	var buf bytes.Buffer

	err := printRepos(&buf, sampleList(), application.DefaultShowcase(), false, now)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "portfolio-guijosegon")
	assert.Contains(t, lines[1], "2026-03-15")
	assert.Contains(t, lines[1], "React, TypeScript")
	assert.Contains(t, lines[2], "untagged")
}

func TestPrintRepos_EmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printRepos(&buf, []model.Repository{}, application.DefaultShowcase(), true, now))

	assert.Equal(t, "[]\n", buf.String())
}

func TestCommandTree(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "repos")
	assert.NotNil(t, reposCmd.Flags().Lookup("json"))
	assert.NotNil(t, rootCmd.RunE, "root runs the server by default")
}
