package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo_GetMissing(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))

	value, found, err := repo.Get(context.Background(), "github_repos")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", value)
}

func TestKVRepo_SetAndGet(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "github_repos", `[{"id":1}]`))

	value, found, err := repo.Get(ctx, "github_repos")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestKVRepo_SetOverwrites(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "github_repos_time", "1700000000000"))
	require.NoError(t, repo.Set(ctx, "github_repos_time", "1700003600000"))

	value, found, err := repo.Get(ctx, "github_repos_time")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1700003600000", value)
}

func TestKVRepo_EmptyValueIsFound(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", ""))

	value, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", value)
}

func TestKVRepo_KeysAreIndependent(t *testing.T) {
	repo := NewKVRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Set(ctx, "b", "2"))

	a, _, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	b, _, err := repo.Get(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, "1", a)
	assert.Equal(t, "2", b)
}

func TestKVRepo_ClosedDatabaseReturnsError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewKVRepo(db)
	require.NoError(t, db.Close())

	_, _, err := repo.Get(context.Background(), "theme")
	assert.Error(t, err)

	err = repo.Set(context.Background(), "theme", "true")
	assert.Error(t, err)
}

func TestNewDB_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	ctx := context.Background()

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.Equal(t, path, db.Path())

	version, err := RunMigrations(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	// Running again is a no-op.
	version, err = RunMigrations(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	repo := NewKVRepo(db)
	require.NoError(t, repo.Set(ctx, "theme", "true"))
	value, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}
