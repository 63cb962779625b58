package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/domain/model"
)

func repo(id int64, name string, pushed time.Time) model.Repository {
	return model.Repository{ID: id, Name: name, URL: "https://github.com/guijosegon/" + name, PushedAt: pushed}
}

func names(repos []model.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}

func TestProject_DropsForksAndHiddenNames(t *testing.T) {
	yesterday := fixedNow.Add(-24 * time.Hour)
	fork := repo(1, "some-fork", yesterday)
	fork.Fork = true

	raw := []model.Repository{
		fork,
		repo(2, "guijosegon", yesterday),
		repo(3, "compilador", yesterday),
	}

	got := application.DefaultShowcase().Project(raw)

	assert.Equal(t, []string{"compilador"}, names(got))
}

func TestProject_HiddenNamesAreCaseSensitive(t *testing.T) {
	raw := []model.Repository{
		repo(1, "GuiJoseGon", fixedNow),
		repo(2, "project-assets", fixedNow),
	}

	got := application.DefaultShowcase().Project(raw)

	assert.Equal(t, []string{"GuiJoseGon"}, names(got))
}

func TestProject_SortsByLastPushDescending(t *testing.T) {
	raw := []model.Repository{
		repo(1, "january", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		repo(2, "june", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := application.DefaultShowcase().Project(raw)

	assert.Equal(t, []string{"june", "january"}, names(got))
}

func TestProject_TiesKeepInputOrder(t *testing.T) {
	same := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	raw := []model.Repository{
		repo(1, "b", same),
		repo(2, "a", same),
		repo(3, "newest", same.Add(time.Hour)),
		repo(4, "c", same),
		repo(5, "unknown-push", time.Time{}),
	}

	got := application.DefaultShowcase().Project(raw)

	assert.Equal(t, []string{"newest", "b", "a", "c", "unknown-push"}, names(got))
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	raw := []model.Repository{
		repo(1, "old", fixedNow.Add(-time.Hour)),
		repo(2, "new", fixedNow),
	}

	application.DefaultShowcase().Project(raw)

	assert.Equal(t, []string{"old", "new"}, names(raw))
}

func TestProject_IsIdempotentAndNeverReturnsForks(t *testing.T) {
	s := application.DefaultShowcase()
	forkA := repo(4, "fork-a", fixedNow)
	forkA.Fork = true

	raw := []model.Repository{
		repo(1, "x", fixedNow.Add(-3*time.Hour)),
		forkA,
		repo(2, "project-assets", fixedNow),
		repo(3, "y", fixedNow.Add(-time.Hour)),
	}

	once := s.Project(raw)
	twice := s.Project(once)

	assert.Equal(t, once, twice)
	for _, r := range once {
		assert.False(t, r.Fork)
	}
}

func TestProject_EmptyInput(t *testing.T) {
	got := application.DefaultShowcase().Project(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPartition_SplitsByFeaturedNameCaseInsensitively(t *testing.T) {
	list := []model.Repository{
		repo(1, "compilador", fixedNow),
		repo(2, "Portfolio-GuiJoseGon", fixedNow),
		repo(3, "app-travels", fixedNow),
		repo(4, "poc-gestao-saude-idosos", fixedNow),
	}

	featured, other := application.DefaultShowcase().Partition(list)

	assert.Equal(t, []string{"Portfolio-GuiJoseGon", "poc-gestao-saude-idosos"}, names(featured))
	assert.Equal(t, []string{"compilador", "app-travels"}, names(other))
}

func TestPartition_CoversListWithoutOverlap(t *testing.T) {
	list := []model.Repository{
		repo(1, "poc-gestao-saude-idosos", fixedNow),
		repo(2, "a", fixedNow),
		repo(3, "b", fixedNow),
		repo(4, "portfolio-guijosegon", fixedNow),
	}

	featured, other := application.DefaultShowcase().Partition(list)

	assert.Len(t, append(append([]model.Repository{}, featured...), other...), len(list))
	seen := map[int64]bool{}
	for _, r := range featured {
		seen[r.ID] = true
	}
	for _, r := range other {
		assert.False(t, seen[r.ID], "%s appears in both groups", r.Name)
		seen[r.ID] = true
	}
	assert.Len(t, seen, len(list))
}

func TestPartition_EmptyGroupsAreNonNil(t *testing.T) {
	featured, other := application.DefaultShowcase().Partition(nil)

	assert.NotNil(t, featured)
	assert.NotNil(t, other)
}

func TestCap(t *testing.T) {
	var list []model.Repository
	for i := range 15 {
		list = append(list, repo(int64(i+1), string(rune('a'+i)), fixedNow))
	}

	s := application.DefaultShowcase()
	assert.Len(t, s.Cap(list), 10)
	assert.Equal(t, names(list[:10]), names(s.Cap(list)))
	assert.Len(t, s.Cap(list[:3]), 3)

	s.OtherCap = 0
	assert.Len(t, s.Cap(list), 15)
}

func TestTagsFor(t *testing.T) {
	s := application.DefaultShowcase()

	tags, ok := s.TagsFor("compilador")
	require.True(t, ok)
	assert.Equal(t, []string{"C#", ".NET 8", "Compiladores"}, tags)

	_, ok = s.TagsFor("Compilador")
	assert.False(t, ok, "lookup is exact")

	_, ok = s.TagsFor("unknown")
	assert.False(t, ok)
}

func TestTagsFor_ReturnsCopy(t *testing.T) {
	s := application.DefaultShowcase()

	tags, _ := s.TagsFor("compilador")
	tags[0] = "mutated"

	again, _ := s.TagsFor("compilador")
	assert.Equal(t, "C#", again[0])
}
