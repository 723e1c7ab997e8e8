package repository

import (
	"context"
	"testing"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func habitTestSetup(t *testing.T) *SQLiteHabitRepo {
	t.Helper()
	return NewSQLiteHabitRepo(testutil.NewTestDB(t))
}

func TestHabitRepo_CreateAndGetByID(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit("Morning Meditation", testutil.WithCategory(domain.CategoryMindfulness))
	require.NoError(t, repo.Create(ctx, h))

	fetched, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, fetched.ID)
	assert.Equal(t, "Morning Meditation", fetched.Name)
	assert.Equal(t, domain.CategoryMindfulness, fetched.Category)
	assert.Equal(t, 0, fetched.Streak)
}

func TestHabitRepo_GetByID_NotFound(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitRepo_List_OrderedByCreation(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	h1 := testutil.NewTestHabit("Journaling", testutil.WithHabitCreatedAt(base))
	h2 := testutil.NewTestHabit("Walking", testutil.WithHabitCreatedAt(base.Add(time.Minute)))
	require.NoError(t, repo.Create(ctx, h2))
	require.NoError(t, repo.Create(ctx, h1))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, h1.ID, list[0].ID)
	assert.Equal(t, h2.ID, list[1].ID)
}

func TestHabitRepo_Update(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit("Reading")
	require.NoError(t, repo.Create(ctx, h))

	h.Name = "Evening Reading"
	h.Category = domain.CategoryLearning
	h.Streak = 3
	h.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, h))

	fetched, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening Reading", fetched.Name)
	assert.Equal(t, domain.CategoryLearning, fetched.Category)
	assert.Equal(t, 3, fetched.Streak)
}

func TestHabitRepo_Delete(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit("Stretching")
	require.NoError(t, repo.Create(ctx, h))
	require.NoError(t, repo.Delete(ctx, h.ID))

	_, err := repo.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitRepo_Completions_NewestFirst(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit("Hydration")
	require.NoError(t, repo.Create(ctx, h))

	now := time.Now().UTC()
	older := testutil.NewTestCompletion(h.ID, now.Add(-48*time.Hour))
	newer := testutil.NewTestCompletion(h.ID, now)
	require.NoError(t, repo.LogCompletion(ctx, older))
	require.NoError(t, repo.LogCompletion(ctx, newer))

	list, err := repo.ListCompletions(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestHabitRepo_Delete_CascadesCompletions(t *testing.T) {
	repo := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit("Breathing")
	require.NoError(t, repo.Create(ctx, h))
	require.NoError(t, repo.LogCompletion(ctx, testutil.NewTestCompletion(h.ID, time.Now().UTC())))

	require.NoError(t, repo.Delete(ctx, h.ID))

	list, err := repo.ListCompletions(ctx, h.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
