package service

import (
	"context"
	"testing"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/repository"
	"github.com/okonkwoa/ataraxia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHabitService(t *testing.T) HabitService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewHabitService(repository.NewSQLiteHabitRepo(database), testutil.NewTestUoW(database))
}

func TestHabitService_Add_DefaultsCategory(t *testing.T) {
	svc := newHabitService(t)
	ctx := context.Background()

	h, err := svc.Add(ctx, "Morning Walk", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHealth, h.Category)
	assert.NotEmpty(t, h.ID)
}

func TestHabitService_Add_RejectsEmptyName(t *testing.T) {
	svc := newHabitService(t)

	_, err := svc.Add(context.Background(), "   ", domain.CategoryHealth)
	assert.Error(t, err)
}

func TestHabitService_AddDedup_SkipsExistingAndBatchDuplicates(t *testing.T) {
	svc := newHabitService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Daily Meditation", domain.CategoryMindfulness)
	require.NoError(t, err)

	added, err := svc.AddDedup(ctx, []domain.ActivitySuggestion{
		{Title: "Morning Meditation", Category: domain.CategoryMindfulness}, // same habit, different words
		{Title: "Go for a walk", Category: domain.CategoryExercise},
		{Title: "Take a walk", Category: domain.CategoryExercise}, // duplicate within the batch
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go for a walk"}, added)

	habits, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, habits, 2)
}

func TestHabitService_FindByName_Fuzzy(t *testing.T) {
	svc := newHabitService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Evening Journaling", domain.CategoryReflection)
	require.NoError(t, err)

	h, err := svc.FindByName(ctx, "journaling")
	require.NoError(t, err)
	assert.Equal(t, "Evening Journaling", h.Name)
}

func TestHabitService_Remove_NotFound(t *testing.T) {
	svc := newHabitService(t)

	_, err := svc.Remove(context.Background(), "does not exist")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHabitService_Rename_ReplacesAndResetsStreak(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteHabitRepo(database)
	svc := NewHabitService(repo, testutil.NewTestUoW(database))
	ctx := context.Background()

	old, err := svc.Add(ctx, "Reading", domain.CategoryLearning)
	require.NoError(t, err)
	old.Streak = 7
	require.NoError(t, repo.Update(ctx, old))

	renamed, err := svc.Rename(ctx, "reading", "Evening Reading", "")
	require.NoError(t, err)
	assert.Equal(t, "Evening Reading", renamed.Name)
	assert.Equal(t, domain.CategoryLearning, renamed.Category, "empty category keeps the old one")
	assert.Equal(t, 0, renamed.Streak)

	_, err = repo.GetByID(ctx, old.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHabitService_Complete_StreakProgression(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteHabitRepo(database)
	svc := NewHabitService(repo, testutil.NewTestUoW(database))
	ctx := context.Background()

	h, err := svc.Add(ctx, "Stretching", domain.CategoryExercise)
	require.NoError(t, err)

	// Completion yesterday, then one today: streak continues.
	require.NoError(t, repo.LogCompletion(ctx, testutil.NewTestCompletion(h.ID, time.Now().UTC().AddDate(0, 0, -1))))
	h.Streak = 4
	require.NoError(t, repo.Update(ctx, h))

	updated, err := svc.Complete(ctx, "stretching")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Streak)

	// Completing again the same day does not double-count.
	again, err := svc.Complete(ctx, "stretching")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Streak)
}

func TestHabitService_Complete_BrokenStreakRestartsAtOne(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteHabitRepo(database)
	svc := NewHabitService(repo, testutil.NewTestUoW(database))
	ctx := context.Background()

	h, err := svc.Add(ctx, "Hydration", domain.CategoryHealth)
	require.NoError(t, err)
	require.NoError(t, repo.LogCompletion(ctx, testutil.NewTestCompletion(h.ID, time.Now().UTC().AddDate(0, 0, -5))))
	h.Streak = 9
	require.NoError(t, repo.Update(ctx, h))

	updated, err := svc.Complete(ctx, "hydration")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)
}
