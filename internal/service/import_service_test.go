package service

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/repository"
	"github.com/okonkwoa/ataraxia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportFixture(t *testing.T) (ImportService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewImportService(
		repository.NewSQLiteHabitRepo(database),
		repository.NewSQLiteStressRepo(database),
		testutil.NewTestUoW(database),
	)
	return svc, database
}

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wellness.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleImport = `{
  "habits": [
    {"name": "Morning walk", "category": "exercise", "streak": 2,
     "completions": ["2026-08-28T07:30:00Z", "2026-08-29T07:45:00Z"]},
    {"name": "Evening journaling", "category": "reflection"}
  ],
  "stress_entries": [
    {"level": "high", "note": "deadline week", "recorded_at": "2026-08-28T21:00:00Z"}
  ]
}`

func TestImportService_ImportFile(t *testing.T) {
	svc, database := newImportFixture(t)
	ctx := context.Background()

	summary, err := svc.ImportFile(ctx, writeImportFile(t, sampleImport))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Habits)
	assert.Equal(t, 2, summary.Completions)
	assert.Equal(t, 1, summary.StressEntries)
	assert.Empty(t, summary.SkippedHabits)

	habits, err := repository.NewSQLiteHabitRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 2)
}

func TestImportService_ImportFile_SkipsMatchingHabits(t *testing.T) {
	svc, database := newImportFixture(t)
	ctx := context.Background()

	habitRepo := repository.NewSQLiteHabitRepo(database)
	require.NoError(t, habitRepo.Create(ctx, testutil.NewTestHabit("morning walks", testutil.WithCategory(domain.CategoryExercise))))

	summary, err := svc.ImportFile(ctx, writeImportFile(t, sampleImport))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Habits)
	assert.Equal(t, []string{"Morning walk"}, summary.SkippedHabits)
	// Completions of a skipped habit are not persisted.
	assert.Equal(t, 0, summary.Completions)
}

func TestImportService_ImportFile_RejectsInvalidFile(t *testing.T) {
	svc, database := newImportFixture(t)
	ctx := context.Background()

	_, err := svc.ImportFile(ctx, writeImportFile(t, `{"habits": [{"name": ""}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import file")

	habits, err := repository.NewSQLiteHabitRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestImportService_ImportFile_MissingFile(t *testing.T) {
	svc, _ := newImportFixture(t)

	_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestImportService_ExportFile_RoundTrips(t *testing.T) {
	svc, _ := newImportFixture(t)
	ctx := context.Background()

	_, err := svc.ImportFile(ctx, writeImportFile(t, sampleImport))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, svc.ExportFile(ctx, out))

	// Importing the export into a fresh store restores everything.
	svc2, database2 := newImportFixture(t)
	summary, err := svc2.ImportFile(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Habits)
	assert.Equal(t, 2, summary.Completions)
	assert.Equal(t, 1, summary.StressEntries)

	entries, err := repository.NewSQLiteStressRepo(database2).List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.StressHigh, entries[0].Level)
	assert.Equal(t, "deadline week", entries[0].Note)
}
