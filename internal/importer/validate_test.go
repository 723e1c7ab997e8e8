package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *ImportSchema {
	return &ImportSchema{
		Habits: []HabitImport{
			{Name: "Morning walk", Category: "exercise", Streak: 3,
				Completions: []string{"2026-08-28T07:30:00Z", "2026-08-29T07:45:00Z"}},
			{Name: "Evening journaling", Category: "reflection"},
		},
		StressEntries: []StressEntryImport{
			{Level: "high", Note: "deadline week", RecordedAt: "2026-08-28T21:00:00Z"},
			{Level: "low", RecordedAt: "2026-08-29T21:00:00Z"},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	errs := ValidateImportSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_MissingHabitName(t *testing.T) {
	schema := validSchema()
	schema.Habits[0].Name = "   "

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "habits[0].name is required")
}

func TestValidateImportSchema_DuplicateHabitName(t *testing.T) {
	schema := validSchema()
	schema.Habits[1].Name = "morning WALK"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "appears more than once")
}

func TestValidateImportSchema_UnknownCategory(t *testing.T) {
	schema := validSchema()
	schema.Habits[0].Category = "productivity"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `unknown category "productivity"`)
}

func TestValidateImportSchema_NegativeStreak(t *testing.T) {
	schema := validSchema()
	schema.Habits[0].Streak = -1

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "streak must not be negative")
}

func TestValidateImportSchema_NameTooLong(t *testing.T) {
	schema := validSchema()
	schema.Habits[0].Name = strings.Repeat("x", 101)

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "exceeds 100 characters")
}

func TestValidateImportSchema_BadCompletionTimestamp(t *testing.T) {
	schema := validSchema()
	schema.Habits[0].Completions = []string{"2026-08-28"}

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "habits[0].completions[0]")
}

func TestValidateImportSchema_UnknownStressLevel(t *testing.T) {
	schema := validSchema()
	schema.StressEntries[0].Level = "panicked"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `unknown level "panicked"`)
}

func TestValidateImportSchema_MissingRecordedAt(t *testing.T) {
	schema := validSchema()
	schema.StressEntries[0].RecordedAt = ""

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "recorded_at is required")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := validSchema()
	schema.Habits[0].Name = ""
	schema.Habits[1].Category = "bogus"
	schema.StressEntries[0].Level = "bogus"

	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 3)
}
