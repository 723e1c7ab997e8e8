package importer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

// ValidateImportSchema checks the import schema before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, h := range schema.Habits {
		errs = append(errs, validateHabit(i, h, seen)...)
	}
	for i, e := range schema.StressEntries {
		errs = append(errs, validateStressEntry(i, e)...)
	}

	return errs
}

func validateHabit(i int, h HabitImport, seen map[string]bool) []error {
	var errs []error

	name := strings.TrimSpace(h.Name)
	if name == "" {
		errs = append(errs, fmt.Errorf("habits[%d].name is required", i))
	} else {
		key := strings.ToLower(name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("habits[%d].name %q appears more than once", i, name))
		}
		seen[key] = true
	}
	if utf8.RuneCountInString(name) > domain.MaxSuggestionTitleLen {
		errs = append(errs, fmt.Errorf("habits[%d].name exceeds %d characters", i, domain.MaxSuggestionTitleLen))
	}
	if h.Category != "" && !domain.ValidCategories[domain.ActivityCategory(h.Category)] {
		errs = append(errs, fmt.Errorf("habits[%d].category: unknown category %q", i, h.Category))
	}
	if h.Streak < 0 {
		errs = append(errs, fmt.Errorf("habits[%d].streak must not be negative", i))
	}
	for j, c := range h.Completions {
		if _, err := time.Parse(time.RFC3339, c); err != nil {
			errs = append(errs, fmt.Errorf("habits[%d].completions[%d]: invalid timestamp %q (expected RFC3339)", i, j, c))
		}
	}

	return errs
}

func validateStressEntry(i int, e StressEntryImport) []error {
	var errs []error

	if !domain.ValidStressLevels[domain.StressLevel(e.Level)] {
		errs = append(errs, fmt.Errorf("stress_entries[%d].level: unknown level %q", i, e.Level))
	}
	if e.RecordedAt == "" {
		errs = append(errs, fmt.Errorf("stress_entries[%d].recorded_at is required", i))
	} else if _, err := time.Parse(time.RFC3339, e.RecordedAt); err != nil {
		errs = append(errs, fmt.Errorf("stress_entries[%d].recorded_at: invalid timestamp %q (expected RFC3339)", i, e.RecordedAt))
	}

	return errs
}
