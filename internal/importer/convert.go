package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// ConvertedData holds domain objects produced from a validated schema,
// ready for persistence.
type ConvertedData struct {
	Habits        []*domain.Habit
	Completions   []*domain.HabitCompletion
	StressEntries []*domain.StressEntry
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*ConvertedData, error) {
	now := time.Now().UTC()
	out := &ConvertedData{}

	for _, h := range schema.Habits {
		habitID := uuid.New().String()
		out.Habits = append(out.Habits, &domain.Habit{
			ID:        habitID,
			Name:      strings.TrimSpace(h.Name),
			Category:  domain.NormalizeCategory(domain.ActivityCategory(h.Category)),
			Streak:    h.Streak,
			CreatedAt: now,
			UpdatedAt: now,
		})

		for _, c := range h.Completions {
			at, err := time.Parse(time.RFC3339, c)
			if err != nil {
				return nil, fmt.Errorf("parsing completion for %q: %w", h.Name, err)
			}
			out.Completions = append(out.Completions, &domain.HabitCompletion{
				ID:          uuid.New().String(),
				HabitID:     habitID,
				CompletedAt: at,
			})
		}
	}

	for _, e := range schema.StressEntries {
		at, err := time.Parse(time.RFC3339, e.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing stress entry timestamp: %w", err)
		}
		out.StressEntries = append(out.StressEntries, &domain.StressEntry{
			ID:        uuid.New().String(),
			Level:     domain.StressLevel(e.Level),
			Note:      e.Note,
			CreatedAt: at,
		})
	}

	return out, nil
}

// Export builds an ImportSchema from persisted domain objects so a
// dataset can round-trip through a file.
func Export(habits []*domain.Habit, completions map[string][]*domain.HabitCompletion, entries []*domain.StressEntry) *ImportSchema {
	schema := &ImportSchema{}

	for _, h := range habits {
		hi := HabitImport{
			Name:     h.Name,
			Category: string(h.Category),
			Streak:   h.Streak,
		}
		for _, c := range completions[h.ID] {
			hi.Completions = append(hi.Completions, c.CompletedAt.UTC().Format(time.RFC3339))
		}
		schema.Habits = append(schema.Habits, hi)
	}

	for _, e := range entries {
		schema.StressEntries = append(schema.StressEntries, StressEntryImport{
			Level:      string(e.Level),
			Note:       e.Note,
			RecordedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return schema
}
