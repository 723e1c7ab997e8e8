package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxSuggestionTitleLen bounds activity suggestion titles.
const MaxSuggestionTitleLen = 100

// Habit is a tracked recurring self-care action.
type Habit struct {
	ID        string
	Name      string
	Category  ActivityCategory
	Streak    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HabitCompletion records one completed occurrence of a habit.
type HabitCompletion struct {
	ID          string
	HabitID     string
	CompletedAt time.Time
}

// ActivitySuggestion is a candidate habit produced by classification or
// extraction. It lives for a single conversation turn.
type ActivitySuggestion struct {
	Title    string
	Category ActivityCategory
}

// Validate checks the suggestion invariants: a non-empty trimmed title no
// longer than MaxSuggestionTitleLen and a known category.
func (a ActivitySuggestion) Validate() error {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return fmt.Errorf("suggestion title is empty")
	}
	if utf8.RuneCountInString(title) > MaxSuggestionTitleLen {
		return fmt.Errorf("suggestion title exceeds %d characters", MaxSuggestionTitleLen)
	}
	if !ValidCategories[a.Category] {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	return nil
}
