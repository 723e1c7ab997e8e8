package formatter

import (
	"testing"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHabitList_ContainsAllHabits(t *testing.T) {
	habits := []*domain.Habit{
		{Name: "Meditation", Category: domain.CategoryMindfulness, Streak: 4, CreatedAt: time.Now()},
		{Name: "Evening Walk", Category: domain.CategoryExercise, CreatedAt: time.Now()},
	}

	out := FormatHabitList(habits)
	assert.Contains(t, out, "Meditation")
	assert.Contains(t, out, "Evening Walk")
	assert.Contains(t, out, "4 day streak")
	assert.Contains(t, out, "mindfulness")
}

func TestFormatHabitCompleted_MentionsStreak(t *testing.T) {
	h := &domain.Habit{Name: "Journaling", Streak: 3}
	out := FormatHabitCompleted(h)
	assert.Contains(t, out, "Journaling")
	assert.Contains(t, out, "3 days in a row")
}

func TestFormatHabitCompleted_NoStreakBragOnDayOne(t *testing.T) {
	h := &domain.Habit{Name: "Journaling", Streak: 1}
	out := FormatHabitCompleted(h)
	assert.NotContains(t, out, "in a row")
}
