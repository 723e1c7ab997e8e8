package intelligence

import (
	"testing"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackHabitIntent_Add(t *testing.T) {
	intent := FallbackHabitIntent("I want to start a meditation habit")

	assert.Equal(t, ActionAdd, intent.Action)
	assert.Equal(t, 0.8, intent.Confidence)
	require.Len(t, intent.Habits, 1)
	assert.Equal(t, "Meditation", intent.Habits[0].Title)
	assert.Equal(t, domain.CategoryMindfulness, intent.Habits[0].Category)
	assert.True(t, intent.Actionable())
}

func TestFallbackHabitIntent_AddMultipleKeywords(t *testing.T) {
	intent := FallbackHabitIntent("I need a habit for journaling and reading before bed")

	assert.Equal(t, ActionAdd, intent.Action)
	require.Len(t, intent.Habits, 2)
	assert.Equal(t, "Journaling", intent.Habits[0].Title)
	assert.Equal(t, "Reading", intent.Habits[1].Title)
}

func TestFallbackHabitIntent_AddWithoutDomainKeywordIsNone(t *testing.T) {
	intent := FallbackHabitIntent("I want to add a habit")
	assert.Equal(t, ActionNone, intent.Action)
	assert.Equal(t, 0.9, intent.Confidence)
	assert.False(t, intent.Actionable())
}

func TestFallbackHabitIntent_Remove(t *testing.T) {
	intent := FallbackHabitIntent("Please remove the habit of daily journaling")

	assert.Equal(t, ActionRemove, intent.Action)
	assert.Equal(t, "daily journaling", intent.TargetName)
	assert.Equal(t, 0.85, intent.Confidence)
	assert.True(t, intent.Actionable())
}

func TestFallbackHabitIntent_RemoveStripsTrailingPunctuation(t *testing.T) {
	intent := FallbackHabitIntent("stop the habit of drinking soda.")
	assert.Equal(t, ActionRemove, intent.Action)
	assert.Equal(t, "drinking soda", intent.TargetName)
}

func TestFallbackHabitIntent_Update(t *testing.T) {
	intent := FallbackHabitIntent("Can you change the habit of reading to evening walks?")

	assert.Equal(t, ActionUpdate, intent.Action)
	assert.Equal(t, "reading", intent.OldName)
	assert.Equal(t, "evening walks", intent.NewName)
	assert.Equal(t, 0.8, intent.Confidence)
}

func TestFallbackHabitIntent_EmotionalContentIsNone(t *testing.T) {
	intent := FallbackHabitIntent("I'm feeling really stressed about work today")
	assert.Equal(t, ActionNone, intent.Action)
	assert.Equal(t, 0.9, intent.Confidence)
}

func TestFallbackHabitIntent_Deterministic(t *testing.T) {
	const text = "please delete the habit of late night snacks"
	first := FallbackHabitIntent(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FallbackHabitIntent(text))
	}
}
