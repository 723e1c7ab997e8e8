package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStressHistory_RendersLevelsAndNotes(t *testing.T) {
	entries := []*domain.StressEntry{
		{Level: domain.StressHigh, Note: "deadline week", CreatedAt: time.Now()},
		{Level: domain.StressVeryLow, Note: "", CreatedAt: time.Now().Add(-2 * time.Hour)},
	}

	out := FormatStressHistory(entries)
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "very low")
	assert.Contains(t, out, "deadline week")
}

func TestTruncateNote_LongNotesClipped(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := truncateNote(long)
	assert.Len(t, out, noteDisplayLimit)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestFormatSuggestions_Empty(t *testing.T) {
	assert.Empty(t, FormatSuggestions(nil))
}

func TestFormatSuggestions_BulletsWithCategories(t *testing.T) {
	out := FormatSuggestions([]domain.ActivitySuggestion{
		{Title: "Deep breathing", Category: domain.CategoryMindfulness},
	})
	assert.Contains(t, out, "Deep breathing")
	assert.Contains(t, out, "mindfulness")
}
