package intelligence

import (
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

// FallbackClassify derives a classification from lexicon heuristics alone.
// It is fully deterministic: identical input always yields an identical
// result. Used when the model path is disabled or fails.
func FallbackClassify(text string) Classification {
	level := fallbackLevel(strings.ToLower(text))
	cls := Classification{Level: level, Source: SourceFallback}
	if level.IsElevated() {
		cls.Activities = FallbackActivities()
	}
	return cls
}

func fallbackLevel(lower string) domain.StressLevel {
	switch {
	case severePattern.MatchString(lower):
		return domain.StressVeryHigh
	case positivePattern.MatchString(lower):
		return domain.StressVeryLow
	case mildPositivePattern.MatchString(lower):
		return domain.StressLow
	case negativePattern.MatchString(lower):
		// Negative affect alone never escalates past moderate; an
		// explicit cause is required for high.
		if causePattern.MatchString(lower) {
			return domain.StressHigh
		}
		return domain.StressModerate
	default:
		return domain.StressModerate
	}
}

// FallbackActivities returns the minimal safe defaults offered at elevated
// stress. Rich suggestion generation is a model responsibility; the
// fallback deliberately stops at these two.
func FallbackActivities() []domain.ActivitySuggestion {
	return []domain.ActivitySuggestion{
		{Title: "Take five slow, deep breaths", Category: domain.CategoryMindfulness},
		{Title: "Step outside for some fresh air", Category: domain.CategoryHealth},
	}
}
