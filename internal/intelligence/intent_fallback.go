package intelligence

import (
	"regexp"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

var (
	addIntentPattern = regexp.MustCompile(
		`(?i)\b(?:want|need|start|add|begin)\b.*\bhabit`)

	removeIntentPattern = regexp.MustCompile(
		`(?i)\b(?:remove|delete|stop|quit)\b(?:\s+(?:the|my))?\s+habit(?:\s+of)?\s+(.+?)[.!?]*$`)

	updateIntentPattern = regexp.MustCompile(
		`(?i)\b(?:change|modify|update)\b(?:\s+(?:the|my))?\s+habit(?:\s+of)?\s+(.+?)\s+(?:to|into)\s+(.+?)[.!?]*$`)
)

// intentKeywordHabits maps domain keywords in an add request to the habit
// they imply. Checked in order; every keyword present contributes one habit.
var intentKeywordHabits = []struct {
	keyword    string
	suggestion domain.ActivitySuggestion
}{
	{"meditat", domain.ActivitySuggestion{Title: "Meditation", Category: domain.CategoryMindfulness}},
	{"exercis", domain.ActivitySuggestion{Title: "Exercise", Category: domain.CategoryExercise}},
	{"workout", domain.ActivitySuggestion{Title: "Exercise", Category: domain.CategoryExercise}},
	{"journal", domain.ActivitySuggestion{Title: "Journaling", Category: domain.CategoryReflection}},
	{"read", domain.ActivitySuggestion{Title: "Reading", Category: domain.CategoryLearning}},
	{"walk", domain.ActivitySuggestion{Title: "Walking", Category: domain.CategoryExercise}},
	{"water", domain.ActivitySuggestion{Title: "Drink more water", Category: domain.CategoryHealth}},
	{"hydrat", domain.ActivitySuggestion{Title: "Drink more water", Category: domain.CategoryHealth}},
	{"health", domain.ActivitySuggestion{Title: "Healthy eating", Category: domain.CategoryHealth}},
}

// FallbackHabitIntent derives a habit-management intent from fixed patterns.
// Update and remove are checked before add since their phrasings are more
// specific; anything else is none.
func FallbackHabitIntent(text string) HabitIntent {
	if m := updateIntentPattern.FindStringSubmatch(text); m != nil {
		return HabitIntent{
			Action:     ActionUpdate,
			OldName:    strings.TrimSpace(m[1]),
			NewName:    strings.TrimSpace(m[2]),
			Confidence: 0.8,
			Source:     SourceFallback,
		}
	}

	if m := removeIntentPattern.FindStringSubmatch(text); m != nil {
		return HabitIntent{
			Action:     ActionRemove,
			TargetName: strings.TrimSpace(m[1]),
			Confidence: 0.85,
			Source:     SourceFallback,
		}
	}

	if addIntentPattern.MatchString(text) {
		if habits := keywordHabits(text); len(habits) > 0 {
			return HabitIntent{
				Action:     ActionAdd,
				Habits:     habits,
				Confidence: 0.8,
				Source:     SourceFallback,
			}
		}
	}

	return HabitIntent{Action: ActionNone, Confidence: 0.9, Source: SourceFallback}
}

func keywordHabits(text string) []domain.ActivitySuggestion {
	lower := strings.ToLower(text)
	var out []domain.ActivitySuggestion
	seen := map[string]bool{}
	for _, kh := range intentKeywordHabits {
		if strings.Contains(lower, kh.keyword) && !seen[kh.suggestion.Title] {
			seen[kh.suggestion.Title] = true
			out = append(out, kh.suggestion)
		}
	}
	return out
}
