package intelligence

import "github.com/okonkwoa/ataraxia/internal/domain"

// MaxActivities caps the number of suggestions a single classification may
// produce.
const MaxActivities = 5

// IntentConfidenceGate is the minimum confidence at which a habit intent is
// trusted, both for accepting model output and for acting on an intent.
// Unrelated to the token-overlap threshold in the match package even though
// both happen to be 0.7.
const IntentConfidenceGate = 0.7

// ResultSource records which strategy produced a classification.
type ResultSource string

const (
	SourceModel    ResultSource = "llm"
	SourceFallback ResultSource = "fallback"
)

// Classification is the structured result of stress classification:
// a stress level plus zero to five suggested activities.
type Classification struct {
	Level      domain.StressLevel
	Activities []domain.ActivitySuggestion
	Source     ResultSource
}

// IntentAction enumerates the habit-management operations a message can ask
// for.
type IntentAction string

const (
	ActionAdd    IntentAction = "add"
	ActionRemove IntentAction = "remove"
	ActionUpdate IntentAction = "update"
	ActionNone   IntentAction = "none"
)

// ValidIntentActions is the set of known action strings for validation.
var ValidIntentActions = map[IntentAction]bool{
	ActionAdd: true, ActionRemove: true, ActionUpdate: true, ActionNone: true,
}

// HabitIntent is a tagged variant over add/remove/update/none. Only the
// fields for the tagged action are meaningful.
type HabitIntent struct {
	Action     IntentAction
	Habits     []domain.ActivitySuggestion // Add
	TargetName string                      // Remove
	OldName    string                      // Update
	NewName    string                      // Update
	Category   domain.ActivityCategory     // Update; empty means keep/derive
	Confidence float64
	Source     ResultSource
}

// Actionable reports whether the orchestrator should apply this intent.
func (i HabitIntent) Actionable() bool {
	return i.Action != ActionNone && i.Confidence > IntentConfidenceGate
}
