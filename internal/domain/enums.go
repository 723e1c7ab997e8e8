package domain

// StressLevel is the five-step scale used for stress entries.
type StressLevel string

const (
	StressVeryLow  StressLevel = "very_low"
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressVeryHigh StressLevel = "very_high"
)

// ValidStressLevels is the canonical set of accepted stress level strings.
var ValidStressLevels = map[StressLevel]bool{
	StressVeryLow: true, StressLow: true, StressModerate: true,
	StressHigh: true, StressVeryHigh: true,
}

// IsElevated reports whether the level warrants activity suggestions.
func (s StressLevel) IsElevated() bool {
	return s == StressHigh || s == StressVeryHigh
}

// IsCalm reports whether the level warrants positive reinforcement only.
func (s StressLevel) IsCalm() bool {
	return s == StressVeryLow || s == StressLow
}

// ActivityCategory classifies a habit or suggested activity.
type ActivityCategory string

const (
	CategoryMindfulness ActivityCategory = "mindfulness"
	CategoryHealth      ActivityCategory = "health"
	CategoryReflection  ActivityCategory = "reflection"
	CategoryExercise    ActivityCategory = "exercise"
	CategoryLearning    ActivityCategory = "learning"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[ActivityCategory]bool{
	CategoryMindfulness: true, CategoryHealth: true, CategoryReflection: true,
	CategoryExercise: true, CategoryLearning: true,
}

// NormalizeCategory returns c if it is a known category, otherwise CategoryHealth.
func NormalizeCategory(c ActivityCategory) ActivityCategory {
	if ValidCategories[c] {
		return c
	}
	return CategoryHealth
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// NotificationKind distinguishes success toasts from informational ones.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
)
