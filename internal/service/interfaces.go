package service

import (
	"context"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

type HabitService interface {
	Add(ctx context.Context, name string, category domain.ActivityCategory) (*domain.Habit, error)
	AddDedup(ctx context.Context, suggestions []domain.ActivitySuggestion) ([]string, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	FindByName(ctx context.Context, name string) (*domain.Habit, error)
	Remove(ctx context.Context, name string) (*domain.Habit, error)
	Rename(ctx context.Context, oldName, newName string, category domain.ActivityCategory) (*domain.Habit, error)
	Complete(ctx context.Context, name string) (*domain.Habit, error)
}

type StressService interface {
	Record(ctx context.Context, level domain.StressLevel, note string) (*domain.StressEntry, error)
	History(ctx context.Context, limit int) ([]*domain.StressEntry, error)
}

type NotificationService interface {
	Push(ctx context.Context, message string, kind domain.NotificationKind) error
	Active(ctx context.Context) ([]*domain.Notification, error)
}

// TurnResult is everything a single chat exchange produced.
type TurnResult struct {
	Reply        string
	Banner       string
	Crisis       bool
	OffTopic     bool
	Level        domain.StressLevel
	Recorded     bool
	Suggestions  []domain.ActivitySuggestion
	AddedHabits  []string
	RemovedHabit string
	RenamedHabit string
}

type ChatService interface {
	ProcessTurn(ctx context.Context, text string) (*TurnResult, error)
	History(ctx context.Context, limit int) ([]*domain.Message, error)
	State() TurnState
}
