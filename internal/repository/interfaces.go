package repository

import (
	"context"
	"errors"
	"time"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error
	LogCompletion(ctx context.Context, c *domain.HabitCompletion) error
	ListCompletions(ctx context.Context, habitID string) ([]*domain.HabitCompletion, error)
}

type StressRepo interface {
	Create(ctx context.Context, e *domain.StressEntry) error
	List(ctx context.Context) ([]*domain.StressEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.StressEntry, error)
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	CreateBatch(ctx context.Context, msgs []*domain.Message) error
	List(ctx context.Context) ([]*domain.Message, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Message, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListActive(ctx context.Context, now time.Time) ([]*domain.Notification, error)
	DeleteExpired(ctx context.Context, now time.Time) error
}
