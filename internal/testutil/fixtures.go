package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// Habit options
type HabitOption func(*domain.Habit)

func WithCategory(c domain.ActivityCategory) HabitOption {
	return func(h *domain.Habit) {
		h.Category = c
	}
}

func WithStreak(n int) HabitOption {
	return func(h *domain.Habit) {
		h.Streak = n
	}
}

func WithHabitCreatedAt(t time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.CreatedAt = t
		h.UpdatedAt = t
	}
}

func NewTestHabit(name string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  domain.CategoryHealth,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func NewTestCompletion(habitID string, at time.Time) *domain.HabitCompletion {
	return &domain.HabitCompletion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		CompletedAt: at,
	}
}

// StressEntry options
type StressOption func(*domain.StressEntry)

func WithStressNote(note string) StressOption {
	return func(e *domain.StressEntry) {
		e.Note = note
	}
}

func WithStressCreatedAt(t time.Time) StressOption {
	return func(e *domain.StressEntry) {
		e.CreatedAt = t
	}
}

func NewTestStressEntry(level domain.StressLevel, opts ...StressOption) *domain.StressEntry {
	e := &domain.StressEntry{
		ID:        uuid.New().String(),
		Level:     level,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Message options
type MessageOption func(*domain.Message)

func WithMessageCreatedAt(t time.Time) MessageOption {
	return func(m *domain.Message) {
		m.CreatedAt = t
	}
}

func NewTestMessage(role domain.Role, text string, opts ...MessageOption) *domain.Message {
	m := &domain.Message{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestNotification(message string, kind domain.NotificationKind) *domain.Notification {
	now := time.Now().UTC()
	return &domain.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.NotificationTTL),
	}
}
