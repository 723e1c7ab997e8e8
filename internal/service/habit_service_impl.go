package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/match"
	"github.com/okonkwoa/ataraxia/internal/repository"
)

type habitService struct {
	habits repository.HabitRepo
	uow    db.UnitOfWork
}

func NewHabitService(habits repository.HabitRepo, uow db.UnitOfWork) HabitService {
	return &habitService{habits: habits, uow: uow}
}

func (s *habitService) Add(ctx context.Context, name string, category domain.ActivityCategory) (*domain.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("habit name is empty")
	}
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  domain.NormalizeCategory(category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.habits.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// AddDedup inserts the suggestions that do not collide with an existing habit
// or with an earlier suggestion in the same batch. It returns the names that
// were actually added.
func (s *habitService) AddDedup(ctx context.Context, suggestions []domain.ActivitySuggestion) ([]string, error) {
	existing, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(existing))
	for _, h := range existing {
		names = append(names, h.Name)
	}

	var added []string
	for _, sug := range suggestions {
		title := strings.TrimSpace(sug.Title)
		if title == "" {
			continue
		}
		if matchesAny(title, names) {
			continue
		}
		if _, err := s.Add(ctx, title, sug.Category); err != nil {
			return added, err
		}
		names = append(names, title)
		added = append(added, title)
	}
	return added, nil
}

func (s *habitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.habits.List(ctx)
}

// FindByName resolves a possibly approximate name to a stored habit.
func (s *habitService) FindByName(ctx context.Context, name string) (*domain.Habit, error) {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		if match.SameHabit(h.Name, name) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("habit %q: %w", name, repository.ErrNotFound)
}

func (s *habitService) Remove(ctx context.Context, name string) (*domain.Habit, error) {
	h, err := s.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.habits.Delete(ctx, h.ID); err != nil {
		return nil, err
	}
	return h, nil
}

// Rename replaces a habit with a fresh one under the new name. The streak and
// completion history start over; changing the habit changes the commitment.
func (s *habitService) Rename(ctx context.Context, oldName, newName string, category domain.ActivityCategory) (*domain.Habit, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("new habit name is empty")
	}
	old, err := s.FindByName(ctx, oldName)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = old.Category
	}

	now := time.Now().UTC()
	replacement := &domain.Habit{
		ID:        uuid.New().String(),
		Name:      newName,
		Category:  domain.NormalizeCategory(category),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteHabitRepo(tx)
		if err := txRepo.Delete(ctx, old.ID); err != nil {
			return err
		}
		return txRepo.Create(ctx, replacement)
	})
	if err != nil {
		return nil, err
	}
	return replacement, nil
}

// Complete records a completion for today and advances the streak. Completing
// a habit twice in one day is a no-op for the streak.
func (s *habitService) Complete(ctx context.Context, name string) (*domain.Habit, error) {
	h, err := s.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	completions, err := s.habits.ListCompletions(ctx, h.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	if len(completions) > 0 {
		last := completions[0].CompletedAt.UTC().Truncate(24 * time.Hour)
		switch {
		case last.Equal(today):
			return h, nil
		case last.Equal(today.AddDate(0, 0, -1)):
			h.Streak++
		default:
			h.Streak = 1
		}
	} else {
		h.Streak = 1
	}

	if err := s.habits.LogCompletion(ctx, &domain.HabitCompletion{
		ID:          uuid.New().String(),
		HabitID:     h.ID,
		CompletedAt: now,
	}); err != nil {
		return nil, err
	}

	h.UpdatedAt = now
	if err := s.habits.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func matchesAny(name string, names []string) bool {
	for _, n := range names {
		if match.SameHabit(name, n) {
			return true
		}
	}
	return false
}
