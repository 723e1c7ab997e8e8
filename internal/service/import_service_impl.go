package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/importer"
	"github.com/okonkwoa/ataraxia/internal/match"
	"github.com/okonkwoa/ataraxia/internal/repository"
)

// ImportSummary reports what an import run persisted and skipped.
type ImportSummary struct {
	Habits        int
	Completions   int
	StressEntries int
	SkippedHabits []string
}

type ImportService interface {
	// ImportFile loads, validates, and persists a wellness data file.
	// Habits matching an already tracked habit are skipped, not merged.
	ImportFile(ctx context.Context, path string) (*ImportSummary, error)

	// ExportFile writes all tracked habits, their completion history, and
	// stress entries to a JSON file.
	ExportFile(ctx context.Context, path string) error
}

type importService struct {
	habits repository.HabitRepo
	stress repository.StressRepo
	uow    db.UnitOfWork
}

func NewImportService(habits repository.HabitRepo, stress repository.StressRepo, uow db.UnitOfWork) ImportService {
	return &importService{habits: habits, stress: stress, uow: uow}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportSummary, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import file: %w", errors.Join(errs...))
	}
	data, err := importer.Convert(schema)
	if err != nil {
		return nil, err
	}

	existing, err := s.habits.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		habitRepo := repository.NewSQLiteHabitRepo(tx)
		stressRepo := repository.NewSQLiteStressRepo(tx)

		kept := make(map[string]bool)
		for _, h := range data.Habits {
			if matchesExisting(h.Name, existing) {
				summary.SkippedHabits = append(summary.SkippedHabits, h.Name)
				continue
			}
			if err := habitRepo.Create(ctx, h); err != nil {
				return err
			}
			kept[h.ID] = true
			summary.Habits++
		}
		for _, c := range data.Completions {
			if !kept[c.HabitID] {
				continue
			}
			if err := habitRepo.LogCompletion(ctx, c); err != nil {
				return err
			}
			summary.Completions++
		}
		for _, e := range data.StressEntries {
			if err := stressRepo.Create(ctx, e); err != nil {
				return err
			}
			summary.StressEntries++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *importService) ExportFile(ctx context.Context, path string) error {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return err
	}
	completions := make(map[string][]*domain.HabitCompletion)
	for _, h := range habits {
		cs, err := s.habits.ListCompletions(ctx, h.ID)
		if err != nil {
			return err
		}
		// Stored newest first; export oldest first.
		for i := len(cs) - 1; i >= 0; i-- {
			completions[h.ID] = append(completions[h.ID], cs[i])
		}
	}
	entries, err := s.stress.List(ctx)
	if err != nil {
		return err
	}

	return importer.WriteSchema(path, importer.Export(habits, completions, entries))
}

func matchesExisting(name string, existing []*domain.Habit) bool {
	for _, h := range existing {
		if match.SameHabit(name, h.Name) {
			return true
		}
	}
	return false
}
