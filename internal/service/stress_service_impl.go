package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/repository"
)

type stressService struct {
	entries repository.StressRepo
}

func NewStressService(entries repository.StressRepo) StressService {
	return &stressService{entries: entries}
}

func (s *stressService) Record(ctx context.Context, level domain.StressLevel, note string) (*domain.StressEntry, error) {
	if !domain.ValidStressLevels[level] {
		return nil, fmt.Errorf("invalid stress level %q", level)
	}
	e := &domain.StressEntry{
		ID:        uuid.New().String(),
		Level:     level,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *stressService) History(ctx context.Context, limit int) ([]*domain.StressEntry, error) {
	if limit <= 0 {
		return s.entries.List(ctx)
	}
	return s.entries.ListRecent(ctx, limit)
}
