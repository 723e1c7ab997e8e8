package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepo
	now           func() time.Time
}

func NewNotificationService(notifications repository.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications, now: func() time.Time { return time.Now().UTC() }}
}

// Push stores a short-lived toast. Each notification lives for NotificationTTL.
func (s *notificationService) Push(ctx context.Context, message string, kind domain.NotificationKind) error {
	now := s.now()
	return s.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.NotificationTTL),
	})
}

// Active returns unexpired notifications and prunes expired ones as a side effect.
func (s *notificationService) Active(ctx context.Context) ([]*domain.Notification, error) {
	now := s.now()
	if err := s.notifications.DeleteExpired(ctx, now); err != nil {
		return nil, err
	}
	return s.notifications.ListActive(ctx, now)
}
