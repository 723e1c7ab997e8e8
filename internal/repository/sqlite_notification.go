package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo using a SQLite database.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(conn db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, message, kind, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Message,
		string(n.Kind),
		formatTime(n.CreatedAt),
		formatTime(n.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) ListActive(ctx context.Context, now time.Time) ([]*domain.Notification, error) {
	query := `SELECT id, message, kind, created_at, expires_at
		FROM notifications WHERE expires_at > ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var kindStr, createdAtStr, expiresAtStr string
		if err := rows.Scan(&n.ID, &n.Message, &kindStr, &createdAtStr, &expiresAtStr); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.Kind = domain.NotificationKind(kindStr)
		n.CreatedAt, err = parseTime("created_at", createdAtStr)
		if err != nil {
			return nil, err
		}
		n.ExpiresAt, err = parseTime("expires_at", expiresAtStr)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func (r *SQLiteNotificationRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	query := `DELETE FROM notifications WHERE expires_at <= ?`
	_, err := r.db.ExecContext(ctx, query, formatTime(now))
	if err != nil {
		return fmt.Errorf("deleting expired notifications: %w", err)
	}
	return nil
}
