package repository

import (
	"context"
	"fmt"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// SQLiteStressRepo implements StressRepo using a SQLite database.
type SQLiteStressRepo struct {
	db db.DBTX
}

// NewSQLiteStressRepo creates a new SQLiteStressRepo.
func NewSQLiteStressRepo(conn db.DBTX) *SQLiteStressRepo {
	return &SQLiteStressRepo{db: conn}
}

func (r *SQLiteStressRepo) Create(ctx context.Context, e *domain.StressEntry) error {
	query := `INSERT INTO stress_entries (id, level, note, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Level),
		e.Note,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting stress entry: %w", err)
	}
	return nil
}

func (r *SQLiteStressRepo) List(ctx context.Context) ([]*domain.StressEntry, error) {
	query := `SELECT id, level, note, created_at FROM stress_entries ORDER BY created_at`
	return r.query(ctx, query)
}

// ListRecent returns the newest entries first, capped at limit.
func (r *SQLiteStressRepo) ListRecent(ctx context.Context, limit int) ([]*domain.StressEntry, error) {
	query := `SELECT id, level, note, created_at FROM stress_entries ORDER BY created_at DESC LIMIT ?`
	return r.query(ctx, query, limit)
}

func (r *SQLiteStressRepo) query(ctx context.Context, query string, args ...any) ([]*domain.StressEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stress entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.StressEntry
	for rows.Next() {
		var e domain.StressEntry
		var levelStr, createdAtStr string
		if err := rows.Scan(&e.ID, &levelStr, &e.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning stress entry: %w", err)
		}
		e.Level = domain.StressLevel(levelStr)
		e.CreatedAt, err = parseTime("created_at", createdAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stress entries: %w", err)
	}
	return entries, nil
}
