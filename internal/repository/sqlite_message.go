package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo using a SQLite database.
type SQLiteMessageRepo struct {
	db db.DBTX
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

const insertMessageSQL = `INSERT INTO messages (id, role, text, created_at) VALUES (?, ?, ?, ?)`

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	_, err := r.db.ExecContext(ctx, insertMessageSQL,
		m.ID, string(m.Role), m.Text, formatTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// CreateBatch inserts messages one statement at a time. Callers who need
// all-or-nothing semantics run it inside a UnitOfWork.
func (r *SQLiteMessageRepo) CreateBatch(ctx context.Context, msgs []*domain.Message) error {
	for _, m := range msgs {
		if _, err := r.db.ExecContext(ctx, insertMessageSQL,
			m.ID, string(m.Role), m.Text, formatTime(m.CreatedAt)); err != nil {
			return fmt.Errorf("inserting message %s: %w", m.ID, err)
		}
	}
	return nil
}

func (r *SQLiteMessageRepo) List(ctx context.Context) ([]*domain.Message, error) {
	query := `SELECT id, role, text, created_at FROM messages ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListRecent returns the last limit messages in chronological order.
func (r *SQLiteMessageRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Message, error) {
	query := `SELECT id, role, text, created_at FROM (
		SELECT id, role, text, created_at FROM messages ORDER BY created_at DESC LIMIT ?
	) ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]*domain.Message, error) {
	var msgs []*domain.Message
	for rows.Next() {
		var m domain.Message
		var roleStr, createdAtStr string
		if err := rows.Scan(&m.ID, &roleStr, &m.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Role = domain.Role(roleStr)
		var err error
		m.CreatedAt, err = parseTime("created_at", createdAtStr)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return msgs, nil
}
