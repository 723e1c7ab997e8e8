package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (id, name, category, streak, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		string(h.Category),
		h.Streak,
		formatTime(h.CreatedAt),
		formatTime(h.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT id, name, category, streak, created_at, updated_at
		FROM habits WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	h, err := scanHabit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, err
	}
	return h, nil
}

func (r *SQLiteHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	query := `SELECT id, name, category, streak, created_at, updated_at
		FROM habits ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	return habits, nil
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET name = ?, category = ?, streak = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		h.Name,
		string(h.Category),
		h.Streak,
		formatTime(h.UpdatedAt),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM habits WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) LogCompletion(ctx context.Context, c *domain.HabitCompletion) error {
	query := `INSERT INTO habit_completions (id, habit_id, completed_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.HabitID, formatTime(c.CompletedAt))
	if err != nil {
		return fmt.Errorf("inserting habit completion: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) ListCompletions(ctx context.Context, habitID string) ([]*domain.HabitCompletion, error) {
	query := `SELECT id, habit_id, completed_at
		FROM habit_completions WHERE habit_id = ? ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing habit completions: %w", err)
	}
	defer rows.Close()

	var completions []*domain.HabitCompletion
	for rows.Next() {
		var c domain.HabitCompletion
		var completedAtStr string
		if err := rows.Scan(&c.ID, &c.HabitID, &completedAtStr); err != nil {
			return nil, fmt.Errorf("scanning habit completion: %w", err)
		}
		c.CompletedAt, err = parseTime("completed_at", completedAtStr)
		if err != nil {
			return nil, err
		}
		completions = append(completions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit completions: %w", err)
	}
	return completions, nil
}

func scanHabit(scan func(...any) error) (*domain.Habit, error) {
	var h domain.Habit
	var categoryStr, createdAtStr, updatedAtStr string

	if err := scan(&h.ID, &h.Name, &categoryStr, &h.Streak, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}

	h.Category = domain.ActivityCategory(categoryStr)

	var parseErr error
	h.CreatedAt, parseErr = parseTime("created_at", createdAtStr)
	if parseErr != nil {
		return nil, parseErr
	}
	h.UpdatedAt, parseErr = parseTime("updated_at", updatedAtStr)
	if parseErr != nil {
		return nil, parseErr
	}
	return &h, nil
}
