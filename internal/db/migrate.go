package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT 'health'
		           CHECK(category IN ('mindfulness','health','reflection','exercise','learning')),
		streak     INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habits_name ON habits(name)`,

	`CREATE TABLE IF NOT EXISTS habit_completions (
		id           TEXT PRIMARY KEY,
		habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_habit ON habit_completions(habit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_at ON habit_completions(completed_at)`,

	`CREATE TABLE IF NOT EXISTS stress_entries (
		id         TEXT PRIMARY KEY,
		level      TEXT NOT NULL
		           CHECK(level IN ('very_low','low','moderate','high','very_high')),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stress_created ON stress_entries(created_at)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		message    TEXT NOT NULL,
		kind       TEXT NOT NULL DEFAULT 'info' CHECK(kind IN ('success','info')),
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_expires ON notifications(expires_at)`,
}
