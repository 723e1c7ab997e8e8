package testutil

import (
	"database/sql"
	"testing"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory SQLite database with the full schema
// applied, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the test database in a real UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
