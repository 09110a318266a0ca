// Package testutil holds shared test plumbing: an in-memory migrated
// database, entity fixtures, and a fault-injecting unit of work.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/studybuddy-app/studybuddy/internal/db"
)

// NewTestDB returns a fully migrated in-memory database, closed via
// t.Cleanup. Each call gets its own isolated database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestUoW wraps a test database in a real UnitOfWork.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
