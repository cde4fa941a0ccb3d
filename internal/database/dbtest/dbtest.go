// Package dbtest opens migrated databases for tests.
package dbtest

import (
	"database/sql"
	"testing"

	"github.com/jask/combokit/internal/database"
)

// Open opens a migrated in-memory database closed at test cleanup.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
