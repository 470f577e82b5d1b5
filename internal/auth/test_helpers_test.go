package auth

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/havengate/havengate/internal/infrastructure/database"
	_ "github.com/havengate/havengate/migrations"
)

// newTestDB opens a migrated temp-file database for repository tests.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "auth_test.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db.DB
}
