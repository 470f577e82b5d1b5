package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/havengate/havengate/internal/infrastructure/database"
	_ "github.com/havengate/havengate/migrations"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	dir := t.TempDir()
	db, err := database.Open(database.Config{
		Path:        filepath.Join(dir, "test.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})
	return db
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "test.db")

	db, err := database.Open(database.Config{Path: path, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close() //nolint:errcheck

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("expected database directory to exist: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	db := openTestDB(t)

	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// All core tables should exist after migration
	tables := []string{"users", "credentials", "sensor_readings", "device_state", "schema_migrations"}
	for _, table := range tables {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}

	// Device state row is seeded with defaults
	var door, light string
	err := db.QueryRowContext(ctx,
		"SELECT door_status, light_status FROM device_state WHERE id = 1",
	).Scan(&door, &light)
	if err != nil {
		t.Fatalf("reading seeded device state: %v", err)
	}
	if door != "closed" || light != "off" {
		t.Errorf("seeded state = (%s, %s), want (closed, off)", door, light)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate() error = %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestMigrateDown(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := db.MigrateDown(ctx); err != nil {
		t.Fatalf("MigrateDown() error = %v", err)
	}

	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='device_state'",
	).Scan(&count)
	if err != nil {
		t.Fatalf("checking table existence: %v", err)
	}
	if count != 0 {
		t.Error("expected device_state table to be dropped after MigrateDown")
	}
}
