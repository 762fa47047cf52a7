package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/geoservice-auth/internal/repository/sqlite"
)

func TestNew_OpensAndMigrates(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Running migrations again is a no-op.
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count == 0 {
		t.Fatal("expected at least one applied migration")
	}
}

func TestNew_InvalidPath(t *testing.T) {
	if _, err := sqlite.New(filepath.Join(t.TempDir(), "missing", "nested", "test.db")); err == nil {
		t.Fatal("expected an error for an uncreatable database path")
	}
}
