package database

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	config := Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "sensegrid_test.db"),
	}

	db, err := NewDB(config)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	cleanup := func() {
		db.conn.Exec("DELETE FROM feedback_logs")
		db.Close()
	}

	return db, cleanup
}
