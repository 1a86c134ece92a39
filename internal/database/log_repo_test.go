package database

import (
	"context"
	"testing"
	"time"

	"github.com/perceptlab/sensegrid/internal/models"
)

func testLog(logID, storedName string) *models.FeedbackLog {
	return models.NewFeedbackLog(logID, "left_arm.svg", storedName,
		"images/left_arm.svg", 8, 5, "20250101_120000")
}

func TestLogRepository_InsertAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLogRepository(db)
	ctx := context.Background()

	logEntry := testLog("trial-a", "trial-a_left_arm_svg_20250101_120000.json")
	if err := repo.InsertLog(ctx, logEntry); err != nil {
		t.Fatalf("Failed to insert log: %v", err)
	}

	retrieved, err := repo.GetLogByStoredName(ctx, logEntry.StoredName)
	if err != nil {
		t.Fatalf("Failed to retrieve log: %v", err)
	}

	if retrieved.LogID != logEntry.LogID {
		t.Errorf("Expected log_id %s, got %s", logEntry.LogID, retrieved.LogID)
	}
	if retrieved.Coarseness != 8 {
		t.Errorf("Expected coarseness 8, got %d", retrieved.Coarseness)
	}
	if retrieved.CellCount != 5 {
		t.Errorf("Expected cell count 5, got %d", retrieved.CellCount)
	}
}

func TestLogRepository_GetNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLogRepository(db)

	if _, err := repo.GetLogByStoredName(context.Background(), "missing.json"); err == nil {
		t.Error("Expected error for non-existent log, got nil")
	}
}

func TestLogRepository_ListLogs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLogRepository(db)
	ctx := context.Background()

	first := testLog("trial-a", "a.json")
	second := testLog("trial-b", "b.json")
	second.UploadTime = first.UploadTime.Add(10 * time.Millisecond)

	if err := repo.InsertLog(ctx, first); err != nil {
		t.Fatalf("Failed to insert first log: %v", err)
	}
	if err := repo.InsertLog(ctx, second); err != nil {
		t.Fatalf("Failed to insert second log: %v", err)
	}

	logs, err := repo.ListLogs(ctx)
	if err != nil {
		t.Fatalf("Failed to list logs: %v", err)
	}

	if len(logs) != 2 {
		t.Fatalf("Expected 2 logs, got %d", len(logs))
	}
	if logs[0].StoredName != "b.json" {
		t.Errorf("Expected most recent log first, got %s", logs[0].StoredName)
	}
}

func TestLogRepository_SearchLogs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLogRepository(db)
	ctx := context.Background()

	if err := repo.InsertLog(ctx, testLog("morning-trial", "a.json")); err != nil {
		t.Fatalf("Failed to insert log: %v", err)
	}
	if err := repo.InsertLog(ctx, testLog("evening-trial", "b.json")); err != nil {
		t.Fatalf("Failed to insert log: %v", err)
	}

	logs, err := repo.SearchLogs(ctx, "MORNING")
	if err != nil {
		t.Fatalf("Failed to search logs: %v", err)
	}

	if len(logs) != 1 || logs[0].LogID != "morning-trial" {
		t.Errorf("Expected only morning-trial, got %v", logs)
	}
}

func TestLogRepository_DeleteLog(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLogRepository(db)
	ctx := context.Background()

	logEntry := testLog("trial-a", "a.json")
	if err := repo.InsertLog(ctx, logEntry); err != nil {
		t.Fatalf("Failed to insert log: %v", err)
	}

	if err := repo.DeleteLog(ctx, logEntry.StoredName); err != nil {
		t.Fatalf("Failed to delete log: %v", err)
	}

	if _, err := repo.GetLogByStoredName(ctx, logEntry.StoredName); err == nil {
		t.Error("Expected deleted log to be gone")
	}
}
