package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/perceptlab/sensegrid/internal/models"
)

type LogRepository struct {
	db *DB
}

func NewLogRepository(db *DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) InsertLog(ctx context.Context, logEntry *models.FeedbackLog) error {
	query := `
		INSERT INTO feedback_logs (
			id, log_id, filename, stored_name, image_path,
			coarseness, cell_count, exported_at, upload_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if r.db.dbType != "postgres" {
		query = `
		INSERT INTO feedback_logs (
			id, log_id, filename, stored_name, image_path,
			coarseness, cell_count, exported_at, upload_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	}

	_, err := r.db.conn.ExecContext(ctx, query,
		logEntry.ID,
		logEntry.LogID,
		logEntry.Filename,
		logEntry.StoredName,
		logEntry.ImagePath,
		logEntry.Coarseness,
		logEntry.CellCount,
		logEntry.ExportedAt,
		logEntry.UploadTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}
	return nil
}

func (r *LogRepository) GetLogByStoredName(ctx context.Context, storedName string) (*models.FeedbackLog, error) {
	query := `
		SELECT id, log_id, filename, stored_name, image_path,
		       coarseness, cell_count, exported_at, upload_time
		FROM feedback_logs
		WHERE stored_name = $1`
	if r.db.dbType != "postgres" {
		query = `
		SELECT id, log_id, filename, stored_name, image_path,
		       coarseness, cell_count, exported_at, upload_time
		FROM feedback_logs
		WHERE stored_name = ?`
	}

	logEntry := &models.FeedbackLog{}
	err := r.db.conn.QueryRowContext(ctx, query, storedName).Scan(
		&logEntry.ID,
		&logEntry.LogID,
		&logEntry.Filename,
		&logEntry.StoredName,
		&logEntry.ImagePath,
		&logEntry.Coarseness,
		&logEntry.CellCount,
		&logEntry.ExportedAt,
		&logEntry.UploadTime,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("log not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	return logEntry, nil
}

func (r *LogRepository) ListLogs(ctx context.Context) ([]models.FeedbackLog, error) {
	query := `
		SELECT id, log_id, filename, stored_name, image_path,
		       coarseness, cell_count, exported_at, upload_time
		FROM feedback_logs
		ORDER BY upload_time DESC`

	return r.queryLogs(ctx, query)
}

func (r *LogRepository) SearchLogs(ctx context.Context, term string) ([]models.FeedbackLog, error) {
	if term == "" {
		return r.ListLogs(ctx)
	}

	pattern := "%" + term + "%"
	query := `
		SELECT id, log_id, filename, stored_name, image_path,
		       coarseness, cell_count, exported_at, upload_time
		FROM feedback_logs
		WHERE log_id ILIKE $1 OR filename ILIKE $2
		ORDER BY upload_time DESC`
	if r.db.dbType != "postgres" {
		query = `
		SELECT id, log_id, filename, stored_name, image_path,
		       coarseness, cell_count, exported_at, upload_time
		FROM feedback_logs
		WHERE LOWER(log_id) LIKE LOWER(?) OR LOWER(filename) LIKE LOWER(?)
		ORDER BY upload_time DESC`
	}

	return r.queryLogs(ctx, query, pattern, pattern)
}

func (r *LogRepository) DeleteLog(ctx context.Context, storedName string) error {
	query := `DELETE FROM feedback_logs WHERE stored_name = $1`
	if r.db.dbType != "postgres" {
		query = `DELETE FROM feedback_logs WHERE stored_name = ?`
	}

	if _, err := r.db.conn.ExecContext(ctx, query, storedName); err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

func (r *LogRepository) queryLogs(ctx context.Context, query string, args ...any) ([]models.FeedbackLog, error) {
	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var logs []models.FeedbackLog
	for rows.Next() {
		var logEntry models.FeedbackLog
		if err := rows.Scan(
			&logEntry.ID,
			&logEntry.LogID,
			&logEntry.Filename,
			&logEntry.StoredName,
			&logEntry.ImagePath,
			&logEntry.Coarseness,
			&logEntry.CellCount,
			&logEntry.ExportedAt,
			&logEntry.UploadTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, logEntry)
	}
	return logs, rows.Err()
}
