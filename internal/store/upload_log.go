package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Upload statuses
const (
	UploadStatusProcessing = "processing"
	UploadStatusSuccess    = "success"
	UploadStatusFailed     = "failed"
)

// UploadLog one EVA workbook upload
type UploadLog struct {
	ID           int64      `json:"id"`
	UploadID     string     `json:"uploadId"`
	Filename     string     `json:"filename"`
	FileSize     int64      `json:"fileSize"`
	FileHash     string     `json:"fileHash"`
	RowCount     int        `json:"rowCount"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// CreateUploadLog records an upload as processing and returns its row id
func (s *Store) CreateUploadLog(filename string, fileSize int64, fileHash string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO upload_logs (filename, file_size, file_hash, status)
		VALUES (?, ?, ?, ?)
	`, filename, fileSize, fileHash, UploadStatusProcessing)
	if err != nil {
		return 0, fmt.Errorf("failed to create upload log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get upload log id: %w", err)
	}
	return id, nil
}

// CompleteUploadLog marks an upload finished
func (s *Store) CompleteUploadLog(id int64, uploadID string, rowCount int, status, errorMessage string) error {
	res, err := s.db.Exec(`
		UPDATE upload_logs SET
			upload_id = ?,
			row_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, uploadID, rowCount, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update upload log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("upload log %d not found", id)
	}
	return nil
}

// ListUploadLogs most recent first
func (s *Store) ListUploadLogs(limit int) ([]UploadLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, upload_id, filename, file_size, file_hash, row_count, status, error_message, created_at, completed_at
		FROM upload_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query upload logs failed: %w", err)
	}
	defer rows.Close()

	out := []UploadLog{}
	for rows.Next() {
		var (
			it        UploadLog
			completed sql.NullTime
		)
		if err := rows.Scan(&it.ID, &it.UploadID, &it.Filename, &it.FileSize, &it.FileHash, &it.RowCount,
			&it.Status, &it.ErrorMessage, &it.CreatedAt, &completed); err != nil {
			return nil, fmt.Errorf("scan upload log failed: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			it.CompletedAt = &t
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate upload logs failed: %w", err)
	}
	return out, nil
}
