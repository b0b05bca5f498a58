package dashboard

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"sitetwin/internal/metrics"
	"sitetwin/internal/service/excel"
	"sitetwin/internal/store"
)

var (
	// ErrUnsupportedFile upload is not an .xlsx workbook
	ErrUnsupportedFile = errors.New("only .xlsx files are supported")
	// ErrFileTooLarge upload exceeds the configured limit
	ErrFileTooLarge = errors.New("file too large")
)

// AcceptUpload parses an uploaded EVA workbook and caches its rows.
// The returned id selects the upload on the EVA page until the cache entry expires.
func (d *Dashboard) AcceptUpload(filename string, size int64, r io.Reader) (string, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".xlsx" {
		metrics.IncrementUpload("rejected")
		return "", ErrUnsupportedFile
	}
	limit := d.cfg.Uploads.MaxBytes
	if limit > 0 && size > limit {
		metrics.IncrementUpload("rejected")
		return "", fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, limit)
	}

	reader := r
	if limit > 0 {
		reader = io.LimitReader(r, limit+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		metrics.IncrementUpload("failed")
		return "", fmt.Errorf("read upload: %w", err)
	}
	if limit > 0 && int64(len(content)) > limit {
		metrics.IncrementUpload("rejected")
		return "", fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, limit)
	}

	sum := sha256.Sum256(content)
	logID := d.logUploadStart(filename, int64(len(content)), hex.EncodeToString(sum[:]))

	parser := excel.NewParser()
	uploadID := parser.GetFileID()
	if err := parser.LoadFile(bytes.NewReader(content)); err != nil {
		d.logUploadDone(logID, uploadID, 0, err)
		metrics.IncrementUpload("failed")
		return "", err
	}
	defer parser.Close()

	rows, err := parser.ParseEVA("")
	if err != nil {
		d.logUploadDone(logID, uploadID, 0, err)
		metrics.IncrementUpload("failed")
		return "", fmt.Errorf("parse EVA workbook: %w", err)
	}

	d.uploads.put(uploadID, filename, rows)
	d.logUploadDone(logID, uploadID, len(rows), nil)
	metrics.IncrementUpload("success")
	d.log.Info("EVA workbook uploaded",
		zap.String("uploadId", uploadID),
		zap.String("filename", filename),
		zap.Int("rows", len(rows)),
	)
	return uploadID, nil
}

// UploadLogs recent uploads, newest first; empty without a store
func (d *Dashboard) UploadLogs(limit int) ([]store.UploadLog, error) {
	if d.store == nil {
		return []store.UploadLog{}, nil
	}
	return d.store.ListUploadLogs(limit)
}

func (d *Dashboard) logUploadStart(filename string, size int64, hash string) int64 {
	if d.store == nil {
		return 0
	}
	id, err := d.store.CreateUploadLog(filename, size, hash)
	if err != nil {
		d.log.Warn("create upload log", zap.Error(err))
		return 0
	}
	return id
}

func (d *Dashboard) logUploadDone(id int64, uploadID string, rows int, uploadErr error) {
	if d.store == nil || id == 0 {
		return
	}
	status, msg := store.UploadStatusSuccess, ""
	if uploadErr != nil {
		status, msg = store.UploadStatusFailed, uploadErr.Error()
	}
	if err := d.store.CompleteUploadLog(id, uploadID, rows, status, msg); err != nil {
		d.log.Warn("complete upload log", zap.Int64("id", id), zap.Error(err))
	}
}
