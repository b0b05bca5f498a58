package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data", "sitetwin.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUploadLogLifecycle(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	id, err := s.CreateUploadLog("EVA_Analysis.xlsx", 2048, "abc123")
	if err != nil {
		t.Fatalf("CreateUploadLog failed: %v", err)
	}

	logs, err := s.ListUploadLogs(10)
	if err != nil {
		t.Fatalf("ListUploadLogs failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Status != UploadStatusProcessing || logs[0].CompletedAt != nil {
		t.Fatalf("logs=%+v, want one processing entry", logs)
	}

	if err := s.CompleteUploadLog(id, "upload-1", 12, UploadStatusSuccess, ""); err != nil {
		t.Fatalf("CompleteUploadLog failed: %v", err)
	}

	logs, err = s.ListUploadLogs(10)
	if err != nil {
		t.Fatalf("ListUploadLogs failed: %v", err)
	}
	got := logs[0]
	if got.UploadID != "upload-1" || got.RowCount != 12 || got.Status != UploadStatusSuccess {
		t.Fatalf("log=%+v", got)
	}
	if got.CompletedAt == nil {
		t.Fatalf("CompletedAt should be set")
	}
	if got.Filename != "EVA_Analysis.xlsx" || got.FileSize != 2048 || got.FileHash != "abc123" {
		t.Fatalf("log=%+v", got)
	}
}

func TestListUploadLogsNewestFirst(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, name := range []string{"a.xlsx", "b.xlsx", "c.xlsx"} {
		if _, err := s.CreateUploadLog(name, 1, ""); err != nil {
			t.Fatalf("CreateUploadLog(%s) failed: %v", name, err)
		}
	}

	logs, err := s.ListUploadLogs(2)
	if err != nil {
		t.Fatalf("ListUploadLogs failed: %v", err)
	}
	if len(logs) != 2 || logs[0].Filename != "c.xlsx" || logs[1].Filename != "b.xlsx" {
		t.Fatalf("logs=%+v, want c then b", logs)
	}
}

func TestCompleteUploadLogUnknownID(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.CompleteUploadLog(999, "", 0, UploadStatusFailed, "x"); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

func TestNewInMemory(t *testing.T) {
	t.Parallel()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(:memory:) failed: %v", err)
	}
	defer s.Close()
	if _, err := s.ListUploadLogs(0); err != nil {
		t.Fatalf("ListUploadLogs failed: %v", err)
	}
}
