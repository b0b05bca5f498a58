package excel_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sitetwin/internal/service/excel"
)

func TestReadTableFile(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "Progress", [][]interface{}{
		{"Element", " Status ", "Completion"},
		{"Footing F1", "Done", 100},
		{},
		{"Column C1", "In progress"},
	})

	table, err := excel.ReadTableFile(path)
	if err != nil {
		t.Fatalf("ReadTableFile failed: %v", err)
	}
	if got, want := len(table.Columns), 3; got != want {
		t.Fatalf("len(Columns)=%d, want %d", got, want)
	}
	if table.Columns[1] != "Status" {
		t.Fatalf("Columns[1]=%q, want trimmed header", table.Columns[1])
	}
	if got, want := table.RowCount(), 2; got != want {
		t.Fatalf("RowCount=%d, want %d (blank row skipped)", got, want)
	}
	if table.Rows[0][2] != "100" {
		t.Fatalf("Rows[0][2]=%q, want 100", table.Rows[0][2])
	}
	// short rows are padded to the header width
	if len(table.Rows[1]) != 3 || table.Rows[1][2] != "" {
		t.Fatalf("Rows[1]=%q, want padded row", table.Rows[1])
	}
}

func TestReadTableFile_CellsPastHeader(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "Progress", [][]interface{}{
		{"Element", "Status"},
		{"Wall", "Done", "recheck plaster"},
		{"Slab", "Pending"},
	})

	table, err := excel.ReadTableFile(path)
	if err != nil {
		t.Fatalf("ReadTableFile failed: %v", err)
	}
	want := []string{"Element", "Status", "Unnamed: 2"}
	if len(table.Columns) != len(want) {
		t.Fatalf("Columns=%q, want %q", table.Columns, want)
	}
	for i := range want {
		if table.Columns[i] != want[i] {
			t.Fatalf("Columns=%q, want %q", table.Columns, want)
		}
	}
	if table.Rows[0][2] != "recheck plaster" {
		t.Fatalf("Rows[0]=%q, extra cell lost", table.Rows[0])
	}
	if len(table.Rows[1]) != 3 || table.Rows[1][2] != "" {
		t.Fatalf("Rows[1]=%q, want padded row", table.Rows[1])
	}
}

func TestReadTableFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := excel.ReadTableFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	if err == nil {
		t.Fatalf("expected error for missing workbook")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want os.ErrNotExist", err)
	}
}

func TestParserWithoutFile(t *testing.T) {
	t.Parallel()

	p := excel.NewParser()
	if p.GetFileID() == "" {
		t.Fatalf("file id should be assigned")
	}
	if _, err := p.ReadTable(""); !errors.Is(err, excel.ErrNoFile) {
		t.Fatalf("err=%v, want ErrNoFile", err)
	}
}

func TestReadTable_EmptySheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "Empty", nil)
	_, err := excel.ReadTableFile(path)
	if !errors.Is(err, excel.ErrEmptySheet) {
		t.Fatalf("err=%v, want ErrEmptySheet", err)
	}
}
