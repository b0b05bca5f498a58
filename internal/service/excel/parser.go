package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"sitetwin/internal/model"
)

// ErrNoFile a sheet was requested before a workbook was loaded
var ErrNoFile = errors.New("no file loaded")

// Parser reads dashboard workbooks
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser creates a parser with a fresh file id
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile loads a workbook from a reader (uploads)
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// OpenPath loads a workbook from disk
func (p *Parser) OpenPath(path string) error {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open excel %s: %w", path, err)
	}
	p.file = file
	return nil
}

// GetFileID id used to cache uploaded workbooks
func (p *Parser) GetFileID() string {
	return p.fileID
}

// GetSheets sheet names in workbook order
func (p *Parser) GetSheets() ([]string, error) {
	if p.file == nil {
		return nil, ErrNoFile
	}
	return p.file.GetSheetList(), nil
}

// resolveSheet "" selects the first sheet, like reading a workbook without a sheet name
func (p *Parser) resolveSheet(sheet string) (string, error) {
	if p.file == nil {
		return "", ErrNoFile
	}
	if sheet != "" {
		return sheet, nil
	}
	sheets := p.file.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	return sheets[0], nil
}

// ReadTable header row plus formatted data rows. Cells beyond the last header get
// "Unnamed: <i>" columns and every row is padded to the widest one.
func (p *Parser) ReadTable(sheet string) (*model.Table, error) {
	name, err := p.resolveSheet(sheet)
	if err != nil {
		return nil, err
	}

	rows, err := p.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s: %w", name, ErrEmptySheet)
	}

	width := len(rows[0])
	for _, row := range rows[1:] {
		if !isBlankRow(row) && len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	copy(header, rows[0])

	table := &model.Table{
		Columns: normalizeHeaders(header),
		Rows:    make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		out := make([]string, width)
		copy(out, row)
		table.Rows = append(table.Rows, out)
	}
	return table, nil
}

// rawRows rows with unformatted cell values (date cells come back as serial numbers)
func (p *Parser) rawRows(sheet string) (string, [][]string, error) {
	name, err := p.resolveSheet(sheet)
	if err != nil {
		return "", nil, err
	}
	rows, err := p.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return name, nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return name, nil, fmt.Errorf("sheet %s: %w", name, ErrEmptySheet)
	}
	return name, rows, nil
}

// Close releases the workbook
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ReadTableFile opens path and reads its first sheet
func ReadTableFile(path string) (*model.Table, error) {
	p := NewParser()
	if err := p.OpenPath(path); err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ReadTable("")
}

func normalizeHeaders(row []string) []string {
	out := make([]string, len(row))
	for i, h := range row {
		h = NormalizeColumnName(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		out[i] = h
	}
	return out
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
