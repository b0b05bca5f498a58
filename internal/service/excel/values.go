package excel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptySheet sheet has no header row
	ErrEmptySheet = errors.New("empty sheet")
	// ErrColumnMissing a required header is absent
	ErrColumnMissing = errors.New("required column missing")
)

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumnName trims and collapses whitespace (line breaks inside header cells included)
func NormalizeColumnName(name string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(name, " "))
}

func headerKey(name string) string {
	return strings.ToLower(NormalizeColumnName(name))
}

// columnIndex header lookup by any of a column's accepted names
type columnIndex map[string]int

func newColumnIndex(headers []string) columnIndex {
	idx := make(columnIndex, len(headers))
	for i, h := range headers {
		k := headerKey(h)
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}

func (ci columnIndex) find(names ...string) int {
	for _, n := range names {
		if i, ok := ci[headerKey(n)]; ok {
			return i
		}
	}
	return -1
}

func (ci columnIndex) require(sheet string, names ...string) (int, error) {
	i := ci.find(names...)
	if i < 0 {
		return -1, fmt.Errorf("sheet %s: %w: %q", sheet, ErrColumnMissing, names[0])
	}
	return i, nil
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
	"1/2/06",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2-Jan-2006",
	"2-Jan-06",
}

// ParseDate coerces a cell to a date. Excel serial numbers and the common text layouts
// are accepted; anything else yields nil rather than an error. A bare four digit
// number is a year, not a serial.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if isYear(raw) {
		t, err := time.Parse("2006", raw)
		if err != nil {
			return nil
		}
		return &t
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return nil
		}
		return &t
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func isYear(s string) bool {
	if len(s) != 4 || s[0] == '0' {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseNumber coerces a cell to a number. Thousands separators, the rupee sign and a
// trailing percent sign are accepted; blanks and text yield nil.
func ParseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.TrimSpace(s)

	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if percent {
		f /= 100
	}
	return &f
}
