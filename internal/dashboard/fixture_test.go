package dashboard

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/xuri/excelize/v2"

	"sitetwin/internal/config"
	"sitetwin/internal/model"
)

// 1x1 transparent PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

var evaHeaders = []interface{}{
	"Activities", "Planned Date", "Actual Date", "Planned Cost", "Actual Cost",
	"Cummulative Planned Cost", "Cummulative Actual Cost", "Actual Percentage",
	"SPI = BCWP / BCWS", "CPI = BCWP / ACWP", "SV = BCWP - BCWS", "CV = BCWP - ACWP",
}

var evaRows = [][]interface{}{
	evaHeaders,
	{"Footing", "2025-02-10", "2025-02-12", 2000, 1800, 3000, 2900, 0.25, 1.05, 1.2, 100, 200},
	{"Excavation", "2025-02-01", "2025-02-04", 1000, 1100, 1000, 1100, 0.1, 0.95, 0.9, -50, -100},
}

// fixedNow 2025-03-01 12:00 in Asia/Kolkata
var fixedNow = time.Date(2025, 3, 1, 6, 30, 0, 0, time.UTC)

type stubWeather struct {
	forecast model.Forecast
}

func (s stubWeather) Fetch(context.Context) model.Forecast {
	return s.forecast
}

type fixture struct {
	cfg  *config.AppConfig
	now  time.Time
	dash *Dashboard
}

// newFixture dashboard over temp data/visuals dirs holding only the logo
func newFixture(t *testing.T, forecast model.Forecast) *fixture {
	t.Helper()

	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Data.DataDir = filepath.Join(root, "data")
	cfg.Data.VisualsDir = filepath.Join(root, "visuals")
	for _, dir := range []string{cfg.Data.DataDir, cfg.Data.VisualsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
	}
	writeFile(t, cfg.VisualPath(logoFile), pngBytes)

	f := &fixture{cfg: cfg, now: fixedNow}
	f.dash = New(cfg,
		WithWeather(stubWeather{forecast: forecast}),
		WithClock(func() time.Time { return f.now }),
	)
	return f
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile %s failed: %v", path, err)
	}
}

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		r := row
		if err := wb.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow %s failed: %v", cell, err)
		}
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	writeFile(t, path, workbookBytes(t, rows))
}

func upload(t *testing.T, d *Dashboard, name string, data []byte) string {
	t.Helper()
	id, err := d.AcceptUpload(name, int64(len(data)), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("AcceptUpload failed: %v", err)
	}
	return id
}
