package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigWithInfo_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if info.PortSpecified {
		t.Fatalf("PortSpecified should be false without a file")
	}
	if cfg.Server.Port != 8501 {
		t.Fatalf("Port=%d, want 8501", cfg.Server.Port)
	}
	if got := len(cfg.Progress); got != 3 {
		t.Fatalf("len(Progress)=%d, want 3", got)
	}
	if cfg.Progress[0].Key != "06 Feb" {
		t.Fatalf("Progress[0].Key=%q", cfg.Progress[0].Key)
	}
}

func TestLoadConfigWithInfo_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9000

[site]
latitude = 1.5

[[progress]]
key = "01 Jan"
excel = "progress_01jan.xlsx"
gif = "progress_01jan.gif"
as_built_url = "https://example.com/model"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if !info.PortSpecified {
		t.Fatalf("PortSpecified should be true")
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("Port=%d, want 9000", cfg.Server.Port)
	}
	if cfg.Site.Latitude != 1.5 {
		t.Fatalf("Latitude=%v, want 1.5", cfg.Site.Latitude)
	}
	// untouched keys keep defaults
	if cfg.Site.Longitude != 80.230093 {
		t.Fatalf("Longitude=%v, want default", cfg.Site.Longitude)
	}
	if len(cfg.Progress) != 1 || cfg.Progress[0].Key != "01 Jan" {
		t.Fatalf("Progress=%+v, want single 01 Jan entry", cfg.Progress)
	}
}

func TestLoadConfigWithInfo_EnvOverridesDirs(t *testing.T) {
	t.Setenv("SITETWIN_DATA_DIR", "/srv/site/data")
	t.Setenv("SITETWIN_VISUALS_DIR", "/srv/site/visuals")

	cfg, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if got, want := cfg.DataPath("Milestone.xlsx"), filepath.Join("/srv/site/data", "Milestone.xlsx"); got != want {
		t.Fatalf("DataPath=%q, want %q", got, want)
	}
	if got, want := cfg.VisualPath("iitmlogo.png"), filepath.Join("/srv/site/visuals", "iitmlogo.png"); got != want {
		t.Fatalf("VisualPath=%q, want %q", got, want)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Server.Port = 8600
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if !info.PortSpecified || loaded.Server.Port != 8600 {
		t.Fatalf("Port=%d specified=%v", loaded.Server.Port, info.PortSpecified)
	}
	if len(loaded.Progress) != len(cfg.Progress) {
		t.Fatalf("len(Progress)=%d, want %d", len(loaded.Progress), len(cfg.Progress))
	}
}

func TestUploadTTL_NonPositiveUsesDefault(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if got := cfg.UploadTTL(); got != 30*time.Minute {
		t.Fatalf("UploadTTL=%v, want 30m", got)
	}
	cfg.Uploads.TTLMinutes = 5
	if got := cfg.UploadTTL(); got != 5*time.Minute {
		t.Fatalf("UploadTTL=%v, want 5m", got)
	}
	for _, v := range []int{0, -10} {
		cfg.Uploads.TTLMinutes = v
		if got := cfg.UploadTTL(); got != 30*time.Minute {
			t.Fatalf("TTLMinutes=%d: UploadTTL=%v, want 30m", v, got)
		}
	}
}
