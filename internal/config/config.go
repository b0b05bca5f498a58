package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultUploadTTLMinutes how long a parsed upload stays cached
const DefaultUploadTTLMinutes = 30

// AppConfig application config
type AppConfig struct {
	Server   ServerConfig    `toml:"server"`
	Data     DataConfig      `toml:"data"`
	Site     SiteConfig      `toml:"site"`
	Embeds   EmbedConfig     `toml:"embeds"`
	Weather  WeatherConfig   `toml:"weather"`
	Uploads  UploadConfig    `toml:"uploads"`
	Progress []ProgressEntry `toml:"progress"`
}

// ServerConfig HTTP server config
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
}

// DataConfig file locations. Relative paths resolve against the working directory.
type DataConfig struct {
	DataDir    string `toml:"data_dir"`
	VisualsDir string `toml:"visuals_dir"`
	DBFile     string `toml:"db_file"`
}

// SiteConfig project site identity
type SiteConfig struct {
	Title              string  `toml:"title"`
	Subtitle           string  `toml:"subtitle"`
	Latitude           float64 `toml:"latitude"`
	Longitude          float64 `toml:"longitude"`
	Timezone           string  `toml:"timezone"`
	CCTVURL            string  `toml:"cctv_url"`
	HomeRefreshSeconds int     `toml:"home_refresh_seconds"`
}

// EmbedConfig third-party viewer URLs
type EmbedConfig struct {
	AsPlannedURL string `toml:"as_planned_url"`
	DrawingURL   string `toml:"drawing_url"`
	MapZoom      int    `toml:"map_zoom"`
}

// WeatherConfig forecast API
type WeatherConfig struct {
	Endpoint  string `toml:"endpoint"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// UploadConfig EVA workbook upload limits
type UploadConfig struct {
	MaxBytes   int64 `toml:"max_bytes"`
	TTLMinutes int   `toml:"ttl_minutes"`
}

// ProgressEntry one survey date. Paths are relative to the data/visuals dirs.
type ProgressEntry struct {
	Key        string `toml:"key"`
	Excel      string `toml:"excel"`
	Gif        string `toml:"gif"`
	AsBuiltURL string `toml:"as_built_url"`
}

// LoadConfigInfo metadata gathered while loading
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig defaults matching the site deployment
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        8501,
			DevMode:     false,
			OpenBrowser: true,
		},
		Data: DataConfig{
			DataDir:    "data",
			VisualsDir: "visuals",
			DBFile:     "sitetwin.db",
		},
		Site: SiteConfig{
			Title:              "Mockup Site Digital Twin Dashboard",
			Subtitle:           "<strong>IIT Madras</strong> | BTCM Division",
			Latitude:           12.989750,
			Longitude:          80.230093,
			Timezone:           "Asia/Kolkata",
			CCTVURL:            "http://10.21.56.110/",
			HomeRefreshSeconds: 60,
		},
		Embeds: EmbedConfig{
			AsPlannedURL: "https://app.speckle.systems/projects/a95c025094/models/7f6e8a8520?embed=true",
			DrawingURL:   "https://app.speckle.systems/projects/970c0e268f/models/65931bb453?embed=true",
			MapZoom:      18,
		},
		Weather: WeatherConfig{
			Endpoint:  "https://api.open-meteo.com/v1/forecast",
			TimeoutMS: 5000,
		},
		Uploads: UploadConfig{
			MaxBytes:   10 * 1024 * 1024,
			TTLMinutes: DefaultUploadTTLMinutes,
		},
		Progress: []ProgressEntry{
			{
				Key:        "06 Feb",
				Excel:      "progress_06feb.xlsx",
				Gif:        "progress_06feb.gif",
				AsBuiltURL: "https://app.speckle.systems/projects/3db7806786/models/8c40f67a94?embed=true",
			},
			{
				Key:        "08 Mar",
				Excel:      "progress_08mar.xlsx",
				Gif:        "progress_08mar.gif",
				AsBuiltURL: "https://app.speckle.systems/projects/3db7806786/models/4b57f57c40?embed=true",
			},
			{
				Key:        "17 Mar",
				Excel:      "progress_17mar.xlsx",
				Gif:        "progress_17mar.gif",
				AsBuiltURL: "https://app.speckle.systems/projects/3db7806786/models/78d9e95751?embed=true",
			},
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath config.toml in the working directory, else beside the executable
func DefaultConfigPath() string {
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml"
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo loads path (DefaultConfigPath when empty) over the defaults.
// A missing file is not an error.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	// a [[progress]] table in the file replaces the default list
	config.Progress = nil
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}
	if config.Progress == nil {
		config.Progress = DefaultConfig().Progress
	}

	applyEnv(config)
	return config, info, nil
}

func applyEnv(config *AppConfig) {
	if v := os.Getenv("SITETWIN_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("SITETWIN_VISUALS_DIR"); v != "" {
		config.Data.VisualsDir = v
	}
}

// SaveConfig writes config to path
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DataPath file under the data directory
func (c *AppConfig) DataPath(name string) string {
	return filepath.Join(c.Data.DataDir, name)
}

// VisualPath file under the visuals directory
func (c *AppConfig) VisualPath(name string) string {
	return filepath.Join(c.Data.VisualsDir, name)
}

// DBPath sqlite file for the upload log
func (c *AppConfig) DBPath() string {
	if filepath.IsAbs(c.Data.DBFile) {
		return c.Data.DBFile
	}
	return filepath.Join(c.Data.DataDir, c.Data.DBFile)
}

// UploadTTL cache lifetime for uploads; unset or non-positive values use the default
func (c *AppConfig) UploadTTL() time.Duration {
	if c.Uploads.TTLMinutes <= 0 {
		return DefaultUploadTTLMinutes * time.Minute
	}
	return time.Duration(c.Uploads.TTLMinutes) * time.Minute
}
