package dashboard

import (
	"sitetwin/internal/service/assets"
)

// AssetCheck presence of one file the pages read
type AssetCheck struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Required bool   `json:"required"` // a missing required file halts its page
	Present  bool   `json:"present"`
}

// CheckAssets stats every configured file
func (d *Dashboard) CheckAssets() []AssetCheck {
	checks := []AssetCheck{
		{Name: "logo", Path: d.assets.Path(logoFile), Required: true},
		{Name: "site photo", Path: d.assets.Path(sitePhotoFile)},
		{Name: "EVA workbook", Path: d.cfg.DataPath(evaFile), Required: true},
		{Name: "milestone workbook", Path: d.cfg.DataPath(milestoneFile), Required: true},
	}
	for _, rec := range d.ProgressRecords() {
		checks = append(checks,
			AssetCheck{Name: "progress GIF " + rec.Key, Path: rec.GifPath, Required: true},
			AssetCheck{Name: "progress data " + rec.Key, Path: rec.ExcelPath},
		)
	}
	for i := range checks {
		checks[i].Present = assets.Exists(checks[i].Path)
	}
	return checks
}

// MissingRequired required checks that failed
func MissingRequired(checks []AssetCheck) []AssetCheck {
	var out []AssetCheck
	for _, c := range checks {
		if c.Required && !c.Present {
			out = append(out, c)
		}
	}
	return out
}
