package dashboard

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"sitetwin/internal/config"
	"sitetwin/internal/model"
	"sitetwin/internal/service/assets"
	"sitetwin/internal/service/excel"
)

const progressDataError = "Could not load progress data."

// ProgressRecords configured survey dates with their resolved files, in config order
func (d *Dashboard) ProgressRecords() []model.ProgressRecord {
	keys := make([]string, len(d.cfg.Progress))
	for i, e := range d.cfg.Progress {
		keys[i] = e.Key
	}
	photos := d.assets.SiteImages(keys)

	out := make([]model.ProgressRecord, 0, len(d.cfg.Progress))
	for _, e := range d.cfg.Progress {
		out = append(out, d.progressRecord(e, photos[e.Key]))
	}
	return out
}

func (d *Dashboard) progressRecord(e config.ProgressEntry, photo string) model.ProgressRecord {
	return model.ProgressRecord{
		Key:        e.Key,
		ExcelPath:  d.cfg.DataPath(e.Excel),
		GifPath:    d.assets.Path(e.Gif),
		AsBuiltURL: e.AsBuiltURL,
		PhotoPath:  photo,
	}
}

// selectProgress entry for key; unknown keys select the first date
func (d *Dashboard) selectProgress(key string) (config.ProgressEntry, bool) {
	if len(d.cfg.Progress) == 0 {
		return config.ProgressEntry{}, false
	}
	for _, e := range d.cfg.Progress {
		if e.Key == key {
			return e, true
		}
	}
	return d.cfg.Progress[0], true
}

func (d *Dashboard) buildProgress(view *View, params Params) error {
	entry, ok := d.selectProgress(params.Date)
	if !ok {
		return model.Halt("No progress dates configured.", nil)
	}
	rec := d.progressRecord(entry, d.assets.FindSiteImage(entry.Key))

	if err := assets.Require(rec.GifPath, fmt.Sprintf("Progress GIF not found at %s", rec.GifPath)); err != nil {
		return err
	}

	pv := &ProgressView{
		Keys:       make([]string, 0, len(d.cfg.Progress)),
		Selected:   entry.Key,
		GifPath:    visualURL(filepath.ToSlash(entry.Gif)),
		PhotoPath:  visualURL(rec.PhotoPath),
		AsPlanned:  d.cfg.Embeds.AsPlannedURL,
		AsBuiltURL: rec.AsBuiltURL,
	}
	for _, e := range d.cfg.Progress {
		pv.Keys = append(pv.Keys, e.Key)
	}

	table, err := excel.ReadTableFile(rec.ExcelPath)
	if err != nil {
		d.log.Warn("progress data unreadable", zap.String("key", entry.Key), zap.String("path", rec.ExcelPath), zap.Error(err))
		pv.DataError = progressDataError
	} else {
		pv.Table = table
	}

	view.Progress = pv
	return nil
}
