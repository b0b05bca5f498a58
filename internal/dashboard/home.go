package dashboard

import (
	"context"

	"sitetwin/internal/service/assets"
)

const sitePhotoMissing = "Site photo not found."

func (d *Dashboard) buildHome(ctx context.Context, view *View, params Params) error {
	forecast := d.weather.Fetch(ctx)

	home := &HomeView{
		Weather:      forecast,
		LocalTime:    d.now().In(d.location).Format("15:04"),
		CCTVURL:      d.cfg.Site.CCTVURL,
		AsPlannedURL: d.cfg.Embeds.AsPlannedURL,
		DrawingURL:   d.cfg.Embeds.DrawingURL,
		Map:          MapView{URL: d.MapURL(), Height: 400},
	}
	if day, ok := forecast.Day(params.Date); ok {
		home.SelectedDay = &day
	}

	if assets.Exists(d.assets.Path(sitePhotoFile)) {
		home.SitePhotoPath = visualURL(sitePhotoFile)
	} else {
		view.Warnings = append(view.Warnings, sitePhotoMissing)
	}

	view.Home = home
	view.RefreshSeconds = d.cfg.Site.HomeRefreshSeconds
	return nil
}
