package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"go.uber.org/zap"

	"sitetwin/internal/config"
	"sitetwin/internal/metrics"
	"sitetwin/internal/model"
	"sitetwin/internal/service/assets"
	"sitetwin/internal/service/weather"
	"sitetwin/internal/store"
)

const (
	logoFile      = "iitmlogo.png"
	sitePhotoFile = "Siteimage.png"
	evaFile       = "EVA_Analysis.xlsx"
	milestoneFile = "Milestone.xlsx"

	// URL prefix the server mounts the visuals directory under
	VisualsPrefix = "/visuals/"
)

// WeatherSource forecast provider; implementations degrade to an empty Forecast
type WeatherSource interface {
	Fetch(ctx context.Context) model.Forecast
}

// Dashboard builds page views. Every build reads its inputs fresh from disk.
type Dashboard struct {
	cfg      *config.AppConfig
	assets   *assets.Loader
	weather  WeatherSource
	uploads  *uploadCache
	store    *store.Store
	location *time.Location
	now      func() time.Time
	log      *zap.Logger
}

// Option configures a Dashboard
type Option func(*Dashboard)

// WithWeather overrides the weather source
func WithWeather(w WeatherSource) Option {
	return func(d *Dashboard) { d.weather = w }
}

// WithClock overrides the clock
func WithClock(now func() time.Time) Option {
	return func(d *Dashboard) { d.now = now }
}

// WithStore enables the upload log
func WithStore(s *store.Store) Option {
	return func(d *Dashboard) { d.store = s }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(d *Dashboard) { d.log = log }
}

// New creates a dashboard over cfg
func New(cfg *config.AppConfig, opts ...Option) *Dashboard {
	d := &Dashboard{
		cfg:    cfg,
		assets: assets.NewLoader(cfg.Data.VisualsDir),
		now:    time.Now,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.weather == nil {
		d.weather = weather.NewClient(
			cfg.Weather.Endpoint,
			cfg.Site.Latitude,
			cfg.Site.Longitude,
			cfg.Site.Timezone,
			time.Duration(cfg.Weather.TimeoutMS)*time.Millisecond,
			d.log,
		)
	}
	loc, err := time.LoadLocation(cfg.Site.Timezone)
	if err != nil {
		d.log.Warn("unknown site timezone, using local time", zap.String("timezone", cfg.Site.Timezone), zap.Error(err))
		loc = time.Local
	}
	d.location = loc
	d.uploads = newUploadCache(cfg.UploadTTL(), func() time.Time { return d.now() })
	return d
}

// Build renders the page named by slug top to bottom
func (d *Dashboard) Build(ctx context.Context, slug string, params Params) *View {
	view := &View{Nav: NavPages}

	page, ok := Lookup(slug)
	if !ok {
		view.Page = Page{Slug: slug, Name: slug}
	} else {
		view.Page = page
	}

	logo, err := d.assets.LoadLogo(logoFile)
	if err != nil {
		return d.halt(view, err)
	}
	view.Header = &Header{
		Title:    d.cfg.Site.Title,
		Subtitle: template.HTML(d.cfg.Site.Subtitle),
		LogoURI:  template.URL(logo),
	}

	if !ok {
		view.Halt = fmt.Sprintf("Unknown page: %s", slug)
		metrics.RecordPageRender("unknown", "unknown")
		return view
	}

	switch page {
	case Home:
		err = d.buildHome(ctx, view, params)
	case ProgressMonitoring:
		err = d.buildProgress(view, params)
	case EarnedValueAnalysis:
		err = d.buildEVA(view, params)
	case MilestoneTracker:
		err = d.buildMilestones(view)
	case FinancialOverview:
		d.buildFinancial(view)
	case PrecastElementStatus:
		d.buildPrecast(view, params)
	case AsPlanned:
		view.AsPlanned = &EmbedView{
			Title:  "3D Model Viewer (As-Planned)",
			URL:    d.cfg.Embeds.AsPlannedURL,
			Height: 650,
		}
	case SiteMap:
		view.SiteMap = &MapView{URL: d.MapURL(), Height: 700}
	}
	if err != nil {
		return d.halt(view, err)
	}

	metrics.RecordPageRender(page.Name, "ok")
	return view
}

func (d *Dashboard) halt(view *View, err error) *View {
	if h, ok := model.AsHalt(err); ok {
		view.Halt = h.Message
	} else {
		view.Halt = err.Error()
	}
	label := "unknown"
	if _, ok := Lookup(view.Page.Slug); ok {
		label = view.Page.Name
	}
	d.log.Warn("page render halted", zap.String("page", view.Page.Name), zap.Error(err))
	metrics.RecordPageRender(label, "halted")
	return view
}

// MapURL Google Maps embed centred on the site
func (d *Dashboard) MapURL() string {
	return fmt.Sprintf("https://maps.google.com/maps?q=%s,%s&z=%d&output=embed",
		strconv.FormatFloat(d.cfg.Site.Latitude, 'f', -1, 64),
		strconv.FormatFloat(d.cfg.Site.Longitude, 'f', -1, 64),
		d.cfg.Embeds.MapZoom,
	)
}

func visualURL(name string) string {
	if name == "" {
		return ""
	}
	return VisualsPrefix + name
}

// Weather current forecast; empty when the API is unreachable
func (d *Dashboard) Weather(ctx context.Context) model.Forecast {
	return d.weather.Fetch(ctx)
}

// CachedUploads number of live EVA uploads
func (d *Dashboard) CachedUploads() int {
	return d.uploads.len()
}
