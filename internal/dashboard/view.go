package dashboard

import (
	"html/template"

	"sitetwin/internal/model"
)

// Header logo ribbon
type Header struct {
	Title    string
	Subtitle template.HTML
	LogoURI  template.URL
}

// View everything one page render needs. Exactly one page section is set,
// unless Halt is non-empty, in which case rendering stops after the nav bar.
type View struct {
	Page           Page
	Header         *Header
	Nav            []Page
	Halt           string
	Warnings       []string
	RefreshSeconds int

	Home       *HomeView
	Progress   *ProgressView
	EVA        *EVAView
	Milestones *MilestoneView
	Financial  *FinancialView
	Precast    *PrecastView
	AsPlanned  *EmbedView
	SiteMap    *MapView
}

// Halted reports whether the render stopped early
func (v *View) Halted() bool {
	return v.Halt != ""
}

// Params user selections carried in the query string
type Params struct {
	Date   string // progress date key or forecast date
	Type   string // precast type filter
	Upload string // cached EVA upload id
}

// HomeView landing page
type HomeView struct {
	Weather       model.Forecast
	SelectedDay   *model.DailyForecast
	LocalTime     string
	CCTVURL       string
	AsPlannedURL  string
	SitePhotoPath string // URL path, "" when the photo is missing
	DrawingURL    string
	Map           MapView
}

// ProgressView one survey date
type ProgressView struct {
	Keys       []string
	Selected   string
	GifPath    string
	PhotoPath  string
	AsPlanned  string
	AsBuiltURL string
	Table      *model.Table
	DataError  string
}

// Metric headline number
type Metric struct {
	Label string
	Value string
}

// IndexRow SPI/CPI table row with highlight flags
type IndexRow struct {
	Date     string
	Activity string
	SPI      string
	CPI      string
	SPIGood  bool
	CPIGood  bool
}

// EVAView earned value page
type EVAView struct {
	Source    string
	Uploaded  bool
	UploadID  string
	Columns   []string
	Rows      [][]string
	Metrics   []Metric
	Indices   []IndexRow
	SCurve    template.JS
	Delays    template.JS
	Variances template.JS
	Scatter   template.JS
}

// MilestoneView milestone table and Gantt chart
type MilestoneView struct {
	Columns []string
	Rows    [][]string
	Gantt   template.JS
}

// FinancialView planned vs spent
type FinancialView struct {
	Rows         []model.FinancialRow
	TotalPlanned float64
	TotalSpent   float64
	Chart        template.JS
}

// PrecastView filterable element table
type PrecastView struct {
	Types    []string
	Selected string
	Elements []model.PrecastElement
}

// EmbedView a single iframe
type EmbedView struct {
	Title  string
	URL    string
	Height int
}

// MapView map iframe
type MapView struct {
	URL    string
	Height int
}
