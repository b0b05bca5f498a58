package dashboard

// Page one navigable dashboard page
type Page struct {
	Slug string
	Name string
	Icon string
}

// Label nav button text
func (p Page) Label() string {
	if p.Icon == "" {
		return p.Name
	}
	return p.Icon + "  " + p.Name
}

// Path URL of the page
func (p Page) Path() string {
	if p.Slug == "" {
		return "/"
	}
	return "/pages/" + p.Slug
}

// Home landing page, not shown in the nav bar
var Home = Page{Slug: "", Name: "Home", Icon: "🏠"}

var (
	ProgressMonitoring   = Page{Slug: "progress-monitoring", Name: "Progress Monitoring", Icon: "🏗️"}
	EarnedValueAnalysis  = Page{Slug: "earned-value-analysis", Name: "Earned Value Analysis", Icon: "📊"}
	MilestoneTracker     = Page{Slug: "milestone-tracker", Name: "Milestone Tracker", Icon: "🎯"}
	FinancialOverview    = Page{Slug: "financial-overview", Name: "Financial Overview", Icon: "💰"}
	PrecastElementStatus = Page{Slug: "precast-element-status", Name: "Precast Element Status", Icon: "📦"}
	AsPlanned            = Page{Slug: "as-planned", Name: "As Planned", Icon: "🧱"}
	SiteMap              = Page{Slug: "site-map", Name: "Site Map", Icon: "🗺️"}
)

// NavPages nav bar order
var NavPages = []Page{
	ProgressMonitoring,
	EarnedValueAnalysis,
	MilestoneTracker,
	FinancialOverview,
	PrecastElementStatus,
	AsPlanned,
	SiteMap,
}

// Lookup page by slug; "" is Home
func Lookup(slug string) (Page, bool) {
	if slug == "" {
		return Home, true
	}
	for _, p := range NavPages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}
