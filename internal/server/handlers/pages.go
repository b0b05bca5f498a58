package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitetwin/internal/dashboard"
)

const pageTemplate = "page.html"

// Pages server-rendered dashboard pages
type Pages struct {
	dash *dashboard.Dashboard
	log  *zap.Logger
}

// NewPages creates the page handlers
func NewPages(dash *dashboard.Dashboard, log *zap.Logger) *Pages {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pages{dash: dash, log: log}
}

// RegisterRoutes registers the page routes
func (p *Pages) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", p.Home)
	router.GET("/pages/:slug", p.Page)
	router.POST(dashboard.EarnedValueAnalysis.Path()+"/upload", p.UploadEVA)
}

// Home landing page
// GET /
func (p *Pages) Home(c *gin.Context) {
	p.render(c, dashboard.Home.Slug)
}

// Page any nav page
// GET /pages/:slug
func (p *Pages) Page(c *gin.Context) {
	p.render(c, c.Param("slug"))
}

// UploadEVA accepts an EVA workbook and redirects to the EVA page showing it.
// Submitting without a file keeps the default workbook.
// POST /pages/earned-value-analysis/upload
func (p *Pages) UploadEVA(c *gin.Context) {
	evaPath := dashboard.EarnedValueAnalysis.Path()

	header, err := c.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusSeeOther, evaPath)
		return
	}
	file, err := header.Open()
	if err != nil {
		p.uploadFailed(c, err)
		return
	}
	defer file.Close()

	id, err := p.dash.AcceptUpload(header.Filename, header.Size, file)
	if err != nil {
		p.uploadFailed(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, evaPath+"?upload="+url.QueryEscape(id))
}

func (p *Pages) uploadFailed(c *gin.Context, err error) {
	p.log.Warn("EVA upload rejected", zap.Error(err))
	view := p.dash.Build(c.Request.Context(), dashboard.EarnedValueAnalysis.Slug, dashboard.Params{})
	view.Warnings = append([]string{"Upload failed: " + err.Error()}, view.Warnings...)
	c.HTML(http.StatusBadRequest, pageTemplate, view)
}

func (p *Pages) render(c *gin.Context, slug string) {
	params := dashboard.Params{
		Date:   c.Query("date"),
		Type:   c.Query("type"),
		Upload: c.Query("upload"),
	}
	view := p.dash.Build(c.Request.Context(), slug, params)

	status := http.StatusOK
	if _, ok := dashboard.Lookup(slug); !ok {
		status = http.StatusNotFound
	}
	c.HTML(status, pageTemplate, view)
}
