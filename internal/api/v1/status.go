package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitetwin/internal/dashboard"
)

// PageInfo one nav entry
type PageInfo struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// StatusResponse system status
type StatusResponse struct {
	Ready         bool                   `json:"ready"` // every required file present
	Pages         []PageInfo             `json:"pages"`
	CachedUploads int                    `json:"cachedUploads"`
	Assets        []dashboard.AssetCheck `json:"assets"`
}

// GetStatus system status
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	checks := h.dash.CheckAssets()

	pages := make([]PageInfo, 0, len(dashboard.NavPages)+1)
	for _, p := range append([]dashboard.Page{dashboard.Home}, dashboard.NavPages...) {
		pages = append(pages, PageInfo{Slug: p.Slug, Name: p.Name, Path: p.Path()})
	}

	c.JSON(http.StatusOK, StatusResponse{
		Ready:         len(dashboard.MissingRequired(checks)) == 0,
		Pages:         pages,
		CachedUploads: h.dash.CachedUploads(),
		Assets:        checks,
	})
}

// ListProgress survey dates and their files
// GET /api/progress
func (h *Handler) ListProgress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": h.dash.ProgressRecords()})
}
