package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitetwin/internal/dashboard"
	"sitetwin/internal/model"
)

// Handler JSON API over the dashboard data
type Handler struct {
	dash *dashboard.Dashboard
}

// NewHandler creates the API handler
func NewHandler(dash *dashboard.Dashboard) *Handler {
	return &Handler{dash: dash}
}

// RegisterRoutes registers the API routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/progress", h.ListProgress)

	router.GET("/eva", h.GetEVA)
	router.GET("/eva/export", h.ExportEVA)
	router.GET("/milestones", h.GetMilestones)
	router.GET("/financial", h.GetFinancial)
	router.GET("/precast", h.ListPrecast)
	router.GET("/weather", h.GetWeather)

	router.GET("/uploads", h.ListUploads)
}

// haltResponse maps a halted load to 404 with the page message
func haltResponse(c *gin.Context, err error) {
	if h, ok := model.AsHalt(err); ok {
		c.JSON(http.StatusNotFound, gin.H{"error": h.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
