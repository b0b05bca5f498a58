package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitetwin/internal/model"
	"sitetwin/internal/service/catalog"
)

// GetFinancial planned vs spent per category
// GET /api/financial
func (h *Handler) GetFinancial(c *gin.Context) {
	rows := catalog.Financials()
	planned, spent := catalog.FinancialTotals(rows)
	c.JSON(http.StatusOK, gin.H{
		"rows":         rows,
		"totalPlanned": planned,
		"totalSpent":   spent,
	})
}

// ListPrecast precast elements, optionally filtered by type
// GET /api/precast?type=Wall
func (h *Handler) ListPrecast(c *gin.Context) {
	elements := catalog.PrecastElements()
	selected := c.DefaultQuery("type", model.PrecastFilterAll)
	c.JSON(http.StatusOK, gin.H{
		"types":    catalog.PrecastTypes(elements),
		"selected": selected,
		"elements": catalog.FilterPrecast(elements, selected),
	})
}

// GetWeather site forecast; empty when the weather API is unavailable
// GET /api/weather
func (h *Handler) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Weather(c.Request.Context()))
}

// ListUploads EVA upload log, newest first
// GET /api/uploads?limit=20
func (h *Handler) ListUploads(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	logs, err := h.dash.UploadLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": logs})
}
