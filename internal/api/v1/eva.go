package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitetwin/internal/model"
	"sitetwin/internal/service/excel"
)

// EVAResponse earned value analysis of the default workbook or an upload
type EVAResponse struct {
	Source   string            `json:"source"`
	Uploaded bool              `json:"uploaded"`
	Warning  string            `json:"warning,omitempty"`
	Summary  *model.EVASummary `json:"summary"`
}

// GetEVA earned value analysis
// GET /api/eva?upload=<id>
func (h *Handler) GetEVA(c *gin.Context) {
	summary, src, err := h.dash.AnalyzeEVA(c.Query("upload"))
	if err != nil {
		haltResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, EVAResponse{
		Source:   src.Name,
		Uploaded: src.Uploaded,
		Warning:  src.Warning,
		Summary:  summary,
	})
}

// GetMilestones milestone timeline as of today
// GET /api/milestones
func (h *Handler) GetMilestones(c *gin.Context) {
	bars, err := h.dash.Timeline()
	if err != nil {
		haltResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bars": bars})
}

// ExportEVA earned value analysis as a workbook download
// GET /api/eva/export?upload=<id>
func (h *Handler) ExportEVA(c *gin.Context) {
	summary, _, err := h.dash.AnalyzeEVA(c.Query("upload"))
	if err != nil {
		haltResponse(c, err)
		return
	}

	f, err := excel.ExportEVA(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="eva-analysis.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
