package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/gofor360/marketbridge/internal/application/report"
)

// ReportHandler handles KPI report API endpoints
type ReportHandler struct {
	BaseHandler
	kpiService *reportapp.KpiService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(kpiService *reportapp.KpiService) *ReportHandler {
	return &ReportHandler{
		kpiService: kpiService,
	}
}

// GetKpiSummary handles GET /reports/kpi
func (h *ReportHandler) GetKpiSummary(c *gin.Context) {
	summary, err := h.kpiService.Summarize(c.Request.Context())
	if err != nil {
		h.BadGateway(c, "KPI summary could not be computed")
		return
	}

	h.Success(c, summary)
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/kpi", h.GetKpiSummary)
	}
}
