package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler serves the end-of-day report
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily handles GET /reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) Daily(c *gin.Context) {
	report, err := h.reportService.Daily(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report generated", report)
}
