package handler

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	financeapp "github.com/vyapar/backend/internal/application/finance"
)

const msgReportFailed = "Server error while generating report."

// ReportHandler serves the daily report
type ReportHandler struct {
	BaseHandler
	reportService *financeapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *financeapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Daily handles GET /api/reports/daily?date=YYYY-MM-DD
// @Summary      Daily report
// @Description  Sales, expenses and net profit for one day, with sales split by payment method
// @Tags         reports
// @Produce      json
// @Param        date query string false "Day as YYYY-MM-DD"
// @Success      200 {object} financeapp.DailyReportResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	report, err := h.reportService.Daily(c.Request.Context(), tenantID, c.Query("date"))
	if err != nil {
		h.HandleError(c, err, msgReportFailed)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export handles GET /api/reports/daily/export?date=YYYY-MM-DD
// @Summary      Export daily report
// @Description  Download the daily report as an Excel workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date query string false "Day as YYYY-MM-DD"
// @Success      200 {file} file
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/daily/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	file, err := h.reportService.Export(c.Request.Context(), tenantID, c.Query("date"))
	if err != nil {
		h.HandleError(c, err, msgReportFailed)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
