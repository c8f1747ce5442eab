package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anupalan/internal/domain"
	"anupalan/internal/export"
	"anupalan/internal/middleware"
	"anupalan/internal/service"
)

// ReportHandler handles compliance report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate handles POST /api/v1/reports
func (h *ReportHandler) Generate(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var input service.GenerateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if !domain.ValidReportTypes[input.ReportType] {
		RespondError(c, http.StatusBadRequest, "INVALID_REPORT_TYPE", "report type must be one of pf_register, esi_challan, pt_return, form16")
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, report)
}

// List handles GET /api/v1/reports?fy=
func (h *ReportHandler) List(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	fy, err := strconv.Atoi(c.Query("fy"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FY", "fy query parameter is required")
		return
	}

	reports, err := h.reportService.List(c.Request.Context(), tenantID, fy)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, reports)
}

// GetByID handles GET /api/v1/reports/:id
func (h *ReportHandler) GetByID(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid report ID")
		return
	}

	report, err := h.reportService.GetByID(c.Request.Context(), tenantID, reportID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// MarkSubmitted handles POST /api/v1/reports/:id/submit
func (h *ReportHandler) MarkSubmitted(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid report ID")
		return
	}

	if err := h.reportService.MarkSubmitted(c.Request.Context(), tenantID, reportID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"submitted": true})
}

// DownloadURL handles GET /api/v1/reports/:id/download
func (h *ReportHandler) DownloadURL(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid report ID")
		return
	}

	url, err := h.reportService.DownloadURL(c.Request.Context(), tenantID, reportID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// ExportCSV handles GET /api/v1/reports/export?type=&month=
// Streams the register as CSV with a UTF-8 BOM for Excel.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	reportType := domain.ReportType(c.Query("type"))
	monthYear := c.Query("month")
	if !domain.ValidReportTypes[reportType] || reportType == domain.ReportForm16 {
		RespondError(c, http.StatusBadRequest, "INVALID_REPORT_TYPE", "type must be one of pf_register, esi_challan, pt_return")
		return
	}
	if monthYear == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_MONTH", "month query parameter is required (YYYY-MM)")
		return
	}

	lines, err := h.reportService.ContributionLines(c.Request.Context(), tenantID, reportType, monthYear)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(string(reportType)+"_"+monthYear, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteLines(lines); err != nil {
		return
	}
	w.Flush()
}
