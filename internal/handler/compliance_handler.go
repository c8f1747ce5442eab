package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anupalan/internal/middleware"
	"anupalan/internal/service"
)

// ComplianceHandler handles the statutory calculation endpoints.
type ComplianceHandler struct {
	complianceService service.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceService service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// ComputePF handles POST /api/v1/employees/:id/pf
func (h *ComplianceHandler) ComputePF(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	rec, err := h.complianceService.ComputePF(c.Request.Context(), tenantID, employeeID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// ComputeESI handles POST /api/v1/employees/:id/esi
func (h *ComplianceHandler) ComputeESI(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	rec, err := h.complianceService.ComputeESI(c.Request.Context(), tenantID, employeeID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// ComputePT handles POST /api/v1/employees/:id/professional-tax
func (h *ComplianceHandler) ComputePT(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	rec, err := h.complianceService.ComputeProfessionalTax(c.Request.Context(), tenantID, employeeID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// ComputeIncomeTax handles POST /api/v1/employees/:id/income-tax
func (h *ComplianceHandler) ComputeIncomeTax(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}

	var input service.TaxComputeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rec, err := h.complianceService.ComputeIncomeTax(c.Request.Context(), tenantID, employeeID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// GetPFRecord handles GET /api/v1/employees/:id/pf/:month
func (h *ComplianceHandler) GetPFRecord(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}

	rec, err := h.complianceService.GetPFRecord(c.Request.Context(), tenantID, employeeID, c.Param("month"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// GetIncomeTaxRecord handles GET /api/v1/employees/:id/income-tax/:fy
func (h *ComplianceHandler) GetIncomeTaxRecord(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}

	fy, err := strconv.Atoi(c.Param("fy"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FY", "financial year must be a number")
		return
	}

	rec, err := h.complianceService.GetIncomeTaxRecord(c.Request.Context(), tenantID, employeeID, fy)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// PFBalance handles GET /api/v1/employees/:id/pf-balance
func (h *ComplianceHandler) PFBalance(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}

	balance, err := h.complianceService.PFBalance(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"balance": balance})
}

// Withdraw handles POST /api/v1/employees/:id/pf-withdrawal
func (h *ComplianceHandler) Withdraw(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}

	var input service.WithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	w, err := h.complianceService.Withdraw(c.Request.Context(), tenantID, employeeID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, w)
}

// ListWithdrawals handles GET /api/v1/employees/:id/pf-withdrawals
func (h *ComplianceHandler) ListWithdrawals(c *gin.Context) {
	tenantID, employeeID, ok := tenantAndEmployee(c)
	if !ok {
		return
	}

	withdrawals, err := h.complianceService.ListWithdrawals(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, withdrawals)
}

// RunMonthly handles POST /api/v1/compliance/run
func (h *ComplianceHandler) RunMonthly(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	summary, err := h.complianceService.RunMonthly(c.Request.Context(), tenantID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

func tenantAndEmployee(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return uuid.Nil, uuid.Nil, false
	}
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, employeeID, true
}
