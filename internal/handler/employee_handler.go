package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anupalan/internal/middleware"
	"anupalan/internal/service"
)

// EmployeeHandler handles employee and compensation endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	var input service.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, employee)
}

// List handles GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	employees, total, err := h.employeeService.ListActive(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, employees, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, employee)
}

// Update handles PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	var input service.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), tenantID, employeeID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, employee)
}

// Delete handles DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	if err := h.employeeService.Deactivate(c.Request.Context(), tenantID, employeeID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deactivated": true})
}

// AddCompensation handles POST /api/v1/employees/:id/compensation
func (h *EmployeeHandler) AddCompensation(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	var input service.CompensationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	comp, err := h.employeeService.AddCompensation(c.Request.Context(), tenantID, employeeID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, comp)
}

// GetCompensation handles GET /api/v1/employees/:id/compensation
// An optional as_of query parameter (YYYY-MM-DD) selects the effective
// version; it defaults to today.
func (h *EmployeeHandler) GetCompensation(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	comp, err := h.employeeService.GetEffectiveCompensation(c.Request.Context(), tenantID, employeeID, asOf)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comp)
}

// CompensationHistory handles GET /api/v1/employees/:id/compensation/history
func (h *EmployeeHandler) CompensationHistory(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing tenant context")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	history, err := h.employeeService.CompensationHistory(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, history)
}

// parseAsOf parses the optional as_of query parameter, defaulting to now.
// Returns false after writing an error response on a malformed date.
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Now().UTC(), true
	}
	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "as_of must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return asOf, true
}
