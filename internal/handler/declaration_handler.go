package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anupalan/internal/middleware"
	"anupalan/internal/service"
)

// DeclarationHandler handles tax declaration endpoints.
type DeclarationHandler struct {
	declarationService service.DeclarationService
}

// NewDeclarationHandler creates a new DeclarationHandler.
func NewDeclarationHandler(declarationService service.DeclarationService) *DeclarationHandler {
	return &DeclarationHandler{declarationService: declarationService}
}

// Upsert handles PUT /api/v1/employees/:id/declarations
func (h *DeclarationHandler) Upsert(c *gin.Context) {
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

	var input service.DeclarationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	decl, err := h.declarationService.Upsert(c.Request.Context(), tenantID, employeeID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, decl)
}

// Get handles GET /api/v1/employees/:id/declarations/:fy
func (h *DeclarationHandler) Get(c *gin.Context) {
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

	fy, err := strconv.Atoi(c.Param("fy"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FY", "financial year must be a number")
		return
	}

	decl, err := h.declarationService.Get(c.Request.Context(), tenantID, employeeID, fy)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, decl)
}

// Verify handles POST /api/v1/declarations/:id/verify
func (h *DeclarationHandler) Verify(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	declarationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid declaration ID")
		return
	}

	if err := h.declarationService.Verify(c.Request.Context(), tenantID, declarationID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"verified": true})
}
