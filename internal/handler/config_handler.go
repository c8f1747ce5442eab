package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anupalan/internal/service"
)

// ConfigHandler handles statutory configuration endpoints (admin only).
type ConfigHandler struct {
	configService service.ConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// Set handles POST /api/v1/config
func (h *ConfigHandler) Set(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.ConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cfg, err := h.configService.Set(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		// Unknown keys and malformed payloads are caller errors, not 500s.
		RespondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
		return
	}

	RespondCreated(c, cfg)
}

// List handles GET /api/v1/config
func (h *ConfigHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rows, err := h.configService.ListActive(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// History handles GET /api/v1/config/:key/history
func (h *ConfigHandler) History(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rows, err := h.configService.History(c.Request.Context(), tenantID, c.Param("key"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
		return
	}

	RespondOK(c, rows)
}

// Deactivate handles DELETE /api/v1/config/:key (body carries the row ID).
func (h *ConfigHandler) Deactivate(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input struct {
		ID uuid.UUID `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.configService.Deactivate(c.Request.Context(), tenantID, input.ID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deactivated": true})
}
