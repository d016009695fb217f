package handlers

import (
	"atlantic-api/internal/db"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles public reads and admin writes of system settings,
// such as the promotion countdown timer shown on the landing page.
type SettingsHandler struct {
	common *CommonServices
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(common *CommonServices) *SettingsHandler {
	return &SettingsHandler{common: common}
}

// SettingResponse represents a single system setting
type SettingResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt int64           `json:"updated_at"`
}

// UpsertSettingRequest represents the request body for writing a setting
type UpsertSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// GetSetting godoc
// @Summary Get a system setting
// @Description Get a system setting by key
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} SettingResponse
// @Failure 404 {object} ErrorResponse
// @Router /settings/{key} [get]
func (h *SettingsHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	setting, err := h.common.db.GetSystemSetting(c.Request.Context(), key)
	if err != nil {
		handleDBError(c, err, "Setting not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSettingResponse(setting))
}

// ListSettings godoc
// @Summary List system settings
// @Description Get all system settings
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {array} SettingResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/settings [get]
func (h *SettingsHandler) ListSettings(c *gin.Context) {
	settings, err := h.common.db.ListSystemSettings(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve settings", err)
		return
	}

	responses := make([]SettingResponse, len(settings))
	for i, setting := range settings {
		responses[i] = toSettingResponse(setting)
	}
	sendList(c, responses)
}

// UpsertSetting godoc
// @Summary Write a system setting
// @Description Create or replace a system setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body UpsertSettingRequest true "Setting value"
// @Success 200 {object} SettingResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/settings/{key} [put]
func (h *SettingsHandler) UpsertSetting(c *gin.Context) {
	key := c.Param("key")

	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	setting, err := h.common.db.UpsertSystemSetting(c.Request.Context(), db.UpsertSystemSettingParams{
		Key:   key,
		Value: req.Value,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to write setting", err)
		return
	}

	sendSuccess(c, http.StatusOK, toSettingResponse(setting))
}

func toSettingResponse(setting db.SystemSetting) SettingResponse {
	return SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt.Time.Unix(),
	}
}
