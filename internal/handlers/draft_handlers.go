package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DraftHandler handles saved form drafts keyed by an opaque client token
type DraftHandler struct {
	common *CommonServices
}

// NewDraftHandler creates a new DraftHandler instance
func NewDraftHandler(common *CommonServices) *DraftHandler {
	return &DraftHandler{common: common}
}

// DraftResponse represents a saved draft
type DraftResponse struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt int64           `json:"updated_at"`
}

// SaveDraft godoc
// @Summary Save a form draft
// @Description Store a partially completed application form under a client-chosen key
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft_key path string true "Draft key"
// @Param payload body object true "Draft payload"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse
// @Router /drafts/{draft_key} [put]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	key := c.Param("draft_key")

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	draft, err := h.common.drafts.Save(c.Request.Context(), key, payload)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusOK, DraftResponse{
		Key:       draft.Key,
		Payload:   draft.Payload,
		UpdatedAt: draft.UpdatedAt.Unix(),
	})
}

// GetDraft godoc
// @Summary Get a form draft
// @Description Retrieve a previously saved draft by its key
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft_key path string true "Draft key"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{draft_key} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	key := c.Param("draft_key")

	draft, ok := h.common.drafts.Get(c.Request.Context(), key)
	if !ok {
		sendError(c, http.StatusNotFound, "Draft not found", nil)
		return
	}

	sendSuccess(c, http.StatusOK, DraftResponse{
		Key:       draft.Key,
		Payload:   draft.Payload,
		UpdatedAt: draft.UpdatedAt.Unix(),
	})
}

// DeleteDraft godoc
// @Summary Delete a form draft
// @Description Remove a saved draft, typically after a successful submission
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft_key path string true "Draft key"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /drafts/{draft_key} [delete]
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	key := c.Param("draft_key")

	if err := h.common.drafts.Delete(c.Request.Context(), key); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete draft", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Draft deleted successfully")
}
