package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReconciliationHandler exposes the parked-submission queue to operators
type ReconciliationHandler struct {
	common *CommonServices
}

// NewReconciliationHandler creates a new ReconciliationHandler instance
func NewReconciliationHandler(common *CommonServices) *ReconciliationHandler {
	return &ReconciliationHandler{common: common}
}

// FailedSubmissionResponse represents a parked submission awaiting replay
type FailedSubmissionResponse struct {
	ID            string          `json:"id"`
	Object        string          `json:"object"`
	SessionID     string          `json:"session_id"`
	Record        json.RawMessage `json:"record"`
	PaymentID     string          `json:"payment_id,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	Attempts      int32           `json:"attempts"`
	Resolved      bool            `json:"resolved"`
	ApplicationID string          `json:"application_id,omitempty"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

// RunReconciliationResponse reports one synchronous reconciliation pass
type RunReconciliationResponse struct {
	Processed int `json:"processed"`
}

// ListFailedSubmissions godoc
// @Summary List parked submissions
// @Description Get unresolved submissions that are waiting for replay
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} FailedSubmissionResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reconciliation [get]
func (h *ReconciliationHandler) ListFailedSubmissions(c *gin.Context) {
	limit := int32(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || parsed < 1 {
			sendError(c, http.StatusBadRequest, "Invalid limit parameter", err)
			return
		}
		limit = int32(parsed)
	}

	submissions, err := h.common.db.ListUnresolvedFailedSubmissions(c.Request.Context(), limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve parked submissions", err)
		return
	}

	responses := make([]FailedSubmissionResponse, len(submissions))
	for i, submission := range submissions {
		resp := FailedSubmissionResponse{
			ID:           submission.ID.String(),
			Object:       "failed_submission",
			SessionID:    submission.SessionID.String(),
			Record:       submission.Record,
			PaymentID:    submission.PaymentID.String,
			ErrorMessage: submission.ErrorMessage.String,
			Attempts:     submission.Attempts,
			Resolved:     submission.Resolved,
			CreatedAt:    submission.CreatedAt.Time.Unix(),
			UpdatedAt:    submission.UpdatedAt.Time.Unix(),
		}
		if submission.ApplicationID.Valid {
			resp.ApplicationID = uuid.UUID(submission.ApplicationID.Bytes).String()
		}
		responses[i] = resp
	}
	sendList(c, responses)
}

// RunReconciliation godoc
// @Summary Run a reconciliation pass now
// @Description Synchronously replay one batch of parked submissions instead of waiting for the next poll
// @Tags reconciliation
// @Accept json
// @Produce json
// @Success 200 {object} RunReconciliationResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reconciliation/run [post]
func (h *ReconciliationHandler) RunReconciliation(c *gin.Context) {
	processed, err := h.common.reconciler.DrainOnce(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Reconciliation pass failed", err)
		return
	}

	sendSuccess(c, http.StatusOK, RunReconciliationResponse{Processed: processed})
}
