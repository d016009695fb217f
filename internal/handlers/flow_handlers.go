package handlers

import (
	"atlantic-api/internal/db"
	"atlantic-api/internal/services"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FlowHandler drives the multi-step application flow: form, optional coupon,
// optional payment, submission.
type FlowHandler struct {
	common *CommonServices
}

// NewFlowHandler creates a new FlowHandler instance
func NewFlowHandler(common *CommonServices) *FlowHandler {
	return &FlowHandler{common: common}
}

// SessionResponse represents the standardized API response for application sessions
type SessionResponse struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	InternshipID    string `json:"internship_id"`
	State           string `json:"state"`
	CouponCode      string `json:"coupon_code,omitempty"`
	DiscountPercent int32  `json:"discount_percent"`
	OriginalAmount  int32  `json:"original_amount"`
	DiscountAmount  int32  `json:"discount_amount"`
	FinalAmount     int32  `json:"final_amount"`
	RazorpayOrderID string `json:"razorpay_order_id,omitempty"`
	PaymentVerified bool   `json:"payment_verified"`
	ApplicationID   string `json:"application_id,omitempty"`
	LastError       string `json:"last_error,omitempty"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

// CheckoutResponse carries everything the client needs to open the checkout
// widget. Order is null when the fee was fully discounted and the
// application went straight through.
type CheckoutResponse struct {
	Order   *CheckoutOrderResponse `json:"order"`
	Session SessionResponse        `json:"session"`
}

// CheckoutOrderResponse represents a gateway order handed to the client
type CheckoutOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// StartSessionRequest represents the request body for starting a session
type StartSessionRequest struct {
	InternshipID      string `json:"internship_id"`
	InternshipIDCamel string `json:"internshipId"`
}

// ApplyCouponRequest represents the request body for applying a coupon to a session
type ApplyCouponRequest struct {
	Code            string `json:"code"`
	CouponCode      string `json:"coupon_code"`
	CouponCodeCamel string `json:"couponCode"`
}

// ApplyCouponResponse pairs the repriced session with the validation outcome
type ApplyCouponResponse struct {
	Valid           bool             `json:"valid"`
	DiscountPercent int32            `json:"discount_percent,omitempty"`
	Message         string           `json:"message,omitempty"`
	Session         *SessionResponse `json:"session,omitempty"`
}

// ConfirmPaymentRequest represents the checkout callback payload
type ConfirmPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// StartSession godoc
// @Summary Start an application session
// @Description Open a new application session for an internship, snapshotting its fee
// @Tags flow
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Internship to apply for"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /flow/sessions [post]
func (h *FlowHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	raw := req.InternshipID
	if raw == "" {
		raw = req.InternshipIDCamel
	}
	internshipID, err := uuid.Parse(raw)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
		return
	}

	session, err := h.common.flow.StartSession(c.Request.Context(), internshipID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			sendError(c, http.StatusNotFound, "Internship not found", err)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusCreated, toSessionResponse(*session))
}

// GetSession godoc
// @Summary Get session by ID
// @Description Get the current state of an application session
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /flow/sessions/{session_id} [get]
func (h *FlowHandler) GetSession(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.common.db.GetApplicationSession(c.Request.Context(), sessionID)
	if err != nil {
		handleDBError(c, err, "Session not found")
		return
	}

	sendSuccess(c, http.StatusOK, toSessionResponse(session))
}

// ApplyCoupon godoc
// @Summary Apply a coupon to a session
// @Description Validate a coupon and reprice the session when it is accepted
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body ApplyCouponRequest true "Coupon code"
// @Success 200 {object} ApplyCouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/coupon [post]
func (h *FlowHandler) ApplyCoupon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	code := req.Code
	if code == "" {
		code = req.CouponCode
	}
	if code == "" {
		code = req.CouponCodeCamel
	}

	session, validation, err := h.common.flow.ApplyCoupon(c.Request.Context(), sessionID, code)
	if err != nil {
		h.sendFlowError(c, err)
		return
	}

	resp := ApplyCouponResponse{
		Valid:           validation.Valid,
		DiscountPercent: validation.DiscountPercent,
		Message:         validation.Message,
	}
	if session != nil {
		sessionResp := toSessionResponse(*session)
		resp.Session = &sessionResp
	}
	sendSuccess(c, http.StatusOK, resp)
}

// RemoveCoupon godoc
// @Summary Remove the coupon from a session
// @Description Reset the session back to the undiscounted application fee
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/coupon [delete]
func (h *FlowHandler) RemoveCoupon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.common.flow.RemoveCoupon(c.Request.Context(), sessionID)
	if err != nil {
		h.sendFlowError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toSessionResponse(*session))
}

// BeginPayment godoc
// @Summary Begin the payment step
// @Description Validate the application form and open a checkout order for the outstanding fee
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param form body object true "Application form"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/payment [post]
func (h *FlowHandler) BeginPayment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	rawForm, err := io.ReadAll(c.Request.Body)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	order, session, err := h.common.flow.BeginPayment(c.Request.Context(), sessionID, rawForm)
	if err != nil {
		h.sendSubmissionError(c, session, err)
		return
	}

	resp := CheckoutResponse{Session: toSessionResponse(*session)}
	if order != nil {
		resp.Order = &CheckoutOrderResponse{
			OrderID:  order.OrderID,
			Amount:   order.Amount,
			Currency: order.Currency,
			KeyID:    order.KeyID,
		}
	}
	sendSuccess(c, http.StatusOK, resp)
}

// CancelPayment godoc
// @Summary Cancel the payment step
// @Description Return a session from the payment step to the form step
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/payment [delete]
func (h *FlowHandler) CancelPayment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.common.flow.CancelPayment(c.Request.Context(), sessionID)
	if err != nil {
		h.sendFlowError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toSessionResponse(*session))
}

// ConfirmPayment godoc
// @Summary Confirm a completed payment
// @Description Verify the checkout callback signature and submit the application
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body ConfirmPaymentRequest true "Checkout callback payload"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/payment/confirm [post]
func (h *FlowHandler) ConfirmPayment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := h.common.flow.ConfirmPayment(c.Request.Context(), sessionID,
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		h.sendSubmissionError(c, session, err)
		return
	}

	sendSuccess(c, http.StatusOK, toSessionResponse(*session))
}

// SubmitWithoutPayment godoc
// @Summary Submit an application with no fee due
// @Description Submit the application directly for internships without an application fee
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param form body object true "Application form"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/submit [post]
func (h *FlowHandler) SubmitWithoutPayment(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	rawForm, err := io.ReadAll(c.Request.Body)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	session, err := h.common.flow.SubmitWithoutPayment(c.Request.Context(), sessionID, rawForm)
	if err != nil {
		h.sendSubmissionError(c, session, err)
		return
	}

	sendSuccess(c, http.StatusOK, toSessionResponse(*session))
}

// RetrySubmission godoc
// @Summary Retry a failed submission
// @Description Re-run persistence for a session in the error state without charging again
// @Tags flow
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /flow/sessions/{session_id}/retry [post]
func (h *FlowHandler) RetrySubmission(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.common.flow.RetrySubmission(c.Request.Context(), sessionID)
	if err != nil {
		h.sendSubmissionError(c, session, err)
		return
	}

	sendSuccess(c, http.StatusOK, toSessionResponse(*session))
}

func (h *FlowHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return uuid.Nil, false
	}
	return parsed, true
}

// sendFlowError maps service errors onto HTTP statuses
func (h *FlowHandler) sendFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, "Session not found", err)
	case errors.Is(err, services.ErrInvalidTransition):
		sendError(c, http.StatusConflict, "Operation not allowed in the session's current state", err)
	case errors.Is(err, services.ErrVerificationFailed):
		sendError(c, http.StatusBadRequest, "Payment verification failed", err)
	default:
		sendError(c, http.StatusBadRequest, err.Error(), err)
	}
}

// sendSubmissionError handles the one case where an error still carries a
// session: a verified payment whose persistence was exhausted. The client
// needs the error-state session back to offer a retry.
func (h *FlowHandler) sendSubmissionError(c *gin.Context, session *db.ApplicationSession, err error) {
	if session != nil && session.State == services.SessionStateError {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Submission failed; your payment is recorded and the application will be retried",
			"session": toSessionResponse(*session),
		})
		return
	}
	h.sendFlowError(c, err)
}

func toSessionResponse(session db.ApplicationSession) SessionResponse {
	resp := SessionResponse{
		ID:              session.ID.String(),
		Object:          "application_session",
		InternshipID:    session.InternshipID.String(),
		State:           session.State,
		DiscountPercent: session.DiscountPercent,
		OriginalAmount:  session.OriginalAmount,
		DiscountAmount:  session.DiscountAmount,
		FinalAmount:     session.FinalAmount,
		PaymentVerified: session.PaymentVerified,
		CreatedAt:       session.CreatedAt.Time.Unix(),
		UpdatedAt:       session.UpdatedAt.Time.Unix(),
	}
	if session.CouponCode.Valid && session.CouponCode.String != "" {
		resp.CouponCode = session.CouponCode.String
	}
	if session.RazorpayOrderID.Valid && session.RazorpayOrderID.String != "" {
		resp.RazorpayOrderID = session.RazorpayOrderID.String
	}
	if session.ApplicationID.Valid {
		resp.ApplicationID = uuid.UUID(session.ApplicationID.Bytes).String()
	}
	if session.LastError.Valid && session.LastError.String != "" {
		resp.LastError = session.LastError.String
	}
	return resp
}
