package handlers

import (
	"atlantic-api/internal/db"
	"atlantic-api/internal/pkg/naming"
	"atlantic-api/internal/services"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApplicationHandler handles application records and the legacy-shaped
// submission endpoints older clients still call.
type ApplicationHandler struct {
	common *CommonServices
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(common *CommonServices) *ApplicationHandler {
	return &ApplicationHandler{common: common}
}

// ApplicationResponse represents the standardized API response for application records
type ApplicationResponse struct {
	ID              string   `json:"id"`
	Object          string   `json:"object"`
	InternshipID    string   `json:"internship_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Education       string   `json:"education"`
	College         string   `json:"college,omitempty"`
	City            string   `json:"city,omitempty"`
	CoverLetter     string   `json:"cover_letter,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ResumeURL       string   `json:"resume_url,omitempty"`
	ResumeFileName  string   `json:"resume_file_name,omitempty"`
	LinkedinProfile string   `json:"linkedin_profile,omitempty"`
	GithubProfile   string   `json:"github_profile,omitempty"`
	PortfolioURL    string   `json:"portfolio_url,omitempty"`
	HearAboutUs     string   `json:"hear_about_us,omitempty"`
	AgreesToTerms   bool     `json:"agrees_to_terms"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	PaymentID       string   `json:"payment_id,omitempty"`
	PaymentAmount   int32    `json:"payment_amount"`
	CouponCode      string   `json:"coupon_code,omitempty"`
	DiscountAmount  int32    `json:"discount_amount"`
	OriginalAmount  int32    `json:"original_amount"`
	AppliedAt       int64    `json:"applied_at"`
}

// SubmitApplicationResponse is the legacy submission endpoint's response shape
type SubmitApplicationResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId,omitempty"`
	Message       string `json:"message,omitempty"`
}

// VerifyPaymentRequest is the legacy verification endpoint's request shape
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPaymentResponse is the legacy verification endpoint's response shape
type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UpdateApplicationStatusRequest represents the request body for a status change
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitApplication godoc
// @Summary Submit an application directly
// @Description Accept a complete application payload in either naming convention and persist it
// @Tags applications
// @Accept json
// @Produce json
// @Param application body object true "Application payload"
// @Success 200 {object} SubmitApplicationResponse
// @Failure 400 {object} SubmitApplicationResponse
// @Failure 500 {object} SubmitApplicationResponse
// @Router /api/submit-application [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, SubmitApplicationResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	params, err := submitParamsFromPayload(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, SubmitApplicationResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if params.InternshipTitle == "" {
		if internship, lookupErr := h.common.db.GetInternship(c.Request.Context(), params.InternshipID); lookupErr == nil {
			params.InternshipTitle = internship.Title
		}
	}

	result, err := h.common.applications.Submit(c.Request.Context(), params)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to submit application", err)
		return
	}

	c.JSON(http.StatusOK, SubmitApplicationResponse{
		Success:       true,
		ApplicationID: result.ApplicationID,
		Message:       "Application submitted successfully",
	})
}

// VerifyPayment godoc
// @Summary Verify a checkout signature
// @Description Verify a checkout callback signature outside the session flow
// @Tags applications
// @Accept json
// @Produce json
// @Param request body VerifyPaymentRequest true "Checkout callback payload"
// @Success 200 {object} VerifyPaymentResponse
// @Failure 400 {object} VerifyPaymentResponse
// @Router /api/verify-payment [post]
func (h *ApplicationHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, VerifyPaymentResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.common.payments.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		c.JSON(http.StatusBadRequest, VerifyPaymentResponse{
			Success: false,
			Message: "Payment verification failed",
		})
		return
	}

	c.JSON(http.StatusOK, VerifyPaymentResponse{Success: true})
}

// ListApplications godoc
// @Summary List applications
// @Description Get all submitted applications
// @Tags applications
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Param offset query int false "Number of results to skip"
// @Param internship_id query string false "Filter by internship"
// @Param email query string false "Filter by applicant email"
// @Success 200 {array} ApplicationResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	if internshipID := c.Query("internship_id"); internshipID != "" {
		parsedUUID, err := uuid.Parse(internshipID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
			return
		}
		applications, err := h.common.db.ListApplicationsByInternship(c.Request.Context(), parsedUUID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve applications", err)
			return
		}
		sendList(c, toApplicationResponses(applications))
		return
	}

	if email := c.Query("email"); email != "" {
		applications, err := h.common.db.ListApplicationsByEmail(c.Request.Context(), email)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve applications", err)
			return
		}
		sendList(c, toApplicationResponses(applications))
		return
	}

	limit, offset, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	applications, err := h.common.db.ListApplications(c.Request.Context(), db.ListApplicationsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve applications", err)
		return
	}
	sendList(c, toApplicationResponses(applications))
}

// GetApplication godoc
// @Summary Get application by ID
// @Description Get a submitted application by its ID
// @Tags applications
// @Accept json
// @Produce json
// @Param application_id path string true "Application ID"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/applications/{application_id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	applicationID := c.Param("application_id")
	parsedUUID, err := uuid.Parse(applicationID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid application ID format", err)
		return
	}

	application, err := h.common.db.GetApplication(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Application not found")
		return
	}

	sendSuccess(c, http.StatusOK, toApplicationResponse(application))
}

// UpdateApplicationStatus godoc
// @Summary Update application status
// @Description Change the review status of an application
// @Tags applications
// @Accept json
// @Produce json
// @Param application_id path string true "Application ID"
// @Param request body UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/applications/{application_id}/status [put]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	applicationID := c.Param("application_id")
	parsedUUID, err := uuid.Parse(applicationID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid application ID format", err)
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	application, err := h.common.db.UpdateApplicationStatus(c.Request.Context(), db.UpdateApplicationStatusParams{
		ID:     parsedUUID,
		Status: req.Status,
	})
	if err != nil {
		handleDBError(c, err, "Application not found")
		return
	}

	sendSuccess(c, http.StatusOK, toApplicationResponse(application))
}

// submitParamsFromPayload maps a loose client payload, in either naming
// convention, onto typed submit parameters. Unrecognized fields ride along
// for the fallback persistence paths.
func submitParamsFromPayload(payload map[string]interface{}) (services.SubmitParams, error) {
	record := naming.Normalize(payload)

	var params services.SubmitParams

	rawID, _ := record["internship_id"].(string)
	internshipID, err := uuid.Parse(rawID)
	if err != nil {
		return params, errParam("internship_id")
	}

	params.InternshipID = internshipID
	params.InternshipTitle = stringField(record, "internship_title")
	params.Name = stringField(record, "name")
	params.Email = stringField(record, "email")
	params.Phone = stringField(record, "phone")
	params.Education = stringField(record, "education")
	params.College = stringField(record, "college")
	params.City = stringField(record, "city")
	params.CoverLetter = stringField(record, "cover_letter")
	params.Skills = stringSliceField(record, "skills")
	params.LinkedinProfile = stringField(record, "linkedin_profile")
	params.GithubProfile = stringField(record, "github_profile")
	params.PortfolioUrl = stringField(record, "portfolio_url")
	params.HearAboutUs = stringField(record, "hear_about_us")
	params.AgreesToTerms, _ = record["agrees_to_terms"].(bool)

	params.PaymentStatus = stringField(record, "payment_status")
	if params.PaymentStatus == "" {
		params.PaymentStatus = services.PaymentStatusUnpaid
	}
	params.PaymentID = stringField(record, "payment_id")
	params.PaymentAmount = int32Field(record, "payment_amount")
	params.CouponCode = stringField(record, "coupon_code")
	params.DiscountAmount = int32Field(record, "discount_amount")
	params.OriginalAmount = int32Field(record, "original_amount")

	if params.Name == "" || params.Email == "" {
		return params, errParam("name and email")
	}

	// An inline resume arrives base64-encoded; a bad encoding is dropped
	// rather than failing the submission.
	if encoded := stringField(record, "resume"); encoded != "" {
		if data, decodeErr := base64.StdEncoding.DecodeString(encoded); decodeErr == nil {
			params.Resume = data
			params.ResumeFileName = stringField(record, "resume_file_name")
			params.ResumeContentType = stringField(record, "resume_content_type")
		}
	}

	known := map[string]bool{
		"internship_id": true, "internship_title": true, "name": true,
		"email": true, "phone": true, "education": true, "college": true,
		"city": true, "cover_letter": true, "skills": true,
		"linkedin_profile": true, "github_profile": true,
		"portfolio_url": true, "hear_about_us": true, "agrees_to_terms": true,
		"payment_status": true, "payment_id": true, "payment_amount": true,
		"coupon_code": true, "discount_amount": true, "original_amount": true,
		"resume": true, "resume_file_name": true, "resume_content_type": true,
	}
	for key, value := range record {
		if !known[key] {
			if params.Extra == nil {
				params.Extra = make(map[string]interface{})
			}
			params.Extra[key] = value
		}
	}

	return params, nil
}

type paramError string

func errParam(field string) error {
	return paramError(field)
}

func (e paramError) Error() string {
	return "Missing or invalid field: " + string(e)
}

func stringField(record map[string]interface{}, key string) string {
	value, _ := record[key].(string)
	return value
}

func stringSliceField(record map[string]interface{}, key string) []string {
	raw, ok := record[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

func int32Field(record map[string]interface{}, key string) int32 {
	switch value := record[key].(type) {
	case float64:
		return int32(value)
	case int32:
		return value
	case int:
		return int32(value)
	default:
		return 0
	}
}

func toApplicationResponses(applications []db.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, len(applications))
	for i, application := range applications {
		responses[i] = toApplicationResponse(application)
	}
	return responses
}

func toApplicationResponse(application db.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              application.ID.String(),
		Object:          "application",
		InternshipID:    application.InternshipID.String(),
		Name:            application.Name,
		Email:           application.Email,
		Phone:           application.Phone,
		Education:       application.Education,
		College:         application.College.String,
		City:            application.City.String,
		CoverLetter:     application.CoverLetter.String,
		Skills:          application.Skills,
		ResumeURL:       application.ResumeUrl.String,
		ResumeFileName:  application.ResumeFileName.String,
		LinkedinProfile: application.LinkedinProfile.String,
		GithubProfile:   application.GithubProfile.String,
		PortfolioURL:    application.PortfolioUrl.String,
		HearAboutUs:     application.HearAboutUs.String,
		AgreesToTerms:   application.AgreesToTerms,
		Status:          application.Status,
		PaymentStatus:   application.PaymentStatus,
		PaymentID:       application.PaymentID.String,
		PaymentAmount:   application.PaymentAmount,
		CouponCode:      application.CouponCode.String,
		DiscountAmount:  application.DiscountAmount,
		OriginalAmount:  application.OriginalAmount,
		AppliedAt:       application.AppliedAt.Time.Unix(),
	}
}
