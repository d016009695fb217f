package handlers

import (
	"atlantic-api/internal/db"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// InternshipHandler handles internship-related operations
type InternshipHandler struct {
	common *CommonServices
}

// NewInternshipHandler creates a new InternshipHandler instance
func NewInternshipHandler(common *CommonServices) *InternshipHandler {
	return &InternshipHandler{common: common}
}

// InternshipResponse represents the standardized API response for internship operations
type InternshipResponse struct {
	ID                  string   `json:"id"`
	Object              string   `json:"object"`
	Title               string   `json:"title"`
	Department          string   `json:"department"`
	Description         string   `json:"description"`
	Requirements        []string `json:"requirements"`
	Responsibilities    []string `json:"responsibilities"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"`
	StartDate           string   `json:"start_date,omitempty"`
	Location            string   `json:"location"`
	Remote              bool     `json:"remote"`
	Featured            bool     `json:"featured"`
	PaymentRequired     bool     `json:"payment_required"`
	ApplicationFee      int32    `json:"application_fee"`
	AcceptsCoupon       bool     `json:"accepts_coupon"`
	TermsAndConditions  []string `json:"terms_and_conditions"`
	Active              bool     `json:"active"`
	CreatedAt           int64    `json:"created_at"`
	UpdatedAt           int64    `json:"updated_at"`
}

// CreateInternshipRequest represents the request body for creating an internship
type CreateInternshipRequest struct {
	Title               string   `json:"title" binding:"required"`
	Department          string   `json:"department" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	Requirements        []string `json:"requirements"`
	Responsibilities    []string `json:"responsibilities"`
	ApplicationDeadline string   `json:"application_deadline"`
	StartDate           string   `json:"start_date"`
	Location            string   `json:"location"`
	Remote              bool     `json:"remote"`
	Featured            bool     `json:"featured"`
	PaymentRequired     bool     `json:"payment_required"`
	ApplicationFee      int32    `json:"application_fee"`
	AcceptsCoupon       bool     `json:"accepts_coupon"`
	TermsAndConditions  []string `json:"terms_and_conditions"`
	Active              *bool    `json:"active"`
}

// UpdateInternshipRequest represents the request body for updating an internship
type UpdateInternshipRequest struct {
	Title               string   `json:"title,omitempty"`
	Department          string   `json:"department,omitempty"`
	Description         string   `json:"description,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	Responsibilities    []string `json:"responsibilities,omitempty"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"`
	StartDate           string   `json:"start_date,omitempty"`
	Location            string   `json:"location,omitempty"`
	Remote              *bool    `json:"remote,omitempty"`
	Featured            *bool    `json:"featured,omitempty"`
	PaymentRequired     *bool    `json:"payment_required,omitempty"`
	ApplicationFee      *int32   `json:"application_fee,omitempty"`
	AcceptsCoupon       *bool    `json:"accepts_coupon,omitempty"`
	TermsAndConditions  []string `json:"terms_and_conditions,omitempty"`
	Active              *bool    `json:"active,omitempty"`
}

// ListActiveInternships godoc
// @Summary List active internships
// @Description Get all internships currently open for applications
// @Tags internships
// @Accept json
// @Produce json
// @Success 200 {array} InternshipResponse
// @Failure 500 {object} ErrorResponse
// @Router /internships [get]
func (h *InternshipHandler) ListActiveInternships(c *gin.Context) {
	internships, err := h.common.db.ListActiveInternships(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve internships", err)
		return
	}

	responses := make([]InternshipResponse, len(internships))
	for i, internship := range internships {
		responses[i] = toInternshipResponse(internship)
	}
	sendList(c, responses)
}

// GetInternship godoc
// @Summary Get internship by ID
// @Description Get internship details by internship ID
// @Tags internships
// @Accept json
// @Produce json
// @Param internship_id path string true "Internship ID"
// @Success 200 {object} InternshipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /internships/{internship_id} [get]
func (h *InternshipHandler) GetInternship(c *gin.Context) {
	internshipID := c.Param("internship_id")
	parsedUUID, err := uuid.Parse(internshipID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
		return
	}

	internship, err := h.common.db.GetInternship(c.Request.Context(), parsedUUID)
	if err != nil {
		handleDBError(c, err, "Internship not found")
		return
	}

	sendSuccess(c, http.StatusOK, toInternshipResponse(internship))
}

// ListInternships godoc
// @Summary List all internships
// @Description Get all internships including inactive ones
// @Tags internships
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Param offset query int false "Number of results to skip"
// @Success 200 {array} InternshipResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/internships [get]
func (h *InternshipHandler) ListInternships(c *gin.Context) {
	limit, offset, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	internships, err := h.common.db.ListInternships(c.Request.Context(), db.ListInternshipsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve internships", err)
		return
	}

	responses := make([]InternshipResponse, len(internships))
	for i, internship := range internships {
		responses[i] = toInternshipResponse(internship)
	}
	sendList(c, responses)
}

// CreateInternship godoc
// @Summary Create internship
// @Description Create a new internship listing
// @Tags internships
// @Accept json
// @Produce json
// @Param internship body CreateInternshipRequest true "Internship details"
// @Success 201 {object} InternshipResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/internships [post]
func (h *InternshipHandler) CreateInternship(c *gin.Context) {
	var req CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	deadline, err := parseDateParam(req.ApplicationDeadline)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid application deadline", err)
		return
	}
	startDate, err := parseDateParam(req.StartDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid start date", err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	internship, err := h.common.db.CreateInternship(c.Request.Context(), db.CreateInternshipParams{
		Title:               req.Title,
		Department:          req.Department,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		ApplicationDeadline: deadline,
		StartDate:           startDate,
		Location:            req.Location,
		Remote:              req.Remote,
		Featured:            req.Featured,
		PaymentRequired:     req.PaymentRequired,
		ApplicationFee:      req.ApplicationFee,
		AcceptsCoupon:       req.AcceptsCoupon,
		TermsAndConditions:  req.TermsAndConditions,
		Active:              active,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create internship", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toInternshipResponse(internship))
}

// UpdateInternship godoc
// @Summary Update internship
// @Description Update an existing internship listing
// @Tags internships
// @Accept json
// @Produce json
// @Param internship_id path string true "Internship ID"
// @Param internship body UpdateInternshipRequest true "Fields to update"
// @Success 200 {object} InternshipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/internships/{internship_id} [put]
func (h *InternshipHandler) UpdateInternship(c *gin.Context) {
	internshipID := c.Param("internship_id")
	parsedUUID, err := uuid.Parse(internshipID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
		return
	}

	var req UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := updateInternshipParams(parsedUUID, req)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	internship, err := h.common.db.UpdateInternship(c.Request.Context(), params)
	if err != nil {
		handleDBError(c, err, "Internship not found")
		return
	}

	sendSuccess(c, http.StatusOK, toInternshipResponse(internship))
}

// DeleteInternship godoc
// @Summary Delete internship
// @Description Delete an internship listing
// @Tags internships
// @Accept json
// @Produce json
// @Param internship_id path string true "Internship ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/internships/{internship_id} [delete]
func (h *InternshipHandler) DeleteInternship(c *gin.Context) {
	internshipID := c.Param("internship_id")
	parsedUUID, err := uuid.Parse(internshipID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
		return
	}

	if err := h.common.db.DeleteInternship(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete internship", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Internship deleted successfully")
}

func updateInternshipParams(id uuid.UUID, req UpdateInternshipRequest) (db.UpdateInternshipParams, error) {
	params := db.UpdateInternshipParams{
		ID:                 id,
		Requirements:       req.Requirements,
		Responsibilities:   req.Responsibilities,
		TermsAndConditions: req.TermsAndConditions,
	}

	if req.Title != "" {
		params.Title = pgtype.Text{String: req.Title, Valid: true}
	}
	if req.Department != "" {
		params.Department = pgtype.Text{String: req.Department, Valid: true}
	}
	if req.Description != "" {
		params.Description = pgtype.Text{String: req.Description, Valid: true}
	}
	if req.Location != "" {
		params.Location = pgtype.Text{String: req.Location, Valid: true}
	}
	if req.ApplicationDeadline != "" {
		deadline, err := parseDateParam(req.ApplicationDeadline)
		if err != nil {
			return params, fmt.Errorf("invalid application deadline: %w", err)
		}
		params.ApplicationDeadline = deadline
	}
	if req.StartDate != "" {
		startDate, err := parseDateParam(req.StartDate)
		if err != nil {
			return params, fmt.Errorf("invalid start date: %w", err)
		}
		params.StartDate = startDate
	}
	if req.Remote != nil {
		params.Remote = pgtype.Bool{Bool: *req.Remote, Valid: true}
	}
	if req.Featured != nil {
		params.Featured = pgtype.Bool{Bool: *req.Featured, Valid: true}
	}
	if req.PaymentRequired != nil {
		params.PaymentRequired = pgtype.Bool{Bool: *req.PaymentRequired, Valid: true}
	}
	if req.ApplicationFee != nil {
		params.ApplicationFee = pgtype.Int4{Int32: *req.ApplicationFee, Valid: true}
	}
	if req.AcceptsCoupon != nil {
		params.AcceptsCoupon = pgtype.Bool{Bool: *req.AcceptsCoupon, Valid: true}
	}
	if req.Active != nil {
		params.Active = pgtype.Bool{Bool: *req.Active, Valid: true}
	}

	return params, nil
}

func toInternshipResponse(internship db.Internship) InternshipResponse {
	resp := InternshipResponse{
		ID:                 internship.ID.String(),
		Object:             "internship",
		Title:              internship.Title,
		Department:         internship.Department,
		Description:        internship.Description,
		Requirements:       internship.Requirements,
		Responsibilities:   internship.Responsibilities,
		Location:           internship.Location,
		Remote:             internship.Remote,
		Featured:           internship.Featured,
		PaymentRequired:    internship.PaymentRequired,
		ApplicationFee:     internship.ApplicationFee,
		AcceptsCoupon:      internship.AcceptsCoupon,
		TermsAndConditions: internship.TermsAndConditions,
		Active:             internship.Active,
		CreatedAt:          internship.CreatedAt.Time.Unix(),
		UpdatedAt:          internship.UpdatedAt.Time.Unix(),
	}
	if internship.ApplicationDeadline.Valid {
		resp.ApplicationDeadline = internship.ApplicationDeadline.Time.Format(time.DateOnly)
	}
	if internship.StartDate.Valid {
		resp.StartDate = internship.StartDate.Time.Format(time.DateOnly)
	}
	return resp
}

// parseDateParam parses a YYYY-MM-DD date string. An empty string maps to a
// null date.
func parseDateParam(value string) (pgtype.Date, error) {
	if value == "" {
		return pgtype.Date{}, nil
	}
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: parsed, Valid: true}, nil
}

func validatePaginationParams(c *gin.Context) (limit int32, offset int32, err error) {
	const maxLimit int32 = 100
	limit = 20 // default limit

	if limitStr := c.Query("limit"); limitStr != "" {
		parsedLimit, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid limit parameter")
		}
		if parsedLimit > int64(maxLimit) {
			limit = maxLimit
		} else if parsedLimit > 0 {
			limit = int32(parsedLimit)
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		parsedOffset, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid offset parameter")
		}
		if parsedOffset > 0 {
			offset = int32(parsedOffset)
		}
	}

	return limit, offset, nil
}
