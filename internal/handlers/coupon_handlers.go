package handlers

import (
	"atlantic-api/internal/db"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CouponHandler handles coupon-related operations
type CouponHandler struct {
	common *CommonServices
}

// NewCouponHandler creates a new CouponHandler instance
func NewCouponHandler(common *CommonServices) *CouponHandler {
	return &CouponHandler{common: common}
}

// ValidateCouponRequest accepts both naming conventions for its fields since
// older clients send camelCase.
type ValidateCouponRequest struct {
	Code              string `json:"code"`
	CouponCode        string `json:"coupon_code"`
	CouponCodeCamel   string `json:"couponCode"`
	InternshipID      string `json:"internship_id"`
	InternshipIDCamel string `json:"internshipId"`
}

func (r ValidateCouponRequest) code() string {
	for _, candidate := range []string{r.Code, r.CouponCode, r.CouponCodeCamel} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func (r ValidateCouponRequest) internshipID() string {
	if r.InternshipID != "" {
		return r.InternshipID
	}
	return r.InternshipIDCamel
}

// ValidateCouponResponse represents the outcome of a coupon validation
type ValidateCouponResponse struct {
	Valid           bool   `json:"valid"`
	DiscountPercent int32  `json:"discount_percent,omitempty"`
	Message         string `json:"message,omitempty"`
}

// CouponResponse represents the standardized API response for coupon operations
type CouponResponse struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	Code            string `json:"code"`
	DiscountPercent int32  `json:"discount_percent"`
	MaxUses         int32  `json:"max_uses"`
	CurrentUses     int32  `json:"current_uses"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	Active          bool   `json:"active"`
	InternshipID    string `json:"internship_id,omitempty"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

// CreateCouponRequest represents the request body for creating a coupon
type CreateCouponRequest struct {
	Code            string `json:"code" binding:"required"`
	DiscountPercent int32  `json:"discount_percent" binding:"required"`
	MaxUses         int32  `json:"max_uses" binding:"required"`
	ExpiryDate      string `json:"expiry_date"`
	Active          *bool  `json:"active"`
	InternshipID    string `json:"internship_id"`
}

// UpdateCouponRequest represents the request body for updating a coupon
type UpdateCouponRequest struct {
	DiscountPercent *int32 `json:"discount_percent,omitempty"`
	MaxUses         *int32 `json:"max_uses,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	Active          *bool  `json:"active,omitempty"`
}

// ValidateCoupon godoc
// @Summary Validate a coupon code
// @Description Check a coupon code against an internship and return the discount it grants
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body ValidateCouponRequest true "Coupon code and internship"
// @Success 200 {object} ValidateCouponResponse
// @Failure 400 {object} ErrorResponse
// @Router /coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var internshipID uuid.UUID
	if raw := req.internshipID(); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
			return
		}
		internshipID = parsed
	}

	validation := h.common.coupons.ValidateCoupon(c.Request.Context(), req.code(), internshipID)
	sendSuccess(c, http.StatusOK, ValidateCouponResponse{
		Valid:           validation.Valid,
		DiscountPercent: validation.DiscountPercent,
		Message:         validation.Message,
	})
}

// ListCoupons godoc
// @Summary List coupons
// @Description Get all coupons
// @Tags coupons
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Param offset query int false "Number of results to skip"
// @Success 200 {array} CouponResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	limit, offset, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	coupons, err := h.common.db.ListCoupons(c.Request.Context(), db.ListCouponsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve coupons", err)
		return
	}

	responses := make([]CouponResponse, len(coupons))
	for i, coupon := range coupons {
		responses[i] = toCouponResponse(coupon)
	}
	sendList(c, responses)
}

// CreateCoupon godoc
// @Summary Create coupon
// @Description Create a new coupon code
// @Tags coupons
// @Accept json
// @Produce json
// @Param coupon body CreateCouponRequest true "Coupon details"
// @Success 201 {object} CouponResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		sendError(c, http.StatusBadRequest, "Discount percent must be between 0 and 100", nil)
		return
	}

	expiry, err := parseTimestampParam(req.ExpiryDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid expiry date", err)
		return
	}

	var internshipID pgtype.UUID
	if req.InternshipID != "" {
		parsed, err := uuid.Parse(req.InternshipID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid internship ID format", err)
			return
		}
		internshipID = pgtype.UUID{Bytes: parsed, Valid: true}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	coupon, err := h.common.db.CreateCoupon(c.Request.Context(), db.CreateCouponParams{
		Code:            strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountPercent: req.DiscountPercent,
		MaxUses:         req.MaxUses,
		ExpiryDate:      expiry,
		Active:          active,
		InternshipID:    internshipID,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create coupon", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toCouponResponse(coupon))
}

// UpdateCoupon godoc
// @Summary Update coupon
// @Description Update an existing coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param coupon_id path string true "Coupon ID"
// @Param coupon body UpdateCouponRequest true "Fields to update"
// @Success 200 {object} CouponResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/coupons/{coupon_id} [put]
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	couponID := c.Param("coupon_id")
	parsedUUID, err := uuid.Parse(couponID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid coupon ID format", err)
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := db.UpdateCouponParams{ID: parsedUUID}
	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 0 || *req.DiscountPercent > 100 {
			sendError(c, http.StatusBadRequest, "Discount percent must be between 0 and 100", nil)
			return
		}
		params.DiscountPercent = pgtype.Int4{Int32: *req.DiscountPercent, Valid: true}
	}
	if req.MaxUses != nil {
		params.MaxUses = pgtype.Int4{Int32: *req.MaxUses, Valid: true}
	}
	if req.ExpiryDate != "" {
		expiry, err := parseTimestampParam(req.ExpiryDate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid expiry date", err)
			return
		}
		params.ExpiryDate = expiry
	}
	if req.Active != nil {
		params.Active = pgtype.Bool{Bool: *req.Active, Valid: true}
	}

	coupon, err := h.common.db.UpdateCoupon(c.Request.Context(), params)
	if err != nil {
		handleDBError(c, err, "Coupon not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCouponResponse(coupon))
}

// DeleteCoupon godoc
// @Summary Delete coupon
// @Description Delete a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param coupon_id path string true "Coupon ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/coupons/{coupon_id} [delete]
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	couponID := c.Param("coupon_id")
	parsedUUID, err := uuid.Parse(couponID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid coupon ID format", err)
		return
	}

	if err := h.common.db.DeleteCoupon(c.Request.Context(), parsedUUID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete coupon", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Coupon deleted successfully")
}

func toCouponResponse(coupon db.Coupon) CouponResponse {
	resp := CouponResponse{
		ID:              coupon.ID.String(),
		Object:          "coupon",
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
		MaxUses:         coupon.MaxUses,
		CurrentUses:     coupon.CurrentUses,
		Active:          coupon.Active,
		CreatedAt:       coupon.CreatedAt.Time.Unix(),
		UpdatedAt:       coupon.UpdatedAt.Time.Unix(),
	}
	if coupon.ExpiryDate.Valid {
		resp.ExpiryDate = coupon.ExpiryDate.Time.Format(time.RFC3339)
	}
	if coupon.InternshipID.Valid {
		resp.InternshipID = uuid.UUID(coupon.InternshipID.Bytes).String()
	}
	return resp
}

// parseTimestampParam parses an RFC 3339 timestamp, accepting a bare date as
// midnight UTC. An empty string maps to a null timestamp.
func parseTimestampParam(value string) (pgtype.Timestamptz, error) {
	if value == "" {
		return pgtype.Timestamptz{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		day, dayErr := time.Parse(time.DateOnly, value)
		if dayErr != nil {
			return pgtype.Timestamptz{}, err
		}
		parsed = day.UTC()
	}
	return pgtype.Timestamptz{Time: parsed, Valid: true}, nil
}
