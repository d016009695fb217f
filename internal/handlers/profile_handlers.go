package handlers

import (
	"atlantic-api/internal/constants"
	"atlantic-api/internal/db"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ProfileHandler handles the authenticated user's profile
type ProfileHandler struct {
	common *CommonServices
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(common *CommonServices) *ProfileHandler {
	return &ProfileHandler{common: common}
}

// ProfileResponse represents the standardized API response for profiles
type ProfileResponse struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	SupabaseID string `json:"supabase_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// GetCurrentProfile godoc
// @Summary Get current profile
// @Description Get the authenticated user's profile, creating it on first sign-in
// @Tags profiles
// @Accept json
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /profiles/me [get]
func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	supabaseID := c.GetString("supabase_id")
	if supabaseID == "" {
		sendError(c, http.StatusUnauthorized, "No authenticated user", nil)
		return
	}

	profile, err := h.common.db.GetProfileBySupabaseID(c.Request.Context(), supabaseID)
	if errors.Is(err, pgx.ErrNoRows) {
		// First sign-in; provision a profile from the token claims.
		profile, err = h.common.db.CreateProfile(c.Request.Context(), db.CreateProfileParams{
			SupabaseID: supabaseID,
			Email:      c.GetString("email"),
			Role:       constants.RoleApplicant,
		})
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	sendSuccess(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateCurrentProfile godoc
// @Summary Update current profile
// @Description Update the authenticated user's profile details
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /profiles/me [put]
func (h *ProfileHandler) UpdateCurrentProfile(c *gin.Context) {
	supabaseID := c.GetString("supabase_id")
	if supabaseID == "" {
		sendError(c, http.StatusUnauthorized, "No authenticated user", nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := db.UpdateProfileParams{SupabaseID: supabaseID}
	if req.Email != "" {
		params.Email = pgtype.Text{String: req.Email, Valid: true}
	}
	if req.FullName != "" {
		params.FullName = pgtype.Text{String: req.FullName, Valid: true}
	}
	if req.Phone != "" {
		params.Phone = pgtype.Text{String: req.Phone, Valid: true}
	}

	profile, err := h.common.db.UpdateProfile(c.Request.Context(), params)
	if err != nil {
		handleDBError(c, err, "Profile not found")
		return
	}

	sendSuccess(c, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile db.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         profile.ID.String(),
		Object:     "profile",
		SupabaseID: profile.SupabaseID,
		Email:      profile.Email,
		FullName:   profile.FullName.String,
		Phone:      profile.Phone.String,
		Role:       profile.Role,
		CreatedAt:  profile.CreatedAt.Time.Unix(),
		UpdatedAt:  profile.UpdatedAt.Time.Unix(),
	}
}
