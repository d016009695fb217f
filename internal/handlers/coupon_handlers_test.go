package handlers

import (
	"net/http"
	"testing"
	"time"

	"atlantic-api/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCouponRouter(common *CommonServices) *gin.Engine {
	handler := NewCouponHandler(common)
	router := gin.New()
	router.POST("/coupons/validate", handler.ValidateCoupon)
	return router
}

func validCoupon(code string) db.Coupon {
	return db.Coupon{
		ID:              uuid.New(),
		Code:            code,
		DiscountPercent: 25,
		MaxUses:         100,
		CurrentUses:     10,
		ExpiryDate:      pgtype.Timestamptz{Time: time.Now().Add(24 * time.Hour), Valid: true},
		Active:          true,
	}
}

func TestValidateCoupon_Success(t *testing.T) {
	common, queries, _ := newTestCommon(t)
	router := newCouponRouter(common)

	queries.EXPECT().
		GetCouponByCode(gomock.Any(), "SAVE25").
		Return(validCoupon("SAVE25"), nil)

	recorder := performJSON(router, http.MethodPost, "/coupons/validate", gin.H{"code": "save25"})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp ValidateCouponResponse
	decodeBody(t, recorder, &resp)
	assert.True(t, resp.Valid)
	assert.Equal(t, int32(25), resp.DiscountPercent)
	assert.Empty(t, resp.Message)
}

func TestValidateCoupon_CamelCasePayload(t *testing.T) {
	common, queries, _ := newTestCommon(t)
	router := newCouponRouter(common)

	internshipID := uuid.New()
	coupon := validCoupon("SAVE25")
	coupon.InternshipID = pgtype.UUID{Bytes: internshipID, Valid: true}

	queries.EXPECT().
		GetCouponByCode(gomock.Any(), "SAVE25").
		Return(coupon, nil)

	recorder := performJSON(router, http.MethodPost, "/coupons/validate", gin.H{
		"couponCode":   "SAVE25",
		"internshipId": internshipID.String(),
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp ValidateCouponResponse
	decodeBody(t, recorder, &resp)
	assert.True(t, resp.Valid)
}

func TestValidateCoupon_Rejections(t *testing.T) {
	boundTo := uuid.New()

	tests := []struct {
		name        string
		body        gin.H
		coupon      db.Coupon
		lookupErr   error
		skipLookup  bool
		wantMessage string
	}{
		{
			name:        "missing code",
			body:        gin.H{"code": "   "},
			skipLookup:  true,
			wantMessage: "Coupon code is required",
		},
		{
			name:        "unknown code",
			body:        gin.H{"code": "NOPE"},
			lookupErr:   pgx.ErrNoRows,
			wantMessage: "Invalid coupon code",
		},
		{
			name: "inactive coupon",
			body: gin.H{"code": "SAVE25"},
			coupon: func() db.Coupon {
				c := validCoupon("SAVE25")
				c.Active = false
				return c
			}(),
			wantMessage: "Invalid coupon code",
		},
		{
			name: "wrong internship",
			body: gin.H{"code": "SAVE25", "internship_id": uuid.New().String()},
			coupon: func() db.Coupon {
				c := validCoupon("SAVE25")
				c.InternshipID = pgtype.UUID{Bytes: boundTo, Valid: true}
				return c
			}(),
			wantMessage: "Invalid coupon code",
		},
		{
			name: "missing expiry",
			body: gin.H{"code": "SAVE25"},
			coupon: func() db.Coupon {
				c := validCoupon("SAVE25")
				c.ExpiryDate = pgtype.Timestamptz{}
				return c
			}(),
			wantMessage: "Invalid expiry date",
		},
		{
			name: "expired coupon",
			body: gin.H{"code": "SAVE25"},
			coupon: func() db.Coupon {
				c := validCoupon("SAVE25")
				c.ExpiryDate = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}
				return c
			}(),
			wantMessage: "Coupon has expired",
		},
		{
			name: "usage limit reached",
			body: gin.H{"code": "SAVE25"},
			coupon: func() db.Coupon {
				c := validCoupon("SAVE25")
				c.CurrentUses = c.MaxUses
				return c
			}(),
			wantMessage: "Coupon has reached maximum uses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			common, queries, _ := newTestCommon(t)
			router := newCouponRouter(common)

			if !tt.skipLookup {
				queries.EXPECT().
					GetCouponByCode(gomock.Any(), gomock.Any()).
					Return(tt.coupon, tt.lookupErr)
			}

			recorder := performJSON(router, http.MethodPost, "/coupons/validate", tt.body)

			require.Equal(t, http.StatusOK, recorder.Code)
			var resp ValidateCouponResponse
			decodeBody(t, recorder, &resp)
			assert.False(t, resp.Valid)
			assert.Zero(t, resp.DiscountPercent)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestValidateCoupon_BadInternshipID(t *testing.T) {
	common, _, _ := newTestCommon(t)
	router := newCouponRouter(common)

	recorder := performJSON(router, http.MethodPost, "/coupons/validate", gin.H{
		"code":          "SAVE25",
		"internship_id": "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "Invalid internship ID format", resp.Error)
}
