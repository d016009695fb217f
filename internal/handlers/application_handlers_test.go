package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"atlantic-api/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApplicationRouter(common *CommonServices) *gin.Engine {
	handler := NewApplicationHandler(common)
	router := gin.New()
	router.POST("/submit-application", handler.SubmitApplication)
	router.POST("/verify-payment", handler.VerifyPayment)
	return router
}

func TestSubmitApplication_Success(t *testing.T) {
	common, queries, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	internshipID := uuid.New()
	applicationID := uuid.New()

	queries.EXPECT().
		GetInternship(gomock.Any(), internshipID).
		Return(db.Internship{ID: internshipID, Title: "Backend Engineering"}, nil)
	queries.EXPECT().
		CreateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateApplicationParams) (db.Application, error) {
			assert.Equal(t, internshipID, params.InternshipID)
			assert.Equal(t, "Asha Verma", params.Name)
			assert.Equal(t, "asha@example.com", params.Email)
			assert.Equal(t, "pending", params.Status)
			assert.Equal(t, "unpaid", params.PaymentStatus)
			assert.Equal(t, []string{"Go", "SQL"}, params.Skills)
			return db.Application{ID: applicationID}, nil
		})

	recorder := performJSON(router, http.MethodPost, "/submit-application", gin.H{
		"internship_id": internshipID.String(),
		"name":          "Asha Verma",
		"email":         "asha@example.com",
		"phone":         "+91 9000000000",
		"education":     "B.Tech",
		"skills":        []string{"Go", "SQL"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp SubmitApplicationResponse
	decodeBody(t, recorder, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, applicationID.String(), resp.ApplicationID)
	assert.Equal(t, "Application submitted successfully", resp.Message)
}

func TestSubmitApplication_CamelCasePayload(t *testing.T) {
	common, queries, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	internshipID := uuid.New()

	queries.EXPECT().
		CreateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateApplicationParams) (db.Application, error) {
			assert.Equal(t, internshipID, params.InternshipID)
			assert.Equal(t, "Ravi Kumar", params.Name)
			assert.True(t, params.CoverLetter.Valid)
			assert.Equal(t, "Hire me", params.CoverLetter.String)
			assert.True(t, params.CouponCode.Valid)
			assert.Equal(t, "SAVE25", params.CouponCode.String)
			return db.Application{ID: uuid.New()}, nil
		})
	queries.EXPECT().
		IncrementCouponUsage(gomock.Any(), "SAVE25").
		Return(int64(1), nil)

	recorder := performJSON(router, http.MethodPost, "/submit-application", gin.H{
		"internshipId":    internshipID.String(),
		"internshipTitle": "Data Engineering",
		"name":            "Ravi Kumar",
		"email":           "ravi@example.com",
		"coverLetter":     "Hire me",
		"couponCode":      "SAVE25",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp SubmitApplicationResponse
	decodeBody(t, recorder, &resp)
	assert.True(t, resp.Success)
}

func TestSubmitApplication_MissingInternshipID(t *testing.T) {
	common, _, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	recorder := performJSON(router, http.MethodPost, "/submit-application", gin.H{
		"name":  "Asha Verma",
		"email": "asha@example.com",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp SubmitApplicationResponse
	decodeBody(t, recorder, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing or invalid field: internship_id", resp.Message)
}

func TestSubmitApplication_MissingName(t *testing.T) {
	common, _, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	recorder := performJSON(router, http.MethodPost, "/submit-application", gin.H{
		"internship_id": uuid.New().String(),
		"email":         "asha@example.com",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp SubmitApplicationResponse
	decodeBody(t, recorder, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing or invalid field: name and email", resp.Message)
}

func TestSubmitApplication_FallsBackToMinimalInsert(t *testing.T) {
	common, queries, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	internshipID := uuid.New()
	applicationID := uuid.New()

	queries.EXPECT().
		GetInternship(gomock.Any(), internshipID).
		Return(db.Internship{}, errors.New("not found"))
	queries.EXPECT().
		CreateApplication(gomock.Any(), gomock.Any()).
		Return(db.Application{}, errors.New("column mismatch"))
	queries.EXPECT().
		CreateApplicationMinimal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.CreateApplicationMinimalParams) (db.Application, error) {
			assert.Equal(t, internshipID, params.InternshipID)
			assert.Equal(t, "Asha Verma", params.Name)
			return db.Application{ID: applicationID}, nil
		})

	recorder := performJSON(router, http.MethodPost, "/submit-application", gin.H{
		"internship_id": internshipID.String(),
		"name":          "Asha Verma",
		"email":         "asha@example.com",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp SubmitApplicationResponse
	decodeBody(t, recorder, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, applicationID.String(), resp.ApplicationID)
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	common, _, gateway := newTestCommon(t)
	router := newApplicationRouter(common)

	recorder := performJSON(router, http.MethodPost, "/verify-payment", gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_abc",
		"razorpay_signature":  gateway.sign("order_abc", "pay_abc"),
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp VerifyPaymentResponse
	decodeBody(t, recorder, &resp)
	assert.True(t, resp.Success)
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	common, _, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	recorder := performJSON(router, http.MethodPost, "/verify-payment", gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_abc",
		"razorpay_signature":  "deadbeef",
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp VerifyPaymentResponse
	decodeBody(t, recorder, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Payment verification failed", resp.Message)
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	common, _, _ := newTestCommon(t)
	router := newApplicationRouter(common)

	recorder := performJSON(router, http.MethodPost, "/verify-payment", gin.H{
		"razorpay_order_id": "order_abc",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
