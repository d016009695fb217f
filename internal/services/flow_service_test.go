package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"atlantic-api/internal/client/razorpay"
	"atlantic-api/internal/db"
	"atlantic-api/internal/mocks"
	"atlantic-api/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeGateway struct {
	orders      []int64
	orderErr    error
	validSig    bool
	lastReceipt string
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*razorpay.Order, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	f.orders = append(f.orders, amount)
	f.lastReceipt = receipt
	return &razorpay.Order{ID: "order_test123", Amount: amount, Currency: currency, Status: "created"}, nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return f.validSig
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

func paidInternship(id uuid.UUID, fee int32) db.Internship {
	return db.Internship{
		ID:              id,
		Title:           "Trading Operations Intern",
		Department:      "Operations",
		Active:          true,
		PaymentRequired: true,
		ApplicationFee:  fee,
		AcceptsCoupon:   true,
	}
}

func freeInternship(id uuid.UUID) db.Internship {
	return db.Internship{
		ID:              id,
		Title:           "Marketing Intern",
		Department:      "Marketing",
		Active:          true,
		PaymentRequired: false,
	}
}

func formSession(id, internshipID uuid.UUID, original, final int32) db.ApplicationSession {
	return db.ApplicationSession{
		ID:             id,
		InternshipID:   internshipID,
		State:          services.SessionStateForm,
		OriginalAmount: original,
		FinalAmount:    final,
	}
}

func validFormJSON() []byte {
	return []byte(`{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "+919876543210",
		"education": "B.Com",
		"agreesToTerms": true
	}`)
}

func newFlowService(q db.Querier, gateway services.PaymentGateway) *services.FlowService {
	coupons := services.NewCouponService(q, nil)
	applications := services.NewApplicationService(q, nil, nil, nil, coupons, nil)
	payments := services.NewPaymentService(gateway)
	return services.NewFlowService(q, payments, applications, coupons)
}

func TestFlowService_StartSession(t *testing.T) {
	internshipID := uuid.New()

	t.Run("snapshots the fee", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)
		mockQuerier.EXPECT().CreateApplicationSession(gomock.Any(), db.CreateApplicationSessionParams{
			InternshipID:   internshipID,
			OriginalAmount: 500,
			FinalAmount:    500,
		}).Return(formSession(uuid.New(), internshipID, 500, 500), nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		session, err := service.StartSession(context.Background(), internshipID)
		require.NoError(t, err)
		assert.Equal(t, services.SessionStateForm, session.State)
		assert.Equal(t, int32(500), session.FinalAmount)
	})

	t.Run("fee is zero when no payment required", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		internship := freeInternship(internshipID)
		internship.ApplicationFee = 500 // stale fee on a free internship is ignored
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).Return(internship, nil)
		mockQuerier.EXPECT().CreateApplicationSession(gomock.Any(), db.CreateApplicationSessionParams{
			InternshipID:   internshipID,
			OriginalAmount: 0,
			FinalAmount:    0,
		}).Return(formSession(uuid.New(), internshipID, 0, 0), nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, err := service.StartSession(context.Background(), internshipID)
		require.NoError(t, err)
	})

	t.Run("inactive internship rejected", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		internship := paidInternship(internshipID, 500)
		internship.Active = false
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).Return(internship, nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, err := service.StartSession(context.Background(), internshipID)
		assert.Error(t, err)
	})
}

func TestFlowService_ApplyCoupon(t *testing.T) {
	internshipID := uuid.New()
	sessionID := uuid.New()

	t.Run("valid coupon reprices the session", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 500), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)
		mockQuerier.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").
			Return(validCoupon("SAVE20", 20, 0, 10), nil)
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.Equal(t, int32(100), arg.DiscountAmount.Int32)
				assert.Equal(t, int32(400), arg.FinalAmount.Int32)
				assert.Equal(t, "SAVE20", arg.CouponCode.String)
				s := formSession(sessionID, internshipID, 500, 400)
				s.DiscountAmount = 100
				s.CouponCode = pgtype.Text{String: "SAVE20", Valid: true}
				return s, nil
			})

		service := newFlowService(mockQuerier, &fakeGateway{})
		session, validation, err := service.ApplyCoupon(context.Background(), sessionID, "save20")
		require.NoError(t, err)
		assert.True(t, validation.Valid)
		assert.Equal(t, int32(400), session.FinalAmount)
	})

	t.Run("rejection leaves session untouched", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 500), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)
		expired := validCoupon("SAVE20", 20, 0, 10)
		expired.ExpiryDate = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}
		mockQuerier.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(expired, nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, validation, err := service.ApplyCoupon(context.Background(), sessionID, "SAVE20")
		require.NoError(t, err)
		assert.False(t, validation.Valid)
		assert.Equal(t, "Coupon has expired", validation.Message)
	})

	t.Run("internship that takes no coupons", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		internship := paidInternship(internshipID, 500)
		internship.AcceptsCoupon = false
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 500), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).Return(internship, nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, validation, err := service.ApplyCoupon(context.Background(), sessionID, "SAVE20")
		require.NoError(t, err)
		assert.False(t, validation.Valid)
	})

	t.Run("guarded against non-form states", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		session := formSession(sessionID, internshipID, 500, 500)
		session.State = services.SessionStatePayment
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(session, nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, _, err := service.ApplyCoupon(context.Background(), sessionID, "SAVE20")
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})
}

func TestFlowService_BeginPayment(t *testing.T) {
	internshipID := uuid.New()
	sessionID := uuid.New()

	t.Run("opens an order and moves to payment", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 400), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.Equal(t, services.SessionStatePayment, arg.State.String)
				assert.Equal(t, "order_test123", arg.RazorpayOrderID.String)
				s := formSession(sessionID, internshipID, 500, 400)
				s.State = services.SessionStatePayment
				s.RazorpayOrderID = arg.RazorpayOrderID
				return s, nil
			})

		gateway := &fakeGateway{}
		service := newFlowService(mockQuerier, gateway)

		order, session, err := service.BeginPayment(context.Background(), sessionID, validFormJSON())
		require.NoError(t, err)
		assert.Equal(t, []int64{400}, gateway.orders)
		assert.Equal(t, "order_test123", order.OrderID)
		assert.Equal(t, "rzp_test_key", order.KeyID)
		assert.Equal(t, services.SessionStatePayment, session.State)
	})

	t.Run("invalid form never reaches the gateway", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 500), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		gateway := &fakeGateway{}
		service := newFlowService(mockQuerier, gateway)

		_, _, err := service.BeginPayment(context.Background(), sessionID, []byte(`{"name":"X"}`))
		assert.Error(t, err)
		assert.Empty(t, gateway.orders)
	})

	t.Run("fully discounted fee submits as waived", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		session := formSession(sessionID, internshipID, 500, 0)
		session.CouponCode = pgtype.Text{String: "FREE100", Valid: true}
		session.DiscountAmount = 500
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(session, nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)
		mockQuerier.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateApplicationParams) (db.Application, error) {
				assert.Equal(t, services.PaymentStatusWaived, arg.PaymentStatus)
				assert.Equal(t, int32(0), arg.PaymentAmount)
				return db.Application{ID: uuid.New()}, nil
			})
		mockQuerier.EXPECT().IncrementCouponUsage(gomock.Any(), "FREE100").Return(int64(1), nil)
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.Equal(t, services.SessionStateSuccess, arg.State.String)
				s := session
				s.State = services.SessionStateSuccess
				return s, nil
			})

		gateway := &fakeGateway{}
		service := newFlowService(mockQuerier, gateway)

		order, updated, err := service.BeginPayment(context.Background(), sessionID, validFormJSON())
		require.NoError(t, err)
		assert.Nil(t, order)
		assert.Empty(t, gateway.orders)
		assert.Equal(t, services.SessionStateSuccess, updated.State)
	})
}

func TestFlowService_ConfirmPayment(t *testing.T) {
	internshipID := uuid.New()
	sessionID := uuid.New()

	paymentSession := func() db.ApplicationSession {
		s := formSession(sessionID, internshipID, 500, 400)
		s.State = services.SessionStatePayment
		s.RazorpayOrderID = pgtype.Text{String: "order_test123", Valid: true}
		s.Form = validFormJSON()
		return s
	}

	t.Run("verification failure keeps the payment step", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(paymentSession(), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		service := newFlowService(mockQuerier, &fakeGateway{validSig: false})
		_, err := service.ConfirmPayment(context.Background(), sessionID, "order_test123", "pay_1", "bad")
		assert.ErrorIs(t, err, services.ErrVerificationFailed)
	})

	t.Run("order from another session rejected", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(paymentSession(), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		service := newFlowService(mockQuerier, &fakeGateway{validSig: true})
		_, err := service.ConfirmPayment(context.Background(), sessionID, "order_other", "pay_1", "sig")
		assert.ErrorIs(t, err, services.ErrVerificationFailed)
	})

	t.Run("verified payment submits and succeeds", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(paymentSession(), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		verified := paymentSession()
		verified.PaymentID = pgtype.Text{String: "pay_1", Valid: true}
		verified.PaymentVerified = true
		first := mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.True(t, arg.PaymentVerified.Bool)
				return verified, nil
			})
		mockQuerier.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateApplicationParams) (db.Application, error) {
				assert.Equal(t, services.PaymentStatusPaid, arg.PaymentStatus)
				assert.Equal(t, int32(400), arg.PaymentAmount)
				assert.Equal(t, "pay_1", arg.PaymentID.String)
				return db.Application{ID: uuid.New()}, nil
			})
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).After(first).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.Equal(t, services.SessionStateSuccess, arg.State.String)
				s := verified
				s.State = services.SessionStateSuccess
				return s, nil
			})

		service := newFlowService(mockQuerier, &fakeGateway{validSig: true})
		session, err := service.ConfirmPayment(context.Background(), sessionID, "order_test123", "pay_1", "sig")
		require.NoError(t, err)
		assert.Equal(t, services.SessionStateSuccess, session.State)
	})

	t.Run("persistence exhaustion parks the paid record", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(paymentSession(), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		verified := paymentSession()
		verified.PaymentID = pgtype.Text{String: "pay_1", Valid: true}
		verified.PaymentVerified = true
		first := mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).Return(verified, nil)
		mockQuerier.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
			Return(db.Application{}, errors.New("insert failed"))
		mockQuerier.EXPECT().CreateApplicationMinimal(gomock.Any(), gomock.Any()).
			Return(db.Application{}, errors.New("minimal failed"))
		mockQuerier.EXPECT().CreateFailedSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateFailedSubmissionParams) (db.FailedSubmission, error) {
				assert.Equal(t, sessionID, arg.SessionID)
				assert.Equal(t, "pay_1", arg.PaymentID.String)
				var record map[string]interface{}
				require.NoError(t, json.Unmarshal(arg.Record, &record))
				assert.Equal(t, "paid", record["payment_status"])
				return db.FailedSubmission{ID: uuid.New()}, nil
			})
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).After(first).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.Equal(t, services.SessionStateError, arg.State.String)
				s := verified
				s.State = services.SessionStateError
				return s, nil
			})

		service := newFlowService(mockQuerier, &fakeGateway{validSig: true})
		session, err := service.ConfirmPayment(context.Background(), sessionID, "order_test123", "pay_1", "sig")
		require.Error(t, err)
		require.NotNil(t, session)
		assert.Equal(t, services.SessionStateError, session.State)
	})
}

func TestFlowService_SubmitWithoutPayment(t *testing.T) {
	internshipID := uuid.New()
	sessionID := uuid.New()

	t.Run("free internship submits waived with zero amount", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 0, 0), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(freeInternship(internshipID), nil)
		mockQuerier.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateApplicationParams) (db.Application, error) {
				assert.Equal(t, services.PaymentStatusWaived, arg.PaymentStatus)
				assert.Equal(t, int32(0), arg.PaymentAmount)
				return db.Application{ID: uuid.New()}, nil
			})
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				s := formSession(sessionID, internshipID, 0, 0)
				s.State = services.SessionStateSuccess
				return s, nil
			})

		service := newFlowService(mockQuerier, &fakeGateway{})
		session, err := service.SubmitWithoutPayment(context.Background(), sessionID, validFormJSON())
		require.NoError(t, err)
		assert.Equal(t, services.SessionStateSuccess, session.State)
	})

	t.Run("fee-bearing internship cannot bypass payment", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 500), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, err := service.SubmitWithoutPayment(context.Background(), sessionID, validFormJSON())
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})
}

func TestFlowService_RetrySubmission(t *testing.T) {
	internshipID := uuid.New()
	sessionID := uuid.New()

	errorSession := formSession(sessionID, internshipID, 500, 400)
	errorSession.State = services.SessionStateError
	errorSession.Form = validFormJSON()
	errorSession.PaymentID = pgtype.Text{String: "pay_1", Valid: true}
	errorSession.PaymentVerified = true

	t.Run("retries submission without touching payment", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(errorSession, nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)
		mockQuerier.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateApplicationParams) (db.Application, error) {
				assert.Equal(t, services.PaymentStatusPaid, arg.PaymentStatus)
				assert.Equal(t, "pay_1", arg.PaymentID.String)
				return db.Application{ID: uuid.New()}, nil
			})
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				s := errorSession
				s.State = services.SessionStateSuccess
				s.ApplicationID = arg.ApplicationID
				return s, nil
			})
		mockQuerier.EXPECT().ResolveFailedSubmissionsBySession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.ResolveFailedSubmissionsBySessionParams) error {
				assert.Equal(t, sessionID, arg.SessionID)
				assert.True(t, arg.ApplicationID.Valid)
				return nil
			})

		gateway := &fakeGateway{}
		service := newFlowService(mockQuerier, gateway)
		session, err := service.RetrySubmission(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, services.SessionStateSuccess, session.State)
		assert.Empty(t, gateway.orders, "retry must never open a new order")
	})

	t.Run("guarded against non-error states", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(formSession(sessionID, internshipID, 500, 500), nil)
		mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
			Return(paidInternship(internshipID, 500), nil)

		service := newFlowService(mockQuerier, &fakeGateway{})
		_, err := service.RetrySubmission(context.Background(), sessionID)
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})
}

func TestParseForm(t *testing.T) {
	t.Run("camelCase folds into snake_case", func(t *testing.T) {
		form, err := services.ParseForm([]byte(`{
			"name": "Asha",
			"email": "a@b.c",
			"coverLetter": "hello",
			"agreesToTerms": true,
			"customField": "kept"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "hello", form.CoverLetter)
		assert.True(t, form.AgreesToTerms)
		assert.Equal(t, "kept", form.Extra["custom_field"])
	})

	t.Run("snake_case wins on conflict", func(t *testing.T) {
		form, err := services.ParseForm([]byte(`{
			"cover_letter": "canonical",
			"coverLetter": "duplicate"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "canonical", form.CoverLetter)
	})

	t.Run("malformed payload rejected", func(t *testing.T) {
		_, err := services.ParseForm([]byte(`not json`))
		assert.Error(t, err)
	})
}
