package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atlantic-api/internal/db"
	"atlantic-api/internal/logger"
	"atlantic-api/internal/mocks"
	"atlantic-api/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger()
}

func validCoupon(code string, percent, currentUses, maxUses int32) db.Coupon {
	return db.Coupon{
		ID:              uuid.New(),
		Code:            code,
		DiscountPercent: percent,
		MaxUses:         maxUses,
		CurrentUses:     currentUses,
		ExpiryDate:      pgtype.Timestamptz{Time: time.Now().Add(48 * time.Hour), Valid: true},
		Active:          true,
	}
}

func TestCouponService_ValidateCoupon(t *testing.T) {
	internshipID := uuid.New()
	otherInternshipID := uuid.New()

	tests := []struct {
		name        string
		code        string
		mockSetup   func(m *mocks.MockQuerier)
		wantValid   bool
		wantPercent int32
		wantMessage string
	}{
		{
			name:        "empty code rejected without lookup",
			code:        "   ",
			mockSetup:   func(m *mocks.MockQuerier) {},
			wantValid:   false,
			wantMessage: "Coupon code is required",
		},
		{
			name: "valid coupon returns discount percent",
			code: "save20",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").
					Return(validCoupon("SAVE20", 20, 3, 10), nil)
			},
			wantValid:   true,
			wantPercent: 20,
		},
		{
			name: "unknown code",
			code: "NOPE",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCouponByCode(gomock.Any(), "NOPE").
					Return(db.Coupon{}, pgx.ErrNoRows)
			},
			wantValid:   false,
			wantMessage: "Invalid coupon code",
		},
		{
			name: "lookup error reads as invalid",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").
					Return(db.Coupon{}, errors.New("connection refused"))
			},
			wantValid:   false,
			wantMessage: "Invalid coupon code",
		},
		{
			name: "inactive coupon",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				c := validCoupon("SAVE20", 20, 0, 10)
				c.Active = false
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(c, nil)
			},
			wantValid:   false,
			wantMessage: "Invalid coupon code",
		},
		{
			name: "coupon scoped to another internship",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				c := validCoupon("SAVE20", 20, 0, 10)
				c.InternshipID = pgtype.UUID{Bytes: otherInternshipID, Valid: true}
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(c, nil)
			},
			wantValid:   false,
			wantMessage: "Invalid coupon code",
		},
		{
			name: "missing expiry date",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				c := validCoupon("SAVE20", 20, 0, 10)
				c.ExpiryDate = pgtype.Timestamptz{}
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(c, nil)
			},
			wantValid:   false,
			wantMessage: "Invalid expiry date",
		},
		{
			name: "expired yesterday",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				c := validCoupon("SAVE20", 20, 0, 10)
				c.ExpiryDate = pgtype.Timestamptz{Time: time.Now().Add(-24 * time.Hour), Valid: true}
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(c, nil)
			},
			wantValid:   false,
			wantMessage: "Coupon has expired",
		},
		{
			name: "usage exhausted",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").
					Return(validCoupon("SAVE20", 20, 10, 10), nil)
			},
			wantValid:   false,
			wantMessage: "Coupon has reached maximum uses",
		},
		{
			name: "coupon scoped to this internship is accepted",
			code: "SAVE20",
			mockSetup: func(m *mocks.MockQuerier) {
				c := validCoupon("SAVE20", 35, 0, 10)
				c.InternshipID = pgtype.UUID{Bytes: internshipID, Valid: true}
				m.EXPECT().GetCouponByCode(gomock.Any(), "SAVE20").Return(c, nil)
			},
			wantValid:   true,
			wantPercent: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuerier := mocks.NewMockQuerierForTest(t)
			tt.mockSetup(mockQuerier)

			service := services.NewCouponService(mockQuerier, nil)
			result := service.ValidateCoupon(context.Background(), tt.code, internshipID)

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantPercent, result.DiscountPercent)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

type fakeLegacyCouponStore struct {
	calls []string
	err   error
}

func (f *fakeLegacyCouponStore) IncrementCouponUsage(ctx context.Context, code string) error {
	f.calls = append(f.calls, code)
	return f.err
}

func TestCouponService_IncrementUsage(t *testing.T) {
	t.Run("atomic increment succeeds, legacy untouched", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().IncrementCouponUsage(gomock.Any(), "SAVE20").Return(int64(1), nil)

		legacy := &fakeLegacyCouponStore{}
		service := services.NewCouponService(mockQuerier, legacy)
		service.IncrementUsage(context.Background(), "save20")

		assert.Empty(t, legacy.calls)
	})

	t.Run("atomic increment error falls back to legacy", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().IncrementCouponUsage(gomock.Any(), "SAVE20").
			Return(int64(0), errors.New("connection reset"))

		legacy := &fakeLegacyCouponStore{}
		service := services.NewCouponService(mockQuerier, legacy)
		service.IncrementUsage(context.Background(), "SAVE20")

		assert.Equal(t, []string{"SAVE20"}, legacy.calls)
	})

	t.Run("zero rows falls back to legacy", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().IncrementCouponUsage(gomock.Any(), "SAVE20").Return(int64(0), nil)

		legacy := &fakeLegacyCouponStore{}
		service := services.NewCouponService(mockQuerier, legacy)
		service.IncrementUsage(context.Background(), "SAVE20")

		assert.Equal(t, []string{"SAVE20"}, legacy.calls)
	})

	t.Run("legacy failure is swallowed", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().IncrementCouponUsage(gomock.Any(), "SAVE20").
			Return(int64(0), errors.New("boom"))

		legacy := &fakeLegacyCouponStore{err: errors.New("also boom")}
		service := services.NewCouponService(mockQuerier, legacy)

		// Must not panic or surface an error to the caller.
		service.IncrementUsage(context.Background(), "SAVE20")
		assert.Equal(t, []string{"SAVE20"}, legacy.calls)
	})

	t.Run("empty code is a no-op", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)

		legacy := &fakeLegacyCouponStore{}
		service := services.NewCouponService(mockQuerier, legacy)
		service.IncrementUsage(context.Background(), " ")

		assert.Empty(t, legacy.calls)
	})
}
