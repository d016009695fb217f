package services

import (
	"context"
	"strings"
	"time"

	"atlantic-api/internal/db"
	"atlantic-api/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// User-facing coupon rejection messages. These are returned verbatim to the
// applicant, so the wording is part of the API contract.
const (
	MsgCouponCodeRequired = "Coupon code is required"
	MsgCouponInvalid      = "Invalid coupon code"
	MsgCouponBadExpiry    = "Invalid expiry date"
	MsgCouponExpired      = "Coupon has expired"
	MsgCouponMaxedOut     = "Coupon has reached maximum uses"
)

// CouponValidation is the typed result of a validation check. Rejections are
// values, not errors: a bad coupon code is an expected outcome.
type CouponValidation struct {
	Valid           bool   `json:"valid"`
	DiscountPercent int32  `json:"discount_percent,omitempty"`
	Message         string `json:"message,omitempty"`
}

// LegacyCouponStore is the read-modify-write fallback used when the atomic
// usage increment cannot run.
type LegacyCouponStore interface {
	IncrementCouponUsage(ctx context.Context, code string) error
}

// CouponService handles coupon validation and usage counting.
type CouponService struct {
	queries db.Querier
	legacy  LegacyCouponStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewCouponService creates a new coupon service. legacy may be nil when no
// fallback backend is configured.
func NewCouponService(queries db.Querier, legacy LegacyCouponStore) *CouponService {
	return &CouponService{
		queries: queries,
		legacy:  legacy,
		logger:  logger.Log,
		now:     time.Now,
	}
}

// ValidateCoupon checks a code against existence, active flag, expiry and the
// usage limit, in that order. internshipID scopes the check: a coupon bound
// to a specific internship is invalid for any other one.
func (s *CouponService) ValidateCoupon(ctx context.Context, code string, internshipID uuid.UUID) CouponValidation {
	code = strings.TrimSpace(code)
	if code == "" {
		return CouponValidation{Valid: false, Message: MsgCouponCodeRequired}
	}

	coupon, err := s.queries.GetCouponByCode(ctx, strings.ToUpper(code))
	if err != nil {
		// Lookup failures and missing rows read the same to the applicant.
		s.logger.Debug("Coupon lookup failed",
			zap.String("code", code),
			zap.Error(err))
		return CouponValidation{Valid: false, Message: MsgCouponInvalid}
	}

	if !coupon.Active {
		return CouponValidation{Valid: false, Message: MsgCouponInvalid}
	}

	if coupon.InternshipID.Valid && uuid.UUID(coupon.InternshipID.Bytes) != internshipID {
		return CouponValidation{Valid: false, Message: MsgCouponInvalid}
	}

	if !coupon.ExpiryDate.Valid {
		return CouponValidation{Valid: false, Message: MsgCouponBadExpiry}
	}

	if coupon.ExpiryDate.Time.Before(s.now()) {
		return CouponValidation{Valid: false, Message: MsgCouponExpired}
	}

	if coupon.CurrentUses >= coupon.MaxUses {
		return CouponValidation{Valid: false, Message: MsgCouponMaxedOut}
	}

	return CouponValidation{Valid: true, DiscountPercent: coupon.DiscountPercent}
}

// IncrementUsage bumps a coupon's usage counter after a successful
// application. It is best-effort: a usage-count miss must never block an
// otherwise-successful submission, so every failure is logged and swallowed.
//
// The atomic guarded update runs first. If it reports no rows (counter
// already at the limit, or the row vanished) or errors, the legacy
// read-modify-write fallback is tried.
func (s *CouponService) IncrementUsage(ctx context.Context, code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}

	rows, err := s.queries.IncrementCouponUsage(ctx, strings.ToUpper(code))
	if err == nil && rows > 0 {
		s.logger.Debug("Incremented coupon usage", zap.String("code", code))
		return
	}

	if err != nil {
		s.logger.Warn("Atomic coupon usage increment failed, trying legacy fallback",
			zap.String("code", code),
			zap.Error(err))
	} else {
		s.logger.Warn("Atomic coupon usage increment matched no rows, trying legacy fallback",
			zap.String("code", code))
	}

	if s.legacy == nil {
		return
	}

	if err := s.legacy.IncrementCouponUsage(ctx, strings.ToUpper(code)); err != nil {
		s.logger.Warn("Legacy coupon usage increment failed",
			zap.String("code", code),
			zap.Error(err))
	}
}
