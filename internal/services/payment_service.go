package services

import (
	"context"
	"errors"
	"fmt"

	"atlantic-api/internal/client/razorpay"
	"atlantic-api/internal/logger"

	"go.uber.org/zap"
)

// ErrVerificationFailed marks a signature check failure after a charge may
// already have been captured. Callers must report this distinctly from a
// failed payment: the applicant's money may be gone even though the
// application is not yet paid in our books.
var ErrVerificationFailed = errors.New("payment verification failed")

// PaymentGateway abstracts the Razorpay client for testing.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// PaymentService handles order creation and checkout verification.
type PaymentService struct {
	gateway PaymentGateway
	logger  *zap.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(gateway PaymentGateway) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		logger:  logger.Log,
	}
}

// CheckoutOrder is what the payment step needs to open the gateway checkout.
type CheckoutOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// CreateOrder creates a gateway order for the post-discount amount.
func (s *PaymentService) CreateOrder(ctx context.Context, amountMinorUnits int64, receipt string, notes map[string]string) (*CheckoutOrder, error) {
	if amountMinorUnits <= 0 {
		return nil, fmt.Errorf("cannot create an order for a non-positive amount")
	}

	order, err := s.gateway.CreateOrder(ctx, amountMinorUnits, "INR", receipt, notes)
	if err != nil {
		s.logger.Error("Failed to create payment order",
			zap.String("receipt", receipt),
			zap.Int64("amount", amountMinorUnits),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	return &CheckoutOrder{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// VerifyPayment checks the checkout callback signature. A mismatch returns
// ErrVerificationFailed; a failed verification never silently downgrades the
// application to unpaid.
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("%w: missing payment parameters", ErrVerificationFailed)
	}

	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		s.logger.Warn("Payment signature mismatch",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID))
		return ErrVerificationFailed
	}

	s.logger.Info("Payment verified",
		zap.String("order_id", orderID),
		zap.String("payment_id", paymentID))
	return nil
}
