package services_test

import (
	"context"
	"errors"
	"testing"

	"atlantic-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreateOrder(t *testing.T) {
	t.Run("wraps the gateway order with the key id", func(t *testing.T) {
		gateway := &fakeGateway{}
		service := services.NewPaymentService(gateway)

		order, err := service.CreateOrder(context.Background(), 400, "session-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "order_test123", order.OrderID)
		assert.Equal(t, int64(400), order.Amount)
		assert.Equal(t, "rzp_test_key", order.KeyID)
		assert.Equal(t, "session-1", gateway.lastReceipt)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		gateway := &fakeGateway{}
		service := services.NewPaymentService(gateway)

		_, err := service.CreateOrder(context.Background(), 0, "session-1", nil)
		assert.Error(t, err)
		assert.Empty(t, gateway.orders)
	})

	t.Run("propagates gateway failure", func(t *testing.T) {
		gateway := &fakeGateway{orderErr: errors.New("gateway down")}
		service := services.NewPaymentService(gateway)

		_, err := service.CreateOrder(context.Background(), 400, "session-1", nil)
		assert.Error(t, err)
	})
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	t.Run("valid signature passes", func(t *testing.T) {
		service := services.NewPaymentService(&fakeGateway{validSig: true})
		assert.NoError(t, service.VerifyPayment("order_1", "pay_1", "sig"))
	})

	t.Run("bad signature is a verification failure", func(t *testing.T) {
		service := services.NewPaymentService(&fakeGateway{validSig: false})
		err := service.VerifyPayment("order_1", "pay_1", "sig")
		assert.ErrorIs(t, err, services.ErrVerificationFailed)
	})

	t.Run("missing parameters are a verification failure", func(t *testing.T) {
		service := services.NewPaymentService(&fakeGateway{validSig: true})
		err := service.VerifyPayment("order_1", "", "sig")
		assert.ErrorIs(t, err, services.ErrVerificationFailed)
	})
}
