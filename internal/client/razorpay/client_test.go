package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{KeyID: "", KeySecret: "secret"})
	assert.Error(t, err)

	_, err = NewClient(Config{KeyID: "rzp_test_key", KeySecret: ""})
	assert.Error(t, err)

	client, err := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "rzp_test_key", client.KeyID())
}

func TestVerifySignature(t *testing.T) {
	client, err := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "test_secret"})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		valid     bool
	}{
		{
			name:      "Valid signature",
			orderID:   "order_Nxy123",
			paymentID: "pay_Nxy456",
			signature: signPayload("test_secret", "order_Nxy123", "pay_Nxy456"),
			valid:     true,
		},
		{
			name:      "Signature from wrong secret",
			orderID:   "order_Nxy123",
			paymentID: "pay_Nxy456",
			signature: signPayload("other_secret", "order_Nxy123", "pay_Nxy456"),
			valid:     false,
		},
		{
			name:      "Signature over swapped IDs",
			orderID:   "order_Nxy123",
			paymentID: "pay_Nxy456",
			signature: signPayload("test_secret", "pay_Nxy456", "order_Nxy123"),
			valid:     false,
		},
		{
			name:      "Empty signature",
			orderID:   "order_Nxy123",
			paymentID: "pay_Nxy456",
			signature: "",
			valid:     false,
		},
		{
			name:      "Empty order ID",
			orderID:   "",
			paymentID: "pay_Nxy456",
			signature: signPayload("test_secret", "", "pay_Nxy456"),
			valid:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, client.VerifySignature(tc.orderID, tc.paymentID, tc.signature))
		})
	}
}
