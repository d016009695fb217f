package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	httpclient "atlantic-api/internal/client/http"
	"atlantic-api/internal/logger"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Client talks to the Razorpay Orders API. All amounts are in the smallest
// currency unit (paise for INR).
type Client struct {
	http      *httpclient.Client
	keyID     string
	keySecret string
}

// Config holds the credentials and optional overrides for the client.
type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// Order represents an order created with Razorpay.
type Order struct {
	ID        string            `json:"id"`
	Entity    string            `json:"entity"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Receipt   string            `json:"receipt"`
	Status    string            `json:"status"`
	Notes     map[string]string `json:"notes,omitempty"`
	CreatedAt int64             `json:"created_at"`
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// NewClient creates a Razorpay client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, fmt.Errorf("razorpay key ID and key secret are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		http: httpclient.NewClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(timeout),
		),
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}, nil
}

// KeyID returns the public key identifier handed to checkout callers.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder creates an order for the given amount in minor units.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*Order, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be positive, got %d", amount)
	}
	if currency == "" {
		currency = "INR"
	}

	resp, err := c.http.Post(ctx, "/orders", createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	}, httpclient.WithBasicAuth(c.keyID, c.keySecret))
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	var order Order
	if err := c.http.ProcessJSONResponse(resp, &order); err != nil {
		return nil, fmt.Errorf("failed to decode razorpay order response: %w", err)
	}

	logger.Info("Created Razorpay order",
		zap.String("order_id", order.ID),
		zap.Int64("amount", order.Amount),
		zap.String("currency", order.Currency))

	return &order, nil
}

// GetOrder fetches an existing order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}

	resp, err := c.http.Get(ctx, "/orders/"+orderID, httpclient.WithBasicAuth(c.keyID, c.keySecret))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch razorpay order %s: %w", orderID, err)
	}

	var order Order
	if err := c.http.ProcessJSONResponse(resp, &order); err != nil {
		return nil, fmt.Errorf("failed to decode razorpay order response: %w", err)
	}

	return &order, nil
}

// VerifySignature checks the checkout callback signature. The signature is
// HMAC-SHA256 over "orderID|paymentID" keyed with the key secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
