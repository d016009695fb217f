package legacy

import (
	"context"
	"fmt"
	"time"

	httpclient "atlantic-api/internal/client/http"
	"atlantic-api/internal/logger"
	"atlantic-api/internal/pkg/naming"

	"go.uber.org/zap"
)

// Client talks to the previous-generation application backend. It survives
// only as a fallback: submissions go through it when the direct database
// writes fail, and coupon usage counting falls back to its read-modify-write
// endpoints when the atomic update cannot run.
//
// The legacy API is loose about field naming, so every record sent to it is
// expanded to carry both snake_case and camelCase spellings.
type Client struct {
	http *httpclient.Client
}

// SubmitResponse is the body returned by POST /api/submit-application.
type SubmitResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId"`
	Message       string `json:"message"`
}

// CouponRecord is the legacy shape of a coupon row.
type CouponRecord struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	CurrentUses int32  `json:"current_uses"`
	MaxUses     int32  `json:"max_uses"`
}

// New creates a legacy client against the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		http: httpclient.NewClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(timeout),
			// Legacy submissions must not be replayed: a retry after a
			// slow 500 can record the same applicant twice.
			httpclient.WithRetryConfig(&httpclient.RetryConfig{MaxRetries: 0}),
		),
	}
}

// SubmitApplication posts an application record to the legacy backend. The
// record is sent with both naming conventions so the legacy validators accept
// it regardless of which spelling they check.
func (c *Client) SubmitApplication(ctx context.Context, record map[string]interface{}) (*SubmitResponse, error) {
	resp, err := c.http.Post(ctx, "/api/submit-application", naming.Dual(record))
	if err != nil {
		return nil, fmt.Errorf("legacy submission failed: %w", err)
	}

	var result SubmitResponse
	if err := c.http.ProcessJSONResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to decode legacy submission response: %w", err)
	}

	if !result.Success {
		return &result, fmt.Errorf("legacy backend rejected submission: %s", result.Message)
	}

	logger.Info("Application recorded via legacy backend",
		zap.String("application_id", result.ApplicationID))

	return &result, nil
}

// GetCoupon fetches a coupon row by code.
func (c *Client) GetCoupon(ctx context.Context, code string) (*CouponRecord, error) {
	resp, err := c.http.Get(ctx, "/api/coupons/"+code)
	if err != nil {
		return nil, fmt.Errorf("legacy coupon lookup failed: %w", err)
	}

	var record CouponRecord
	if err := c.http.ProcessJSONResponse(resp, &record); err != nil {
		return nil, fmt.Errorf("failed to decode legacy coupon response: %w", err)
	}

	return &record, nil
}

// UpdateCouponUses overwrites a coupon's usage counter. Both spellings of the
// counter field are written because older deployments read currentUses while
// newer ones read current_uses.
func (c *Client) UpdateCouponUses(ctx context.Context, id string, uses int32) error {
	body := naming.Dual(map[string]interface{}{
		"current_uses": uses,
	})

	resp, err := c.http.Patch(ctx, "/api/coupons/"+id, body)
	if err != nil {
		return fmt.Errorf("legacy coupon update failed: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

// IncrementCouponUsage performs the legacy read-modify-write increment. This
// is inherently racy under concurrent redemptions, which is why it is only
// used when the atomic database update is unavailable.
func (c *Client) IncrementCouponUsage(ctx context.Context, code string) error {
	record, err := c.GetCoupon(ctx, code)
	if err != nil {
		return err
	}

	if record.CurrentUses >= record.MaxUses {
		return fmt.Errorf("coupon %s has reached maximum uses", code)
	}

	return c.UpdateCouponUses(ctx, record.ID, record.CurrentUses+1)
}
