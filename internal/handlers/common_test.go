package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"atlantic-api/internal/client/razorpay"
	"atlantic-api/internal/logger"
	"atlantic-api/internal/mocks"
	"atlantic-api/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
}

// fakeGateway stands in for the Razorpay client in handler tests. Orders get
// deterministic IDs and signatures are real HMACs over a fixed secret.
type fakeGateway struct {
	secret   string
	orderSeq int
	orderErr error
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*razorpay.Order, error) {
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	g.orderSeq++
	return &razorpay.Order{
		ID:       fmt.Sprintf("order_test%d", g.orderSeq),
		Entity:   "order",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
		Notes:    notes,
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

func (g *fakeGateway) sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// newTestCommon wires the full service stack over a mock query layer, with no
// legacy backend, resume storage or email configured.
func newTestCommon(t *testing.T) (*CommonServices, *mocks.MockQuerier, *fakeGateway) {
	queries := mocks.NewMockQuerierForTest(t)
	gateway := &fakeGateway{secret: "test-secret"}

	coupons := services.NewCouponService(queries, nil)
	payments := services.NewPaymentService(gateway)
	applications := services.NewApplicationService(queries, nil, nil, nil, coupons, nil)
	flow := services.NewFlowService(queries, payments, applications, coupons)
	drafts := services.NewDraftService(queries)
	reconciler := services.NewReconciliationProcessor(queries, applications, 1, 1)

	common := NewCommonServices(queries, coupons, payments, applications, flow, drafts, reconciler)
	return common, queries, gateway
}

// performJSON runs one request through a throwaway router
func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
}
