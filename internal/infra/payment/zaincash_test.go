//go:build unit

package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aquaflow/internal/pkg/config"
	"aquaflow/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signWith(secret, data string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestZainCashInitiatePayment(t *testing.T) {
	const secret = "zc-secret"

	var captured zainCashInitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/init", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(zainCashInitResponse{
			Success:       true,
			TransactionID: "zc_123",
			PaymentURL:    "https://pay.example/zc_123",
		})
	}))
	defer srv.Close()

	gw := NewZainCashClient(config.ZainCashConfig{
		MerchantID: "m-1",
		SecretKey:  secret,
		MSISDN:     "9647700000000",
		APIBaseURL: srv.URL,
	})

	result, err := gw.InitiatePayment(context.Background(), shared.ZainCashPaymentRequest{
		Amount:       decimal.RequireFromString("25"),
		OrderID:      "order_42",
		ServiceType:  "subscription",
		RedirectURL:  "http://localhost:8080/payment-result",
		CustomerName: "jane",
	})
	require.NoError(t, err)

	assert.Equal(t, "zc_123", result.TransactionID)
	assert.Equal(t, "https://pay.example/zc_123", result.PaymentURL)
	assert.Equal(t, "en", captured.Language)
	assert.Equal(t, signWith(secret, "m-1|25|order_42|"+secret), captured.Signature)
}

func TestZainCashVerifyPayment(t *testing.T) {
	const secret = "zc-secret"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/verify", r.URL.Path)

		var req zainCashVerifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, signWith(secret, "m-1|zc_123|"+secret), req.Signature)

		json.NewEncoder(w).Encode(zainCashVerifyResponse{
			Success:       true,
			Status:        "completed",
			TransactionID: "zc_123",
			Amount:        "25",
		})
	}))
	defer srv.Close()

	gw := NewZainCashClient(config.ZainCashConfig{
		MerchantID: "m-1",
		SecretKey:  secret,
		APIBaseURL: srv.URL,
	})

	v, err := gw.VerifyPayment(context.Background(), "zc_123")
	require.NoError(t, err)

	assert.Equal(t, "completed", v.Status)
	assert.True(t, v.Amount.Equal(decimal.RequireFromString("25")))
}

func TestZainCashGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewZainCashClient(config.ZainCashConfig{APIBaseURL: srv.URL})

	_, err := gw.VerifyPayment(context.Background(), "zc_123")
	assert.Error(t, err)
}
