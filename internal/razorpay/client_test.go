package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.RazorpayConfig{
		KeyID:         "rzp_test_key",
		KeySecret:     "key-secret",
		WebhookSecret: "webhook-secret",
		BaseURL:       baseURL,
	}, zerolog.Nop())
}

func signHex(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClient_Available(t *testing.T) {
	assert.True(t, newTestClient("http://example.invalid").Available())
	assert.False(t, NewClient(config.RazorpayConfig{}, zerolog.Nop()).Available())
}

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "key-secret", pass)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(150000), payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.Equal(t, float64(1), payload["payment_capture"])

		json.NewEncoder(w).Encode(map[string]any{
			"id": "order_abc123", "amount": 150000, "currency": "INR", "status": "created",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.CreateOrder(context.Background(), 150000, "INR", "order_local-1")

	require.NoError(t, err)
	assert.Equal(t, "order_abc123", result.ID)
	assert.Equal(t, int64(150000), result.Amount)
	assert.Equal(t, "created", result.Status)
}

func TestClient_CreateOrder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.CreateOrder(context.Background(), 100, "INR", "r1")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestClient_FetchPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/pay_1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "pay_1", "order_id": "order_abc123", "amount": 150000, "status": "captured",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	payment, err := client.FetchPayment(context.Background(), "pay_1")

	require.NoError(t, err)
	assert.Equal(t, "captured", payment.Status)
	assert.Equal(t, "order_abc123", payment.OrderID)
}

func TestClient_VerifySignature(t *testing.T) {
	client := newTestClient("http://example.invalid")

	valid := signHex("key-secret", "order_abc123|pay_1")

	assert.True(t, client.VerifySignature("order_abc123", "pay_1", valid))
	assert.False(t, client.VerifySignature("order_abc123", "pay_1", "deadbeef"))
	assert.False(t, client.VerifySignature("order_abc123", "pay_2", valid))
	assert.False(t, client.VerifySignature("order_abc123", "pay_1", ""))
}

func TestClient_VerifyWebhookSignature(t *testing.T) {
	client := newTestClient("http://example.invalid")

	body := []byte(`{"event":"payment.captured"}`)
	valid := signHex("webhook-secret", string(body))

	assert.True(t, client.VerifyWebhookSignature(body, valid))
	assert.False(t, client.VerifyWebhookSignature(body, "deadbeef"))
	// The signature covers the exact bytes; any mutation invalidates it.
	assert.False(t, client.VerifyWebhookSignature([]byte(`{"event":"payment.captured" }`), valid))
}

func TestClient_WebhookSecretConfigured(t *testing.T) {
	assert.True(t, newTestClient("").WebhookSecretConfigured())
	assert.False(t, NewClient(config.RazorpayConfig{KeyID: "k", KeySecret: "s"}, zerolog.Nop()).WebhookSecretConfigured())
}
