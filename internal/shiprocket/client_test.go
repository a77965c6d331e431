package shiprocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.ShiprocketConfig{
		Email:    "seller@example.com",
		Password: "carrier-pass",
		BaseURL:  baseURL,
	}, zerolog.Nop())
}

func TestClient_Available(t *testing.T) {
	assert.True(t, newTestClient("http://example.invalid").Available())
	assert.False(t, NewClient(config.ShiprocketConfig{}, zerolog.Nop()).Available())
	assert.False(t, NewClient(config.ShiprocketConfig{Email: "x@y.z"}, zerolog.Nop()).Available())
}

func TestClient_CreateOrder(t *testing.T) {
	var loginCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/external/auth/login":
			loginCalls.Add(1)
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "seller@example.com", creds["email"])
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})

		case "/v1/external/orders/create/adhoc":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "o1", payload["order_id"])
			assert.Equal(t, "Asha", payload["billing_customer_name"])
			assert.Equal(t, "Surat", payload["billing_city"])
			assert.Equal(t, "India", payload["billing_country"])
			assert.Equal(t, "Prepaid", payload["payment_method"])

			// The carrier returns numeric references.
			json.NewEncoder(w).Encode(map[string]any{"order_id": 4411, "shipment_id": 9922})

		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	req := ShipmentRequest{
		OrderID:       "o1",
		OrderDate:     time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9999999999",
		Address:       map[string]string{"line1": "12 MG Road", "city": "Surat", "state": "Gujarat", "pincode": "395003"},
		Items:         []ShipmentItem{{Name: "Saree", SKU: "p1", Units: 1, SellingPrice: 1500}},
		SubTotal:      1500,
		PaymentMethod: "razorpay",
	}

	result, err := client.CreateOrder(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "4411", result.OrderID)
	assert.Equal(t, "9922", result.ShipmentID)

	// A second call reuses the cached token.
	_, err = client.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(1), loginCalls.Load())
}

func TestClient_CreateOrder_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(context.Background(), ShipmentRequest{OrderID: "o1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to authenticate")
}

func TestClient_Track(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/external/auth/login":
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})

		case "/v1/external/courier/track/awb/awb-1":
			json.NewEncoder(w).Encode(map[string]any{
				"tracking_data": map[string]any{"shipment_status": "In Transit"},
			})

		case "/v1/external/courier/track/awb/awb-unknown":
			json.NewEncoder(w).Encode(map[string]any{"tracking_data": map[string]any{}})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	status, err := client.Track(context.Background(), "awb-1")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "In Transit", status.ShipmentStatus)

	// No tracking data yet is not an error.
	status, err = client.Track(context.Background(), "awb-unknown")
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestPaymentMethodTag(t *testing.T) {
	assert.Equal(t, "COD", paymentMethodTag("cod"))
	assert.Equal(t, "COD", paymentMethodTag("COD"))
	assert.Equal(t, "Prepaid", paymentMethodTag("razorpay"))
	assert.Equal(t, "Prepaid", paymentMethodTag(""))
}
