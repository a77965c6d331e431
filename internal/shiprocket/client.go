// Package shiprocket wraps the Shiprocket REST API behind the narrow
// capability set the order flow needs: creating shipment orders and tracking
// by AWB code. Missing credentials mean the integration is disabled, which is
// a valid state rather than an error.
package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/config"

	"github.com/rs/zerolog"
)

// Auth tokens are valid for 10 days; refresh well before expiry.
const tokenTTL = 9 * 24 * time.Hour

// Client is a Shiprocket API client. A single instance is constructed at
// process start and injected into the order service.
type Client struct {
	email      string
	password   string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// ShipmentRequest carries everything the carrier needs to create a shipment
// order: the local order reference, customer billing fields, item snapshots
// and the order subtotal.
type ShipmentRequest struct {
	OrderID       string
	OrderDate     time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       map[string]string
	Items         []ShipmentItem
	SubTotal      float64
	PaymentMethod string
}

// ShipmentItem is a single line item in a shipment order.
type ShipmentItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

// ShipmentResult holds the carrier's references for a created shipment.
type ShipmentResult struct {
	OrderID    string `json:"order_id"`
	ShipmentID string `json:"shipment_id"`
}

// TrackingStatus is the carrier's view of a shipment in transit.
type TrackingStatus struct {
	ShipmentStatus string `json:"shipment_status"`
}

// NewClient creates a new Shiprocket client.
func NewClient(cfg config.ShiprocketConfig, logger zerolog.Logger) *Client {
	return &Client{
		email:      cfg.Email,
		password:   cfg.Password,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("adapter", "shiprocket").Logger(),
	}
}

// Available reports whether carrier credentials are configured. Callers must
// check this before depending on shipment creation.
func (c *Client) Available() bool {
	return c.email != "" && c.password != ""
}

// CreateOrder creates a shipment order with the carrier.
func (c *Client) CreateOrder(ctx context.Context, req ShipmentRequest) (*ShipmentResult, error) {
	token, err := c.authToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"order_id":         req.OrderID,
		"order_date":       req.OrderDate.Format("2006-01-02 15:04"),
		"billing_customer_name": req.CustomerName,
		"billing_last_name":     "",
		"billing_email":         req.CustomerEmail,
		"billing_phone":         req.CustomerPhone,
		"billing_address":       req.Address["line1"],
		"billing_address_2":     req.Address["line2"],
		"billing_city":          req.Address["city"],
		"billing_state":         req.Address["state"],
		"billing_pincode":       req.Address["pincode"],
		"billing_country":       countryOrDefault(req.Address),
		"shipping_is_billing":   true,
		"order_items":           req.Items,
		"sub_total":             req.SubTotal,
		"payment_method":        paymentMethodTag(req.PaymentMethod),
		// Defaulted package dimensions (cm) and weight (kg).
		"length":  10,
		"breadth": 10,
		"height":  5,
		"weight":  0.5,
	}

	var result struct {
		OrderID    json.Number `json:"order_id"`
		ShipmentID json.Number `json:"shipment_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/external/orders/create/adhoc", token, payload, &result); err != nil {
		c.logger.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to create shipment order")
		return nil, fmt.Errorf("failed to create shipment order: %w", err)
	}

	c.logger.Info().
		Str("order_id", req.OrderID).
		Str("shiprocket_order_id", result.OrderID.String()).
		Msg("shipment order created")

	return &ShipmentResult{
		OrderID:    result.OrderID.String(),
		ShipmentID: result.ShipmentID.String(),
	}, nil
}

// Track fetches the live tracking status for an AWB code. Returns (nil, nil)
// when the carrier has no tracking data for the code.
func (c *Client) Track(ctx context.Context, awb string) (*TrackingStatus, error) {
	token, err := c.authToken(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		TrackingData struct {
			ShipmentStatus string `json:"shipment_status"`
		} `json:"tracking_data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/external/courier/track/awb/"+awb, token, nil, &result); err != nil {
		c.logger.Error().Err(err).Str("awb", awb).Msg("failed to track shipment")
		return nil, fmt.Errorf("failed to track shipment: %w", err)
	}

	if result.TrackingData.ShipmentStatus == "" {
		return nil, nil
	}

	return &TrackingStatus{ShipmentStatus: result.TrackingData.ShipmentStatus}, nil
}

// authToken returns a cached bearer token, authenticating when the cache is
// empty or expired.
func (c *Client) authToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	payload := map[string]string{"email": c.email, "password": c.password}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/external/auth/login", "", payload, &result); err != nil {
		c.logger.Error().Err(err).Msg("failed to authenticate with carrier")
		return "", fmt.Errorf("failed to authenticate with carrier: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("carrier returned empty auth token")
	}

	c.token = result.Token
	c.tokenExp = time.Now().Add(tokenTTL)
	c.logger.Debug().Msg("carrier auth token refreshed")

	return c.token, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func paymentMethodTag(method string) string {
	if method == "cod" || method == "COD" {
		return "COD"
	}
	return "Prepaid"
}

func countryOrDefault(address map[string]string) string {
	if country := address["country"]; country != "" {
		return country
	}
	return "India"
}
