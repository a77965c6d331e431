// Package razorpay wraps the Razorpay REST API behind the narrow capability
// set the order flow needs: creating payment orders, verifying signatures and
// fetching payment status.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/config"

	"github.com/rs/zerolog"
)

// Client is a Razorpay API client. A single instance is constructed at
// process start and injected into the order service.
type Client struct {
	keyID         string
	keySecret     string
	webhookSecret string
	baseURL       string
	httpClient    *http.Client
	logger        zerolog.Logger
}

// OrderResult is the provider's view of a created payment order.
type OrderResult struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// Payment is the provider's view of a payment.
type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

// NewClient creates a new Razorpay client.
func NewClient(cfg config.RazorpayConfig, logger zerolog.Logger) *Client {
	return &Client{
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
		baseURL:       cfg.BaseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        logger.With().Str("adapter", "razorpay").Logger(),
	}
}

// Available reports whether gateway credentials are configured.
func (c *Client) Available() bool {
	return c.keyID != "" && c.keySecret != ""
}

// CreateOrder creates a payment order with the provider. Amount is in the
// smallest currency unit.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*OrderResult, error) {
	payload := map[string]any{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	var result OrderResult
	if err := c.do(ctx, http.MethodPost, "/v1/orders", payload, &result); err != nil {
		c.logger.Error().Err(err).
			Int64("amount", amountMinor).
			Str("currency", currency).
			Msg("failed to create payment order")
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	c.logger.Info().
		Str("razorpay_order_id", result.ID).
		Int64("amount", result.Amount).
		Msg("payment order created")

	return &result, nil
}

// FetchPayment retrieves a payment's current status from the provider.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var payment Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &payment); err != nil {
		c.logger.Error().Err(err).Str("payment_id", paymentID).Msg("failed to fetch payment")
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &payment, nil
}

// VerifySignature checks the checkout signature over "{orderID}|{paymentID}"
// using the key secret. The comparison is constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	expected := hmacHex(c.keySecret, []byte(orderID+"|"+paymentID))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the webhook signature over the raw request
// body using the webhook secret.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) bool {
	expected := hmacHex(c.webhookSecret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// WebhookSecretConfigured reports whether a webhook secret is set. When it is
// not, webhook signature verification is skipped by the caller.
func (c *Client) WebhookSecretConfigured() bool {
	return c.webhookSecret != ""
}

func hmacHex(secret string, message []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) do(ctx context.Context, method, path string, payload, result any) error {
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
	req.SetBasicAuth(c.keyID, c.keySecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
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
