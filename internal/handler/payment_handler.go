package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/service"

	"github.com/rs/zerolog"
)

// Razorpay signs webhook deliveries with this header.
const webhookSignatureHeader = "X-Razorpay-Signature"

const maxWebhookBody = 1 << 20

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(service service.OrderService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// CreateOrder handles POST /api/payment/create-order requests. Amount is in
// the smallest currency unit.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaymentOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	result, err := h.service.CreatePaymentOrder(r.Context(), req.Amount, req.Currency)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Verify handles POST /api/payment/verify requests.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		writeError(w, http.StatusBadRequest, "order ID, payment ID and signature are required", h.logger)
		return
	}

	err := h.service.VerifyPayment(r.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"orderId":   req.RazorpayOrderID,
		"paymentId": req.RazorpayPaymentID,
	})
}

// Webhook handles POST /api/payment/webhook requests. The raw body is read
// before parsing because the signature covers the exact bytes delivered.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body", h.logger)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), body, r.Header.Get(webhookSignatureHeader)); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
