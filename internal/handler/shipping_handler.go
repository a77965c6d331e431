package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/middleware"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ShippingHandler handles shipment-related HTTP requests.
type ShippingHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewShippingHandler creates a new shipping handler.
func NewShippingHandler(service service.OrderService, logger zerolog.Logger) *ShippingHandler {
	return &ShippingHandler{
		service: service,
		logger:  logger.With().Str("handler", "shipping").Logger(),
	}
}

// CreateOrder handles POST /api/shipping/create-order requests. The caller
// must own the order; the shipment is created with the carrier and the order
// moves to confirmed.
func (h *ShippingHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.OrderID == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	order, err := h.service.CreateShipment(r.Context(), req.OrderID, userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Track handles GET /api/shipping/track/{awb} requests.
func (h *ShippingHandler) Track(w http.ResponseWriter, r *http.Request) {
	awb := chi.URLParam(r, "awb")

	status, err := h.service.TrackShipment(r.Context(), awb)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Ship handles PUT /api/admin/shipping/orders/{id}/ship requests. Admin
// variant of shipment creation: no ownership check is applied.
func (h *ShippingHandler) Ship(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := h.service.CreateShipment(r.Context(), orderID, "")
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
