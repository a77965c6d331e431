package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/razorpay"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/repository"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/shiprocket"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// webhookEnvelope is the provider's webhook payload shape.
type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	payments    PaymentGateway
	shipping    ShippingCarrier
	logger      zerolog.Logger
}

// NewOrderService creates a new order service. The payment and shipping
// adapters are injected once at process start; there is no package-level
// client state.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	payments PaymentGateway,
	shipping ShippingCarrier,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		payments:    payments,
		shipping:    shipping,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder snapshots the user's cart into a new order. External adapter
// failures are logged and leave the respective reference empty; only a
// catalog or database failure aborts the operation. The cart is cleared after
// the order persists, regardless of adapter outcomes.
func (s *orderService) CreateOrder(ctx context.Context, userID string, req *model.OrderRequest) (*model.OrderResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	entries, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(entries) == 0 {
		return nil, model.ErrEmptyCart
	}

	// Snapshot cart entries against the live catalog. Entries whose product
	// has disappeared are skipped silently.
	var items []model.OrderItem
	var total float64
	for _, entry := range entries {
		product, err := s.productRepo.GetByID(ctx, entry.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		if product == nil {
			s.logger.Debug().
				Str("user_id", userID).
				Str("product_id", entry.ProductID).
				Msg("cart entry references missing product, skipping")
			continue
		}

		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  entry.Quantity,
			Size:      entry.Size,
			Color:     entry.Color,
		})
		total += product.Price * float64(entry.Quantity)
	}

	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
		OrderStatus:     model.OrderStatusPlaced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.attachPaymentOrder(ctx, order)
	s.attachShipmentOrder(ctx, order)

	if err := s.persistOrder(ctx, order); err != nil {
		return nil, err
	}

	// The cart is consumed by the order attempt; clearing is not rolled back
	// on adapter failure, and a failed clear does not undo the order.
	if err := s.cartRepo.ClearUser(ctx, userID); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("order_id", order.ID).
			Msg("order persisted but cart clear failed")
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Float64("total_amount", total).
		Int("item_count", len(items)).
		Msg("order created")

	return &model.OrderResponse{
		OrderID:           order.ID,
		TotalAmount:       order.TotalAmount,
		RazorpayOrderID:   order.RazorpayOrderID,
		ShiprocketOrderID: order.ShiprocketOrderID,
	}, nil
}

// CreateGuestOrder creates an order from a caller-supplied item list. The
// total is recomputed from the supplied unit prices so the amount invariant
// holds regardless of what the caller claims.
func (s *orderService) CreateGuestOrder(ctx context.Context, req *model.GuestOrderRequest) (*model.OrderResponse, error) {
	if err := validateGuestOrderRequest(req); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, len(req.Items))
	var total float64
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New().String(),
		Guest:           true,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
		OrderStatus:     model.OrderStatusPlaced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.attachPaymentOrder(ctx, order)
	s.attachShipmentOrder(ctx, order)

	if err := s.persistOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Float64("total_amount", total).
		Msg("guest order created")

	return &model.OrderResponse{
		OrderID:           order.ID,
		TotalAmount:       order.TotalAmount,
		RazorpayOrderID:   order.RazorpayOrderID,
		ShiprocketOrderID: order.ShiprocketOrderID,
	}, nil
}

// attachPaymentOrder creates a payment order with the gateway and records the
// reference. Gateway failure is non-fatal: the order proceeds without a
// payment reference.
func (s *orderService) attachPaymentOrder(ctx context.Context, order *model.Order) {
	if !s.payments.Available() {
		return
	}

	amountMinor := int64(order.TotalAmount * 100)
	result, err := s.payments.CreateOrder(ctx, amountMinor, "INR", "order_"+order.ID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("order_id", order.ID).
			Msg("payment order creation failed, continuing without payment reference")
		return
	}

	order.RazorpayOrderID = result.ID
}

// attachShipmentOrder creates a shipment order with the carrier and records
// the references. Skipped when no shipping address is present or the carrier
// is not configured; carrier failure is non-fatal.
func (s *orderService) attachShipmentOrder(ctx context.Context, order *model.Order) {
	if len(order.ShippingAddress) == 0 || !s.shipping.Available() {
		return
	}

	result, err := s.shipping.CreateOrder(ctx, shipmentRequestFor(order))
	if err != nil {
		s.logger.Warn().Err(err).
			Str("order_id", order.ID).
			Msg("shipment order creation failed, continuing without shipment reference")
		return
	}

	order.ShiprocketOrderID = result.OrderID
	order.TrackingNumber = result.ShipmentID
	order.OrderStatus = model.OrderStatusConfirmed
}

func (s *orderService) persistOrder(ctx context.Context, order *model.Order) (err error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]model.OrderItem, len(order.Items))
	for i, item := range order.Items {
		item.OrderID = order.ID
		items[i] = item
	}
	order.Items = items

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// ListOrders retrieves a user's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAllOrders retrieves orders across all users, newest first.
func (s *orderService) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// CreatePaymentOrder creates a standalone payment order with the gateway.
// Unlike order creation, gateway failure here is fatal.
func (s *orderService) CreatePaymentOrder(ctx context.Context, amountMinor int64, currency string) (*razorpay.OrderResult, error) {
	if amountMinor <= 0 {
		return nil, model.ErrInvalidAmount
	}
	if !s.payments.Available() {
		return nil, model.ErrPaymentUnavailable
	}
	if currency == "" {
		currency = "INR"
	}

	result, err := s.payments.CreateOrder(ctx, amountMinor, currency, "order_"+uuid.New().String())
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amountMinor).Msg("standalone payment order creation failed")
		return nil, model.ErrPaymentAdapter
	}

	return result, nil
}

// VerifyPayment verifies a client-supplied checkout signature and marks the
// matching order paid. Repeated verification with the same valid signature
// re-applies the same terminal state without error.
func (s *orderService) VerifyPayment(ctx context.Context, razorpayOrderID, paymentID, signature string) error {
	if !s.payments.VerifySignature(razorpayOrderID, paymentID, signature) {
		s.logger.Warn().
			Str("razorpay_order_id", razorpayOrderID).
			Str("payment_id", paymentID).
			Msg("payment signature mismatch")
		return model.ErrInvalidSignature
	}

	found, err := s.orderRepo.SetPaymentStatus(ctx, razorpayOrderID, model.PaymentStatusPaid, paymentID)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	if !found {
		return model.ErrOrderNotFound
	}

	// Best-effort cross-check against the provider; the signature already
	// proves the payment, so a fetch failure does not fail verification.
	providerStatus := ""
	if payment, err := s.payments.FetchPayment(ctx, paymentID); err != nil {
		s.logger.Warn().Err(err).Str("payment_id", paymentID).Msg("payment status fetch failed")
	} else {
		providerStatus = payment.Status
	}

	s.logger.Info().
		Str("razorpay_order_id", razorpayOrderID).
		Str("payment_id", paymentID).
		Str("provider_status", providerStatus).
		Msg("payment verified")

	return nil
}

// HandleWebhook processes a provider webhook delivery. When a webhook secret
// is configured the raw body is verified against the signature header; the
// delivery is rejected on mismatch. Unknown event types are accepted and
// ignored so the provider can add events without breaking this endpoint.
func (s *orderService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if s.payments.WebhookSecretConfigured() && !s.payments.VerifyWebhookSignature(body, signature) {
		s.logger.Warn().Msg("webhook signature mismatch")
		return model.ErrInvalidSignature
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "malformed webhook payload")
	}

	entity := envelope.Payload.Payment.Entity

	var status string
	switch envelope.Event {
	case "payment.captured":
		status = model.PaymentStatusPaid
	case "payment.failed":
		status = model.PaymentStatusFailed
	default:
		s.logger.Debug().Str("event", envelope.Event).Msg("ignoring webhook event")
		return nil
	}

	// Orders created before a gateway order exists carry an empty reference,
	// so an empty order_id in the event must never be used as a match key.
	if entity.OrderID == "" {
		s.logger.Warn().Str("event", envelope.Event).Msg("webhook event has no order reference")
		return model.ErrOrderNotFound
	}

	found, err := s.orderRepo.SetPaymentStatus(ctx, entity.OrderID, status, entity.ID)
	if err != nil {
		return fmt.Errorf("failed to apply webhook: %w", err)
	}
	if !found {
		return model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("event", envelope.Event).
		Str("razorpay_order_id", entity.OrderID).
		Str("payment_status", status).
		Msg("webhook applied")

	return nil
}

// CreateShipment creates a shipment order with the carrier for an existing
// order. Carrier failure leaves the order unchanged. When userID is empty the
// caller is an admin and ownership is not checked.
func (s *orderService) CreateShipment(ctx context.Context, orderID, userID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil || (userID != "" && order.UserID != userID) {
		return nil, model.ErrOrderNotFound
	}

	if !s.shipping.Available() {
		return nil, model.ErrShippingUnavailable
	}

	result, err := s.shipping.CreateOrder(ctx, shipmentRequestFor(order))
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("shipment creation failed")
		return nil, model.ErrShippingAdapter
	}

	if err := s.orderRepo.SetShipment(ctx, orderID, result.OrderID, result.ShipmentID, model.OrderStatusConfirmed); err != nil {
		return nil, fmt.Errorf("failed to record shipment: %w", err)
	}

	order.ShiprocketOrderID = result.OrderID
	order.TrackingNumber = result.ShipmentID
	order.OrderStatus = model.OrderStatusConfirmed

	s.logger.Info().
		Str("order_id", orderID).
		Str("shiprocket_order_id", result.OrderID).
		Msg("shipment created")

	return order, nil
}

// TrackOrder returns the fulfilment projection for an order. Carrier failure
// degrades gracefully: base fields are returned and the live status omitted.
func (s *orderService) TrackOrder(ctx context.Context, orderID, userID string) (*model.TrackingView, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil || (userID != "" && order.UserID != userID) {
		return nil, model.ErrOrderNotFound
	}

	return s.trackingView(ctx, order), nil
}

// TrackGuestOrder returns the fulfilment projection for a guest order.
func (s *orderService) TrackGuestOrder(ctx context.Context, orderID string) (*model.TrackingView, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil || !order.Guest {
		return nil, model.ErrOrderNotFound
	}

	return s.trackingView(ctx, order), nil
}

// TrackShipment looks up a shipment directly with the carrier by AWB code.
func (s *orderService) TrackShipment(ctx context.Context, awb string) (*shiprocket.TrackingStatus, error) {
	if awb == "" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "AWB code is required")
	}
	if !s.shipping.Available() {
		return nil, model.ErrShippingUnavailable
	}

	status, err := s.shipping.Track(ctx, awb)
	if err != nil {
		s.logger.Error().Err(err).Str("awb", awb).Msg("carrier tracking lookup failed")
		return nil, model.ErrShippingAdapter
	}
	if status == nil {
		return nil, model.NewDomainError(model.ErrCodeNotFound, "no tracking data for AWB")
	}

	return status, nil
}

func (s *orderService) trackingView(ctx context.Context, order *model.Order) *model.TrackingView {
	view := &model.TrackingView{
		OrderID:           order.ID,
		OrderStatus:       order.OrderStatus,
		PaymentStatus:     order.PaymentStatus,
		ShiprocketOrderID: order.ShiprocketOrderID,
		TrackingNumber:    order.TrackingNumber,
	}

	if order.TrackingNumber == "" || !s.shipping.Available() {
		return view
	}

	status, err := s.shipping.Track(ctx, order.TrackingNumber)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("order_id", order.ID).
			Str("tracking_number", order.TrackingNumber).
			Msg("live tracking lookup failed, returning base fields")
		return view
	}
	if status != nil {
		view.ShipmentStatus = status.ShipmentStatus
	}

	return view
}

// AdminUpdateStatus sets an order's status to one of the five allowed values.
// Any status may follow any other.
func (s *orderService) AdminUpdateStatus(ctx context.Context, orderID, status string) error {
	if !model.ValidOrderStatus(status) {
		return model.ErrInvalidStatus
	}

	found, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if !found {
		return model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", orderID).
		Str("order_status", status).
		Msg("order status updated")

	return nil
}

func shipmentRequestFor(order *model.Order) shiprocket.ShipmentRequest {
	items := make([]shiprocket.ShipmentItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = shiprocket.ShipmentItem{
			Name:         item.Name,
			SKU:          item.ProductID,
			Units:        item.Quantity,
			SellingPrice: item.UnitPrice,
		}
	}

	name := order.CustomerName
	if name == "" {
		name = order.ShippingAddress["name"]
	}
	phone := order.CustomerPhone
	if phone == "" {
		phone = order.ShippingAddress["phone"]
	}
	email := order.CustomerEmail
	if email == "" {
		email = order.ShippingAddress["email"]
	}

	return shiprocket.ShipmentRequest{
		OrderID:       order.ID,
		OrderDate:     order.CreatedAt,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Address:       order.ShippingAddress,
		Items:         items,
		SubTotal:      order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
	}
}

func validateGuestOrderRequest(req *model.GuestOrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "order request is nil")
	}
	if len(req.Items) == 0 {
		return model.NewDomainError(model.ErrCodeValidation, "order must contain at least one item")
	}
	if req.CustomerName == "" || req.CustomerEmail == "" {
		return model.NewDomainError(model.ErrCodeValidation, "customer name and email are required")
	}
	for i, item := range req.Items {
		if item.ProductID == "" {
			return model.NewDomainError(model.ErrCodeValidation, fmt.Sprintf("item %d: product ID is required", i))
		}
		if item.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return model.NewDomainError(model.ErrCodeValidation, fmt.Sprintf("item %d: unit price cannot be negative", i))
		}
	}
	return nil
}
