package service

import (
	"context"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/razorpay"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/shiprocket"
)

// PaymentGateway is the capability set the order service needs from the
// payment provider. Satisfied by *razorpay.Client; substituted with fakes in
// tests.
type PaymentGateway interface {
	Available() bool
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*razorpay.OrderResult, error)
	VerifySignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
	WebhookSecretConfigured() bool
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
}

// ShippingCarrier is the capability set the order service needs from the
// shipping provider. Satisfied by *shiprocket.Client.
type ShippingCarrier interface {
	Available() bool
	CreateOrder(ctx context.Context, req shiprocket.ShipmentRequest) (*shiprocket.ShipmentResult, error)
	Track(ctx context.Context, awb string) (*shiprocket.TrackingStatus, error)
}

// OrderService defines the order lifecycle operations: cart snapshotting,
// payment reconciliation, shipment creation and tracking.
type OrderService interface {
	// CreateOrder snapshots the user's cart into a new order, attempts the
	// payment and shipping integrations best-effort, persists the order and
	// clears the cart.
	CreateOrder(ctx context.Context, userID string, req *model.OrderRequest) (*model.OrderResponse, error)

	// CreateGuestOrder creates an order from a caller-supplied item list
	// without authentication or cart interaction.
	CreateGuestOrder(ctx context.Context, req *model.GuestOrderRequest) (*model.OrderResponse, error)

	// ListOrders retrieves a user's orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]model.Order, error)

	// ListAllOrders retrieves orders across all users, newest first.
	ListAllOrders(ctx context.Context) ([]model.Order, error)

	// CreatePaymentOrder creates a standalone payment order with the gateway.
	CreatePaymentOrder(ctx context.Context, amountMinor int64, currency string) (*razorpay.OrderResult, error)

	// VerifyPayment verifies a client-supplied payment signature and marks
	// the matching order paid. Idempotent.
	VerifyPayment(ctx context.Context, razorpayOrderID, paymentID, signature string) error

	// HandleWebhook processes a provider webhook delivery. Unknown event
	// types are accepted and ignored.
	HandleWebhook(ctx context.Context, body []byte, signature string) error

	// CreateShipment creates a shipment order with the carrier for an
	// existing order and transitions it to confirmed.
	CreateShipment(ctx context.Context, orderID, userID string) (*model.Order, error)

	// TrackOrder returns the fulfilment projection for a user's order,
	// merging a live carrier lookup when a tracking number exists.
	TrackOrder(ctx context.Context, orderID, userID string) (*model.TrackingView, error)

	// TrackGuestOrder returns the fulfilment projection for a guest order.
	TrackGuestOrder(ctx context.Context, orderID string) (*model.TrackingView, error)

	// TrackShipment looks up a shipment directly with the carrier by AWB code.
	TrackShipment(ctx context.Context, awb string) (*shiprocket.TrackingStatus, error)

	// AdminUpdateStatus sets an order's status to one of the five allowed
	// values. No transition graph is enforced.
	AdminUpdateStatus(ctx context.Context, orderID, status string) error
}

// CartService defines operations on a user's pending selections.
type CartService interface {
	// Add merges an item into the user's cart.
	Add(ctx context.Context, userID string, req *model.CartAddRequest) error

	// Get retrieves the user's cart with a running total.
	Get(ctx context.Context, userID string) (*model.CartResponse, error)

	// UpdateQuantity sets the quantity of a cart entry.
	UpdateQuantity(ctx context.Context, userID, entryID string, quantity int) error

	// Remove deletes a cart entry.
	Remove(ctx context.Context, userID, entryID string) error

	// Clear deletes all of the user's cart entries.
	Clear(ctx context.Context, userID string) error
}

// ProductService defines operations for product and category management.
type ProductService interface {
	// GetAll retrieves products with pagination, optionally filtered by category.
	GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update replaces the mutable fields of a product.
	Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error

	// GetCategories retrieves all categories.
	GetCategories(ctx context.Context) ([]model.Category, error)

	// CreateCategory inserts a new category.
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id string) error
}

// AuthService defines user registration and login.
type AuthService interface {
	// Register creates a user and issues a token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login authenticates a user and issues a token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}
