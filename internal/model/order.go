package model

import "time"

// Payment statuses. Owned exclusively by the payment-reconciliation path
// (client verification and provider webhooks).
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Order statuses. Owned by admin and shipping actions; an independent axis
// from the payment status.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five allowed order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order. Items are snapshots captured at
// creation time and TotalAmount is computed once; neither is recalculated
// when the catalog changes.
type Order struct {
	ID                string            `json:"id" db:"id"`
	UserID            string            `json:"userId,omitempty" db:"user_id"`
	Guest             bool              `json:"guest" db:"guest"`
	CustomerName      string            `json:"customerName,omitempty" db:"customer_name"`
	CustomerEmail     string            `json:"customerEmail,omitempty" db:"customer_email"`
	CustomerPhone     string            `json:"customerPhone,omitempty" db:"customer_phone"`
	Items             []OrderItem       `json:"items" db:"-"`
	TotalAmount       float64           `json:"totalAmount" db:"total_amount"`
	ShippingAddress   map[string]string `json:"shippingAddress,omitempty" db:"shipping_address"`
	PaymentMethod     string            `json:"paymentMethod,omitempty" db:"payment_method"`
	PaymentStatus     string            `json:"paymentStatus" db:"payment_status"`
	OrderStatus       string            `json:"orderStatus" db:"order_status"`
	RazorpayOrderID   string            `json:"razorpayOrderId,omitempty" db:"razorpay_order_id"`
	RazorpayPaymentID string            `json:"razorpayPaymentId,omitempty" db:"razorpay_payment_id"`
	ShiprocketOrderID string            `json:"shiprocketOrderId,omitempty" db:"shiprocket_order_id"`
	TrackingNumber    string            `json:"trackingNumber,omitempty" db:"tracking_number"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line-item snapshot within an order. UnitPrice is the
// catalog price at the moment the order was created.
type OrderItem struct {
	OrderID   string  `json:"-" db:"order_id"`
	ProductID string  `json:"productId" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	UnitPrice float64 `json:"unitPrice" db:"unit_price"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Size      string  `json:"size,omitempty" db:"size"`
	Color     string  `json:"color,omitempty" db:"color"`
}

// OrderRequest represents the payload for creating an order from the
// caller's cart.
type OrderRequest struct {
	ShippingAddress map[string]string `json:"shippingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
}

// GuestOrderRequest represents the payload for a guest checkout. The caller
// supplies the item list directly instead of a stored cart.
type GuestOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	Items           []GuestOrderItem   `json:"items"`
	ShippingAddress map[string]string  `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// GuestOrderItem represents a single item in a guest order request.
type GuestOrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// OrderResponse represents the identifiers returned after order creation.
// RazorpayOrderID and ShiprocketOrderID are empty when the respective
// integration was unavailable or failed.
type OrderResponse struct {
	OrderID           string  `json:"orderId"`
	TotalAmount       float64 `json:"totalAmount"`
	RazorpayOrderID   string  `json:"razorpayOrderId,omitempty"`
	ShiprocketOrderID string  `json:"shiprocketOrderId,omitempty"`
}

// VerifyPaymentRequest represents the client-initiated payment verification
// payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// CreatePaymentOrderRequest represents the payload for creating a standalone
// payment order. Amount is in the smallest currency unit.
type CreatePaymentOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// TrackingView is a read-only projection of an order's fulfilment state.
// ShipmentStatus is filled from a live carrier lookup when a tracking number
// exists and the carrier responds.
type TrackingView struct {
	OrderID           string `json:"orderId"`
	OrderStatus       string `json:"orderStatus"`
	PaymentStatus     string `json:"paymentStatus"`
	ShiprocketOrderID string `json:"shiprocketOrderId,omitempty"`
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	ShipmentStatus    string `json:"shipmentStatus,omitempty"`
}

// UpdateStatusRequest represents the admin payload for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
