package repository

import (
	"context"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products with pagination, optionally filtered by category.
	GetAll(ctx context.Context, limit, offset int, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces the mutable fields of an existing product.
	// Returns false when the product does not exist.
	Update(ctx context.Context, product *model.Product) (bool, error)

	// Delete removes a product. Returns false when the product does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]model.Category, error)

	// Create inserts a new category.
	Create(ctx context.Context, category *model.Category) error

	// Delete removes a category. Returns false when the category does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}

// CartRepository defines the interface for cart data access operations.
// All operations are scoped to a single user.
type CartRepository interface {
	// GetByUser retrieves all cart entries for a user.
	GetByUser(ctx context.Context, userID string) ([]model.CartEntry, error)

	// Upsert inserts a cart entry or, when an entry with the same
	// (user_id, product_id, size, color) key exists, increments its quantity.
	Upsert(ctx context.Context, entry *model.CartEntry) error

	// UpdateQuantity sets the quantity of a user's cart entry.
	// Returns false when the entry does not exist.
	UpdateQuantity(ctx context.Context, userID, entryID string, quantity int) (bool, error)

	// Remove deletes a single cart entry. Returns false when the entry does
	// not exist.
	Remove(ctx context.Context, userID, entryID string) (bool, error)

	// ClearUser deletes all cart entries for a user.
	ClearUser(ctx context.Context, userID string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's item snapshots within the provided
	// transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	// Returns (nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// GetByUser retrieves all orders for a user, newest first.
	GetByUser(ctx context.Context, userID string) ([]model.Order, error)

	// GetAll retrieves orders across all users, newest first.
	GetAll(ctx context.Context, limit int) ([]model.Order, error)

	// SetPaymentStatus updates the payment status of the order matching the
	// given external payment-order reference. Returns false when no order
	// carries that reference.
	SetPaymentStatus(ctx context.Context, razorpayOrderID, status, paymentID string) (bool, error)

	// SetShipment records the external shipment references and order status
	// for an order.
	SetShipment(ctx context.Context, orderID, shiprocketOrderID, trackingNumber, orderStatus string) error

	// UpdateStatus sets the order status. Returns false when the order does
	// not exist.
	UpdateStatus(ctx context.Context, orderID, status string) (bool, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.User, error)
}
