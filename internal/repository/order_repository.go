package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, user_id, guest, customer_name, customer_email, customer_phone,
	total_amount, shipping_address, payment_method, payment_status, order_status,
	razorpay_order_id, razorpay_payment_id, shiprocket_order_id, tracking_number,
	created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Guest, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.TotalAmount, &o.ShippingAddress, &o.PaymentMethod, &o.PaymentStatus, &o.OrderStatus,
		&o.RazorpayOrderID, &o.RazorpayPaymentID, &o.ShiprocketOrderID, &o.TrackingNumber,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, user_id, guest, customer_name, customer_email, customer_phone,
			total_amount, shipping_address, payment_method, payment_status, order_status,
			razorpay_order_id, razorpay_payment_id, shiprocket_order_id, tracking_number,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := tx.Exec(ctx, query,
		order.ID, order.UserID, order.Guest, order.CustomerName, order.CustomerEmail,
		order.CustomerPhone, order.TotalAmount, order.ShippingAddress, order.PaymentMethod,
		order.PaymentStatus, order.OrderStatus, order.RazorpayOrderID, order.RazorpayPaymentID,
		order.ShiprocketOrderID, order.TrackingNumber, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts the order's item snapshots within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, size, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.ProductID, item.Name, item.UnitPrice,
			item.Quantity, item.Size, item.Color)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID).
				Str("product_id", items[i].ProductID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetByUser retrieves all orders for a user, newest first.
func (r *orderRepository) GetByUser(ctx context.Context, userID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, userID)
}

// GetAll retrieves orders across all users, newest first.
func (r *orderRepository) GetAll(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	return r.queryOrders(ctx, query, limit)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	query := `
		SELECT order_id, product_id, name, unit_price, quantity, size, color
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.OrderID, &item.ProductID, &item.Name, &item.UnitPrice,
			&item.Quantity, &item.Size, &item.Color)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// SetPaymentStatus updates the payment status of the order matching the given
// external payment-order reference. The match key is razorpay_order_id, not
// the order's own ID; both the client-verify path and the webhook path
// resolve orders this way.
func (r *orderRepository) SetPaymentStatus(ctx context.Context, razorpayOrderID, status, paymentID string) (bool, error) {
	// Orders without a gateway order carry an empty reference, so an empty
	// key would match every one of them.
	if razorpayOrderID == "" {
		return false, nil
	}

	query := `
		UPDATE orders
		SET payment_status = $2,
		    razorpay_payment_id = CASE WHEN $3 = '' THEN razorpay_payment_id ELSE $3 END,
		    updated_at = $4
		WHERE razorpay_order_id = $1
	`

	tag, err := r.pool.Exec(ctx, query, razorpayOrderID, status, paymentID, time.Now())
	if err != nil {
		r.logger.Error().Err(err).
			Str("razorpay_order_id", razorpayOrderID).
			Str("status", status).
			Msg("failed to set payment status")
		return false, fmt.Errorf("failed to set payment status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().
			Str("razorpay_order_id", razorpayOrderID).
			Msg("no order matches payment reference")
		return false, nil
	}

	r.logger.Info().
		Str("razorpay_order_id", razorpayOrderID).
		Str("status", status).
		Msg("payment status updated")

	return true, nil
}

// SetShipment records the external shipment references and order status.
func (r *orderRepository) SetShipment(ctx context.Context, orderID, shiprocketOrderID, trackingNumber, orderStatus string) error {
	query := `
		UPDATE orders
		SET shiprocket_order_id = $2, tracking_number = $3, order_status = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, orderID, shiprocketOrderID, trackingNumber, orderStatus, time.Now())
	if err != nil {
		r.logger.Error().Err(err).
			Str("order_id", orderID).
			Str("shiprocket_order_id", shiprocketOrderID).
			Msg("failed to set shipment references")
		return fmt.Errorf("failed to set shipment references: %w", err)
	}

	return nil
}

// UpdateStatus sets the order status.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, status string) (bool, error) {
	query := `
		UPDATE orders
		SET order_status = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, orderID, status, time.Now())
	if err != nil {
		r.logger.Error().Err(err).
			Str("order_id", orderID).
			Str("status", status).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
