package repository

import (
	"context"
	"fmt"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetByUser retrieves all cart entries for a user.
func (r *cartRepository) GetByUser(ctx context.Context, userID string) ([]model.CartEntry, error) {
	query := `
		SELECT id, user_id, product_id, quantity, size, color, added_at
		FROM cart_entries
		WHERE user_id = $1
		ORDER BY added_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query cart entries")
		return nil, fmt.Errorf("failed to query cart entries: %w", err)
	}
	defer rows.Close()

	var entries []model.CartEntry
	for rows.Next() {
		var e model.CartEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.Size, &e.Color, &e.AddedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart entry row")
			return nil, fmt.Errorf("failed to scan cart entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart entry rows")
		return nil, fmt.Errorf("error iterating cart entries: %w", err)
	}

	return entries, nil
}

// Upsert inserts a cart entry or increments the quantity of the entry with
// the same (user_id, product_id, size, color) key.
func (r *cartRepository) Upsert(ctx context.Context, entry *model.CartEntry) error {
	query := `
		INSERT INTO cart_entries (id, user_id, product_id, quantity, size, color, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, product_id, size, color)
		DO UPDATE SET quantity = cart_entries.quantity + EXCLUDED.quantity
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.ProductID, entry.Quantity,
		entry.Size, entry.Color, entry.AddedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", entry.UserID).
			Str("product_id", entry.ProductID).
			Msg("failed to upsert cart entry")
		return fmt.Errorf("failed to upsert cart entry: %w", err)
	}

	return nil
}

// UpdateQuantity sets the quantity of a user's cart entry.
func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, entryID string, quantity int) (bool, error) {
	query := `
		UPDATE cart_entries
		SET quantity = $3
		WHERE id = $2 AND user_id = $1
	`

	tag, err := r.pool.Exec(ctx, query, userID, entryID, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to update cart entry quantity")
		return false, fmt.Errorf("failed to update cart entry: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Remove deletes a single cart entry.
func (r *cartRepository) Remove(ctx context.Context, userID, entryID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cart_entries WHERE id = $2 AND user_id = $1`,
		userID, entryID,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to remove cart entry")
		return false, fmt.Errorf("failed to remove cart entry: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ClearUser deletes all cart entries for a user.
func (r *cartRepository) ClearUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_entries WHERE user_id = $1`, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().Str("user_id", userID).Msg("cart cleared")
	return nil
}
