package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/model"
	"github.com/Divyanshi070700/Undhyu-v.2-E-Comm/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Add merges an item into the user's cart. An entry matching on
// (product, size, color) has its quantity incremented instead of a new row
// being created.
func (s *cartService) Add(ctx context.Context, userID string, req *model.CartAddRequest) error {
	if req == nil || req.ProductID == "" {
		return model.NewDomainError(model.ErrCodeValidation, "product ID is required")
	}
	if req.Quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	entry := &model.CartEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		AddedAt:   time.Now(),
	}

	if err := s.cartRepo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("product_id", req.ProductID).
		Int("quantity", req.Quantity).
		Msg("cart entry added")

	return nil
}

// Get retrieves the user's cart with a running total priced against the live
// catalog. Entries whose product has disappeared contribute nothing to the
// total.
func (s *cartService) Get(ctx context.Context, userID string) (*model.CartResponse, error) {
	entries, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var total float64
	for _, entry := range entries {
		product, err := s.productRepo.GetByID(ctx, entry.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product: %w", err)
		}
		if product == nil {
			continue
		}
		total += product.Price * float64(entry.Quantity)
	}

	if entries == nil {
		entries = []model.CartEntry{}
	}

	return &model.CartResponse{Entries: entries, Total: total}, nil
}

// UpdateQuantity sets the quantity of a cart entry.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, entryID string, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	found, err := s.cartRepo.UpdateQuantity(ctx, userID, entryID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart entry: %w", err)
	}
	if !found {
		return model.ErrCartEntryNotFound
	}

	return nil
}

// Remove deletes a cart entry.
func (s *cartService) Remove(ctx context.Context, userID, entryID string) error {
	found, err := s.cartRepo.Remove(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to remove cart entry: %w", err)
	}
	if !found {
		return model.ErrCartEntryNotFound
	}

	return nil
}

// Clear deletes all of the user's cart entries.
func (s *cartService) Clear(ctx context.Context, userID string) error {
	if err := s.cartRepo.ClearUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
