package model

import "time"

// CartEntry represents one pending selection in a user's cart. Entries are
// keyed by (user_id, product_id, size, color); adding a matching entry
// increments the quantity instead of duplicating the row.
type CartEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Size      string    `json:"size,omitempty" db:"size"`
	Color     string    `json:"color,omitempty" db:"color"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
}

// CartAddRequest represents the payload for adding an item to the cart.
type CartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// CartUpdateRequest represents the payload for changing an entry's quantity.
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents a user's cart with resolved product details.
type CartResponse struct {
	Entries []CartEntry `json:"entries"`
	Total   float64     `json:"total"`
}
