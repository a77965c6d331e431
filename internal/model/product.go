package model

import "time"

// Product represents a catalog record. Price and descriptive fields are
// copied into order snapshots at order-creation time; the order flow never
// mutates products.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	Sizes       []string  `json:"sizes,omitempty" db:"sizes"`
	Colors      []string  `json:"colors,omitempty" db:"colors"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Category represents a product category.
type Category struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
}

// CategoryRequest represents the payload for creating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
