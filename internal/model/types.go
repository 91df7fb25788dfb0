package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a customer record.
//
// CreatedAt is set once at creation and never mutated. Email is unique
// across all customers (enforced by the store's UNIQUE constraint).
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"` // optional, free-format
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a product record.
//
// Stock is the only field mutated after creation (replenishment sweeps
// increment it). Stock never goes negative.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// Order represents an order record.
//
// TotalAmount is frozen: computed once inside the creation transaction as
// the sum of the attached products' prices, never recomputed on read.
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	ProductIDs  []string        `json:"product_ids"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
}

// NewID returns a fresh entity ID.
//
// Uses UUIDv7 so lexicographic id order matches creation order. Falls back
// to UUIDv4 if the system clock source is unavailable.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
