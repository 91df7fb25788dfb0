package mutate

import (
	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// CustomerResult is the response shape for CreateCustomer.
type CustomerResult struct {
	Customer model.Customer `json:"customer"`
	Message  string         `json:"message"`
	Success  bool           `json:"success"`
}

// BulkCustomersResult is the response shape for BulkCreateCustomers.
//
// Created holds every customer that persisted; Errors holds one
// "Row N: ..." string per failed entry, in input order. Success is true
// iff no entry failed. Partial success is the intended contract.
type BulkCustomersResult struct {
	Created []model.Customer `json:"customers"`
	Errors  []string         `json:"errors"`
	Success bool             `json:"success"`
}

// ProductResult is the response shape for CreateProduct.
type ProductResult struct {
	Product model.Product `json:"product"`
	Message string        `json:"message"`
	Success bool          `json:"success"`
}

// OrderResult is the response shape for CreateOrder.
type OrderResult struct {
	Order   model.Order `json:"order"`
	Message string      `json:"message"`
	Success bool        `json:"success"`
}

// RestockResult is the response shape for UpdateLowStockProducts.
//
// UpdatedProducts carries each touched product with its new stock level.
// On a mid-sweep store failure the already-persisted products are still
// listed and Success is false (best-effort policy, see package doc).
type RestockResult struct {
	UpdatedProducts []model.Product `json:"updated_products"`
	UpdatedCount    int             `json:"updated_count"`
	Message         string          `json:"message"`
	Success         bool            `json:"success"`
}
