// Package mutate implements the mutation engine: the write operations
// over the entity store, applied through the validation layer.
//
// Single-entity mutations (CreateCustomer, CreateProduct, CreateOrder)
// surface the first fatal error and leave no partial state; CreateOrder
// additionally wraps its multi-row write in one store transaction.
//
// Batch operations deliberately do NOT share that contract:
// BulkCreateCustomers processes entries in per-row isolation, and
// UpdateLowStockProducts persists increments best-effort - a mid-sweep
// store failure aborts the sweep but increments already committed stand.
package mutate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/store"
)

// Replenishment sweep parameters.
const (
	// LowStockThreshold is the stock level strictly below which a product
	// is eligible for replenishment.
	LowStockThreshold = 10

	// RestockAmount is the fixed increment applied per sweep. A product
	// can stay below threshold after one increment; it is then touched
	// again on the next run (gradual replenishment, intentional).
	RestockAmount = 10
)

// Mutator executes mutations against one store.
//
// Construct once per process and reuse; the store dependency is explicit,
// never ambient. The clock is injectable for deterministic tests.
type Mutator struct {
	store *store.Store
	now   func() time.Time
}

// New creates a Mutator using the wall clock.
func New(st *store.Store) *Mutator {
	return &Mutator{store: st, now: time.Now}
}

// NewWithClock creates a Mutator with an injected time source.
func NewWithClock(st *store.Store, now func() time.Time) *Mutator {
	return &Mutator{store: st, now: now}
}

// CustomerInput is one customer creation request.
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ProductInput is one product creation request.
type ProductInput struct {
	Name  string `json:"name"`
	Price string `json:"price"` // decimal string, e.g. "999.99"
	Stock int    `json:"stock,omitempty"`
}

// OrderInput is one order creation request.
type OrderInput struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"` // defaults to now
}

// CreateCustomer validates and persists one customer.
//
// On validation failure (including a duplicate email) nothing is written
// and the error carries every violated field. Store failures surface as
// store errors, also with no row written.
func (m *Mutator) CreateCustomer(ctx context.Context, input CustomerInput) (CustomerResult, error) {
	c := model.Customer{
		ID:        model.NewID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: m.now().UTC(),
	}

	if errs := c.Validate(); len(errs) > 0 {
		return CustomerResult{}, NewValidationError(errs)
	}

	if err := m.store.InsertCustomer(ctx, c); err != nil {
		if store.IsUniqueViolation(err) {
			return CustomerResult{}, NewValidationError([]model.FieldError{{
				Field:   "email",
				Message: fmt.Sprintf("customer with email %q already exists", c.Email),
			}})
		}
		return CustomerResult{}, NewStoreError("create customer", err)
	}

	return CustomerResult{
		Customer: c,
		Message:  fmt.Sprintf("Customer %s created successfully", c.Name),
		Success:  true,
	}, nil
}

// BulkCreateCustomers processes each entry independently: every entry is
// validated and persisted in isolation, and one entry's failure never
// rolls back or blocks sibling entries. Per-entry errors are prefixed
// with the entry's 1-based position.
func (m *Mutator) BulkCreateCustomers(ctx context.Context, inputs []CustomerInput) BulkCustomersResult {
	result := BulkCustomersResult{}

	for i, input := range inputs {
		res, err := m.CreateCustomer(ctx, input)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Created = append(result.Created, res.Customer)
	}

	result.Success = len(result.Errors) == 0
	return result
}

// CreateProduct validates and persists one product. A missing stock value
// in the request is the zero value, matching the default.
func (m *Mutator) CreateProduct(ctx context.Context, input ProductInput) (ProductResult, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return ProductResult{}, err
	}

	p := model.Product{
		ID:    model.NewID(),
		Name:  input.Name,
		Price: price,
		Stock: input.Stock,
	}

	if errs := p.Validate(); len(errs) > 0 {
		return ProductResult{}, NewValidationError(errs)
	}

	if err := m.store.InsertProduct(ctx, p); err != nil {
		return ProductResult{}, NewStoreError("create product", err)
	}

	return ProductResult{
		Product: p,
		Message: fmt.Sprintf("Product %s created successfully", p.Name),
		Success: true,
	}, nil
}

// CreateOrder creates one order atomically.
//
//  1. An empty product list is rejected up front.
//  2. The customer reference is resolved; a dangling id is a not-found
//     error naming the id.
//  3. All product ids are resolved in one batched lookup; any missing ids
//     are reported together, sorted, in the error message.
//  4. The order row, its product attachments, and the computed total are
//     committed in one store transaction - or none of them are.
func (m *Mutator) CreateOrder(ctx context.Context, input OrderInput) (OrderResult, error) {
	if len(input.ProductIDs) == 0 {
		return OrderResult{}, NewInputError("at least one product must be selected")
	}

	customer, err := m.store.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		if store.IsNotFound(err) {
			return OrderResult{}, NewNotFoundError(fmt.Sprintf("customer with ID %s not found", input.CustomerID))
		}
		return OrderResult{}, NewStoreError("create order: resolve customer", err)
	}

	ids := dedupe(input.ProductIDs)
	products, err := m.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return OrderResult{}, NewStoreError("create order: resolve products", err)
	}
	if len(products) != len(ids) {
		missing := missingIDs(ids, products)
		return OrderResult{}, NewNotFoundError(fmt.Sprintf("invalid product IDs: [%s]", strings.Join(missing, ", ")))
	}

	orderDate := m.now().UTC()
	if input.OrderDate != nil {
		orderDate = input.OrderDate.UTC()
	}

	order := model.Order{
		ID:         model.NewID(),
		CustomerID: customer.ID,
		OrderDate:  orderDate,
	}

	created, err := m.store.CreateOrder(ctx, order, products)
	if err != nil {
		return OrderResult{}, NewStoreError("create order", err)
	}

	return OrderResult{
		Order:   created,
		Message: fmt.Sprintf("Order created successfully with total: $%s", created.TotalAmount.StringFixed(2)),
		Success: true,
	}, nil
}

// UpdateLowStockProducts selects every product with stock strictly below
// LowStockThreshold and increments each by RestockAmount, re-validating
// and persisting row by row.
//
// Re-running immediately after a successful run touches only products the
// increment left below threshold; products at or above threshold are
// never touched.
//
// Failure policy (best-effort, documented non-atomicity): if persisting
// one product fails, the sweep stops and the store error is returned, but
// increments already committed for earlier products stand. The partial
// result lists exactly the products that were persisted.
func (m *Mutator) UpdateLowStockProducts(ctx context.Context) (RestockResult, error) {
	lowStock, err := m.store.ListLowStockProducts(ctx, LowStockThreshold)
	if err != nil {
		return RestockResult{}, NewStoreError("restock: list low stock", err)
	}

	var updated []model.Product
	for _, p := range lowStock {
		p.Stock += RestockAmount
		if errs := p.Validate(); len(errs) > 0 {
			return partialRestock(updated), NewValidationError(errs)
		}
		if err := m.store.UpdateProductStock(ctx, p.ID, p.Stock); err != nil {
			return partialRestock(updated), NewStoreError(fmt.Sprintf("restock: update product %s", p.ID), err)
		}
		updated = append(updated, p)
	}

	return RestockResult{
		UpdatedProducts: updated,
		UpdatedCount:    len(updated),
		Message:         fmt.Sprintf("Successfully updated %d products with low stock", len(updated)),
		Success:         true,
	}, nil
}

// partialRestock reports the products a failed sweep had already
// persisted before stopping.
func partialRestock(updated []model.Product) RestockResult {
	return RestockResult{
		UpdatedProducts: updated,
		UpdatedCount:    len(updated),
		Message:         fmt.Sprintf("Restock aborted after %d products", len(updated)),
		Success:         false,
	}
}

// parsePrice parses a decimal price string. An empty or malformed price
// is an input error, not a validation error: the request never produced
// a candidate entity to validate.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, NewInputError("price is required")
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, NewInputError(fmt.Sprintf("invalid price %q", s))
	}
	return price, nil
}

// dedupe returns ids with duplicates removed, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// missingIDs computes the requested ids that resolved to no product,
// sorted ascending for a deterministic message.
func missingIDs(requested []string, found []model.Product) []string {
	have := make(map[string]bool, len(found))
	for _, p := range found {
		have[p.ID] = true
	}
	var missing []string
	for _, id := range requested {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
