package query

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/cache"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/store"
)

// Reader executes filtered listings against the store.
//
// The optional product cache is consulted for point lookups only; listing
// queries always hit the store. A nil Cache means every read goes to the
// store directly.
type Reader struct {
	store *store.Store
	cache *cache.ProductCache
}

// NewReader creates a Reader without a cache.
func NewReader(st *store.Store) *Reader {
	return &Reader{store: st}
}

// NewReaderWithCache creates a Reader with a product cache attached.
func NewReaderWithCache(st *store.Store, c *cache.ProductCache) *Reader {
	return &Reader{store: st, cache: c}
}

// Ping verifies the underlying store is reachable.
func (r *Reader) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// CustomerPage is one filtered customer listing with count metadata.
type CustomerPage struct {
	Customers  []model.Customer `json:"customers"`
	TotalCount int              `json:"total_count"`
}

// ProductPage is one filtered product listing with count metadata.
type ProductPage struct {
	Products   []model.Product `json:"products"`
	TotalCount int             `json:"total_count"`
}

// OrderRow is an order joined with its owning customer, as the reminder
// and report jobs consume it.
type OrderRow struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	OrderDate     time.Time       `json:"order_date"`
}

// OrderPage is one filtered order listing with count metadata.
type OrderPage struct {
	Orders     []OrderRow `json:"orders"`
	TotalCount int        `json:"total_count"`
}

// Customers lists customers matching the filter, ordered by creation time
// with id as tiebreaker.
func (r *Reader) Customers(ctx context.Context, f CustomerFilter) (CustomerPage, error) {
	where, args := whereClause(f.conditions())

	rows, err := r.store.Query(ctx, `
		SELECT id, name, email, phone, created_at
		FROM customers`+where+`
		ORDER BY created_at, id
	`, args...)
	if err != nil {
		return CustomerPage{}, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var page CustomerPage
	for rows.Next() {
		var c model.Customer
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &createdAt); err != nil {
			return CustomerPage{}, fmt.Errorf("list customers: scan: %w", err)
		}
		if c.CreatedAt, err = store.ParseTime(createdAt); err != nil {
			return CustomerPage{}, fmt.Errorf("list customers: %w", err)
		}
		page.Customers = append(page.Customers, c)
	}
	if err := rows.Err(); err != nil {
		return CustomerPage{}, fmt.Errorf("list customers: %w", err)
	}

	if err := r.store.QueryRow(ctx, "SELECT COUNT(*) FROM customers"+where, args...).Scan(&page.TotalCount); err != nil {
		return CustomerPage{}, fmt.Errorf("count customers: %w", err)
	}
	return page, nil
}

// Products lists products matching the filter, ordered by name with id as
// tiebreaker.
func (r *Reader) Products(ctx context.Context, f ProductFilter) (ProductPage, error) {
	where, args := whereClause(f.conditions())

	rows, err := r.store.Query(ctx, `
		SELECT id, name, price, stock
		FROM products`+where+`
		ORDER BY name, id
	`, args...)
	if err != nil {
		return ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var page ProductPage
	for rows.Next() {
		var p model.Product
		var price string
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Stock); err != nil {
			return ProductPage{}, fmt.Errorf("list products: scan: %w", err)
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return ProductPage{}, fmt.Errorf("list products: parse price %q: %w", price, err)
		}
		page.Products = append(page.Products, p)
	}
	if err := rows.Err(); err != nil {
		return ProductPage{}, fmt.Errorf("list products: %w", err)
	}

	if err := r.store.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&page.TotalCount); err != nil {
		return ProductPage{}, fmt.Errorf("count products: %w", err)
	}
	return page, nil
}

// Orders lists orders matching the filter joined with their customers,
// ordered by order date with id as tiebreaker.
func (r *Reader) Orders(ctx context.Context, f OrderFilter) (OrderPage, error) {
	where, args := whereClause(f.conditions())

	rows, err := r.store.Query(ctx, `
		SELECT o.id, o.customer_id, c.name, c.email, o.total_amount, o.order_date
		FROM orders o
		JOIN customers c ON c.id = o.customer_id`+where+`
		ORDER BY o.order_date, o.id
	`, args...)
	if err != nil {
		return OrderPage{}, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var page OrderPage
	for rows.Next() {
		var row OrderRow
		var total, orderDate string
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.CustomerName, &row.CustomerEmail, &total, &orderDate); err != nil {
			return OrderPage{}, fmt.Errorf("list orders: scan: %w", err)
		}
		if row.TotalAmount, err = decimal.NewFromString(total); err != nil {
			return OrderPage{}, fmt.Errorf("list orders: parse total %q: %w", total, err)
		}
		if row.OrderDate, err = store.ParseTime(orderDate); err != nil {
			return OrderPage{}, fmt.Errorf("list orders: %w", err)
		}
		page.Orders = append(page.Orders, row)
	}
	if err := rows.Err(); err != nil {
		return OrderPage{}, fmt.Errorf("list orders: %w", err)
	}

	if err := r.store.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM orders o
		JOIN customers c ON c.id = o.customer_id`+where, args...).Scan(&page.TotalCount); err != nil {
		return OrderPage{}, fmt.Errorf("count orders: %w", err)
	}
	return page, nil
}

// ProductByID fetches one product, consulting the cache first when one is
// attached (cache-aside with TTL). Cache failures degrade to a store read
// with a diagnostic log line; they never fail the lookup.
func (r *Reader) ProductByID(ctx context.Context, id string) (model.Product, error) {
	if r.cache != nil {
		p, ok, err := r.cache.Get(ctx, id)
		if err != nil {
			slog.Warn("product cache read failed", "id", id, "error", err)
		} else if ok {
			return p, nil
		}
	}

	p, err := r.store.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, p); err != nil {
			slog.Warn("product cache write failed", "id", id, "error", err)
		}
	}
	return p, nil
}
