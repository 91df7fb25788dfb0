package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// CreateOrder creates an order inside one atomic transaction:
//
//  1. insert the order row bound to its customer with a placeholder total
//  2. attach each resolved product via the join table
//  3. compute the total as the exact sum of the attached products' prices
//     and persist it
//
// All three steps succeed or none do. On any failure the transaction rolls
// back entirely - no order row, no attachments, no total - leaving the
// store exactly as before the call. A concurrent reader never observes the
// order mid-construction.
//
// The caller must have resolved products against the store already; the
// foreign keys re-check the references at commit time regardless.
//
// Returns the order with its frozen total filled in.
func (s *Store) CreateOrder(ctx context.Context, o model.Order, products []model.Product) (model.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, total_amount, order_date)
		VALUES (?, ?, ?, ?)
	`,
		o.ID,
		o.CustomerID,
		decimal.Zero.String(),
		FormatTime(o.OrderDate),
	)
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: insert: %w", err)
	}

	total := decimal.Zero
	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_products (order_id, product_id)
			VALUES (?, ?)
		`, o.ID, p.ID)
		if err != nil {
			return model.Order{}, fmt.Errorf("create order: attach product %s: %w", p.ID, err)
		}
		total = total.Add(p.Price)
		productIDs = append(productIDs, p.ID)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE orders SET total_amount = ? WHERE id = ?
	`, total.String(), o.ID)
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: set total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Order{}, fmt.Errorf("create order: commit: %w", err)
	}

	o.TotalAmount = total
	o.ProductIDs = productIDs
	o.OrderDate = o.OrderDate.UTC().Truncate(time.Second) // what a reader of the row sees
	return o, nil
}

// GetOrder fetches an order by id, including its attached product ids.
// Returns ErrNotFound (wrapped) when no row matches.
func (s *Store) GetOrder(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	var total, orderDate string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, customer_id, total_amount, order_date
		FROM orders
		WHERE id = ?
	`, id).Scan(&o.ID, &o.CustomerID, &total, &orderDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}

	o.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: parse total %q: %w", total, err)
	}
	o.OrderDate, err = ParseTime(orderDate)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}

	o.ProductIDs, err = s.orderProductIDs(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

// orderProductIDs returns the attached product ids for one order,
// in stable id order.
func (s *Store) orderProductIDs(ctx context.Context, orderID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id FROM order_products
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("order products: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("order products: scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
