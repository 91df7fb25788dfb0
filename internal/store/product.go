package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// InsertProduct inserts a single product row.
func (s *Store) InsertProduct(ctx context.Context, p model.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, stock)
		VALUES (?, ?, ?, ?)
	`,
		p.ID,
		p.Name,
		p.Price.String(),
		p.Stock,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetProduct fetches a product by id.
// Returns ErrNotFound (wrapped) when no row matches.
func (s *Store) GetProduct(ctx context.Context, id string) (model.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, price, stock
		FROM products
		WHERE id = ?
	`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetProductsByIDs fetches all products matching the given ids in one
// batched lookup. Missing ids are simply absent from the result; callers
// compare result size against the request to detect them.
//
// Results are ordered by name then id for deterministic totals messages.
func (s *Store) GetProductsByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, name, price, stock
		FROM products
		WHERE id IN (%s)
		ORDER BY name, id
	`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	return products, nil
}

// ListLowStockProducts returns every product with stock strictly below the
// threshold, in stable (name, id) order so sweep runs touch products in a
// deterministic sequence.
func (s *Store) ListLowStockProducts(ctx context.Context, threshold int) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, stock
		FROM products
		WHERE stock < ?
		ORDER BY name, id
	`, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	return products, nil
}

// UpdateProductStock persists a new stock level for one product.
// Returns ErrNotFound (wrapped) if the product does not exist.
func (s *Store) UpdateProductStock(ctx context.Context, id string, stock int) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE products SET stock = ? WHERE id = ?
	`, stock, id)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product stock: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update product stock: product %s: %w", id, ErrNotFound)
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (model.Product, error) {
	var p model.Product
	var price string
	if err := row.Scan(&p.ID, &p.Name, &price, &p.Stock); err != nil {
		return model.Product{}, err
	}

	var err error
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return model.Product{}, fmt.Errorf("parse stored price %q: %w", price, err)
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
