package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// InsertCustomer inserts a single customer row.
//
// A duplicate email surfaces as a UNIQUE constraint failure; callers
// detect it with IsUniqueViolation. No partial state on failure - the
// insert is a single statement.
func (s *Store) InsertCustomer(ctx context.Context, c model.Customer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		FormatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

// GetCustomer fetches a customer by id.
// Returns ErrNotFound (wrapped) when no row matches.
func (s *Store) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	var c model.Customer
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, created_at
		FROM customers
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("get customer: %w", err)
	}

	c.CreatedAt, err = ParseTime(createdAt)
	if err != nil {
		return model.Customer{}, fmt.Errorf("get customer: %w", err)
	}

	return c, nil
}
