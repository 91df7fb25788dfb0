package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// testCustomer builds a valid customer with the given email.
func testCustomer(email string) model.Customer {
	return model.Customer{
		ID:        model.NewID(),
		Name:      "Test Customer",
		Email:     email,
		Phone:     "+1234567890",
		CreatedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

// testProduct builds a valid product. Price is a decimal string.
func testProduct(name, price string, stock int) model.Product {
	return model.Product{
		ID:    model.NewID(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}
