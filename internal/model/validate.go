package model

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError represents a single field-level constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// JoinFieldErrors renders a list of violations as a single message,
// one violation per "field: message" clause, in validation order.
func JoinFieldErrors(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// emailRE accepts addresses of the form local@domain.tld. Intentionally
// loose: the store's UNIQUE constraint, not the regex, is the real
// uniqueness guard, and over-strict address validation rejects real users.
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks all field-level constraints on the customer.
//
// Returns every violation found, not just the first, in field order.
// Uniqueness of Email is not checked here (requires store state).
// Side-effect-free.
func (c Customer) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRE.MatchString(c.Email) {
		errs = append(errs, FieldError{Field: "email", Message: fmt.Sprintf("%q is not a valid email address", c.Email)})
	}
	return errs
}

// Validate checks all field-level constraints on the product.
//
// Returns every violation found, not just the first, in field order.
// Side-effect-free.
func (p Product) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if p.Price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock cannot be negative"})
	}
	return errs
}
