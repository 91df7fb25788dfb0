package store

import (
	"context"
	"testing"
	"time"
)

func TestInsertCustomer_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c := testCustomer("alice@example.com")
	c.Name = "Alice Johnson"

	if err := s.InsertCustomer(ctx, c); err != nil {
		t.Fatalf("InsertCustomer() failed: %v", err)
	}

	got, err := s.GetCustomer(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCustomer() failed: %v", err)
	}

	if got.ID != c.ID {
		t.Errorf("id = %q, want %q", got.ID, c.ID)
	}
	if got.Name != "Alice Johnson" {
		t.Errorf("name = %q, want %q", got.Name, "Alice Johnson")
	}
	if got.Email != c.Email {
		t.Errorf("email = %q, want %q", got.Email, c.Email)
	}
	if got.Phone != c.Phone {
		t.Errorf("phone = %q, want %q", got.Phone, c.Phone)
	}
	if !got.CreatedAt.Equal(c.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, c.CreatedAt)
	}
}

func TestInsertCustomer_DuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.InsertCustomer(ctx, testCustomer("alice@example.com")); err != nil {
		t.Fatalf("first InsertCustomer() failed: %v", err)
	}

	err := s.InsertCustomer(ctx, testCustomer("alice@example.com"))
	if err == nil {
		t.Fatal("second InsertCustomer() succeeded, want UNIQUE violation")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetCustomer(context.Background(), "no-such-id")
	if err == nil {
		t.Fatal("GetCustomer() succeeded for missing id")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestInsertCustomer_CreatedAtStoredUTC(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	loc := time.FixedZone("UTC+5", 5*3600)
	c := testCustomer("tz@example.com")
	c.CreatedAt = time.Date(2024, 3, 1, 10, 30, 0, 0, loc)

	if err := s.InsertCustomer(ctx, c); err != nil {
		t.Fatalf("InsertCustomer() failed: %v", err)
	}

	got, err := s.GetCustomer(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCustomer() failed: %v", err)
	}
	if !got.CreatedAt.Equal(c.CreatedAt) {
		t.Errorf("created_at = %v, want instant %v", got.CreatedAt, c.CreatedAt)
	}
	if got.CreatedAt.Location() != time.UTC {
		t.Errorf("created_at location = %v, want UTC", got.CreatedAt.Location())
	}
}
