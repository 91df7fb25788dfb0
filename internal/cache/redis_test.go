package cache

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
)

// These tests need a live Redis and are skipped unless REDIS_TEST_ADDR is
// set, e.g. REDIS_TEST_ADDR=localhost:6379 go test ./internal/cache
func openTestCache(t *testing.T) *ProductCache {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	c, err := New(addr, 0)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestProductCache_RoundTrip(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	p := model.Product{
		ID:    model.NewID(),
		Name:  "Widget",
		Price: decimal.RequireFromString("10.00"),
		Stock: 2,
	}

	if err := c.Set(ctx, p); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, ok, err := c.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok {
		t.Fatal("Get() missed a key that was just set")
	}
	if got.Name != p.Name || got.Stock != p.Stock || !got.Price.Equal(p.Price) {
		t.Errorf("Get() = %+v, want %+v", got, p)
	}
}

func TestProductCache_MissIsNotError(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get() on miss returned error: %v", err)
	}
	if ok {
		t.Error("Get() reported a hit for a key never set")
	}
}

func TestProductCache_Invalidate(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	p := model.Product{ID: model.NewID(), Name: "Widget", Price: decimal.Zero}
	if err := c.Set(ctx, p); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := c.Invalidate(ctx, p.ID); err != nil {
		t.Fatalf("Invalidate() failed: %v", err)
	}

	_, ok, err := c.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Error("Get() hit after Invalidate()")
	}
}
