package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/model"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/mutate"
)

// Invalidator drops a cached product whose backing row changed.
type Invalidator interface {
	Invalidate(ctx context.Context, id string) error
}

// RestockSweep invokes the low-stock replenishment mutation and logs the
// outcome. Intended cadence: every 12 hours.
//
// Cache is optional; when set, every persisted stock increment evicts the
// product's cache entry so point lookups see the new level immediately
// instead of after the TTL.
type RestockSweep struct {
	Mutator *mutate.Mutator
	Sink    *Sink
	Now     func() time.Time
	Cache   Invalidator
}

// NewRestockSweep constructs the restock job.
func NewRestockSweep(m *mutate.Mutator, sink *Sink, now func() time.Time) *RestockSweep {
	return &RestockSweep{Mutator: m, Sink: sink, Now: now}
}

// Run performs one replenishment sweep and returns its result.
//
// The log line names each touched product with its new stock level. On a
// mid-sweep store failure the error line still reports the products that
// were persisted before the failure (best-effort contract of the
// underlying mutation).
func (j *RestockSweep) Run(ctx context.Context) mutate.RestockResult {
	now := j.Now()

	res, err := j.Mutator.UpdateLowStockProducts(ctx)
	// Products in the result were persisted even when the sweep failed
	// part-way, so their cache entries are stale either way.
	j.invalidate(ctx, res.UpdatedProducts)
	if err != nil {
		j.Sink.append(fmt.Sprintf("%s - Error updating low stock products (%d applied): %v",
			stamp(now), res.UpdatedCount, err))
		return res
	}

	if res.UpdatedCount == 0 {
		j.Sink.append(fmt.Sprintf("%s - No products below stock threshold", stamp(now)))
		return res
	}

	levels := make([]string, len(res.UpdatedProducts))
	for i, p := range res.UpdatedProducts {
		levels[i] = fmt.Sprintf("%s=%d", p.Name, p.Stock)
	}
	j.Sink.append(fmt.Sprintf("%s - Restocked %d products: %s",
		stamp(now), res.UpdatedCount, strings.Join(levels, ", ")))
	return res
}

// invalidate evicts updated products from the cache. Eviction trouble is
// diagnostic only; the TTL still bounds staleness.
func (j *RestockSweep) invalidate(ctx context.Context, products []model.Product) {
	if j.Cache == nil {
		return
	}
	for _, p := range products {
		if err := j.Cache.Invalidate(ctx, p.ID); err != nil {
			slog.Warn("stock cache eviction failed", "id", p.ID, "error", err)
		}
	}
}
