// Package store provides the durable entity store for the CRM core.
//
// Backed by SQLite with WAL mode for concurrent read access. The store is
// the only layer that speaks SQL for writes; it exposes the capability set
// the mutation engine needs (get-by-id, batched lookup, insert, update,
// atomic order-creation transaction) and nothing store-technology-specific
// leaks above it.
//
// Times are persisted as fixed-width UTC strings so SQL range comparisons
// on text columns match chronological order.
package store
