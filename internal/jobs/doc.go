// Package jobs provides the periodic job entry points: heartbeat, order
// reminder sweep, low-stock restock sweep, and the report generator.
//
// Scheduling is external - cron (or an operator) invokes each job through
// the CLI on its own cadence; nothing here owns a timer. Jobs receive
// their reader/mutator/sink dependencies explicitly at construction.
//
// Each run appends one or more timestamped lines to a named append-only
// log sink. Jobs never propagate errors to a caller: a failed read turns
// into an error line in the sink, and a failed sink write degrades to a
// diagnostic log entry. A job run must never crash the process.
package jobs
