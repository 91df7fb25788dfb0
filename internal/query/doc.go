// Package query provides the read-only filter surface over the entity
// store.
//
// Filters are plain structs of optional predicates compiled to
// parameterized WHERE clauses. Two rules hold for every query:
//
//   - all values are parameterized, never interpolated
//   - every listing includes ORDER BY with a deterministic tiebreaker,
//     so repeated reads (and golden-file tests) see stable row order
//
// Listings return the matching rows plus total-count metadata. The
// periodic report and reminder jobs are the primary consumers.
package query
