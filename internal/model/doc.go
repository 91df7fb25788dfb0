// Package model provides the entity records for the CRM core.
//
// This package contains type definitions and field validation only. All
// other internal packages import model; model imports nothing internal.
// This keeps the entities the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Money fields use decimal.Decimal, never floats
//   - Entity IDs are UUID strings (UUIDv7, so id order tracks creation time)
//   - All JSON tags use snake_case
package model
