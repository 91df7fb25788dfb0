package store

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by get-by-id reads when no row matches.
var ErrNotFound = errors.New("not found")

// IsUniqueViolation reports whether err is a UNIQUE constraint failure
// (e.g. inserting a customer with an email that already exists).
// Uses errors.As to handle wrapped errors.
func IsUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// IsNotFound reports whether err is a missing-row error, either the
// store's own ErrNotFound or database/sql's ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
