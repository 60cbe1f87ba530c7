// Package store provides database access methods for all Lorasite
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced to handlers so they can produce client-visible
// validation messages instead of generic 500s.
var (
	ErrDuplicateSlug  = errors.New("slug already in use")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrDuplicateName  = errors.New("name already in use")
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
