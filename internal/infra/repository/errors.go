package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// isForeignKeyViolation inspects the raw driver error: pgconn for postgres,
// the constraint message for sqlite.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
