package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes handled by the repositories
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidTextRepr     = "22P02" // malformed UUID in a lookup
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isNoRows reports whether a lookup found nothing, including lookups by a malformed id
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == codeInvalidTextRepr
}

// isForeignKeyViolation reports whether the write referenced a missing row
func isForeignKeyViolation(err error) bool {
	code := pgErrorCode(err)
	return code == codeForeignKeyViolation || code == codeInvalidTextRepr
}
