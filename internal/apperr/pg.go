package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// FromPG maps a *pgconn.PgError to a Kind and reports whether err was one.
// A duplicate key is a Conflict; every other SQLSTATE is a StorageFailure.
func FromPG(err error) (Kind, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return StorageFailure, false
	}
	switch pg.Code {
	case pgUniqueViolation:
		return Conflict, true
	default:
		return StorageFailure, true
	}
}

// PGFields returns the SQLSTATE and constraint name of a Postgres error for
// log context. Both are empty when err is not one.
func PGFields(err error) (code, constraint string) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return "", ""
	}
	return pg.Code, pg.ConstraintName
}
