package dbx

import (
	"context"
	"database/sql"
	"errors"
)

// Execer lets store helpers work with *sql.DB and *sql.Tx alike.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ErrNoRowsAffected is returned by ExecOne when the statement matched nothing.
var ErrNoRowsAffected = errors.New("no rows affected")

// ExecOne runs a mutating statement and fails with ErrNoRowsAffected when it
// touched zero rows.
func ExecOne(ctx context.Context, e Execer, query string, args ...any) error {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// WithinTx runs fn in a transaction (commit on nil, rollback on error).
func WithinTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
