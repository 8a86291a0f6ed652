// Package books is the Postgres implementation of the book repository. It
// owns every SQL statement that touches the books table.
package books

import (
	"database/sql"
)

// listLimit caps FindAll; the listing has no cursor or offset.
const listLimit = 10

// Store reads and writes books through a shared pool. The *sql.DB is never
// copied; every request goes through the same handle.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
