package books

import (
	"context"
	"database/sql"

	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/5w1tchy/books-catalog/internal/store/dbx"
)

// Create inserts the mandatory columns, then writes each optional column the
// book carries. Everything runs in one transaction.
func (s *Store) Create(ctx context.Context, b models.Book) error {
	const op = "books.create"

	err := dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO books (id, name, updated_at) VALUES ($1, $2, now())`,
			b.ID, b.Name,
		); err != nil {
			return err
		}
		return writeOptional(ctx, tx, b)
	})
	return apperr.Wrap(op, err)
}
