package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/5w1tchy/books-catalog/internal/store/dbx"
)

// UpdateOne rewrites name, then each optional column present on b. Absent
// optional fields keep their stored value. Zero matched rows is NotFound.
func (s *Store) UpdateOne(ctx context.Context, b models.Book) error {
	const op = "books.update_one"

	err := dbx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := dbx.ExecOne(ctx, tx,
			`UPDATE books SET name = $1, updated_at = now() WHERE id = $2`,
			b.Name, b.ID,
		); err != nil {
			return err
		}
		return writeOptional(ctx, tx, b)
	})
	if errors.Is(err, dbx.ErrNoRowsAffected) {
		return apperr.E(apperr.NotFound, op, err)
	}
	return apperr.Wrap(op, err)
}
