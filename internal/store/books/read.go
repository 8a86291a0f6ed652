package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/google/uuid"
)

// FindOne loads a single book by id.
func (s *Store) FindOne(ctx context.Context, id uuid.UUID) (models.Book, error) {
	const op = "books.find_one"

	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM books WHERE id = $1`, id)
	r, err := scanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, apperr.E(apperr.NotFound, op, err)
		}
		return models.Book{}, apperr.Wrap(op, err)
	}
	return r.toModel(), nil
}
