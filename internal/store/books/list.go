package books

import (
	"context"

	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/5w1tchy/books-catalog/internal/models"
)

// FindAll returns the most recently updated books, newest first.
func (s *Store) FindAll(ctx context.Context) ([]models.Book, error) {
	const op = "books.find_all"

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM books
		ORDER BY updated_at DESC
		LIMIT $1`, listLimit)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}
	defer rows.Close()

	out := make([]models.Book, 0, listLimit)
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, apperr.Wrap(op, err)
		}
		out = append(out, r.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(op, err)
	}
	return out, nil
}
