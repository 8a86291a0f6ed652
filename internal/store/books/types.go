package books

import (
	"database/sql"
	"time"

	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/google/uuid"
)

const selectColumns = `id, name, url, published_year, original_published_year, updated_at`

// bookRow mirrors one row of books. Nullable columns scan into sql.Null*.
type bookRow struct {
	ID                    uuid.UUID
	Name                  string
	URL                   sql.NullString
	PublishedYear         sql.NullInt32
	OriginalPublishedYear sql.NullInt32
	UpdatedAt             time.Time
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (bookRow, error) {
	var r bookRow
	err := s.Scan(&r.ID, &r.Name, &r.URL, &r.PublishedYear, &r.OriginalPublishedYear, &r.UpdatedAt)
	return r, err
}

// toModel maps a row onto a Book. A stored url that no longer parses as an
// absolute URL becomes nil instead of an error.
func (r bookRow) toModel() models.Book {
	b := models.Book{
		ID:        r.ID,
		Name:      r.Name,
		UpdatedAt: r.UpdatedAt,
	}
	if r.URL.Valid {
		if u, err := models.ParseURL(r.URL.String); err == nil {
			b.URL = u
		}
	}
	if r.PublishedYear.Valid {
		y := r.PublishedYear.Int32
		b.PublishedYear = &y
	}
	if r.OriginalPublishedYear.Valid {
		y := r.OriginalPublishedYear.Int32
		b.OriginalPublishedYear = &y
	}
	return b
}
