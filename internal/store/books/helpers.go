package books

import (
	"context"

	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/5w1tchy/books-catalog/internal/store/dbx"
	"github.com/google/uuid"
)

// optionalColumn is one nullable column of books and how to read it off a
// Book. value returns (nil, false) when the field is absent.
type optionalColumn struct {
	name  string
	value func(b models.Book) (any, bool)
}

// Order matters: statements are issued in this order and tests pin it.
var optionalColumns = []optionalColumn{
	{"url", func(b models.Book) (any, bool) {
		if b.URL == nil {
			return nil, false
		}
		return b.URL.String(), true
	}},
	{"published_year", func(b models.Book) (any, bool) {
		if b.PublishedYear == nil {
			return nil, false
		}
		return *b.PublishedYear, true
	}},
	{"original_published_year", func(b models.Book) (any, bool) {
		if b.OriginalPublishedYear == nil {
			return nil, false
		}
		return *b.OriginalPublishedYear, true
	}},
}

// writeOptional issues one UPDATE per optional column that is present on b.
// An absent field leaves the column untouched; it is never written as NULL.
func writeOptional(ctx context.Context, e dbx.Execer, b models.Book) error {
	for _, col := range optionalColumns {
		v, ok := col.value(b)
		if !ok {
			continue
		}
		if err := setColumn(ctx, e, b.ID, col.name, v); err != nil {
			return err
		}
	}
	return nil
}

// setColumn writes a single column. col always comes from optionalColumns,
// never from input.
func setColumn(ctx context.Context, e dbx.Execer, id uuid.UUID, col string, v any) error {
	return dbx.ExecOne(ctx, e,
		`UPDATE books SET `+col+` = $1, updated_at = now() WHERE id = $2`, v, id)
}
