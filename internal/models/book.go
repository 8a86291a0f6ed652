package models

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Book is the single catalog entity. Years and UpdatedAt are persisted but
// never leave the service over HTTP.
type Book struct {
	ID                    uuid.UUID
	Name                  string
	URL                   *url.URL
	PublishedYear         *int32
	OriginalPublishedYear *int32
	UpdatedAt             time.Time
}

// CreateInput is what a caller supplies to register a book. A nil ID lets
// the service generate one.
type CreateInput struct {
	ID   *uuid.UUID
	Name string
	URL  *url.URL
}

// UpdateInput carries a partial update. A nil field leaves the stored value
// alone; there is no way to clear a URL back to null.
type UpdateInput struct {
	Name *string
	URL  *url.URL
}

// NewBook builds a Book from a CreateInput under the given id.
func NewBook(id uuid.UUID, in CreateInput) Book {
	return Book{
		ID:   id,
		Name: in.Name,
		URL:  in.URL,
	}
}

// Merge returns b with every present field of in applied on top.
func (b Book) Merge(in UpdateInput) Book {
	out := b
	if in.Name != nil {
		out.Name = *in.Name
	}
	if in.URL != nil {
		u := *in.URL
		out.URL = &u
	}
	return out
}

// ParseURL parses s as an absolute URL. Relative references are rejected.
func ParseURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, &url.Error{Op: "parse", URL: s, Err: errNotAbsolute}
	}
	return u, nil
}
