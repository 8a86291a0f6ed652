package books

import (
	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/google/uuid"
)

// bookResponse is the wire shape of a Book. Years and updated_at stay
// server-side.
type bookResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  *string   `json:"url"`
}

func toResponse(b models.Book) bookResponse {
	out := bookResponse{ID: b.ID, Name: b.Name}
	if b.URL != nil {
		s := b.URL.String()
		out.URL = &s
	}
	return out
}

// createRequest may carry the id the caller wants; it is generated otherwise.
type createRequest struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// updateRequest fields are pointers: nil (missing or null) means keep the
// stored value.
type updateRequest struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}
