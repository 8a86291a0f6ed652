package books

import (
	"context"
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/google/uuid"
)

// Service is what the handlers need from the book service.
type Service interface {
	Register(ctx context.Context, in models.CreateInput) (models.Book, error)
	GetOne(ctx context.Context, id uuid.UUID) (models.Book, error)
	GetAll(ctx context.Context) ([]models.Book, error)
	Update(ctx context.Context, id uuid.UUID, in models.UpdateInput) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the book routes on mux (Go 1.22 patterns).
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.create)
	mux.HandleFunc("GET /books", h.list)
	mux.Handle("GET /books/{id}", withBookID(h.get))
	mux.Handle("PUT /books/{id}", withBookID(h.put))
}
