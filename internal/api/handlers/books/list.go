package books

import (
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/api/httpx"
)

// list handles GET /books: up to ten books, most recently updated first.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.GetAll(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	out := make([]bookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toResponse(b))
	}
	if err := httpx.WriteJSON(w, http.StatusOK, out); err != nil {
		fail(w, r, err)
	}
}
