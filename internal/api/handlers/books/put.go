package books

import (
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/api/httpx"
	"github.com/google/uuid"
)

// put handles PUT /books/{id}. Despite the verb it is a partial update:
// fields missing from the body keep their stored value.
func (h *Handler) put(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	defer r.Body.Close()

	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		fail(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, in); err != nil {
		fail(w, r, err)
		return
	}
	httpx.NoContent(w)
}
