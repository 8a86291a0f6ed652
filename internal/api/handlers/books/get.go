package books

import (
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/api/httpx"
	"github.com/google/uuid"
)

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	b, err := h.svc.GetOne(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	if err := httpx.WriteJSON(w, http.StatusOK, toResponse(b)); err != nil {
		fail(w, r, err)
	}
}
