package books

import (
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/api/httpx"
)

// create handles POST /books. The new id is only exposed through Location;
// the body stays empty.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		fail(w, r, err)
		return
	}

	b, err := h.svc.Register(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/books/"+b.ID.String())
	httpx.NoContent(w)
}
