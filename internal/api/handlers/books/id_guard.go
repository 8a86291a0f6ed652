package books

import (
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/google/uuid"
)

type idHandlerFunc func(w http.ResponseWriter, r *http.Request, id uuid.UUID)

// withBookID parses the {id} path segment and answers 400 without calling
// next when it is not a UUID.
func withBookID(next idHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			fail(w, r, apperr.Invalid("books.path_id", errBadID))
			return
		}
		next(w, r, id)
	})
}
