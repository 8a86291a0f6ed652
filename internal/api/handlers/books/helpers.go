package books

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/5w1tchy/books-catalog/internal/api/httpx"
	"github.com/5w1tchy/books-catalog/internal/api/middlewares"
	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/5w1tchy/books-catalog/internal/validate"
)

var (
	errNameRequired = apperr.FieldError{Field: "name", Code: "required", Message: validate.ErrNameRequired.Error()}
	errBadURL       = apperr.FieldError{Field: "url", Code: "url", Message: validate.ErrBadURL.Error()}
	errBadID        = apperr.FieldError{Field: "id", Code: "uuid", Message: "id must be a UUID"}
)

func checkName(name string) (string, []apperr.FieldError) {
	name, err := validate.Name(name)
	if err != nil {
		return "", []apperr.FieldError{errNameRequired}
	}
	return name, nil
}

func checkURL(raw string) (*url.URL, []apperr.FieldError) {
	u, err := validate.URL(raw)
	if err != nil {
		return nil, []apperr.FieldError{errBadURL}
	}
	return u, nil
}

func (req createRequest) toInput() (models.CreateInput, error) {
	var (
		in     models.CreateInput
		fields []apperr.FieldError
		fe     []apperr.FieldError
	)
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			fields = append(fields, errBadID)
		} else {
			in.ID = &id
		}
	}
	in.Name, fe = checkName(req.Name)
	fields = append(fields, fe...)
	if req.URL != nil {
		in.URL, fe = checkURL(*req.URL)
		fields = append(fields, fe...)
	}
	if len(fields) > 0 {
		return models.CreateInput{}, apperr.Invalid("books.create", fields...)
	}
	return in, nil
}

func (req updateRequest) toInput() (models.UpdateInput, error) {
	var (
		in     models.UpdateInput
		fields []apperr.FieldError
	)
	if req.Name != nil {
		name, fe := checkName(*req.Name)
		fields = append(fields, fe...)
		in.Name = &name
	}
	if req.URL != nil {
		u, fe := checkURL(*req.URL)
		fields = append(fields, fe...)
		in.URL = u
	}
	if len(fields) > 0 {
		return models.UpdateInput{}, apperr.Invalid("books.update", fields...)
	}
	return in, nil
}

// fail answers err with the status of its kind. Server-side failures are
// logged at WARN first.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var tooBig *httpx.BodyTooLargeError
	if errors.As(err, &tooBig) {
		apperr.WriteStatus(w, r, http.StatusRequestEntityTooLarge, err.Error())
		return
	}

	kind := apperr.KindOf(err)
	if apperr.HTTPStatus(kind) >= http.StatusInternalServerError {
		ev := log.Warn().
			Err(err).
			Str("kind", kind.String()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middlewares.GetRequestID(r))
		if code, constraint := apperr.PGFields(err); code != "" {
			ev = ev.Str("sqlstate", code).Str("constraint", constraint)
		}
		ev.Msg("request failed")
	}
	apperr.WriteError(w, r, err)
}
