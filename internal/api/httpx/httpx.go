package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/5w1tchy/books-catalog/internal/apperr"
)

// WriteJSON encodes v before touching w, so an encoding failure can still be
// answered with a 500 instead of a truncated 200.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return apperr.E(apperr.EncodingFailure, "httpx.write_json", err)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON reads exactly one JSON value from r into v. Unknown fields are
// ignored; trailing data is rejected. Oversized bodies map to 413, anything
// else to InvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	const op = "httpx.decode_json"

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return &BodyTooLargeError{Limit: tooBig.Limit}
		}
		return apperr.E(apperr.InvalidInput, op, fmt.Errorf("invalid JSON: %w", err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperr.E(apperr.InvalidInput, op, errors.New("invalid JSON: trailing data"))
	}
	return nil
}

// BodyTooLargeError is returned by DecodeJSON when BodySizeLimit cut the body.
type BodyTooLargeError struct {
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}
