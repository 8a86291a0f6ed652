package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`    // e.g. "required", "url", "uuid"
	Message string `json:"message"` // human readable
}

// ValidationError lists the fields that failed input validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return "invalid " + e.Fields[0].Field + ": " + e.Fields[0].Message
}

// Invalid builds an InvalidInput error for op from field errors.
func Invalid(op string, fields ...FieldError) error {
	return &Error{Kind: InvalidInput, Op: op, Err: &ValidationError{Fields: fields}}
}

// Problem is an RFC 7807 body. RequestID and FieldErrors are extensions.
type Problem struct {
	Type        string       `json:"type,omitempty"`
	Title       string       `json:"title"`
	Status      int          `json:"status"`
	Detail      string       `json:"detail,omitempty"`
	Instance    string       `json:"instance,omitempty"`
	RequestID   string       `json:"request_id,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
}

// Write sends p as application/problem+json after filling in whatever r can
// supply.
func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	p.complete(r)
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// complete defaults Status to 500, Title to the status text, and Instance and
// RequestID to the request path and its X-Request-ID header.
func (p *Problem) complete(r *http.Request) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	if r == nil {
		return
	}
	if p.Instance == "" {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" {
		p.RequestID = r.Header.Get("X-Request-ID")
	}
}

// WriteStatus answers with a bare status and detail, e.g. a 413.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, detail string) {
	Write(w, r, Problem{Status: status, Detail: detail})
}

// WriteError answers with the status err's kind maps to. Details of storage
// failures are never exposed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	k := KindOf(err)
	p := Problem{Status: HTTPStatus(k)}
	switch k {
	case InvalidInput, NotFound:
		p.Detail = k.String()
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		p.FieldErrors = ve.Fields
	}
	Write(w, r, p)
}
