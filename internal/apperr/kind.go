package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the catalog reports.
type Kind int

const (
	// StorageFailure covers connectivity, constraint and driver errors. It is
	// also what any unclassified error collapses to.
	StorageFailure Kind = iota
	InvalidInput
	NotFound
	EncodingFailure
	// Conflict is a StorageFailure caused by a duplicate primary key.
	Conflict
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	case EncodingFailure:
		return "encoding_failure"
	case Conflict:
		return "conflict"
	default:
		return "storage_failure"
	}
}

// Error is a classified failure. Op names the operation that failed, e.g.
// "books.find_one".
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) and friends match on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidInput    = &Error{Kind: InvalidInput}
	ErrNotFound        = &Error{Kind: NotFound}
	ErrStorageFailure  = &Error{Kind: StorageFailure}
	ErrEncodingFailure = &Error{Kind: EncodingFailure}
	ErrConflict        = &Error{Kind: Conflict}
)

// E builds a classified error.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Wrap classifies err for op. Already classified errors keep their kind;
// Postgres errors are mapped through FromPG; everything else is a
// StorageFailure. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if k, ok := FromPG(err); ok {
		return &Error{Kind: k, Op: op, Err: err}
	}
	return &Error{Kind: StorageFailure, Op: op, Err: err}
}

// KindOf reports the kind of err. Unclassified errors are StorageFailure.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return StorageFailure
}

// HTTPStatus maps a kind onto the status code the API answers with. Conflict
// answers 500 like any other storage failure.
func HTTPStatus(k Kind) int {
	switch k {
	case InvalidInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
