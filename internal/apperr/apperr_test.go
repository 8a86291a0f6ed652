package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))

	plain := Wrap("books.create", errors.New("boom"))
	assert.Equal(t, StorageFailure, KindOf(plain))
	assert.ErrorIs(t, plain, ErrStorageFailure)

	dup := Wrap("books.create", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}))
	assert.Equal(t, Conflict, KindOf(dup))

	notNull := Wrap("books.create", &pgconn.PgError{Code: "23502"})
	assert.Equal(t, StorageFailure, KindOf(notNull))

	nf := E(NotFound, "books.find_one", nil)
	assert.Same(t, nf, Wrap("books.update_one", nf), "classified errors keep their kind and op")
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, StorageFailure, KindOf(errors.New("anything")))
}

func TestIsMatchesOnKindOnly(t *testing.T) {
	err := E(NotFound, "memory.find_one", nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, E(NotFound, "other.op", nil))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		InvalidInput:    http.StatusBadRequest,
		NotFound:        http.StatusNotFound,
		StorageFailure:  http.StatusInternalServerError,
		EncodingFailure: http.StatusInternalServerError,
		Conflict:        http.StatusInternalServerError,
	}
	for k, want := range cases {
		assert.Equal(t, want, HTTPStatus(k), k.String())
	}
}

func TestPGFields(t *testing.T) {
	code, constraint := PGFields(&pgconn.PgError{Code: "23505", ConstraintName: "books_pkey"})
	assert.Equal(t, "23505", code)
	assert.Equal(t, "books_pkey", constraint)

	code, constraint = PGFields(errors.New("not pg"))
	assert.Empty(t, code)
	assert.Empty(t, constraint)
}

func TestWriteErrorHidesStorageDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	rec := httptest.NewRecorder()

	WriteError(rec, req, Wrap("books.find_all", errors.New("password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "password")

	var p Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Internal Server Error", p.Title)
	assert.Equal(t, "/books", p.Instance)
	assert.Equal(t, "rid-1", p.RequestID)
	assert.Empty(t, p.Detail)
}

func TestWriteErrorValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Invalid("books.create", FieldError{Field: "url", Code: "url", Message: "bad"})

	WriteError(rec, httptest.NewRequest(http.MethodPost, "/books", nil), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var p Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "invalid_input", p.Detail)
	require.Len(t, p.FieldErrors, 1)
	assert.Equal(t, "url", p.FieldErrors[0].Field)
}

func TestWriteFillsDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, nil, Problem{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var p Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Internal Server Error", p.Title)
	assert.Empty(t, p.Instance)
	assert.Empty(t, p.RequestID)
}

func TestWriteStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	WriteStatus(rec, req, http.StatusRequestEntityTooLarge, "request body exceeds 1024 bytes")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var p Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Request Entity Too Large", p.Title)
	assert.Equal(t, "request body exceeds 1024 bytes", p.Detail)
	assert.Equal(t, "/books", p.Instance)
}
