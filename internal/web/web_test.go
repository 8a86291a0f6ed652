package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/5w1tchy/books-catalog/internal/webclient"
)

type fakeLister struct {
	books []webclient.Book
	err   error
}

func (f fakeLister) ListBooks(context.Context) ([]webclient.Book, error) {
	return f.books, f.err
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndexRendersTable(t *testing.T) {
	u := "https://example.org/dune"
	id := uuid.New()
	h := Handler(fakeLister{books: []webclient.Book{
		{ID: id, Name: "Dune", URL: &u},
		{ID: uuid.New(), Name: "<script>", URL: nil},
	}})

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{id.String(), "Dune", `href="https://example.org/dune"`, "&lt;script&gt;"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "<script>") {
		t.Error("names must be escaped")
	}
}

func TestIndexAPIFailure(t *testing.T) {
	h := Handler(fakeLister{err: errors.New("connection refused")})

	rec := get(t, h, "/")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unavailable") {
		t.Errorf("want unavailable notice, got %s", rec.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	rec := get(t, Handler(fakeLister{}), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("want html, got %q", ct)
	}
}
