package middlewares_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "github.com/5w1tchy/books-catalog/internal/api/middlewares"
)

const testLimit = 1 << 10

func readAllHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestBodySizeLimit_AcceptsSmallBodies(t *testing.T) {
	wrapped := mw.BodySizeLimit(testLimit)(readAllHandler())

	req := httptest.NewRequest("POST", "/books", bytes.NewReader([]byte(`{"name":"Dune"}`)))
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_RejectsLargeBodies(t *testing.T) {
	for _, method := range []string{"POST", "PUT"} {
		t.Run(method, func(t *testing.T) {
			wrapped := mw.BodySizeLimit(testLimit)(readAllHandler())

			largeBody := bytes.Repeat([]byte("a"), testLimit+1)
			req := httptest.NewRequest(method, "/books", bytes.NewReader(largeBody))
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Errorf("Expected 413, got %d", rec.Code)
			}
		})
	}
}

func TestBodySizeLimit_OnlyAppliesToMutatingMethods(t *testing.T) {
	wrapped := mw.BodySizeLimit(testLimit)(readAllHandler())

	req := httptest.NewRequest("GET", "/books", strings.NewReader(strings.Repeat("x", testLimit*2)))
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for GET, got %d", rec.Code)
	}
}
