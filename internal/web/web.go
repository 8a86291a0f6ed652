// Package web renders the browser-facing book list.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/5w1tchy/books-catalog/internal/webclient"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Lister is satisfied by *webclient.Client.
type Lister interface {
	ListBooks(ctx context.Context) ([]webclient.Book, error)
}

type row struct {
	ID   string
	Name string
	URL  string
}

type page struct {
	Books []row
	Error string
}

func rows(books []webclient.Book) []row {
	out := make([]row, 0, len(books))
	for _, b := range books {
		r := row{ID: b.ID.String(), Name: b.Name}
		if b.URL != nil {
			r.URL = *b.URL
		}
		out = append(out, r)
	}
	return out
}

// Handler serves the book table at "/" and a 404 page anywhere else.
func Handler(books Lister) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		list, err := books.ListBooks(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("listing books from api failed")
			render(w, http.StatusBadGateway, "books.html", page{Error: "The books API is unavailable."})
			return
		}
		render(w, http.StatusOK, "books.html", page{Books: rows(list)})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusNotFound, "not_found.html", nil)
	})
	return mux
}

func render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Warn().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
