// Package memory is an in-process book repository. It follows the same
// partial-update policy as the Postgres store and is what the handler and
// service tests run against.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/5w1tchy/books-catalog/internal/apperr"
	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/google/uuid"
)

const listLimit = 10

type entry struct {
	book models.Book
	seq  uint64 // bumped on every write, breaks updated_at ties
}

// Store keeps books in a map guarded by mu. The zero value is not usable; call
// New.
type Store struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]*entry
	seq   uint64
	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.clock = now }
}

// New returns an empty store stamping updated_at with time.Now unless
// WithClock says otherwise.
func New(opts ...Option) *Store {
	s := &Store{
		rows:  make(map[uuid.UUID]*entry),
		clock: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create stores b and writes the optional fields it carries. A duplicate id
// is a Conflict.
func (s *Store) Create(_ context.Context, b models.Book) error {
	const op = "memory.create"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[b.ID]; ok {
		return apperr.E(apperr.Conflict, op, fmt.Errorf("duplicate id %s", b.ID))
	}
	e := &entry{book: models.Book{ID: b.ID, Name: b.Name}}
	applyOptional(&e.book, b)
	s.touch(e)
	s.rows[b.ID] = e
	return nil
}

// FindOne returns a copy of the book stored under id, or NotFound.
func (s *Store) FindOne(_ context.Context, id uuid.UUID) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.rows[id]
	if !ok {
		return models.Book{}, apperr.E(apperr.NotFound, "memory.find_one", nil)
	}
	return clone(e.book), nil
}

// FindAll returns up to ten books, most recently updated first. Entries are
// sorted and copied under the read lock; writers mutate them in place.
func (s *Store) FindAll(_ context.Context) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entry, 0, len(s.rows))
	for _, e := range s.rows {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.book.UpdatedAt.Equal(b.book.UpdatedAt) {
			return a.book.UpdatedAt.After(b.book.UpdatedAt)
		}
		return a.seq > b.seq
	})
	if len(entries) > listLimit {
		entries = entries[:listLimit]
	}
	out := make([]models.Book, 0, len(entries))
	for _, e := range entries {
		out = append(out, clone(e.book))
	}
	return out, nil
}

// UpdateOne rewrites the name and each optional field present on b. Absent
// optional fields keep their stored value. A missing id is NotFound.
func (s *Store) UpdateOne(_ context.Context, b models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rows[b.ID]
	if !ok {
		return apperr.E(apperr.NotFound, "memory.update_one", nil)
	}
	e.book.Name = b.Name
	applyOptional(&e.book, b)
	s.touch(e)
	return nil
}

// Put stores b exactly as given, updated_at included. It exists to seed
// fixtures such as legacy rows.
func (s *Store) Put(b models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.rows[b.ID] = &entry{book: clone(b), seq: s.seq}
}

// touch must be called with mu held.
func (s *Store) touch(e *entry) {
	s.seq++
	e.seq = s.seq
	e.book.UpdatedAt = s.clock()
}

// applyOptional copies the optional fields present on src into dst. Absent
// fields leave dst alone.
func applyOptional(dst *models.Book, src models.Book) {
	if src.URL != nil {
		u := *src.URL
		dst.URL = &u
	}
	if src.PublishedYear != nil {
		y := *src.PublishedYear
		dst.PublishedYear = &y
	}
	if src.OriginalPublishedYear != nil {
		y := *src.OriginalPublishedYear
		dst.OriginalPublishedYear = &y
	}
}

func clone(b models.Book) models.Book {
	out := models.Book{ID: b.ID, Name: b.Name, UpdatedAt: b.UpdatedAt}
	applyOptional(&out, b)
	return out
}
