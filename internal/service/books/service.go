package books

import (
	"context"

	"github.com/5w1tchy/books-catalog/internal/models"
	"github.com/google/uuid"
)

// Repository is the storage contract the service needs. The Postgres store
// and the in-memory store both satisfy it.
type Repository interface {
	Create(ctx context.Context, b models.Book) error
	FindOne(ctx context.Context, id uuid.UUID) (models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	UpdateOne(ctx context.Context, b models.Book) error
}

// Service provides the catalog's user-level operations.
type Service struct {
	repo  Repository
	newID func() uuid.UUID
}

type Option func(*Service)

// WithIDGenerator overrides uuid.New, mostly for tests.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, newID: uuid.New}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register stores a new book and returns it. The id is the caller's when
// supplied, otherwise freshly generated.
func (s *Service) Register(ctx context.Context, in models.CreateInput) (models.Book, error) {
	var id uuid.UUID
	if in.ID != nil {
		id = *in.ID
	} else {
		id = s.newID()
	}
	b := models.NewBook(id, in)
	if err := s.repo.Create(ctx, b); err != nil {
		return models.Book{}, err
	}
	return b, nil
}

func (s *Service) GetOne(ctx context.Context, id uuid.UUID) (models.Book, error) {
	return s.repo.FindOne(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.repo.FindAll(ctx)
}

// Update loads the stored book, applies the present fields of in and writes
// the result back. A missing book is reported without any write.
//
// The read and the write are not atomic: a concurrent update of the same id
// may land in between, and the later write wins per column.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in models.UpdateInput) error {
	prev, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.UpdateOne(ctx, prev.Merge(in))
}
