package book

import (
	"context"
)

// searchLimit caps the number of rows a fuzzy search returns.
const searchLimit = 10

// Service provides catalog business logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the payload and stores a new book.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	if err := ValidateCreate(in); err != nil {
		return Book{}, err
	}
	return s.repo.Insert(ctx, in)
}

// List returns one page of the catalog ordered by title, plus the total count.
func (s *Service) List(ctx context.Context, skip, limit int) ([]Book, int, error) {
	return s.repo.FindPage(ctx, skip, limit)
}

// Get returns a book by its identifier.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Update validates the provided fields and merges them onto the stored record.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	if err := ValidateUpdate(in); err != nil {
		return Book{}, err
	}
	return s.repo.UpdateByID(ctx, id, in)
}

// Delete removes a book by its identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// Search returns books whose title, author, or genre contains term,
// case-insensitively.
func (s *Service) Search(ctx context.Context, term string) ([]Book, error) {
	return s.repo.FindByPattern(ctx, term, searchLimit)
}
