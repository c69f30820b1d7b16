package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repository.go -package=mocks

// Repository defines the contract for book storage. Implementations translate
// driver errors into the sentinel errors of this package, so callers never
// inspect driver error types.
type Repository interface {
	Insert(ctx context.Context, in CreateInput) (Book, error)
	FindPage(ctx context.Context, skip, limit int) ([]Book, int, error)
	FindByID(ctx context.Context, id string) (Book, error)
	UpdateByID(ctx context.Context, id string, in UpdateInput) (Book, error)
	DeleteByID(ctx context.Context, id string) error
	FindByPattern(ctx context.Context, term string, limit int) ([]Book, error)
}
