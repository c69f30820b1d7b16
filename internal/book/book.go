package book

import (
	"errors"
	"time"
)

// Sentinel errors returned by the Repository. The HTTP layer maps these to
// status codes; anything else is treated as a store failure.
var (
	ErrNotFound      = errors.New("book not found")
	ErrInvalidID     = errors.New("invalid book id")
	ErrDuplicateISBN = errors.New("isbn already exists")
	ErrInvalidBook   = errors.New("book rejected by catalog constraints")
)

// Book represents one catalog entry.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	PublishedYear int       `json:"publishedYear"`
	ISBN          string    `json:"isbn"`
	StockCount    int       `json:"stockCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateInput is the payload for creating a book. The numeric fields are
// pointers so a zero value still satisfies the required rule.
type CreateInput struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Genre         string `json:"genre" validate:"required"`
	PublishedYear *int   `json:"publishedYear" validate:"required,gte=0"`
	ISBN          string `json:"isbn" validate:"required"`
	StockCount    *int   `json:"stockCount" validate:"required,gte=0"`
}

// UpdateInput is a partial payload merged onto the stored record. Absent
// fields keep their stored values, so only provided fields can invalidate
// the merge.
type UpdateInput struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Genre         *string `json:"genre"`
	PublishedYear *int    `json:"publishedYear"`
	ISBN          *string `json:"isbn"`
	StockCount    *int    `json:"stockCount"`
}
