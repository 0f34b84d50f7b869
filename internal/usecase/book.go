package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// object for filter
type ListParams struct {
	Genre  string
	Author string
	Q      string
	Limit  int
	Offset int
}

// BookRepository is the catalog store. Copy counts on books are read through
// here but only ever mutated by the borrowing ledger.
type BookRepository interface {
	// List books with pagination and filters, plus the unpaged total.
	List(ctx context.Context, p ListParams) ([]entity.Book, int, error)
	GetByID(ctx context.Context, id string) (entity.Book, error)
	// Create inserts the book and attaches the given genres.
	Create(ctx context.Context, b *entity.Book, genreIDs []string) error
	// Update rewrites the book's metadata and genre set. total_copies may be
	// changed here; borrowed_copies may not.
	Update(ctx context.Context, b *entity.Book, genreIDs []string) error
	Delete(ctx context.Context, id string) error
}
