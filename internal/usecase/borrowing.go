package usecase

import (
	"context"
	"time"

	"libraryapi/internal/entity"
)

// BorrowingFilter narrows borrowing listings. Active and Overdue mirror the
// two canonical queries: still-out borrowings, and still-out borrowings past
// their due date.
type BorrowingFilter struct {
	MemberID string
	Active   bool
	Overdue  bool
	Limit    int
	Offset   int
}

// BorrowingRepository persists borrowings together with the copy-count
// accounting on the referenced book. Create and MarkReturned are atomic: the
// book row is locked for the duration, so the book mutation and the borrowing
// write land together or not at all.
type BorrowingRepository interface {
	// Create claims one available copy of b.BookID and inserts the borrowing.
	// Returns ErrNotFound if the book does not exist and ErrInsufficientCopies
	// if no copy is free; in both cases nothing is persisted.
	Create(ctx context.Context, b *entity.Borrowing) error
	GetByID(ctx context.Context, id string) (entity.Borrowing, error)
	List(ctx context.Context, f BorrowingFilter) ([]entity.Borrowing, int, error)
	// MarkReturned closes the borrowing and releases its copy. Calling it on
	// an already-closed borrowing is a no-op that returns the record unchanged.
	MarkReturned(ctx context.Context, id string, returnedAt time.Time) (entity.Borrowing, error)
}
