package usecase

import (
	"context"
	"time"

	"libraryapi/internal/entity"
)

// Ledger is the authoritative state machine for borrowings: it guards the
// due-date rule and delegates the copy-count accounting to the repository's
// atomic operations.
type Ledger struct {
	borrowings BorrowingRepository
	now        func() time.Time
}

func NewLedger(borrowings BorrowingRepository) *Ledger {
	return &Ledger{borrowings: borrowings, now: time.Now}
}

// CreateBorrowing borrows one copy of bookID for memberID. The due date must
// not precede the borrow date.
func (l *Ledger) CreateBorrowing(ctx context.Context, memberID, bookID string, dueDate time.Time) (entity.Borrowing, error) {
	borrowedAt := l.now()
	if dateOnly(dueDate).Before(dateOnly(borrowedAt)) {
		return entity.Borrowing{}, ErrInvalidDueDate
	}

	b := entity.Borrowing{
		MemberID:   &memberID,
		BookID:     &bookID,
		BorrowedAt: borrowedAt,
		DueDate:    dateOnly(dueDate),
	}
	if err := l.borrowings.Create(ctx, &b); err != nil {
		return entity.Borrowing{}, err
	}
	return b, nil
}

// ReturnBorrowing closes an active borrowing and releases its copy. Returning
// an already-closed borrowing is idempotent: the copy is not released twice
// and returned_at keeps its original value.
func (l *Ledger) ReturnBorrowing(ctx context.Context, id string) (entity.Borrowing, error) {
	return l.borrowings.MarkReturned(ctx, id, l.now())
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
