package usecase

import (
	"context"
	"time"

	"libraryapi/internal/entity"
)

// FinePerDay is the penalty per overdue day, in whole currency units.
const FinePerDay = 10

// FineCalculator derives the overdue penalty for a still-active borrowing.
// Recalculating on the same day yields the same amount; later calls recompute
// a larger amount as days accrue. A paid fine is not blocked from
// recalculation (matches the reference behavior, see DESIGN.md).
type FineCalculator struct {
	borrowings BorrowingRepository
	fines      FineRepository
	now        func() time.Time
}

func NewFineCalculator(borrowings BorrowingRepository, fines FineRepository) *FineCalculator {
	return &FineCalculator{borrowings: borrowings, fines: fines, now: time.Now}
}

// CalculateFine computes max(0, days overdue * FinePerDay) for the borrowing
// and upserts it on the associated fine. A closed borrowing yields
// ErrAlreadyReturned and the fine is left untouched.
func (c *FineCalculator) CalculateFine(ctx context.Context, borrowingID string) (entity.Fine, error) {
	b, err := c.borrowings.GetByID(ctx, borrowingID)
	if err != nil {
		return entity.Fine{}, err
	}
	if b.Returned {
		return entity.Fine{}, ErrAlreadyReturned
	}

	overdueDays := int64(dateOnly(c.now()).Sub(dateOnly(b.DueDate)).Hours() / 24)
	amount := overdueDays * FinePerDay
	if amount < 0 {
		amount = 0
	}

	fine := entity.Fine{
		BorrowingID: borrowingID,
		FineAmount:  amount,
	}
	if err := c.fines.Upsert(ctx, &fine); err != nil {
		return entity.Fine{}, err
	}
	return fine, nil
}
