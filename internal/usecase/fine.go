package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

type FineRepository interface {
	// Upsert writes f.FineAmount for f.BorrowingID, inserting the fine on
	// first calculation. created_at and paid survive recalculation.
	Upsert(ctx context.Context, f *entity.Fine) error
	GetByID(ctx context.Context, id string) (entity.Fine, error)
	GetByBorrowingID(ctx context.Context, borrowingID string) (entity.Fine, error)
	List(ctx context.Context, limit, offset int) ([]entity.Fine, int, error)
	MarkPaid(ctx context.Context, id string) (entity.Fine, error)
}
