package store

import (
	"context"
	"testing"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestBorrowing(t *testing.T, repo *BorrowingPG, memberID, bookID string) string {
	t.Helper()
	b := newTestBorrowing(memberID, bookID)
	require.NoError(t, repo.Create(context.Background(), b))
	return b.ID
}

func TestFinePG_UpsertRecalculates(t *testing.T) {
	db := setupTestDB(t)
	borrowings := NewBorrowingPG(db)
	repo := NewFinePG(db)
	ctx := context.Background()

	memberID := createTestMember(t, db)
	bookID := createTestBook(t, db, 1)
	borrowingID := createTestBorrowing(t, borrowings, memberID, bookID)

	first := &entity.Fine{BorrowingID: borrowingID, FineAmount: 10}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotEmpty(t, first.ID)
	require.False(t, first.Paid)

	// Recalculating overwrites the amount but keeps the same row.
	second := &entity.Fine{BorrowingID: borrowingID, FineAmount: 30}
	require.NoError(t, repo.Upsert(ctx, second))
	require.Equal(t, first.ID, second.ID)
	require.WithinDuration(t, first.CreatedAt, second.CreatedAt, time.Second)

	found, err := repo.GetByBorrowingID(ctx, borrowingID)
	require.NoError(t, err)
	require.Equal(t, int64(30), found.FineAmount)
}

func TestFinePG_UpsertUnknownBorrowing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFinePG(db)
	ctx := context.Background()

	err := repo.Upsert(ctx, &entity.Fine{BorrowingID: uuid.NewString(), FineAmount: 10})
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestFinePG_MarkPaid(t *testing.T) {
	db := setupTestDB(t)
	borrowings := NewBorrowingPG(db)
	repo := NewFinePG(db)
	ctx := context.Background()

	memberID := createTestMember(t, db)
	bookID := createTestBook(t, db, 1)
	borrowingID := createTestBorrowing(t, borrowings, memberID, bookID)

	fine := &entity.Fine{BorrowingID: borrowingID, FineAmount: 20}
	require.NoError(t, repo.Upsert(ctx, fine))

	paid, err := repo.MarkPaid(ctx, fine.ID)
	require.NoError(t, err)
	require.True(t, paid.Paid)

	// Paid survives a later recalculation.
	require.NoError(t, repo.Upsert(ctx, &entity.Fine{BorrowingID: borrowingID, FineAmount: 40}))
	found, err := repo.GetByID(ctx, fine.ID)
	require.NoError(t, err)
	require.True(t, found.Paid)
	require.Equal(t, int64(40), found.FineAmount)
}

func TestFinePG_MarkPaidUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFinePG(db)
	ctx := context.Background()

	_, err := repo.MarkPaid(ctx, uuid.NewString())
	require.ErrorIs(t, err, usecase.ErrNotFound)
}
