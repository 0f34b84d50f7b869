package store

import (
	"context"
	"errors"
	"time"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BorrowingPG persists borrowings and owns the copy-count accounting on the
// books table. Both mutations run inside a transaction holding a row lock on
// the book, so two concurrent borrows of the last copy cannot both succeed.
type BorrowingPG struct {
	db *pgxpool.Pool
}

func NewBorrowingPG(db *pgxpool.Pool) *BorrowingPG {
	return &BorrowingPG{db: db}
}

func (r *BorrowingPG) Create(ctx context.Context, b *entity.Borrowing) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var total, borrowed int
	err = tx.QueryRow(ctx,
		`SELECT total_copies, borrowed_copies FROM books WHERE id = $1 FOR UPDATE`,
		b.BookID).Scan(&total, &borrowed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		return err
	}
	if borrowed >= total {
		return usecase.ErrInsufficientCopies
	}

	_, err = tx.Exec(ctx,
		`UPDATE books SET borrowed_copies = borrowed_copies + 1, updated_at = now() WHERE id = $1`,
		b.BookID)
	if err != nil {
		return err
	}

	const insert = `
	INSERT INTO borrowings (id, member_id, book_id, borrowed_at, due_date, returned)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, FALSE)
	RETURNING id
	`
	if err := tx.QueryRow(ctx, insert, b.MemberID, b.BookID, b.BorrowedAt, b.DueDate).Scan(&b.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BorrowingPG) GetByID(ctx context.Context, id string) (entity.Borrowing, error) {
	const query = `
	SELECT id, member_id, book_id, borrowed_at, due_date, returned_at, returned
	FROM borrowings
	WHERE id = $1
	`
	var b entity.Borrowing
	err := r.db.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.MemberID, &b.BookID, &b.BorrowedAt, &b.DueDate, &b.ReturnedAt, &b.Returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Borrowing{}, usecase.ErrNotFound
		}
		return entity.Borrowing{}, err
	}
	return b, nil
}

func (r *BorrowingPG) List(ctx context.Context, f usecase.BorrowingFilter) ([]entity.Borrowing, int, error) {
	const query = `
	SELECT id, member_id, book_id, borrowed_at, due_date, returned_at, returned,
		COUNT(*) OVER () AS total
	FROM borrowings
	WHERE ($1 = '' OR member_id::text = $1)
	AND (NOT $2::boolean OR returned = FALSE)
	AND (NOT $3::boolean OR (returned = FALSE AND due_date < CURRENT_DATE))
	ORDER BY borrowed_at DESC
	LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query, f.MemberID, f.Active, f.Overdue, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var borrowings []entity.Borrowing
	var total int
	for rows.Next() {
		var b entity.Borrowing
		if err := rows.Scan(&b.ID, &b.MemberID, &b.BookID, &b.BorrowedAt, &b.DueDate, &b.ReturnedAt, &b.Returned, &total); err != nil {
			return nil, 0, err
		}
		borrowings = append(borrowings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return borrowings, total, nil
}

// MarkReturned closes the borrowing and releases its copy. The borrowing row
// is locked first so a doubled-up return cannot decrement twice; an already
// closed borrowing comes back unchanged.
func (r *BorrowingPG) MarkReturned(ctx context.Context, id string, returnedAt time.Time) (entity.Borrowing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Borrowing{}, err
	}
	defer tx.Rollback(ctx)

	var b entity.Borrowing
	err = tx.QueryRow(ctx,
		`SELECT id, member_id, book_id, borrowed_at, due_date, returned_at, returned
		FROM borrowings WHERE id = $1 FOR UPDATE`,
		id).Scan(&b.ID, &b.MemberID, &b.BookID, &b.BorrowedAt, &b.DueDate, &b.ReturnedAt, &b.Returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Borrowing{}, usecase.ErrNotFound
		}
		return entity.Borrowing{}, err
	}

	if b.Returned {
		return b, nil
	}

	if b.BookID != nil {
		// GREATEST clamps at zero in case the counter ever drifted.
		_, err = tx.Exec(ctx,
			`UPDATE books SET borrowed_copies = GREATEST(borrowed_copies - 1, 0), updated_at = now() WHERE id = $1`,
			*b.BookID)
		if err != nil {
			return entity.Borrowing{}, err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE borrowings SET returned = TRUE, returned_at = $2 WHERE id = $1`,
		id, returnedAt)
	if err != nil {
		return entity.Borrowing{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entity.Borrowing{}, err
	}

	b.Returned = true
	b.ReturnedAt = &returnedAt
	return b, nil
}
