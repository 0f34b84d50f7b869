package store

import (
	"context"
	"errors"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FinePG struct {
	db *pgxpool.Pool
}

func NewFinePG(db *pgxpool.Pool) *FinePG {
	return &FinePG{db: db}
}

func (r *FinePG) Upsert(ctx context.Context, f *entity.Fine) error {
	const query = `
	INSERT INTO fines (id, borrowing_id, fine_amount)
	VALUES (gen_random_uuid(), $1, $2)
	ON CONFLICT (borrowing_id)
	DO UPDATE SET fine_amount = EXCLUDED.fine_amount
	RETURNING id, paid, created_at
	`
	err := r.db.QueryRow(ctx, query, f.BorrowingID, f.FineAmount).Scan(&f.ID, &f.Paid, &f.CreatedAt)
	if isForeignKeyViolation(err) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *FinePG) GetByID(ctx context.Context, id string) (entity.Fine, error) {
	const query = `
	SELECT id, borrowing_id, fine_amount, paid, created_at
	FROM fines
	WHERE id = $1
	`
	var f entity.Fine
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.BorrowingID, &f.FineAmount, &f.Paid, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Fine{}, usecase.ErrNotFound
		}
		return entity.Fine{}, err
	}
	return f, nil
}

func (r *FinePG) GetByBorrowingID(ctx context.Context, borrowingID string) (entity.Fine, error) {
	const query = `
	SELECT id, borrowing_id, fine_amount, paid, created_at
	FROM fines
	WHERE borrowing_id = $1
	`
	var f entity.Fine
	err := r.db.QueryRow(ctx, query, borrowingID).Scan(&f.ID, &f.BorrowingID, &f.FineAmount, &f.Paid, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Fine{}, usecase.ErrNotFound
		}
		return entity.Fine{}, err
	}
	return f, nil
}

func (r *FinePG) List(ctx context.Context, limit, offset int) ([]entity.Fine, int, error) {
	const query = `
	SELECT id, borrowing_id, fine_amount, paid, created_at,
		COUNT(*) OVER () AS total
	FROM fines
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var fines []entity.Fine
	var total int
	for rows.Next() {
		var f entity.Fine
		if err := rows.Scan(&f.ID, &f.BorrowingID, &f.FineAmount, &f.Paid, &f.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		fines = append(fines, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return fines, total, nil
}

func (r *FinePG) MarkPaid(ctx context.Context, id string) (entity.Fine, error) {
	const query = `
	UPDATE fines
	SET paid = TRUE
	WHERE id = $1
	RETURNING id, borrowing_id, fine_amount, paid, created_at
	`
	var f entity.Fine
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.BorrowingID, &f.FineAmount, &f.Paid, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Fine{}, usecase.ErrNotFound
		}
		return entity.Fine{}, err
	}
	return f, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
