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

type GenrePG struct {
	db *pgxpool.Pool
}

func NewGenrePG(db *pgxpool.Pool) *GenrePG {
	return &GenrePG{db: db}
}

func (r *GenrePG) List(ctx context.Context) ([]entity.Genre, error) {
	const query = `
	SELECT id, name, COALESCE(description, ''), created_at
	FROM genres
	ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []entity.Genre
	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *GenrePG) GetByID(ctx context.Context, id string) (entity.Genre, error) {
	const query = `
	SELECT id, name, COALESCE(description, ''), created_at
	FROM genres
	WHERE id = $1
	`
	var g entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Genre{}, usecase.ErrNotFound
		}
		return entity.Genre{}, err
	}
	return g, nil
}

func (r *GenrePG) Create(ctx context.Context, g *entity.Genre) error {
	const query = `
	INSERT INTO genres (id, name, description)
	VALUES (gen_random_uuid(), $1, NULLIF($2, ''))
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, g.Name, g.Description).Scan(&g.ID, &g.CreatedAt)
	if isUniqueViolation(err) {
		return usecase.ErrAlreadyExists
	}
	return err
}

func (r *GenrePG) Update(ctx context.Context, g *entity.Genre) error {
	const query = `
	UPDATE genres
	SET name = $2, description = NULLIF($3, '')
	WHERE id = $1
	RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, g.ID, g.Name, g.Description).Scan(&g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	if isUniqueViolation(err) {
		return usecase.ErrAlreadyExists
	}
	return err
}

func (r *GenrePG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
