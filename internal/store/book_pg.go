package store

//Repository implementation (Postgres)

import (
	"context"
	"errors"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = `
	b.id, b.isbn, b.title, b.author, COALESCE(b.description, ''), COALESCE(b.publisher, ''),
	b.published_date, b.total_copies, b.borrowed_copies, b.created_at, b.updated_at,
	COALESCE(array_agg(g.id::text ORDER BY g.name) FILTER (WHERE g.id IS NOT NULL), '{}'),
	COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.id IS NOT NULL), '{}')`

func (r *BookPG) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	query := `
	SELECT ` + bookColumns + `,
		COUNT(*) OVER () AS total
	FROM books b
	LEFT JOIN book_genres bg ON bg.book_id = b.id
	LEFT JOIN genres g ON g.id = bg.genre_id
	WHERE ($1 = '' OR EXISTS (
		SELECT 1 FROM book_genres bg2
		JOIN genres g2 ON g2.id = bg2.genre_id
		WHERE bg2.book_id = b.id AND g2.name = $1))
	AND ($2 = '' OR b.author = $2)
	AND ($3 = '' OR b.title ILIKE '%' || $3 || '%' OR b.author ILIKE '%' || $3 || '%')
	GROUP BY b.id
	ORDER BY b.title
	LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query, p.Genre, p.Author, p.Q, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []entity.Book
	var total int
	for rows.Next() {
		b, t, err := scanBookWithTotal(rows)
		if err != nil {
			return nil, 0, err
		}
		total = t
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books b
	LEFT JOIN book_genres bg ON bg.book_id = b.id
	LEFT JOIN genres g ON g.id = bg.genre_id
	WHERE b.id = $1
	GROUP BY b.id
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return entity.Book{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return entity.Book{}, err
		}
		return entity.Book{}, usecase.ErrNotFound
	}
	return scanBook(rows)
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book, genreIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insert = `
	INSERT INTO books (id, isbn, title, author, description, publisher, published_date, total_copies)
	VALUES (gen_random_uuid(), $1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
	RETURNING id, borrowed_copies, created_at, updated_at
	`
	err = tx.QueryRow(ctx, insert, b.ISBN, b.Title, b.Author, b.Description, b.Publisher, b.PublishedDate, b.TotalCopies).
		Scan(&b.ID, &b.BorrowedCopies, &b.CreatedAt, &b.UpdatedAt)
	if isUniqueViolation(err) {
		return usecase.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	if err := attachGenres(ctx, tx, b, genreIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BookPG) Update(ctx context.Context, b *entity.Book, genreIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// borrowed_copies is deliberately left out; only the ledger touches it.
	const update = `
	UPDATE books
	SET isbn = $2, title = $3, author = $4, description = NULLIF($5, ''),
		publisher = NULLIF($6, ''), published_date = $7, total_copies = $8, updated_at = now()
	WHERE id = $1
	RETURNING borrowed_copies, created_at, updated_at
	`
	err = tx.QueryRow(ctx, update, b.ID, b.ISBN, b.Title, b.Author, b.Description, b.Publisher, b.PublishedDate, b.TotalCopies).
		Scan(&b.BorrowedCopies, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	if isUniqueViolation(err) {
		return usecase.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, b.ID); err != nil {
		return err
	}
	if err := attachGenres(ctx, tx, b, genreIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BookPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func attachGenres(ctx context.Context, tx pgx.Tx, b *entity.Book, genreIDs []string) error {
	b.Genres = b.Genres[:0]
	for _, genreID := range genreIDs {
		const link = `
		INSERT INTO book_genres (book_id, genre_id)
		SELECT $1, id FROM genres WHERE id = $2
		RETURNING (SELECT name FROM genres WHERE id = $2)
		`
		var name string
		if err := tx.QueryRow(ctx, link, b.ID, genreID).Scan(&name); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return usecase.ErrNotFound
			}
			return err
		}
		b.Genres = append(b.Genres, entity.Genre{ID: genreID, Name: name})
	}
	return nil
}

func scanBook(rows pgx.Rows) (entity.Book, error) {
	var b entity.Book
	var genreIDs, genreNames []string
	err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Description, &b.Publisher,
		&b.PublishedDate, &b.TotalCopies, &b.BorrowedCopies, &b.CreatedAt, &b.UpdatedAt,
		&genreIDs, &genreNames)
	if err != nil {
		return entity.Book{}, err
	}
	b.Genres = zipGenres(genreIDs, genreNames)
	return b, nil
}

func scanBookWithTotal(rows pgx.Rows) (entity.Book, int, error) {
	var b entity.Book
	var genreIDs, genreNames []string
	var total int
	err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Description, &b.Publisher,
		&b.PublishedDate, &b.TotalCopies, &b.BorrowedCopies, &b.CreatedAt, &b.UpdatedAt,
		&genreIDs, &genreNames, &total)
	if err != nil {
		return entity.Book{}, 0, err
	}
	b.Genres = zipGenres(genreIDs, genreNames)
	return b, total, nil
}

func zipGenres(ids, names []string) []entity.Genre {
	genres := make([]entity.Genre, 0, len(ids))
	for i := range ids {
		genres = append(genres, entity.Genre{ID: ids[i], Name: names[i]})
	}
	return genres
}
