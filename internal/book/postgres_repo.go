package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the adapter discriminates on.
const (
	codeUniqueViolation  = "23505"
	codeNotNullViolation = "23502"
	codeCheckViolation   = "23514"
)

const bookColumns = `id, title, author, genre, published_year, isbn, stock_count, created_at, updated_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Insert(ctx context.Context, in CreateInput) (Book, error) {
	const query = `
	INSERT INTO books (title, author, genre, published_year, isbn, stock_count)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query,
		in.Title, in.Author, in.Genre, in.PublishedYear, in.ISBN, in.StockCount))
	if err != nil {
		return Book{}, storeErr("insert book", err)
	}
	return b, nil
}

func (r *PostgresRepo) FindPage(ctx context.Context, skip, limit int) ([]Book, int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, storeErr("count books", err)
	}

	const query = `
	SELECT ` + bookColumns + `
	FROM books
	ORDER BY title
	LIMIT $1 OFFSET $2
	`
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, query, limit, skip)
	if err != nil {
		return nil, 0, storeErr("list books", err)
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, storeErr("list books", err)
	}
	return books, total, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, ErrInvalidID
	}

	const query = `SELECT ` + bookColumns + ` FROM books WHERE id = $1 LIMIT 1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		return Book{}, storeErr("find book", err)
	}
	return b, nil
}

// UpdateByID merges the provided fields onto the stored record in a single
// statement; absent fields arrive as NULL and keep the stored value. The
// table constraints re-check the merged row, so a violation leaves the
// record untouched.
func (r *PostgresRepo) UpdateByID(ctx context.Context, id string, in UpdateInput) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, ErrInvalidID
	}

	const query = `
	UPDATE books
	SET title = COALESCE($2, title),
	    author = COALESCE($3, author),
	    genre = COALESCE($4, genre),
	    published_year = COALESCE($5, published_year),
	    isbn = COALESCE($6, isbn),
	    stock_count = COALESCE($7, stock_count),
	    updated_at = now()
	WHERE id = $1
	RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id,
		in.Title, in.Author, in.Genre, in.PublishedYear, in.ISBN, in.StockCount))
	if err != nil {
		return Book{}, storeErr("update book", err)
	}
	return b, nil
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) FindByPattern(ctx context.Context, term string, limit int) ([]Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE title ILIKE $1 OR author ILIKE $1 OR genre ILIKE $1
	LIMIT $2
	`
	pattern := "%" + term + "%"
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, pattern, limit)
	if err != nil {
		return nil, storeErr("search books", err)
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, storeErr("search books", err)
	}
	return books, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Genre,
		&b.PublishedYear, &b.ISBN, &b.StockCount, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func collectBooks(rows pgx.Rows) ([]Book, error) {
	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// storeErr translates driver errors into the package sentinels. Anything not
// recognized is wrapped and surfaces as a store failure.
func storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return ErrDuplicateISBN
		case codeNotNullViolation, codeCheckViolation:
			return ErrInvalidBook
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
