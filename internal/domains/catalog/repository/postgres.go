package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"litshelf-backend/internal/domains/catalog/model"
)

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresBookRepository{pool: pool}
}

// Resolve finds a registered book for the ref: ISBN match first, then
// case-insensitive title plus lead author.
func (r *postgresBookRepository) Resolve(ctx context.Context, ref model.CatalogRef) (uuid.UUID, bool, error) {
	if ref.ISBN != nil && *ref.ISBN != "" {
		var id uuid.UUID
		err := r.pool.QueryRow(ctx,
			`SELECT id FROM books WHERE isbn = $1`, *ref.ISBN,
		).Scan(&id)
		if err == nil {
			return id, true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, fmt.Errorf("resolve book by isbn: %w", err)
		}
	}

	author := ref.FirstAuthor()
	if ref.Title == "" || author == "" {
		return uuid.Nil, false, nil
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM books
		 WHERE lower(title) = lower($1) AND lower(authors[1]) = lower($2)`,
		ref.Title, author,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("resolve book by title+author: %w", err)
	}

	return id, true, nil
}

func (r *postgresBookRepository) ResolveOrCreate(ctx context.Context, ref model.CatalogRef) (uuid.UUID, error) {
	if !ref.Valid() {
		return uuid.Nil, model.NewValidationError("book title is required")
	}

	if id, found, err := r.Resolve(ctx, ref); err != nil {
		return uuid.Nil, err
	} else if found {
		return id, nil
	}

	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO books (id, title, authors, isbn, first_publish_year, cover_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id,
		ref.Title,
		pq.Array(ref.Authors),
		ref.ISBN,
		ref.FirstPublishYear,
		ref.CoverURL,
		time.Now(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create book: %w", err)
	}

	return id, nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book := &model.Book{}
	var authors []string

	err := r.pool.QueryRow(ctx,
		`SELECT id, title, authors, isbn, first_publish_year, cover_url, created_at
		 FROM books WHERE id = $1`, id,
	).Scan(
		&book.ID,
		&book.Title,
		pq.Array(&authors),
		&book.ISBN,
		&book.FirstPublishYear,
		&book.CoverURL,
		&book.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	book.Authors = authors
	return book, nil
}

func (r *postgresBookRepository) GetRating(ctx context.Context, bookID uuid.UUID) (model.RatingAggregate, error) {
	var agg model.RatingAggregate

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), AVG(rating) FROM reviews WHERE book_id = $1`, bookID,
	).Scan(&agg.Count, &agg.Average)
	if err != nil {
		return model.RatingAggregate{}, fmt.Errorf("get book rating: %w", err)
	}

	return agg, nil
}
