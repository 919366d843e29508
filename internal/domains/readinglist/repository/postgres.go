package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/readinglist/model"
	"litshelf-backend/pkg/database"
)

type postgresReadingListRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReadingListRepository(pool *pgxpool.Pool) ReadingListRepository {
	return &postgresReadingListRepository{pool: pool}
}

func (r *postgresReadingListRepository) Upsert(ctx context.Context, userID, bookID uuid.UUID, status model.Status) (bool, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		// The WHERE clause makes a same-status upsert a no-op, so the
		// command tag distinguishes a real change from a repeat.
		tag, err := tx.Exec(ctx, `
			INSERT INTO user_books (user_id, book_id, status, created_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (user_id, book_id)
			DO UPDATE SET status = EXCLUDED.status
			WHERE user_books.status IS DISTINCT FROM EXCLUDED.status`,
			userID, bookID, string(status),
		)
		if err != nil {
			return false, fmt.Errorf("upsert reading status: %w", err)
		}

		changed := tag.RowsAffected() > 0
		if changed {
			_, err = tx.Exec(ctx, `
				INSERT INTO activity (user_id, kind, book_id, created_at)
				VALUES ($1, 'status', $2, NOW())`,
				userID, bookID,
			)
			if err != nil {
				return false, fmt.Errorf("log status activity: %w", err)
			}
		}
		return changed, nil
	})
}

func (r *postgresReadingListRepository) Remove(ctx context.Context, userID, bookID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM user_books WHERE user_id = $1 AND book_id = $2`,
		userID, bookID,
	)
	if err != nil {
		return fmt.Errorf("remove reading status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotTracked
	}
	return nil
}

func (r *postgresReadingListRepository) ListByStatus(ctx context.Context, userID uuid.UUID) (model.StatusBuckets, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ub.status, b.id, b.title, b.authors, b.isbn, b.first_publish_year, b.cover_url, b.created_at
		FROM user_books ub
		JOIN books b ON b.id = ub.book_id
		WHERE ub.user_id = $1
		ORDER BY ub.created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reading statuses: %w", err)
	}
	defer rows.Close()

	buckets := model.NewStatusBuckets()
	for rows.Next() {
		var status string
		var book catalogModel.Book
		if err := rows.Scan(
			&status, &book.ID, &book.Title, pq.Array(&book.Authors),
			&book.ISBN, &book.FirstPublishYear, &book.CoverURL, &book.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reading status row: %w", err)
		}

		s := model.Status(status)
		if !s.Valid() {
			continue
		}
		buckets[s] = append(buckets[s], book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reading status rows: %w", err)
	}

	return buckets, nil
}

func (r *postgresReadingListRepository) GetStatus(ctx context.Context, userID, bookID uuid.UUID) (model.Status, error) {
	var status string
	err := r.pool.QueryRow(ctx,
		`SELECT status FROM user_books WHERE user_id = $1 AND book_id = $2`,
		userID, bookID,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", model.ErrNotTracked
	}
	if err != nil {
		return "", fmt.Errorf("get reading status: %w", err)
	}
	return model.Status(status), nil
}
