package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"litshelf-backend/internal/domains/review/model"
)

const uniqueViolationCode = "23505"

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reviews (id, user_id, book_id, rating, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		review.ID, review.UserID, review.BookID, review.Rating, review.Text, review.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.ErrDuplicateReview
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, book_id, rating, text, created_at
		FROM reviews WHERE id = $1`,
		id,
	).Scan(&review.ID, &review.UserID, &review.BookID, &review.Rating, &review.Text, &review.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

func (r *postgresReviewRepository) Update(ctx context.Context, id uuid.UUID, rating int, text *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reviews SET rating = $2, text = $3 WHERE id = $1`,
		id, rating, text,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}

func (r *postgresReviewRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewWithAuthor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.user_id, r.book_id, r.rating, r.text, r.created_at, p.username
		FROM reviews r
		JOIN profiles p ON p.user_id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC`,
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews by book: %w", err)
	}
	defer rows.Close()

	reviews := []model.ReviewWithAuthor{}
	for rows.Next() {
		var rv model.ReviewWithAuthor
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.BookID, &rv.Rating, &rv.Text, &rv.CreatedAt, &rv.Username); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}
	return reviews, nil
}

func (r *postgresReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.user_id, r.book_id, r.rating, r.text, r.created_at, b.title
		FROM reviews r
		JOIN books b ON b.id = r.book_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}
	defer rows.Close()

	reviews := []model.ReviewWithBook{}
	for rows.Next() {
		var rv model.ReviewWithBook
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.BookID, &rv.Rating, &rv.Text, &rv.CreatedAt, &rv.BookTitle); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}
	return reviews, nil
}

func (r *postgresReviewRepository) Statistics(ctx context.Context, bookID uuid.UUID) (*model.Statistics, error) {
	stats := &model.Statistics{
		BookID:    bookID,
		Breakdown: make(map[int]int, model.MaxRating),
	}
	for rating := model.MinRating; rating <= model.MaxRating; rating++ {
		stats.Breakdown[rating] = 0
	}

	rows, err := r.pool.Query(ctx,
		`SELECT rating, COUNT(*) FROM reviews WHERE book_id = $1 GROUP BY rating`,
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	defer rows.Close()

	sum := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("scan rating bucket: %w", err)
		}
		stats.Breakdown[rating] = count
		stats.Count += count
		sum += rating * count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating buckets: %w", err)
	}

	if stats.Count > 0 {
		avg := float64(sum) / float64(stats.Count)
		stats.Average = &avg
	}
	return stats, nil
}
