package repository

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	// Create persists a new review. ErrDuplicateReview when the (user,
	// book) pair already has one.
	Create(ctx context.Context, review *model.Review) error

	// GetByID fetches a review, ErrReviewNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// Update overwrites a review's rating and text.
	Update(ctx context.Context, id uuid.UUID, rating int, text *string) error

	// Delete removes a review. ErrReviewNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByBook returns a book's reviews with reviewer usernames, newest
	// first.
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewWithAuthor, error)

	// ListByUser returns a user's reviews with book titles, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error)

	// Statistics aggregates a book's ratings: count, average and the
	// per-rating breakdown.
	Statistics(ctx context.Context, bookID uuid.UUID) (*model.Statistics, error)
}
