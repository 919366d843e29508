package service

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/review/model"
)

type ServiceInterface interface {
	// SubmitReview registers the book if needed and creates the caller's
	// review. The rating is validated before any write happens.
	SubmitReview(ctx context.Context, userID uuid.UUID, req model.SubmitReviewRequest) (*model.Review, error)

	// EditReview overwrites the rating and text of the caller's review.
	EditReview(ctx context.Context, userID, reviewID uuid.UUID, req model.EditReviewRequest) error

	// DeleteReview removes the caller's review.
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error

	// ListByBook returns a book's reviews, newest first.
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewWithAuthor, error)

	// ListByUser returns a user's reviews with book titles, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error)

	// Statistics returns a book's aggregate rating picture.
	Statistics(ctx context.Context, bookID uuid.UUID) (*model.Statistics, error)
}
