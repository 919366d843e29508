package service

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/readinglist/model"
)

type ServiceInterface interface {
	// AddOrMoveBook registers the book if needed and sets its status for
	// the user. Idempotent for a repeated status; any status is reachable
	// from any other.
	AddOrMoveBook(ctx context.Context, userID uuid.UUID, req model.AddOrMoveBookRequest) error

	// RemoveBook takes a book off the user's reading list.
	RemoveBook(ctx context.Context, userID, bookID uuid.UUID) error

	// ListByStatus returns the user's reading list as the three status
	// buckets, all keys present.
	ListByStatus(ctx context.Context, userID uuid.UUID) (model.StatusBuckets, error)
}
