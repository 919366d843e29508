package repository

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/readinglist/model"
)

type ReadingListRepository interface {
	// Upsert sets the status for a (user, book) pair, creating the row on
	// first use. Returns whether the stored status actually changed; an
	// activity row is logged for every change in the same transaction.
	Upsert(ctx context.Context, userID, bookID uuid.UUID, status model.Status) (changed bool, err error)

	// Remove takes the book off the user's list. ErrNotTracked when the
	// pair has no row.
	Remove(ctx context.Context, userID, bookID uuid.UUID) error

	// ListByStatus returns the user's books grouped into the three status
	// buckets, insertion order within each bucket. All keys present.
	ListByStatus(ctx context.Context, userID uuid.UUID) (model.StatusBuckets, error)

	// GetStatus returns the stored status for a pair, ErrNotTracked when
	// absent.
	GetStatus(ctx context.Context, userID, bookID uuid.UUID) (model.Status, error)
}
