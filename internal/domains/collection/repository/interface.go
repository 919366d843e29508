package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/collection/model"
)

type CollectionRepository interface {
	// Create persists a new collection.
	Create(ctx context.Context, collection *model.Collection) error

	// GetByID fetches a collection, ErrCollectionNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Collection, error)

	// GetIDByName finds a user's collection by case-insensitive name.
	// Returns (uuid.Nil, false, nil) when the name is unused.
	GetIDByName(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, bool, error)

	// ListByUser returns a user's collections, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error)

	// Delete removes a collection and its entries.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListEntries returns the collection's books sorted by position.
	ListEntries(ctx context.Context, collectionID uuid.UUID) ([]model.EntryWithBook, error)

	// AddEntry appends a book at position max+1 in one transaction.
	// ErrDuplicateEntry when the book is already in the collection.
	AddEntry(ctx context.Context, collectionID, bookID uuid.UUID) (int, error)

	// RemoveEntry deletes a book's entry and renumbers the remaining
	// positions back to a dense 1..N in the same transaction.
	RemoveEntry(ctx context.Context, collectionID, bookID uuid.UUID) error

	// MoveEntry swaps the entry's position with its neighbor in the given
	// direction. Both writes happen in one transaction with the collection's
	// entries locked; boundary moves are a no-op.
	MoveEntry(ctx context.Context, collectionID, bookID uuid.UUID, direction model.MoveDirection) error

	// Search finds collections by name or owner username with an optional
	// creation-date range, newest first, preview books attached.
	Search(ctx context.Context, search string, byUser bool, start, end *time.Time) ([]model.CollectionSearchResult, error)
}
