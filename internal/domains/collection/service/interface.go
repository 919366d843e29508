package service

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/collection/model"
)

type ServiceInterface interface {
	// CreateCollection creates a collection for a user.
	CreateCollection(ctx context.Context, userID uuid.UUID, req model.CreateCollectionRequest) (*model.Collection, error)

	// ListCollections returns a user's collections, newest first.
	ListCollections(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error)

	// GetEntries returns a collection's books in display order.
	GetEntries(ctx context.Context, collectionID uuid.UUID) ([]model.EntryWithBook, error)

	// AddBook registers the book if needed and appends it to the collection.
	AddBook(ctx context.Context, userID, collectionID uuid.UUID, req model.AddBookRequest) (position int, err error)

	// RemoveBook removes a book from the collection and re-densifies
	// positions.
	RemoveBook(ctx context.Context, userID, collectionID, bookID uuid.UUID) error

	// MoveEntry moves a book one step up or down. Boundary moves are a
	// no-op success.
	MoveEntry(ctx context.Context, userID, collectionID, bookID uuid.UUID, req model.MoveEntryRequest) error

	// DeleteCollection removes a collection and its entries.
	DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error

	// SearchCollections finds public collections by name or owner username.
	SearchCollections(ctx context.Context, req model.SearchCollectionsRequest) ([]model.CollectionSearchResult, error)
}
