package service

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/catalog/model"
)

type ServiceInterface interface {
	// SearchBooks runs a filtered, paginated catalog search.
	SearchBooks(ctx context.Context, req model.SearchBooksRequest) (*model.SearchBooksResponse, error)

	// ResolveOrCreate registers a catalog ref and returns its stable book id.
	// Other domains call this when a user shelves, collects or reviews a
	// search result that is not persisted yet.
	ResolveOrCreate(ctx context.Context, ref model.CatalogRef) (uuid.UUID, error)

	// GetBook fetches a registered book by id.
	GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error)
}
