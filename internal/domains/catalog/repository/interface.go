package repository

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/catalog/model"
)

// BookRepository is the registered-book store bridging ephemeral CatalogRefs
// to stable book ids.
type BookRepository interface {
	// Resolve looks a ref up without creating anything.
	// Returns (uuid.Nil, false, nil) when the book is not registered.
	Resolve(ctx context.Context, ref model.CatalogRef) (uuid.UUID, bool, error)

	// ResolveOrCreate resolves a ref, registering the book when unknown.
	ResolveOrCreate(ctx context.Context, ref model.CatalogRef) (uuid.UUID, error)

	// GetByID fetches a registered book.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetRating returns the review aggregate for a registered book.
	GetRating(ctx context.Context, bookID uuid.UUID) (model.RatingAggregate, error)
}
