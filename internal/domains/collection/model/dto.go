package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
)

// CreateCollectionRequest creates a named, icon-tagged collection.
type CreateCollectionRequest struct {
	Name   string `json:"name"`
	IconID int    `json:"iconId"`
}

func (r CreateCollectionRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.IconID,
			validation.Min(MinIconID).Error("unknown icon"),
			validation.Max(MaxIconID).Error("unknown icon"),
		),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// AddBookRequest adds a catalog search hit to a collection. The book may not
// be registered yet, so the request carries the full catalog ref.
type AddBookRequest struct {
	Book catalogModel.CatalogRef `json:"book"`
}

func (r AddBookRequest) Validate() error {
	if !r.Book.Valid() {
		return NewValidationError("book title is required")
	}
	return nil
}

// MoveEntryRequest moves a book one step up or down within a collection.
type MoveEntryRequest struct {
	Direction MoveDirection `json:"direction"`
}

func (r MoveEntryRequest) Validate() error {
	if !r.Direction.Valid() {
		return NewValidationError(`direction must be "up" or "down"`)
	}
	return nil
}

// SearchCollectionsRequest searches public collections by name or by owner
// username, optionally bounded by creation date.
type SearchCollectionsRequest struct {
	Search       string  `json:"search"`
	ByUser       bool    `json:"byUser"`
	PubDateStart *string `json:"pubDateStart,omitempty"`
	PubDateEnd   *string `json:"pubDateEnd,omitempty"`
}

func (r SearchCollectionsRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Search, validation.Required.Error("search is required")),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// BookPreview is the cover strip shown on a collection search hit.
type BookPreview struct {
	Title    string  `json:"title"`
	CoverURL *string `json:"cover"`
}

// CollectionSearchResult is one public search hit with owner and preview
// books attached.
type CollectionSearchResult struct {
	ID        uuid.UUID     `json:"collection_id"`
	IconID    int           `json:"icon_id"`
	Name      string        `json:"name"`
	Username  string        `json:"username"`
	CreatedAt time.Time     `json:"created_at"`
	Books     []BookPreview `json:"books"`
}
