package model

import (
	catalogModel "litshelf-backend/internal/domains/catalog/model"
)

// AddOrMoveBookRequest puts a book on the caller's reading list under the
// given status, registering the book first when the catalog hit has no stable
// id yet. Re-sending with a different status moves the book between buckets.
type AddOrMoveBookRequest struct {
	Book   catalogModel.CatalogRef `json:"book"`
	Status Status                  `json:"status"`
}

func (r AddOrMoveBookRequest) Validate() error {
	if !r.Book.Valid() {
		return NewValidationError("book title is required")
	}
	if !r.Status.Valid() {
		return NewValidationError("unknown reading status")
	}
	return nil
}
