package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record persisted locally. Search results start life as a
// CatalogRef and only become a Book (with a stable ID) once a user action
// such as shelving or reviewing registers them.
type Book struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Authors          []string  `json:"authors"`
	ISBN             *string   `json:"isbn"`
	FirstPublishYear *int      `json:"first_publish_year"`
	CoverURL         *string   `json:"cover"`
	CreatedAt        time.Time `json:"created_at"`
}

// CatalogRef identifies a book that may not be registered yet. Identity is
// duck-typed: ISBN when present, otherwise title plus first author.
type CatalogRef struct {
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	ISBN             *string  `json:"isbn"`
	FirstPublishYear *int     `json:"first_publish_year"`
	CoverURL         *string  `json:"cover"`
	OpenLibraryKey   *string  `json:"key"`
}

// FirstAuthor returns the lead author, or "" for an authorless record.
func (r CatalogRef) FirstAuthor() string {
	if len(r.Authors) == 0 {
		return ""
	}
	return r.Authors[0]
}

// Valid reports whether the ref carries enough identity to be registered.
func (r CatalogRef) Valid() bool {
	return strings.TrimSpace(r.Title) != ""
}

// RatingAggregate is the review summary attached to a book for display.
type RatingAggregate struct {
	Average *float64 `json:"rating_average"`
	Count   int      `json:"rating_count"`
}

// BookResult is one catalog search hit: a normalized ref enriched with the
// local rating aggregate when the book is already registered.
type BookResult struct {
	CatalogRef
	Rating RatingAggregate `json:"rating"`
}
