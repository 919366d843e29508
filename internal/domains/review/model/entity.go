package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxTextLength = 4000
)

// Review is one user's rating and optional text for a book. Each (user, book)
// pair holds at most one review; edits overwrite in place.
type Review struct {
	ID        uuid.UUID `json:"review_id"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    uuid.UUID `json:"book_id"`
	Rating    int       `json:"rating"`
	Text      *string   `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewWithBook is a review joined with its book's title for profile pages.
type ReviewWithBook struct {
	Review
	BookTitle string `json:"book_title"`
}

// ReviewWithAuthor is a review joined with the reviewer's username for book
// pages.
type ReviewWithAuthor struct {
	Review
	Username string `json:"username"`
}

// Statistics is the aggregate rating picture for one book.
type Statistics struct {
	BookID    uuid.UUID   `json:"book_id"`
	Count     int         `json:"count"`
	Average   *float64    `json:"average"`
	Breakdown map[int]int `json:"breakdown"`
}
