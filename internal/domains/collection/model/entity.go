package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinIconID = 1
	MaxIconID = 21

	MaxNameLength = 120
)

// Collection is a user-curated, explicitly ordered set of books.
type Collection struct {
	ID        uuid.UUID `json:"collection_id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	IconID    int       `json:"icon_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is one book's slot in a collection. Position defines display order;
// within a collection positions are kept unique and dense (exactly 1..N).
// A zero position marks a legacy row written before renumbering existed; it
// sorts first and is repaired by the next mutation.
type Entry struct {
	CollectionID uuid.UUID `json:"collection_id"`
	BookID       uuid.UUID `json:"book_id"`
	Position     int       `json:"position"`
	AddedAt      time.Time `json:"added_at"`
}

// EntryWithBook is an entry joined with its book details for display.
type EntryWithBook struct {
	BookID           uuid.UUID `json:"book_id"`
	Title            string    `json:"title"`
	Authors          []string  `json:"authors"`
	ISBN             *string   `json:"isbn"`
	FirstPublishYear *int      `json:"first_publish_year"`
	CoverURL         *string   `json:"cover"`
	Position         int       `json:"position"`
}

// MoveDirection is the direction of a single-step reorder.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

func (d MoveDirection) Valid() bool {
	return d == MoveUp || d == MoveDown
}
