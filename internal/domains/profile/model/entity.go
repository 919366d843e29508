package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinAvatarChoice = 1
	MaxAvatarChoice = 12

	MaxBioLength      = 500
	MaxUsernameLength = 40
)

// Profile is a user's public page. Identity and credentials live with the
// auth provider; this is only the displayable part.
type Profile struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Bio            *string   `json:"bio"`
	FavoriteGenres []string  `json:"favorite_genres"`
	FavoriteBook   *string   `json:"favorite_book"`
	AvatarChoice   int       `json:"avatar_choice"`
	CreatedAt      time.Time `json:"created_at"`
}

// FollowCounts is a profile's follower and following totals.
type FollowCounts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// FollowEntry is one row in a followers or following list.
type FollowEntry struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	AvatarChoice int       `json:"avatar_choice"`
}
