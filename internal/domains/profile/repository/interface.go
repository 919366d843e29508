package repository

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/profile/model"
)

type ProfileRepository interface {
	// GetByUserID fetches a profile, ErrProfileNotFound when absent.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// GetByUsername fetches a profile by exact username.
	GetByUsername(ctx context.Context, username string) (*model.Profile, error)

	// Update overwrites the editable fields of a profile.
	Update(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) error

	// Follow inserts a follow edge. ErrDuplicateFollow when it exists.
	Follow(ctx context.Context, followerID, followedID uuid.UUID) error

	// Unfollow removes a follow edge. ErrNotFollowing when absent.
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error

	// Counts returns follower and following totals for a user.
	Counts(ctx context.Context, userID uuid.UUID) (*model.FollowCounts, error)

	// ListFollowers returns who follows the user, newest edge first.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error)

	// ListFollowing returns who the user follows, newest edge first.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error)
}
