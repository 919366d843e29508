package service

import (
	"context"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/profile/model"
)

type ServiceInterface interface {
	// GetProfile returns a profile with its follow counts.
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, *model.FollowCounts, error)

	// GetProfileByUsername looks a profile up by exact username.
	GetProfileByUsername(ctx context.Context, username string) (*model.Profile, *model.FollowCounts, error)

	// UpdateProfile overwrites the caller's editable profile fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) error

	// Follow adds a follow edge from the caller to another user.
	Follow(ctx context.Context, followerID, followedID uuid.UUID) error

	// Unfollow removes the caller's follow edge to another user.
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error

	// ListFollowers returns who follows the user.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error)

	// ListFollowing returns who the user follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error)

	// AvatarChoice returns the user's last stored avatar, read through a
	// cache.
	AvatarChoice(ctx context.Context, userID uuid.UUID) (int, error)
}
