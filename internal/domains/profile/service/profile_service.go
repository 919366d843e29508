package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/profile/model"
	"litshelf-backend/internal/domains/profile/repository"
	"litshelf-backend/pkg/cache"
	"litshelf-backend/pkg/logger"
)

const avatarCacheTTL = 24 * time.Hour

type profileService struct {
	profileRepo repository.ProfileRepository
	cache       cache.Cache
}

func NewProfileService(profileRepo repository.ProfileRepository, c cache.Cache) ServiceInterface {
	return &profileService{
		profileRepo: profileRepo,
		cache:       c,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, *model.FollowCounts, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, mapRepoError(err, "failed to get profile")
	}
	return s.withCounts(ctx, profile)
}

func (s *profileService) GetProfileByUsername(ctx context.Context, username string) (*model.Profile, *model.FollowCounts, error) {
	profile, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, mapRepoError(err, "failed to get profile")
	}
	return s.withCounts(ctx, profile)
}

func (s *profileService) withCounts(ctx context.Context, profile *model.Profile) (*model.Profile, *model.FollowCounts, error) {
	counts, err := s.profileRepo.Counts(ctx, profile.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count follows: %w", err)
	}
	return profile, counts, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.profileRepo.Update(ctx, userID, req); err != nil {
		return mapRepoError(err, "failed to update profile")
	}

	if err := s.cache.Set(ctx, avatarCacheKey(userID), req.AvatarChoice, avatarCacheTTL); err != nil {
		logger.Warn("avatar cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func (s *profileService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return model.NewSelfFollowError()
	}

	// Confirm the target exists so a dangling edge can't be created.
	if _, err := s.profileRepo.GetByUserID(ctx, followedID); err != nil {
		return mapRepoError(err, "failed to get profile")
	}

	if err := s.profileRepo.Follow(ctx, followerID, followedID); err != nil {
		return mapRepoError(err, "failed to follow user")
	}
	return nil
}

func (s *profileService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if err := s.profileRepo.Unfollow(ctx, followerID, followedID); err != nil {
		return mapRepoError(err, "failed to unfollow user")
	}
	return nil
}

func (s *profileService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error) {
	entries, err := s.profileRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return entries, nil
}

func (s *profileService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error) {
	entries, err := s.profileRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return entries, nil
}

// AvatarChoice reads through the cache; the profiles table stays the source
// of truth.
func (s *profileService) AvatarChoice(ctx context.Context, userID uuid.UUID) (int, error) {
	cacheKey := avatarCacheKey(userID)

	var cached int
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Warn("avatar cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return cached, nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, mapRepoError(err, "failed to get profile")
	}

	if err := s.cache.Set(ctx, cacheKey, profile.AvatarChoice, avatarCacheTTL); err != nil {
		logger.Warn("avatar cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return profile.AvatarChoice, nil
}

func avatarCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:avatar:%s", userID)
}

func mapRepoError(err error, fallback string) error {
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		return model.NewProfileNotFoundError()
	case errors.Is(err, model.ErrDuplicateFollow):
		return model.NewDuplicateFollowError()
	case errors.Is(err, model.ErrNotFollowing):
		return model.NewNotFollowingError()
	default:
		return fmt.Errorf("%s: %w", fallback, err)
	}
}
