package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/review/model"
	"litshelf-backend/internal/domains/review/repository"
	"litshelf-backend/pkg/cache"
	"litshelf-backend/pkg/logger"
)

// BookResolver bridges ephemeral catalog refs to stable book ids. Implemented
// by the catalog service.
type BookResolver interface {
	ResolveOrCreate(ctx context.Context, ref catalogModel.CatalogRef) (uuid.UUID, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	books      BookResolver
	cache      cache.Cache
	cacheTTL   time.Duration
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	books BookResolver,
	c cache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		books:      books,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, userID uuid.UUID, req model.SubmitReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bookID, err := s.books.ResolveOrCreate(ctx, req.Book)
	if err != nil {
		return nil, fmt.Errorf("failed to register book: %w", err)
	}

	review := &model.Review{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Rating:    req.Rating,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, model.ErrDuplicateReview) {
			return nil, model.NewDuplicateReviewError()
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.invalidateStats(ctx, bookID)
	return review, nil
}

func (s *reviewService) EditReview(ctx context.Context, userID, reviewID uuid.UUID, req model.EditReviewRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	review, err := s.requireOwner(ctx, userID, reviewID)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Update(ctx, reviewID, req.Rating, req.Text); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to update review: %w", err)
	}

	s.invalidateStats(ctx, review.BookID)
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.requireOwner(ctx, userID, reviewID)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidateStats(ctx, review.BookID)
	return nil
}

func (s *reviewService) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewWithAuthor, error) {
	reviews, err := s.reviewRepo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Statistics serves aggregates from Redis when possible. Any review write
// for the book drops the cached entry, so a stale read window is bounded by
// in-flight requests only.
func (s *reviewService) Statistics(ctx context.Context, bookID uuid.UUID) (*model.Statistics, error) {
	cacheKey := statsCacheKey(bookID)

	var cached model.Statistics
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Warn("review stats cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return &cached, nil
	}

	stats, err := s.reviewRepo.Statistics(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, stats, s.cacheTTL); err != nil {
		logger.Warn("review stats cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return stats, nil
}

func (s *reviewService) requireOwner(ctx context.Context, userID, reviewID uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review.UserID != userID {
		return nil, model.NewNotOwnerError()
	}
	return review, nil
}

func (s *reviewService) invalidateStats(ctx context.Context, bookID uuid.UUID) {
	if err := s.cache.Delete(ctx, statsCacheKey(bookID)); err != nil {
		logger.Warn("review stats cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

func statsCacheKey(bookID uuid.UUID) string {
	return fmt.Sprintf("review:stats:%s", bookID)
}
