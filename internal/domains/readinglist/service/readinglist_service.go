package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/readinglist/model"
	"litshelf-backend/internal/domains/readinglist/repository"
	"litshelf-backend/pkg/logger"
)

// BookResolver bridges ephemeral catalog refs to stable book ids. Implemented
// by the catalog service.
type BookResolver interface {
	ResolveOrCreate(ctx context.Context, ref catalogModel.CatalogRef) (uuid.UUID, error)
}

type readingListService struct {
	readingListRepo repository.ReadingListRepository
	books           BookResolver
}

func NewReadingListService(readingListRepo repository.ReadingListRepository, books BookResolver) ServiceInterface {
	return &readingListService{
		readingListRepo: readingListRepo,
		books:           books,
	}
}

func (s *readingListService) AddOrMoveBook(ctx context.Context, userID uuid.UUID, req model.AddOrMoveBookRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	bookID, err := s.books.ResolveOrCreate(ctx, req.Book)
	if err != nil {
		return fmt.Errorf("failed to register book: %w", err)
	}

	changed, err := s.readingListRepo.Upsert(ctx, userID, bookID, req.Status)
	if err != nil {
		return fmt.Errorf("failed to set reading status: %w", err)
	}
	if changed {
		logger.Info("reading status changed", map[string]interface{}{
			"user_id": userID.String(),
			"book_id": bookID.String(),
			"status":  string(req.Status),
		})
	}

	return nil
}

func (s *readingListService) RemoveBook(ctx context.Context, userID, bookID uuid.UUID) error {
	if err := s.readingListRepo.Remove(ctx, userID, bookID); err != nil {
		if errors.Is(err, model.ErrNotTracked) {
			return model.NewNotTrackedError()
		}
		return fmt.Errorf("failed to remove book from reading list: %w", err)
	}
	return nil
}

func (s *readingListService) ListByStatus(ctx context.Context, userID uuid.UUID) (model.StatusBuckets, error) {
	buckets, err := s.readingListRepo.ListByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reading statuses: %w", err)
	}
	return buckets, nil
}
