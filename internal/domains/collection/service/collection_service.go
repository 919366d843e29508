package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/collection/model"
	"litshelf-backend/internal/domains/collection/repository"
)

// BookResolver bridges ephemeral catalog refs to stable book ids. Implemented
// by the catalog service.
type BookResolver interface {
	ResolveOrCreate(ctx context.Context, ref catalogModel.CatalogRef) (uuid.UUID, error)
}

type collectionService struct {
	collectionRepo repository.CollectionRepository
	books          BookResolver
}

func NewCollectionService(collectionRepo repository.CollectionRepository, books BookResolver) ServiceInterface {
	return &collectionService{
		collectionRepo: collectionRepo,
		books:          books,
	}
}

func (s *collectionService) CreateCollection(ctx context.Context, userID uuid.UUID, req model.CreateCollectionRequest) (*model.Collection, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Duplicate names are rejected case-insensitively per user.
	if _, exists, err := s.collectionRepo.GetIDByName(ctx, userID, req.Name); err != nil {
		return nil, fmt.Errorf("failed to check collection name: %w", err)
	} else if exists {
		return nil, model.NewDuplicateNameError()
	}

	collection := &model.Collection{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		IconID:    req.IconID,
		CreatedAt: time.Now(),
	}

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return collection, nil
}

func (s *collectionService) ListCollections(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error) {
	collections, err := s.collectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

func (s *collectionService) GetEntries(ctx context.Context, collectionID uuid.UUID) ([]model.EntryWithBook, error) {
	if _, err := s.collectionRepo.GetByID(ctx, collectionID); err != nil {
		return nil, mapRepoError(err, "failed to get collection")
	}

	entries, err := s.collectionRepo.ListEntries(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection books: %w", err)
	}
	return entries, nil
}

func (s *collectionService) AddBook(ctx context.Context, userID, collectionID uuid.UUID, req model.AddBookRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	if err := s.requireOwner(ctx, userID, collectionID); err != nil {
		return 0, err
	}

	bookID, err := s.books.ResolveOrCreate(ctx, req.Book)
	if err != nil {
		return 0, fmt.Errorf("failed to register book: %w", err)
	}

	position, err := s.collectionRepo.AddEntry(ctx, collectionID, bookID)
	if err != nil {
		return 0, mapRepoError(err, "failed to add book to collection")
	}

	return position, nil
}

func (s *collectionService) RemoveBook(ctx context.Context, userID, collectionID, bookID uuid.UUID) error {
	if err := s.requireOwner(ctx, userID, collectionID); err != nil {
		return err
	}

	if err := s.collectionRepo.RemoveEntry(ctx, collectionID, bookID); err != nil {
		return mapRepoError(err, "failed to remove book from collection")
	}
	return nil
}

func (s *collectionService) MoveEntry(ctx context.Context, userID, collectionID, bookID uuid.UUID, req model.MoveEntryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.requireOwner(ctx, userID, collectionID); err != nil {
		return err
	}

	if err := s.collectionRepo.MoveEntry(ctx, collectionID, bookID, req.Direction); err != nil {
		return mapRepoError(err, "failed to move book")
	}
	return nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	if err := s.requireOwner(ctx, userID, collectionID); err != nil {
		return err
	}

	if err := s.collectionRepo.Delete(ctx, collectionID); err != nil {
		return mapRepoError(err, "failed to delete collection")
	}
	return nil
}

func (s *collectionService) SearchCollections(ctx context.Context, req model.SearchCollectionsRequest) ([]model.CollectionSearchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := parseDateBound(req.PubDateStart, false)
	if err != nil {
		return nil, err
	}
	end, err := parseDateBound(req.PubDateEnd, true)
	if err != nil {
		return nil, err
	}

	results, err := s.collectionRepo.Search(ctx, req.Search, req.ByUser, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to search collections: %w", err)
	}
	return results, nil
}

// requireOwner checks the collection exists and belongs to the caller.
func (s *collectionService) requireOwner(ctx context.Context, userID, collectionID uuid.UUID) error {
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return mapRepoError(err, "failed to get collection")
	}
	if collection.UserID != userID {
		return model.NewNotOwnerError()
	}
	return nil
}

// parseDateBound accepts "YYYY-MM-DD" or a bare "YYYY"; a bare year expands
// to Jan 1 for a start bound and Dec 31 for an end bound.
func parseDateBound(s *string, isEnd bool) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	raw := strings.TrimSpace(*s)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006", raw); err == nil {
		if isEnd {
			t = t.AddDate(1, 0, -1)
		}
		return &t, nil
	}

	return nil, model.NewValidationError("date bound must be YYYY or YYYY-MM-DD")
}

// mapRepoError lifts repository sentinels into coded domain errors.
func mapRepoError(err error, fallback string) error {
	switch {
	case errors.Is(err, model.ErrCollectionNotFound):
		return model.NewCollectionNotFoundError()
	case errors.Is(err, model.ErrEntryNotFound):
		return model.NewEntryNotFoundError()
	case errors.Is(err, model.ErrDuplicateEntry):
		return model.NewDuplicateEntryError()
	default:
		return fmt.Errorf("%s: %w", fallback, err)
	}
}
