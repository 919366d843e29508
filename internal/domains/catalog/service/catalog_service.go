package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/catalog/openlibrary"
	"litshelf-backend/internal/domains/catalog/repository"
	"litshelf-backend/pkg/cache"
	"litshelf-backend/pkg/logger"
)

// searchClient is the slice of the OpenLibrary client the service needs.
type searchClient interface {
	Search(ctx context.Context, q string, limit, page int) (*openlibrary.SearchResponse, error)
}

type catalogService struct {
	client   searchClient
	bookRepo repository.BookRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewCatalogService(
	client searchClient,
	bookRepo repository.BookRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	return &catalogService{
		client:   client,
		bookRepo: bookRepo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// SearchBooks fetches a window of results from OpenLibrary, enriches them
// with local rating aggregates, applies the year/rating filters and slices
// out the requested page. The raw upstream window is cached so flipping
// pages or tightening filters does not re-hit OpenLibrary.
func (s *catalogService) SearchBooks(ctx context.Context, req model.SearchBooksRequest) (*model.SearchBooksResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	window, err := s.fetchWindow(ctx, req.Search)
	if err != nil {
		return nil, model.NewUpstreamError(err)
	}

	refs := openlibrary.Normalize(window.Docs)
	enriched := s.enrich(ctx, refs)
	filtered := model.FilterBooks(enriched, req)

	pageSlice, pageTotal := model.Paginate(filtered, req.Page, req.Limit)

	return &model.SearchBooksResponse{
		Total:   len(filtered),
		Page:    req.Page,
		Limit:   req.Limit,
		Pages:   pageTotal,
		Results: pageSlice,
	}, nil
}

// fetchWindow returns the cached full result window for a query, or fetches
// it from OpenLibrary. Cache failures degrade to a live call.
func (s *catalogService) fetchWindow(ctx context.Context, q string) (*openlibrary.SearchResponse, error) {
	cacheKey := fmt.Sprintf("catalog:search:%s", q)

	var cached openlibrary.SearchResponse
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Warn("catalog search cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return &cached, nil
	}

	window, err := s.client.Search(ctx, q, model.MaxLimit, 1)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, window, s.cacheTTL); err != nil {
		logger.Warn("catalog search cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return window, nil
}

// enrich attaches local rating aggregates to search hits that resolve to a
// registered book. Unregistered books keep a nil average and zero count.
func (s *catalogService) enrich(ctx context.Context, refs []model.CatalogRef) []model.BookResult {
	results := make([]model.BookResult, 0, len(refs))
	for _, ref := range refs {
		result := model.BookResult{CatalogRef: ref}

		bookID, found, err := s.bookRepo.Resolve(ctx, ref)
		if err != nil {
			logger.Error("failed to resolve search hit", err)
		} else if found {
			agg, err := s.bookRepo.GetRating(ctx, bookID)
			if err != nil {
				logger.Error("failed to load rating aggregate", err)
			} else {
				result.Rating = agg
			}
		}

		results = append(results, result)
	}
	return results
}

func (s *catalogService) ResolveOrCreate(ctx context.Context, ref model.CatalogRef) (uuid.UUID, error) {
	if !ref.Valid() {
		return uuid.Nil, model.NewValidationError("book title is required")
	}
	return s.bookRepo.ResolveOrCreate(ctx, ref)
}

func (s *catalogService) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return nil, model.NewBookNotFoundError()
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}
