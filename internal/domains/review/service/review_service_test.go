package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/review/model"
)

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*model.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	for _, r := range f.reviews {
		if r.UserID == review.UserID && r.BookID == review.BookID {
			return model.ErrDuplicateReview
		}
	}
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, id uuid.UUID, rating int, text *string) error {
	r, ok := f.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}
	r.Rating = rating
	r.Text = text
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ListByBook(_ context.Context, bookID uuid.UUID) ([]model.ReviewWithAuthor, error) {
	out := []model.ReviewWithAuthor{}
	for _, r := range f.reviews {
		if r.BookID == bookID {
			out = append(out, model.ReviewWithAuthor{Review: *r, Username: "reader"})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.ReviewWithBook, error) {
	out := []model.ReviewWithBook{}
	for _, r := range f.reviews {
		if r.UserID == userID {
			out = append(out, model.ReviewWithBook{Review: *r, BookTitle: "Some Book"})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Statistics(_ context.Context, bookID uuid.UUID) (*model.Statistics, error) {
	stats := &model.Statistics{BookID: bookID, Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	sum := 0
	for _, r := range f.reviews {
		if r.BookID == bookID {
			stats.Breakdown[r.Rating]++
			stats.Count++
			sum += r.Rating
		}
	}
	if stats.Count > 0 {
		avg := float64(sum) / float64(stats.Count)
		stats.Average = &avg
	}
	return stats, nil
}

// memoryCache is a map-backed stand-in for the Redis cache.
type memoryCache struct {
	entries map[string]interface{}
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]interface{})}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if stats, ok := v.(*model.Statistics); ok {
		if out, ok := dest.(*model.Statistics); ok {
			*out = *stats
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) DeletePattern(_ context.Context, _ string) error { return nil }
func (m *memoryCache) Ping(_ context.Context) error                    { return nil }

type fixedResolver struct {
	id uuid.UUID
}

func (f *fixedResolver) ResolveOrCreate(_ context.Context, _ catalogModel.CatalogRef) (uuid.UUID, error) {
	return f.id, nil
}

func newTestService() (ServiceInterface, *fakeReviewRepo, *memoryCache, uuid.UUID) {
	repo := newFakeReviewRepo()
	c := newMemoryCache()
	bookID := uuid.New()
	svc := NewReviewService(repo, &fixedResolver{id: bookID}, c, time.Minute)
	return svc, repo, c, bookID
}

func submitReq(rating int, text *string) model.SubmitReviewRequest {
	return model.SubmitReviewRequest{
		Book:   catalogModel.CatalogRef{Title: "Dune", Authors: []string{"Frank Herbert"}},
		Rating: rating,
		Text:   text,
	}
}

func strPtr(s string) *string { return &s }

func TestSubmitReview(t *testing.T) {
	svc, repo, _, bookID := newTestService()
	userID := uuid.New()

	review, err := svc.SubmitReview(context.Background(), userID, submitReq(4, strPtr("great read")))
	require.NoError(t, err)

	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, bookID, review.BookID)
	assert.Equal(t, 4, review.Rating)
	require.NotNil(t, review.Text)
	assert.Equal(t, "great read", *review.Text)
	assert.Len(t, repo.reviews, 1)
}

func TestSubmitReview_RatingValidatedBeforeWrite(t *testing.T) {
	svc, repo, _, _ := newTestService()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitReview(context.Background(), uuid.New(), submitReq(rating, nil))
		var revErr *model.ReviewError
		require.ErrorAs(t, err, &revErr)
		assert.Equal(t, model.ErrCodeValidation, revErr.Code)
	}

	assert.Empty(t, repo.reviews, "no review should be written for an invalid rating")
}

func TestSubmitReview_DuplicatePair(t *testing.T) {
	svc, _, _, _ := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, userID, submitReq(4, nil))
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, userID, submitReq(2, nil))
	var revErr *model.ReviewError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, model.ErrCodeDuplicateReview, revErr.Code)
}

func TestEditReview(t *testing.T) {
	svc, repo, _, _ := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	review, err := svc.SubmitReview(ctx, userID, submitReq(4, strPtr("good")))
	require.NoError(t, err)

	err = svc.EditReview(ctx, userID, review.ID, model.EditReviewRequest{Rating: 2, Text: strPtr("on reread, weaker")})
	require.NoError(t, err)

	stored := repo.reviews[review.ID]
	assert.Equal(t, 2, stored.Rating)
	assert.Equal(t, "on reread, weaker", *stored.Text)
}

func TestEditReview_NotOwner(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	review, err := svc.SubmitReview(ctx, uuid.New(), submitReq(4, nil))
	require.NoError(t, err)

	err = svc.EditReview(ctx, uuid.New(), review.ID, model.EditReviewRequest{Rating: 1})
	var revErr *model.ReviewError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, model.ErrCodeNotOwner, revErr.Code)
}

func TestDeleteReview(t *testing.T) {
	svc, repo, _, _ := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	review, err := svc.SubmitReview(ctx, userID, submitReq(4, nil))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(ctx, userID, review.ID))
	assert.Empty(t, repo.reviews)
}

func TestDeleteReview_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.DeleteReview(context.Background(), uuid.New(), uuid.New())
	var revErr *model.ReviewError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, revErr.Code)
}

func TestStatistics(t *testing.T) {
	svc, _, _, bookID := newTestService()
	ctx := context.Background()

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.SubmitReview(ctx, uuid.New(), submitReq(rating, nil))
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx, bookID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	require.NotNil(t, stats.Average)
	assert.InDelta(t, 13.0/3.0, *stats.Average, 1e-9)
	assert.Equal(t, 2, stats.Breakdown[4])
	assert.Equal(t, 1, stats.Breakdown[5])
	assert.Equal(t, 0, stats.Breakdown[1])
}

func TestStatistics_EmptyBook(t *testing.T) {
	svc, _, _, bookID := newTestService()

	stats, err := svc.Statistics(context.Background(), bookID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Count)
	assert.Nil(t, stats.Average)
}

func TestStatistics_CacheInvalidatedOnWrite(t *testing.T) {
	svc, _, cache, bookID := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, userID, submitReq(5, nil))
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Len(t, cache.entries, 1, "statistics should be cached after a read")

	// A second user's review drops the cached aggregate.
	_, err = svc.SubmitReview(ctx, uuid.New(), submitReq(3, nil))
	require.NoError(t, err)
	assert.Empty(t, cache.entries)

	stats, err = svc.Statistics(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	require.NotNil(t, stats.Average)
	assert.InDelta(t, 4.0, *stats.Average, 1e-9)
}
