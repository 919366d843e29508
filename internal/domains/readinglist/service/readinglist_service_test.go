package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "litshelf-backend/internal/domains/catalog/model"
	"litshelf-backend/internal/domains/readinglist/model"
)

type trackedRow struct {
	userID uuid.UUID
	bookID uuid.UUID
	status model.Status
}

// fakeReadingListRepo mirrors the upsert semantics of the postgres
// repository, including the changed flag and activity count.
type fakeReadingListRepo struct {
	rows       []trackedRow
	activities int
}

func (f *fakeReadingListRepo) Upsert(_ context.Context, userID, bookID uuid.UUID, status model.Status) (bool, error) {
	for i, row := range f.rows {
		if row.userID == userID && row.bookID == bookID {
			if row.status == status {
				return false, nil
			}
			f.rows[i].status = status
			f.activities++
			return true, nil
		}
	}
	f.rows = append(f.rows, trackedRow{userID: userID, bookID: bookID, status: status})
	f.activities++
	return true, nil
}

func (f *fakeReadingListRepo) Remove(_ context.Context, userID, bookID uuid.UUID) error {
	for i, row := range f.rows {
		if row.userID == userID && row.bookID == bookID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return model.ErrNotTracked
}

func (f *fakeReadingListRepo) ListByStatus(_ context.Context, userID uuid.UUID) (model.StatusBuckets, error) {
	buckets := model.NewStatusBuckets()
	for _, row := range f.rows {
		if row.userID == userID {
			buckets[row.status] = append(buckets[row.status], catalogModel.Book{ID: row.bookID})
		}
	}
	return buckets, nil
}

func (f *fakeReadingListRepo) GetStatus(_ context.Context, userID, bookID uuid.UUID) (model.Status, error) {
	for _, row := range f.rows {
		if row.userID == userID && row.bookID == bookID {
			return row.status, nil
		}
	}
	return "", model.ErrNotTracked
}

// fakeBookResolver hands out a stable id per title.
type fakeBookResolver struct {
	ids map[string]uuid.UUID
}

func (f *fakeBookResolver) ResolveOrCreate(_ context.Context, ref catalogModel.CatalogRef) (uuid.UUID, error) {
	if f.ids == nil {
		f.ids = make(map[string]uuid.UUID)
	}
	id, ok := f.ids[ref.Title]
	if !ok {
		id = uuid.New()
		f.ids[ref.Title] = id
	}
	return id, nil
}

func newTestService() (ServiceInterface, *fakeReadingListRepo, *fakeBookResolver) {
	repo := &fakeReadingListRepo{}
	resolver := &fakeBookResolver{}
	return NewReadingListService(repo, resolver), repo, resolver
}

func statusReq(title string, status model.Status) model.AddOrMoveBookRequest {
	return model.AddOrMoveBookRequest{
		Book:   catalogModel.CatalogRef{Title: title, Authors: []string{"Some Author"}},
		Status: status,
	}
}

func TestAddOrMoveBook(t *testing.T) {
	svc, repo, resolver := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	err := svc.AddOrMoveBook(ctx, userID, statusReq("Dune", model.StatusWantToRead))
	require.NoError(t, err)

	bookID := resolver.ids["Dune"]
	status, err := repo.GetStatus(ctx, userID, bookID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusWantToRead, status)
}

func TestAddOrMoveBook_IdempotentForSameStatus(t *testing.T) {
	svc, repo, _ := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Dune", model.StatusWantToRead)))
	require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Dune", model.StatusWantToRead)))

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 1, repo.activities, "a repeated status should not log a new activity")
}

func TestAddOrMoveBook_AnyStatusReachableFromAnyOther(t *testing.T) {
	svc, repo, resolver := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	transitions := []model.Status{
		model.StatusWantToRead,
		model.StatusFinished,
		model.StatusCurrentlyReading,
		model.StatusWantToRead,
	}

	for _, status := range transitions {
		require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Dune", status)))
		got, err := repo.GetStatus(ctx, userID, resolver.ids["Dune"])
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	// One row moved through the buckets, never duplicated.
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, 4, repo.activities)
}

func TestAddOrMoveBook_UnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.AddOrMoveBook(context.Background(), uuid.New(), statusReq("Dune", "Read Twice"))
	var rdlErr *model.ReadingListError
	require.ErrorAs(t, err, &rdlErr)
	assert.Equal(t, model.ErrCodeValidation, rdlErr.Code)
}

func TestAddOrMoveBook_MissingTitle(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.AddOrMoveBook(context.Background(), uuid.New(), model.AddOrMoveBookRequest{
		Status: model.StatusFinished,
	})
	var rdlErr *model.ReadingListError
	require.ErrorAs(t, err, &rdlErr)
	assert.Equal(t, model.ErrCodeValidation, rdlErr.Code)
}

func TestRemoveBook(t *testing.T) {
	svc, _, resolver := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Dune", model.StatusFinished)))
	require.NoError(t, svc.RemoveBook(ctx, userID, resolver.ids["Dune"]))

	buckets, err := svc.ListByStatus(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, buckets[model.StatusFinished])
}

func TestRemoveBook_Untracked(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.RemoveBook(context.Background(), uuid.New(), uuid.New())
	var rdlErr *model.ReadingListError
	require.ErrorAs(t, err, &rdlErr)
	assert.Equal(t, model.ErrCodeNotTracked, rdlErr.Code)
}

func TestListByStatus_AllBucketsAlwaysPresent(t *testing.T) {
	svc, _, _ := newTestService()

	buckets, err := svc.ListByStatus(context.Background(), uuid.New())
	require.NoError(t, err)

	require.Len(t, buckets, 3)
	for _, status := range model.AllStatuses {
		books, ok := buckets[status]
		assert.True(t, ok, "bucket %q should be present", status)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	}
}

func TestListByStatus_GroupsBooks(t *testing.T) {
	svc, _, resolver := newTestService()
	userID := uuid.New()
	ctx := context.Background()

	require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Dune", model.StatusWantToRead)))
	require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Hyperion", model.StatusWantToRead)))
	require.NoError(t, svc.AddOrMoveBook(ctx, userID, statusReq("Foundation", model.StatusFinished)))

	buckets, err := svc.ListByStatus(ctx, userID)
	require.NoError(t, err)

	require.Len(t, buckets[model.StatusWantToRead], 2)
	assert.Equal(t, resolver.ids["Dune"], buckets[model.StatusWantToRead][0].ID)
	assert.Equal(t, resolver.ids["Hyperion"], buckets[model.StatusWantToRead][1].ID)
	require.Len(t, buckets[model.StatusFinished], 1)
	assert.Empty(t, buckets[model.StatusCurrentlyReading])
}
