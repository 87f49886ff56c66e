package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/availarr/availarr/pkg/plex"
	plexMocks "github.com/availarr/availarr/pkg/plex/mocks"
	"github.com/availarr/availarr/pkg/storage"
	storageMocks "github.com/availarr/availarr/pkg/storage/mocks"
	availSqlite "github.com/availarr/availarr/pkg/storage/sqlite"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func idleItems(ids ...int32) []*storage.MediaItem {
	items := make([]*storage.MediaItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, &storage.MediaItem{
			MediaItem: model.MediaItem{
				ID:        id,
				MediaType: string(storage.MediaTypeMovie),
				Status:    string(storage.MediaStatusUnknown),
				Status4k:  string(storage.MediaStatusUnknown),
			},
		})
	}
	return items
}

func TestRunPaginatesUntilEmptyPage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	engine := New(store, NewAggregator(nil, nil, nil), WithPageSize(2))

	store.EXPECT().ListAvailableMedia(gomock.Any(), 0, 2).Return(idleItems(1, 2), nil)
	store.EXPECT().ListAvailableMedia(gomock.Any(), 2, 2).Return(idleItems(3, 4), nil)
	store.EXPECT().ListAvailableMedia(gomock.Any(), 4, 2).Return(idleItems(5), nil)
	store.EXPECT().ListAvailableMedia(gomock.Any(), 6, 2).Return(nil, nil)

	summary, err := engine.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Pages)
	assert.Equal(t, 5, summary.Items)
	assert.Equal(t, 0, summary.Updated)
	assert.False(t, summary.Cancelled)
	assert.False(t, engine.IsRunning())
}

func TestRunStopsAtItemBoundaryOnCancel(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	mockPlex := plexMocks.NewMockClientInterface(ctrl)
	engine := New(store, NewAggregator(mockPlex, nil, nil), WithPageSize(10))

	items := []*storage.MediaItem{
		{MediaItem: model.MediaItem{
			ID:        1,
			MediaType: string(storage.MediaTypeMovie),
			Status:    string(storage.MediaStatusAvailable),
			Status4k:  string(storage.MediaStatusUnknown),
			RatingKey: ptr("500"),
		}},
		{MediaItem: model.MediaItem{
			ID:        2,
			MediaType: string(storage.MediaTypeMovie),
			Status:    string(storage.MediaStatusAvailable),
			Status4k:  string(storage.MediaStatusUnknown),
			RatingKey: ptr("501"),
		}},
	}

	store.EXPECT().ListAvailableMedia(gomock.Any(), 0, 10).Return(items, nil)
	// the cancel lands while the first item is being probed, so that item
	// still completes and the second is never touched
	mockPlex.EXPECT().GetMetadata(gomock.Any(), "500").DoAndReturn(
		func(ctx context.Context, ratingKey string) (*plex.Metadata, error) {
			engine.Cancel()
			return &plex.Metadata{RatingKey: ratingKey}, nil
		})

	summary, err := engine.Run(ctx)
	require.NoError(t, err)

	assert.True(t, summary.Cancelled)
	assert.Equal(t, 1, summary.Items)
	assert.Equal(t, 0, summary.Updated)
	assert.False(t, engine.IsRunning())
}

func TestRunRejectsConcurrentRuns(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	engine := New(store, NewAggregator(nil, nil, nil))

	release := make(chan struct{})
	store.EXPECT().ListAvailableMedia(gomock.Any(), 0, defaultPageSize).DoAndReturn(
		func(ctx context.Context, offset, limit int) ([]*storage.MediaItem, error) {
			<-release
			return nil, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := engine.Run(ctx)
		done <- err
	}()

	require.Eventually(t, engine.IsRunning, time.Second, 5*time.Millisecond)

	_, err := engine.Run(ctx)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, engine.IsRunning())
}

func TestRunAbortsWhenListingFails(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	engine := New(store, NewAggregator(nil, nil, nil))

	store.EXPECT().ListAvailableMedia(gomock.Any(), 0, defaultPageSize).Return(nil, errors.New("disk io error"))

	summary, err := engine.Run(ctx)
	require.Error(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Items)
	assert.False(t, engine.IsRunning())
}

func TestRunIsolatesItemFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	mockPlex := plexMocks.NewMockClientInterface(ctrl)
	engine := New(store, NewAggregator(mockPlex, nil, nil), WithPageSize(5))

	items := []*storage.MediaItem{
		{MediaItem: model.MediaItem{
			ID:        1,
			MediaType: string(storage.MediaTypeMovie),
			Status:    string(storage.MediaStatusAvailable),
			Status4k:  string(storage.MediaStatusUnknown),
			RatingKey: ptr("600"),
		}},
		{MediaItem: model.MediaItem{
			ID:        2,
			MediaType: string(storage.MediaTypeMovie),
			Status:    string(storage.MediaStatusAvailable),
			Status4k:  string(storage.MediaStatusUnknown),
			RatingKey: ptr("601"),
		}},
	}

	store.EXPECT().ListAvailableMedia(gomock.Any(), 0, 5).Return(items, nil)
	store.EXPECT().ListAvailableMedia(gomock.Any(), 5, 5).Return(nil, nil)
	mockPlex.EXPECT().GetMetadata(gomock.Any(), "600").Return(nil, plex.ErrNotFound)
	mockPlex.EXPECT().GetMetadata(gomock.Any(), "601").Return(nil, plex.ErrNotFound)

	store.EXPECT().ListRequestsForAvailableMedia(gomock.Any(), int64(1)).Return(nil, nil)
	store.EXPECT().UpdateMediaItem(gomock.Any(), items[0]).Return(errors.New("database locked"))

	store.EXPECT().ListRequestsForAvailableMedia(gomock.Any(), int64(2)).Return(nil, nil)
	store.EXPECT().UpdateMediaItem(gomock.Any(), items[1]).Return(nil)
	store.EXPECT().DeleteRequests(gomock.Any(), []int64{}).Return(int64(0), nil)

	summary, err := engine.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Items)
	assert.Equal(t, 1, summary.Updated)
}

func TestRunSecondPassIsNoOp(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockPlex := plexMocks.NewMockClientInterface(ctrl)

	store, err := availSqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Init(ctx))

	ratingKey := "700"
	id, err := store.CreateMediaItem(ctx, storage.MediaItem{
		MediaItem: model.MediaItem{
			MediaType: string(storage.MediaTypeMovie),
			TmdbID:    550,
			Status:    string(storage.MediaStatusAvailable),
			Status4k:  string(storage.MediaStatusUnknown),
			RatingKey: &ratingKey,
		},
	})
	require.NoError(t, err)

	_, err = store.CreateRequest(ctx, model.MediaRequest{
		MediaItemID: int32(id),
		Status:      string(storage.RequestStatusApproved),
	})
	require.NoError(t, err)

	// probed once: the second pass has nothing left to reconcile
	mockPlex.EXPECT().GetMetadata(gomock.Any(), "700").Return(nil, plex.ErrNotFound)

	engine := New(store, NewAggregator(mockPlex, nil, nil), WithPageSize(10))

	first, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Items)
	assert.Equal(t, 1, first.Updated)
	assert.Equal(t, int64(1), first.RequestsDeleted)

	second, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Items)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, int64(0), second.RequestsDeleted)
	assert.Equal(t, int64(0), second.SeasonRequestsDeleted)
}
