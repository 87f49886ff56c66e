package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/availarr/availarr/pkg/storage"
	storageMocks "github.com/availarr/availarr/pkg/storage/mocks"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconcileMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("downgrades lost tier and deletes its requests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := New(store, NewAggregator(nil, nil, nil))

		item := movieItem()
		item.Status4k = string(storage.MediaStatusAvailable)
		item.RatingKey4k = ptr("88000")
		item.ExternalServiceID4k = ptr(int32(9))

		store.EXPECT().ListRequestsForAvailableMedia(gomock.Any(), int64(1)).Return([]*model.MediaRequest{
			{ID: 10, MediaItemID: 1, Status: string(storage.RequestStatusApproved), Is4k: false},
			{ID: 11, MediaItemID: 1, Status: string(storage.RequestStatusApproved), Is4k: true},
		}, nil)
		store.EXPECT().UpdateMediaItem(gomock.Any(), item).Return(nil)
		store.EXPECT().DeleteRequests(gomock.Any(), []int64{10}).Return(int64(1), nil)

		outcome, err := engine.reconcileMovie(ctx, item, Verdict{Exists: false, Exists4k: true})
		require.NoError(t, err)

		assert.True(t, outcome.updated)
		assert.Equal(t, int64(1), outcome.requestsDeleted)
		assert.Equal(t, string(storage.MediaStatusUnknown), item.Status)
		assert.Equal(t, "", *item.RatingKey)
		assert.Nil(t, item.ExternalServiceID)
		// the surviving tier keeps its status and references
		assert.Equal(t, string(storage.MediaStatusAvailable), item.Status4k)
		assert.Equal(t, "88000", *item.RatingKey4k)
		assert.Equal(t, int32(9), *item.ExternalServiceID4k)
	})

	t.Run("no change when every tier is confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := New(store, NewAggregator(nil, nil, nil))

		item := movieItem()

		outcome, err := engine.reconcileMovie(ctx, item, Verdict{Exists: true})
		require.NoError(t, err)
		assert.False(t, outcome.updated)
		assert.Equal(t, string(storage.MediaStatusAvailable), item.Status)
	})

	t.Run("non reconcilable tiers are left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := New(store, NewAggregator(nil, nil, nil))

		item := movieItem()
		item.Status = string(storage.MediaStatusProcessing)

		outcome, err := engine.reconcileMovie(ctx, item, Verdict{Exists: false})
		require.NoError(t, err)
		assert.False(t, outcome.updated)
		assert.Equal(t, string(storage.MediaStatusProcessing), item.Status)
	})
}

func TestSeasonCascade(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	engine := New(store, NewAggregator(nil, nil, nil))

	item := showItem()

	store.EXPECT().
		UpdateSeasonStatuses(gomock.Any(), int64(2), storage.MediaStatusUnknown, storage.MediaStatusUnknown).
		Return(nil)
	store.EXPECT().ListSeasonRequests(gomock.Any(), int64(2), int32(2)).Return([]*storage.SeasonRequest{
		{SeasonRequest: model.SeasonRequest{ID: 30, RequestID: 20, SeasonNumber: 2}, Is4k: false, MediaItemID: 2},
	}, nil)
	store.EXPECT().DeleteSeasonRequests(gomock.Any(), []int64{30}).Return(int64(1), nil)
	store.EXPECT().ListRequestsForAvailableMedia(gomock.Any(), int64(2)).Return(nil, nil)
	store.EXPECT().UpdateMediaItem(gomock.Any(), item).Return(nil)

	verdict := Verdict{
		Exists:    true,
		Seasons:   map[int32]bool{1: true, 2: false},
		Seasons4k: map[int32]bool{},
	}

	outcome, err := engine.reconcileShow(ctx, item, verdict)
	require.NoError(t, err)

	assert.True(t, outcome.updated)
	assert.Equal(t, int64(1), outcome.seasonRequestsDeleted)
	snaps.MatchSnapshot(t, []string{item.Status, item.Seasons[0].Status, item.Seasons[1].Status})
}

func TestReconcileShow(t *testing.T) {
	ctx := context.Background()

	t.Run("open requests decide the downgrade target", func(t *testing.T) {
		tests := []struct {
			name         string
			requests     []*model.MediaRequest
			wantStatus   storage.MediaStatus
			wantRefsKept bool
		}{
			{
				name: "approved request keeps the show processing",
				requests: []*model.MediaRequest{
					{ID: 21, MediaItemID: 2, Status: string(storage.RequestStatusApproved), Is4k: false},
				},
				wantStatus:   storage.MediaStatusProcessing,
				wantRefsKept: true,
			},
			{
				name: "pending request keeps the show pending",
				requests: []*model.MediaRequest{
					{ID: 22, MediaItemID: 2, Status: string(storage.RequestStatusPending), Is4k: false},
				},
				wantStatus: storage.MediaStatusPending,
			},
			{
				name:       "no requests falls back to unknown",
				wantStatus: storage.MediaStatusUnknown,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				store := storageMocks.NewMockStorage(ctrl)
				engine := New(store, NewAggregator(nil, nil, nil))

				item := showItem()
				item.Seasons = nil

				store.EXPECT().ListRequestsForAvailableMedia(gomock.Any(), int64(2)).Return(tt.requests, nil)
				store.EXPECT().UpdateMediaItem(gomock.Any(), item).Return(nil)

				outcome, err := engine.reconcileShow(ctx, item, Verdict{})
				require.NoError(t, err)

				assert.True(t, outcome.updated)
				assert.Equal(t, string(tt.wantStatus), item.Status)
				if tt.wantRefsKept {
					assert.Equal(t, "100", *item.RatingKey)
					assert.Equal(t, int32(12), *item.ExternalServiceID)
				} else {
					assert.Equal(t, "", *item.RatingKey)
					assert.Nil(t, item.ExternalServiceID)
				}
			})
		}
	})

	t.Run("a failing season does not stop the rest of the show", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := New(store, NewAggregator(nil, nil, nil))

		item := showItem()

		store.EXPECT().
			UpdateSeasonStatuses(gomock.Any(), int64(1), storage.MediaStatusUnknown, storage.MediaStatusUnknown).
			Return(errors.New("database locked"))
		store.EXPECT().
			UpdateSeasonStatuses(gomock.Any(), int64(2), storage.MediaStatusUnknown, storage.MediaStatusUnknown).
			Return(nil)
		store.EXPECT().ListSeasonRequests(gomock.Any(), int64(2), int32(2)).Return(nil, nil)
		store.EXPECT().DeleteSeasonRequests(gomock.Any(), []int64{}).Return(int64(0), nil)
		store.EXPECT().ListRequestsForAvailableMedia(gomock.Any(), int64(2)).Return(nil, nil)
		store.EXPECT().UpdateMediaItem(gomock.Any(), item).Return(nil)

		verdict := Verdict{
			Exists:    true,
			Seasons:   map[int32]bool{1: false, 2: false},
			Seasons4k: map[int32]bool{},
		}

		outcome, err := engine.reconcileShow(ctx, item, verdict)
		require.NoError(t, err)

		assert.True(t, outcome.updated)
		assert.Equal(t, string(storage.MediaStatusPartiallyAvailable), item.Status)
		assert.Equal(t, string(storage.MediaStatusUnknown), item.Seasons[1].Status)
	})
}
