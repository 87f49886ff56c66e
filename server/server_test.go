package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/availarr/availarr/pkg/availability"
	"github.com/availarr/availarr/pkg/storage"
	storageMocks "github.com/availarr/availarr/pkg/storage/mocks"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_ListMedia(t *testing.T) {
	t.Run("lists a page with metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		s := New(zap.NewNop().Sugar(), store, availability.New(store, availability.NewAggregator(nil, nil, nil)))

		store.EXPECT().ListMedia(gomock.Any(), 0, 2).Return([]*storage.MediaItem{
			{MediaItem: model.MediaItem{ID: 1, MediaType: "movie", TmdbID: 603, Status: "available", Status4k: "unknown"}},
			{MediaItem: model.MediaItem{ID: 2, MediaType: "tv", TmdbID: 1399, Status: "partially_available", Status4k: "unknown"}},
		}, nil)
		store.EXPECT().CountMedia(gomock.Any()).Return(int64(5), nil)

		req, err := http.NewRequest("GET", "/api/v1/media?page=1&pageSize=2", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.ListMedia().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response MediaListResponse `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

		require.Len(t, response.Response.Items, 2)
		assert.Equal(t, "Movie", response.Response.Items[0].Type)
		assert.Equal(t, "Tv", response.Response.Items[1].Type)
		assert.Equal(t, 5, response.Response.Meta.TotalItems)
		assert.Equal(t, 3, response.Response.Meta.TotalPages)
	})

	t.Run("rejects a bad page parameter", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/api/v1/media?page=zero", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.ListMedia().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_TriggerSync(t *testing.T) {
	t.Run("starts a run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := availability.New(store, availability.NewAggregator(nil, nil, nil))
		s := New(zap.NewNop().Sugar(), store, engine)

		listed := make(chan struct{})
		store.EXPECT().ListAvailableMedia(gomock.Any(), 0, 50).DoAndReturn(
			func(ctx context.Context, offset, limit int) ([]*storage.MediaItem, error) {
				close(listed)
				return nil, nil
			})

		req, err := http.NewRequest("POST", "/api/v1/availability/sync", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.TriggerSync().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)

		<-listed
		require.Eventually(t, func() bool { return !engine.IsRunning() }, time.Second, 5*time.Millisecond)
	})

	t.Run("conflict while a run is in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := availability.New(store, availability.NewAggregator(nil, nil, nil))
		s := New(zap.NewNop().Sugar(), store, engine)

		release := make(chan struct{})
		store.EXPECT().ListAvailableMedia(gomock.Any(), 0, 50).DoAndReturn(
			func(ctx context.Context, offset, limit int) ([]*storage.MediaItem, error) {
				<-release
				return nil, nil
			})

		done := make(chan struct{})
		go func() {
			engine.Run(context.Background())
			close(done)
		}()

		require.Eventually(t, engine.IsRunning, time.Second, 5*time.Millisecond)

		req, err := http.NewRequest("POST", "/api/v1/availability/sync", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.TriggerSync().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		close(release)
		<-done
	})
}

func TestServer_CancelSync(t *testing.T) {
	t.Run("conflict when nothing is running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := availability.New(store, availability.NewAggregator(nil, nil, nil))
		s := New(zap.NewNop().Sugar(), store, engine)

		req, err := http.NewRequest("DELETE", "/api/v1/availability/sync", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.CancelSync().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestServer_SyncStatus(t *testing.T) {
	t.Run("reports the latest job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := availability.New(store, availability.NewAggregator(nil, nil, nil))
		s := New(zap.NewNop().Sugar(), store, engine)

		now := time.Now()
		errMsg := "probe timed out"
		store.EXPECT().LatestJobByType(gomock.Any(), "availability_sync").Return(&storage.Job{
			Job: model.Job{
				ID:           7,
				Type:         "availability_sync",
				State:        string(storage.JobStateError),
				ErrorMessage: &errMsg,
				CreatedAt:    &now,
				UpdatedAt:    &now,
			},
		}, nil)

		req, err := http.NewRequest("GET", "/api/v1/availability/status", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.SyncStatus().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response SyncStatusResponse `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

		assert.False(t, response.Response.Running)
		require.NotNil(t, response.Response.LastJob)
		assert.Equal(t, int64(7), response.Response.LastJob.ID)
		assert.Equal(t, string(storage.JobStateError), response.Response.LastJob.State)
		got, err := response.Response.LastJob.Error.Get()
		require.NoError(t, err)
		assert.Equal(t, errMsg, got)
	})

	t.Run("no jobs yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		engine := availability.New(store, availability.NewAggregator(nil, nil, nil))
		s := New(zap.NewNop().Sugar(), store, engine)

		store.EXPECT().LatestJobByType(gomock.Any(), "availability_sync").Return(nil, storage.ErrNotFound)

		req, err := http.NewRequest("GET", "/api/v1/availability/status", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		s.SyncStatus().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response SyncStatusResponse `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Nil(t, response.Response.LastJob)
	})
}
