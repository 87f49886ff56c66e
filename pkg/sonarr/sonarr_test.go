package sonarr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	httpMock "github.com/availarr/availarr/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClient_GetSeriesByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := New(mockHttp, "http", "sonarr.local:8989", "secret")
		ctx := context.Background()

		body := `{
			"id": 12,
			"title": "Game of Thrones",
			"tvdbId": 121361,
			"statistics": {"episodeFileCount": 10, "episodeCount": 20},
			"seasons": [
				{"seasonNumber": 1, "statistics": {"episodeFileCount": 10, "episodeCount": 10}},
				{"seasonNumber": 2, "statistics": {"episodeFileCount": 0, "episodeCount": 10}}
			]
		}`

		mockHttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/api/v3/series/12", req.URL.Path)
			assert.Equal(t, "secret", req.Header.Get("X-Api-Key"))
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
			}, nil
		})

		series, err := client.GetSeriesByID(ctx, 12)
		require.NoError(t, err)
		assert.True(t, series.Statistics.HasFiles())
		require.Len(t, series.Seasons, 2)
		assert.True(t, series.Seasons[0].Statistics.HasFiles())
		assert.False(t, series.Seasons[1].Statistics.HasFiles())
	})

	t.Run("not found", func(t *testing.T) {
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := New(mockHttp, "http", "sonarr.local:8989", "secret")
		ctx := context.Background()

		mockHttp.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Body:       io.NopCloser(bytes.NewBufferString("")),
		}, nil)

		_, err := client.GetSeriesByID(ctx, 12)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("error during request", func(t *testing.T) {
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := New(mockHttp, "http", "sonarr.local:8989", "secret")
		ctx := context.Background()

		mockHttp.EXPECT().Do(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

		_, err := client.GetSeriesByID(ctx, 12)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
