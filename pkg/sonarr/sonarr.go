package sonarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	mhttp "github.com/availarr/availarr/pkg/http"
	"github.com/availarr/availarr/pkg/logger"
)

// ErrNotFound means the series manager has no record of the series.
// Any other error leaves the series' presence unknown.
var ErrNotFound = errors.New("series not found")

type ClientInterface interface {
	GetSeriesByID(ctx context.Context, id int64) (*Series, error)
}

type Client struct {
	http   mhttp.HTTPClient
	scheme string
	host   string
	apiKey string
}

func New(http mhttp.HTTPClient, scheme, host, apiKey string) ClientInterface {
	return &Client{
		http,
		scheme,
		host,
		apiKey,
	}
}

// Series is a series record as returned by the series manager
type Series struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	TvdbID     int64      `json:"tvdbId"`
	TitleSlug  string     `json:"titleSlug"`
	Monitored  bool       `json:"monitored"`
	Seasons    []Season   `json:"seasons"`
	Statistics Statistics `json:"statistics"`
}

type Season struct {
	SeasonNumber int32      `json:"seasonNumber"`
	Monitored    bool       `json:"monitored"`
	Statistics   Statistics `json:"statistics"`
}

type Statistics struct {
	EpisodeFileCount  int `json:"episodeFileCount"`
	EpisodeCount      int `json:"episodeCount"`
	TotalEpisodeCount int `json:"totalEpisodeCount"`
}

// HasFiles reports whether any episode file is on disk
func (s Statistics) HasFiles() bool {
	return s.EpisodeFileCount > 0
}

// GetSeriesByID fetches a series by its internal id, season statistics included
func (c *Client) GetSeriesByID(ctx context.Context, id int64) (*Series, error) {
	url := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   fmt.Sprintf("/api/v3/series/%d", id),
	}

	b, err := c.do(ctx, &url)
	if err != nil {
		return nil, err
	}

	var series Series
	err = json.Unmarshal(b, &series)
	if err != nil {
		return nil, err
	}

	return &series, nil
}

func (c *Client) do(ctx context.Context, url *url.URL) ([]byte, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	u := url.String()
	log.Debugw("sonarr do", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code not ok: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
