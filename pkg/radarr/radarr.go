package radarr

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

// ErrNotFound means the movie manager has no record of the movie.
// Any other error leaves the movie's presence unknown.
var ErrNotFound = errors.New("movie not found")

type ClientInterface interface {
	GetMovieByID(ctx context.Context, id int64) (*Movie, error)
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

// Movie is a movie record as returned by the movie manager
type Movie struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	TmdbID              int64  `json:"tmdbId"`
	TitleSlug           string `json:"titleSlug"`
	HasFile             bool   `json:"hasFile"`
	Monitored           bool   `json:"monitored"`
	IsAvailable         bool   `json:"isAvailable"`
	QualityProfileID    int64  `json:"qualityProfileId"`
	SizeOnDisk          int64  `json:"sizeOnDisk"`
	MinimumAvailability string `json:"minimumAvailability"`
}

// GetMovieByID fetches a movie by its internal id
func (c *Client) GetMovieByID(ctx context.Context, id int64) (*Movie, error) {
	url := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   fmt.Sprintf("/api/v3/movie/%d", id),
	}

	b, err := c.do(ctx, &url)
	if err != nil {
		return nil, err
	}

	var movie Movie
	err = json.Unmarshal(b, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (c *Client) do(ctx context.Context, url *url.URL) ([]byte, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	u := url.String()
	log.Debugw("radarr do", "url", u)

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
