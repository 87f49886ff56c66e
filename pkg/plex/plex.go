package plex

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

// ErrNotFound means the media server definitively does not have the item.
// Any other error leaves the item's presence unknown.
var ErrNotFound = errors.New("not found in media server")

type ClientInterface interface {
	GetMetadata(ctx context.Context, ratingKey string) (*Metadata, error)
	GetChildren(ctx context.Context, ratingKey string) ([]Metadata, error)
}

type Client struct {
	http   mhttp.HTTPClient
	scheme string
	host   string
	token  string
}

func New(http mhttp.HTTPClient, scheme, host, token string) ClientInterface {
	return &Client{
		http,
		scheme,
		host,
		token,
	}
}

// Metadata is a single library entry as returned by the media server
type Metadata struct {
	RatingKey       string `json:"ratingKey"`
	ParentRatingKey string `json:"parentRatingKey"`
	Key             string `json:"key"`
	GUID            string `json:"guid"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Index           int    `json:"index"`
	LeafCount       int    `json:"leafCount"`
	ViewedLeafCount int    `json:"viewedLeafCount"`
	ChildCount      int    `json:"childCount"`
	AddedAt         int64  `json:"addedAt"`
	UpdatedAt       int64  `json:"updatedAt"`
}

type mediaContainer struct {
	MediaContainer struct {
		Size     int        `json:"size"`
		Metadata []Metadata `json:"Metadata"`
	} `json:"MediaContainer"`
}

// GetMetadata fetches a library entry by its rating key
func (c *Client) GetMetadata(ctx context.Context, ratingKey string) (*Metadata, error) {
	url := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   fmt.Sprintf("/library/metadata/%s", ratingKey),
	}

	b, err := c.do(ctx, &url)
	if err != nil {
		return nil, err
	}

	var response mediaContainer
	err = json.Unmarshal(b, &response)
	if err != nil {
		return nil, err
	}

	if len(response.MediaContainer.Metadata) == 0 {
		return nil, ErrNotFound
	}

	return &response.MediaContainer.Metadata[0], nil
}

// GetChildren fetches the child entries of a library entry, the seasons of a show
func (c *Client) GetChildren(ctx context.Context, ratingKey string) ([]Metadata, error) {
	url := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   fmt.Sprintf("/library/metadata/%s/children", ratingKey),
	}

	b, err := c.do(ctx, &url)
	if err != nil {
		return nil, err
	}

	var response mediaContainer
	err = json.Unmarshal(b, &response)
	if err != nil {
		return nil, err
	}

	return response.MediaContainer.Metadata, nil
}

func (c *Client) do(ctx context.Context, url *url.URL) ([]byte, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	u := url.String()
	log.Debugw("plex do", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json")

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

// NullClient stands in when no media server is configured. Every probe
// reports the item absent.
type NullClient struct{}

func (NullClient) GetMetadata(ctx context.Context, ratingKey string) (*Metadata, error) {
	return nil, ErrNotFound
}

func (NullClient) GetChildren(ctx context.Context, ratingKey string) ([]Metadata, error) {
	return nil, ErrNotFound
}
