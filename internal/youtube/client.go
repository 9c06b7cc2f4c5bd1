// Package youtube fetches video metadata from the YouTube Data API v3.
//
// The fetch is treated as an opaque boundary: it returns a VideoInfo or one
// of ErrNotFound / ErrPrivate / a wrapped transport error. Mapping those onto
// the validation error taxonomy happens at the API layer, not here.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound is returned when no video exists for the requested ID.
	ErrNotFound = errors.New("video not found")

	// ErrPrivate is returned when the video exists but is private.
	ErrPrivate = errors.New("video is private")
)

// VideoInfo is the metadata record for a single video.
type VideoInfo struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	PublishedAt  time.Time
	ThumbnailURL string
	Tags         []string
}

// Fetcher retrieves metadata for a video ID.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (*VideoInfo, error)
}

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client calls the YouTube Data API v3 videos endpoint.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string    `json:"title"`
			ChannelTitle string    `json:"channelTitle"`
			Description  string    `json:"description"`
			PublishedAt  time.Time `json:"publishedAt"`
			Tags         []string  `json:"tags"`
			Thumbnails   struct {
				Default thumbnail `json:"default"`
				Medium  thumbnail `json:"medium"`
				High    thumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Status struct {
			PrivacyStatus string `json:"privacyStatus"`
		} `json:"status"`
	} `json:"items"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// Fetch returns metadata for videoID. A missing video yields ErrNotFound, a
// private one ErrPrivate; anything else is a wrapped transport or API error.
func (c *Client) Fetch(ctx context.Context, videoID string) (*VideoInfo, error) {
	q := url.Values{}
	q.Set("part", "snippet,status")
	q.Set("id", videoID)
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "/videos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call youtube api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	var body videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode youtube response: %w", err)
	}

	if len(body.Items) == 0 {
		return nil, ErrNotFound
	}

	item := body.Items[0]
	if item.Status.PrivacyStatus == "private" {
		return nil, ErrPrivate
	}

	// Prefer the largest thumbnail available.
	thumb := item.Snippet.Thumbnails.High.URL
	if thumb == "" {
		thumb = item.Snippet.Thumbnails.Medium.URL
	}
	if thumb == "" {
		thumb = item.Snippet.Thumbnails.Default.URL
	}

	return &VideoInfo{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		Description:  item.Snippet.Description,
		PublishedAt:  item.Snippet.PublishedAt,
		ThumbnailURL: thumb,
		Tags:         item.Snippet.Tags,
	}, nil
}
