package api

import "time"

// RegisterVideoRequest is the request body for POST /api/v1/videos and
// POST /api/v1/videos/validate.
type RegisterVideoRequest struct {
	URL string `json:"url"`
}

// MetadataResponse carries the optional playback hints extracted from the
// submitted URL.
type MetadataResponse struct {
	TimestampSeconds int    `json:"timestamp_seconds,omitempty"`
	PlaylistID       string `json:"playlist_id,omitempty"`
	PlaylistIndex    *int   `json:"playlist_index,omitempty"`
}

// VideoResponse is the JSON representation of a registered video.
type VideoResponse struct {
	ID           string            `json:"id"`
	YouTubeID    string            `json:"youtube_id"`
	Original     string            `json:"original"`
	Canonical    string            `json:"canonical"`
	Title        string            `json:"title"`
	ChannelTitle string            `json:"channel_title"`
	Description  string            `json:"description"`
	ThumbnailURL string            `json:"thumbnail_url"`
	PublishedAt  time.Time         `json:"published_at"`
	Metadata     *MetadataResponse `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// VideoListResponse is the response for the video list endpoint.
type VideoListResponse struct {
	Videos []*VideoResponse `json:"videos"`
}

// ValidateResponse is the dry-run normalization result: no persistence, no
// metadata fetch, just the canonical classification of the input.
type ValidateResponse struct {
	YouTubeID string            `json:"youtube_id"`
	Original  string            `json:"original"`
	Canonical string            `json:"canonical"`
	Valid     bool              `json:"valid"`
	Metadata  *MetadataResponse `json:"metadata,omitempty"`
}
