package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateVideo is returned when a video with the same YouTube ID
	// is already registered.
	ErrDuplicateVideo = errors.New("video is already registered")
)

// VideoStoreIface exposes all video data operations. No handler may query
// the DB directly; all access goes through this interface.
type VideoStoreIface interface {
	Create(ctx context.Context, v *Video) (*Video, error)
	GetByID(ctx context.Context, id string) (*Video, error)
	GetByYouTubeID(ctx context.Context, youtubeID string) (*Video, error)
	ListAll(ctx context.Context) ([]*Video, error)
	Delete(ctx context.Context, id string) error
	ExistsByYouTubeID(ctx context.Context, youtubeID string) (bool, error)
}

// Video is a registered YouTube video with the metadata captured at
// registration time.
type Video struct {
	ID               string    `db:"id"`
	YouTubeID        string    `db:"youtube_id"`
	OriginalURL      string    `db:"original_url"`
	CanonicalURL     string    `db:"canonical_url"`
	Title            string    `db:"title"`
	ChannelTitle     string    `db:"channel_title"`
	Description      string    `db:"description"`
	ThumbnailURL     string    `db:"thumbnail_url"`
	PublishedAt      time.Time `db:"published_at"`
	TimestampSeconds int       `db:"timestamp_seconds"`
	PlaylistID       string    `db:"playlist_id"`
	PlaylistIndex    *int      `db:"playlist_index"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
