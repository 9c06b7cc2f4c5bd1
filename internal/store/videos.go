package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// VideoStore persists registered videos via sqlx.
type VideoStore struct {
	db *sqlx.DB
}

// NewVideoStore creates a VideoStore backed by db.
func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

// Create inserts v and returns the stored row. The caller must have run the
// duplicate check first; a unique index on youtube_id backstops races, which
// surface as ErrDuplicateVideo.
func (s *VideoStore) Create(ctx context.Context, v *Video) (*Video, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	exists, err := s.ExistsByYouTubeID(ctx, v.YouTubeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateVideo
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO videos (
			id, youtube_id, original_url, canonical_url, title,
			channel_title, description, thumbnail_url, published_at,
			timestamp_seconds, playlist_id, playlist_index,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, v.YouTubeID, v.OriginalURL, v.CanonicalURL, v.Title,
		v.ChannelTitle, v.Description, v.ThumbnailURL, v.PublishedAt,
		v.TimestampSeconds, v.PlaylistID, v.PlaylistIndex, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the video with the given internal ID.
func (s *VideoStore) GetByID(ctx context.Context, id string) (*Video, error) {
	var v Video
	err := s.db.GetContext(ctx, &v, `SELECT * FROM videos WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByYouTubeID returns the video with the given YouTube video ID.
func (s *VideoStore) GetByYouTubeID(ctx context.Context, youtubeID string) (*Video, error) {
	var v Video
	err := s.db.GetContext(ctx, &v, `SELECT * FROM videos WHERE youtube_id = ?`, youtubeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListAll returns every registered video, newest first.
func (s *VideoStore) ListAll(ctx context.Context) ([]*Video, error) {
	var videos []*Video
	err := s.db.SelectContext(ctx, &videos, `SELECT * FROM videos ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// Delete removes a video. Deleting a missing video returns ErrNotFound.
func (s *VideoStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsByYouTubeID reports whether a video with youtubeID is registered.
func (s *VideoStore) ExistsByYouTubeID(ctx context.Context, youtubeID string) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM videos WHERE youtube_id = ?`, youtubeID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
