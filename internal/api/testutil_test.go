package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/videval/videval/internal/api"
	"github.com/videval/videval/internal/store"
	"github.com/videval/videval/internal/testutil"
	"github.com/videval/videval/internal/youtube"
)

// stubFetcher returns a canned VideoInfo or error instead of calling the
// YouTube API.
type stubFetcher struct {
	info *youtube.VideoInfo
	err  error
}

func (s *stubFetcher) Fetch(_ context.Context, videoID string) (*youtube.VideoInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	info := *s.info
	info.ID = videoID
	return &info, nil
}

// testEnv holds the router, store, and fetcher stub for API tests.
type testEnv struct {
	Router     http.Handler
	VideoStore *store.VideoStore
	Fetcher    *stubFetcher
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with a real store and a stub fetcher.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	vs := store.NewVideoStore(db)
	fetcher := &stubFetcher{
		info: &youtube.VideoInfo{
			Title:        "Test Video",
			ChannelTitle: "Test Channel",
			Description:  "A test video",
			PublishedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			ThumbnailURL: "https://i.ytimg.com/vi/test/hqdefault.jpg",
		},
	}

	router := api.NewRouter(api.Deps{
		VideoStore: vs,
		Fetcher:    fetcher,
	})

	return &testEnv{Router: router, VideoStore: vs, Fetcher: fetcher}
}
