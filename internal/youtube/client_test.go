package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.baseURL = srv.URL
	c.client = srv.Client()
	return c
}

func TestClient_Fetch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "dQw4w9WgXcQ" {
			t.Errorf("id param = %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"id": "dQw4w9WgXcQ",
				"snippet": {
					"title": "Never Gonna Give You Up",
					"channelTitle": "Rick Astley",
					"description": "The official video",
					"publishedAt": "2009-10-25T06:57:33Z",
					"tags": ["rick", "astley"],
					"thumbnails": {
						"default": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg"},
						"high": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}
					}
				},
				"status": {"privacyStatus": "public"}
			}]
		}`))
	})

	info, err := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if info.Title != "Never Gonna Give You Up" {
		t.Errorf("title = %q", info.Title)
	}
	if info.ChannelTitle != "Rick Astley" {
		t.Errorf("channel = %q", info.ChannelTitle)
	}
	if info.ThumbnailURL != "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("thumbnail = %q (want the high variant)", info.ThumbnailURL)
	}
	if info.PublishedAt.IsZero() {
		t.Error("publishedAt not parsed")
	}
	if len(info.Tags) != 2 {
		t.Errorf("tags = %v", info.Tags)
	}
}

func TestClient_FetchNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := c.Fetch(context.Background(), "aaaaaaaaaaa")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchPrivate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"items": [{
				"id": "aaaaaaaaaaa",
				"snippet": {"title": "hidden"},
				"status": {"privacyStatus": "private"}
			}]
		}`))
	})

	_, err := c.Fetch(context.Background(), "aaaaaaaaaaa")
	if !errors.Is(err, ErrPrivate) {
		t.Errorf("expected ErrPrivate, got %v", err)
	}
}

func TestClient_FetchAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Fetch(context.Background(), "aaaaaaaaaaa")
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrPrivate) {
		t.Errorf("expected transport-level error, got %v", err)
	}
}

func TestClient_FetchConnectionRefused(t *testing.T) {
	c := NewClient("test-key")
	c.baseURL = "http://127.0.0.1:1"

	_, err := c.Fetch(context.Background(), "aaaaaaaaaaa")
	if err == nil {
		t.Fatal("expected error")
	}
}
