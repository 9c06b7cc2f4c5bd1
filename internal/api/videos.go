package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/videval/videval/internal/i18n"
	"github.com/videval/videval/internal/metrics"
	"github.com/videval/videval/internal/normalize"
	"github.com/videval/videval/internal/store"
	"github.com/videval/videval/internal/validation"
	"github.com/videval/videval/internal/youtube"
)

// videosAPIHandler provides REST handlers for video registration.
type videosAPIHandler struct {
	videos  store.VideoStoreIface
	fetcher youtube.Fetcher
}

// registerVideoRoutes registers video routes on r.
func registerVideoRoutes(r chi.Router, videos store.VideoStoreIface, fetcher youtube.Fetcher) {
	h := &videosAPIHandler{videos: videos, fetcher: fetcher}
	r.Post("/videos", h.Register)
	r.Post("/videos/validate", h.Validate)
	r.Get("/videos", h.List)
	r.Get("/videos/{id}", h.Get)
	r.Delete("/videos/{id}", h.Delete)
}

// requestLanguage resolves the response language for r: explicit lang query
// parameter, then X-Language header, then Accept-Language negotiation, then
// the system default.
func requestLanguage(r *http.Request) i18n.Language {
	return i18n.Resolve(
		r.URL.Query().Get("lang"),
		r.Header.Get("X-Language"),
		r.Header.Get("Accept-Language"),
	)
}

// Register normalizes the submitted URL, fetches video metadata, and
// persists the video.
// POST /api/v1/videos
func (h *videosAPIHandler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	lang := requestLanguage(r)

	var req RegisterVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeKindError(w, validation.InvalidFormat, lang)
		return
	}

	res, err := normalize.Normalize(req.URL)
	if err != nil {
		kind := validation.KindOf(err)
		metrics.NormalizeTotal.WithLabelValues(kind.String()).Inc()
		writeKindError(w, kind, lang)
		return
	}
	metrics.NormalizeTotal.WithLabelValues("ok").Inc()

	// Duplicate check happens here, above the normalizer: the engine never
	// touches storage.
	exists, err := h.videos.ExistsByYouTubeID(r.Context(), res.VideoID)
	if err != nil {
		log.Printf("api: duplicate check %q: %v", res.VideoID, err)
		writeInternalError(w, lang)
		return
	}
	if exists {
		writeKindError(w, validation.DuplicateResource, lang)
		return
	}

	info, err := h.fetcher.Fetch(r.Context(), res.VideoID)
	if err != nil {
		kind := fetchErrorKind(err)
		metrics.MetadataFetchErrorsTotal.WithLabelValues(kind.String()).Inc()
		if kind == validation.NetworkError {
			log.Printf("api: metadata fetch %q: %v", res.VideoID, err)
		}
		writeKindError(w, kind, lang)
		return
	}

	v := &store.Video{
		YouTubeID:    res.VideoID,
		OriginalURL:  res.Original,
		CanonicalURL: res.Canonical,
		Title:        info.Title,
		ChannelTitle: info.ChannelTitle,
		Description:  info.Description,
		ThumbnailURL: info.ThumbnailURL,
		PublishedAt:  info.PublishedAt,
	}
	if res.Metadata != nil {
		v.TimestampSeconds = res.Metadata.TimestampSeconds
		v.PlaylistID = res.Metadata.PlaylistID
		v.PlaylistIndex = res.Metadata.PlaylistIndex
	}

	created, err := h.videos.Create(r.Context(), v)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateVideo) {
			writeKindError(w, validation.DuplicateResource, lang)
			return
		}
		log.Printf("api: create video %q: %v", res.VideoID, err)
		writeInternalError(w, lang)
		return
	}

	metrics.VideosRegisteredTotal.Inc()
	metrics.RegisterDuration.Observe(time.Since(start).Seconds())
	writeSuccess(w, http.StatusCreated, toVideoResponse(created))
}

// Validate dry-runs normalization without persistence or metadata fetch.
// POST /api/v1/videos/validate
func (h *videosAPIHandler) Validate(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	var req RegisterVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeKindError(w, validation.InvalidFormat, lang)
		return
	}

	res, err := normalize.Normalize(req.URL)
	if err != nil {
		kind := validation.KindOf(err)
		metrics.NormalizeTotal.WithLabelValues(kind.String()).Inc()
		writeKindError(w, kind, lang)
		return
	}
	metrics.NormalizeTotal.WithLabelValues("ok").Inc()

	writeSuccess(w, http.StatusOK, &ValidateResponse{
		YouTubeID: res.VideoID,
		Original:  res.Original,
		Canonical: res.Canonical,
		Valid:     res.Valid,
		Metadata:  toMetadataResponse(res.Metadata),
	})
}

// List returns every registered video, newest first.
// GET /api/v1/videos
func (h *videosAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	videos, err := h.videos.ListAll(r.Context())
	if err != nil {
		log.Printf("api: list videos: %v", err)
		writeInternalError(w, lang)
		return
	}

	resp := &VideoListResponse{Videos: make([]*VideoResponse, 0, len(videos))}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, toVideoResponse(v))
	}
	writeSuccess(w, http.StatusOK, resp)
}

// Get returns a single video by internal ID.
// GET /api/v1/videos/{id}
func (h *videosAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	v, err := h.videos.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeKindError(w, validation.ResourceNotFound, lang)
			return
		}
		log.Printf("api: get video: %v", err)
		writeInternalError(w, lang)
		return
	}
	writeSuccess(w, http.StatusOK, toVideoResponse(v))
}

// Delete removes a video by internal ID.
// DELETE /api/v1/videos/{id}
func (h *videosAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)

	if err := h.videos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeKindError(w, validation.ResourceNotFound, lang)
			return
		}
		log.Printf("api: delete video: %v", err)
		writeInternalError(w, lang)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fetchErrorKind maps metadata-fetch failures onto the validation taxonomy
// so the message catalog stays the single source of user-facing wording.
func fetchErrorKind(err error) validation.Kind {
	switch {
	case errors.Is(err, youtube.ErrNotFound):
		return validation.ResourceNotFound
	case errors.Is(err, youtube.ErrPrivate):
		return validation.PrivateResource
	default:
		return validation.NetworkError
	}
}

func toMetadataResponse(md *normalize.Metadata) *MetadataResponse {
	if md == nil {
		return nil
	}
	return &MetadataResponse{
		TimestampSeconds: md.TimestampSeconds,
		PlaylistID:       md.PlaylistID,
		PlaylistIndex:    md.PlaylistIndex,
	}
}

func toVideoResponse(v *store.Video) *VideoResponse {
	resp := &VideoResponse{
		ID:           v.ID,
		YouTubeID:    v.YouTubeID,
		Original:     v.OriginalURL,
		Canonical:    v.CanonicalURL,
		Title:        v.Title,
		ChannelTitle: v.ChannelTitle,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		PublishedAt:  v.PublishedAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.TimestampSeconds != 0 || v.PlaylistID != "" || v.PlaylistIndex != nil {
		resp.Metadata = &MetadataResponse{
			TimestampSeconds: v.TimestampSeconds,
			PlaylistID:       v.PlaylistID,
			PlaylistIndex:    v.PlaylistIndex,
		}
	}
	return resp
}
