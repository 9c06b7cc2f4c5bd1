package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/videval/videval/internal/store"
	"github.com/videval/videval/internal/youtube"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	VideoStore store.VideoStoreIface
	Fetcher    youtube.Fetcher
}

// NewRouter assembles the full chi router: the /api/v1 JSON API plus the
// health and metrics endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api/v1", newAPIRouter(deps))

	return r
}

// newAPIRouter creates the chi sub-router for /api/v1. All routes return
// application/json.
func newAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)
	registerVideoRoutes(r, deps.VideoStore, deps.Fetcher)
	return r
}

// jsonContentType sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
