// Package web serves the interactive UI: a form that triggers one
// analysis cycle per submission and renders the chosen visualization.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/jkorri/pagelens/internal/app"
	"github.com/jkorri/pagelens/internal/metrics"
)

// Server exposes the UI over HTTP. It holds no per-request state; every
// handler recomputes from its query parameters.
type Server struct {
	app    *app.App
	router chi.Router
}

// NewServer builds the router with logging, request-ID and metrics
// middleware around the UI handlers.
func NewServer(a *app.App) *Server {
	s := &Server{app: a}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(metrics.Middleware())

	r.Get("/", s.handleIndex)
	r.Get("/analyze", s.handleAnalyze)
	r.Get("/export/pdf", s.handleExportPDF)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger emits one line per request in the access-log style.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(requestIDKey).(string)
		log.Debug().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
