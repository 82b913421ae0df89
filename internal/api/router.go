// Package api exposes job submission and results over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"trend_scout/internal/domain"
)

type JobSubmitter interface {
	Submit(params domain.WorkflowParams) string
}

type JobReader interface {
	Get(id string) (domain.Job, error)
	Stats() domain.JobStats
}

type CategoryCatalog interface {
	Categories() []string
	Has(name string) bool
}

// WorkflowDefaults fill the parameters a request does not carry.
type WorkflowDefaults struct {
	DaysBack       int
	LimitPerSource int
	TopN           int
}

type RouterDeps struct {
	Submitter JobSubmitter
	Jobs      JobReader
	Catalog   CategoryCatalog
	Defaults  WorkflowDefaults
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
}

func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()
	logger := deps.Logger.With("component", "api")

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := newHandler(deps, logger)

	r.Get("/health", h.Health)
	r.Get("/config", h.Config)
	r.Post("/scrape", h.Scrape)
	r.Get("/results/{jobID}", h.Results)

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
