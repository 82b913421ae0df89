package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trend_scout/internal/domain"
)

const serviceName = "Trend Scout"

type handler struct {
	submitter JobSubmitter
	jobs      JobReader
	catalog   CategoryCatalog
	defaults  WorkflowDefaults
	logger    *slog.Logger
}

func newHandler(deps *RouterDeps, logger *slog.Logger) *handler {
	return &handler{
		submitter: deps.Submitter,
		jobs:      deps.Jobs,
		catalog:   deps.Catalog,
		defaults:  deps.Defaults,
		logger:    logger,
	}
}

type scrapeRequest struct {
	Categories []string `json:"categories"`
	Sources    []string `json:"sources"`
	DaysBack   *int     `json:"days_back"`
}

type scrapeResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type resultsResponse struct {
	Status     domain.JobStatus    `json:"status"`
	TotalFound int                 `json:"total_found"`
	TopStories []domain.ScoredPost `json:"top_stories"`
	JobID      string              `json:"job_id"`
}

type healthResponse struct {
	Status     string          `json:"status"`
	Service    string          `json:"service"`
	CacheStats domain.JobStats `json:"cache_stats"`
}

type configResponse struct {
	Categories []string          `json:"categories"`
	Sources    []domain.Platform `json:"sources"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "healthy",
		Service:    serviceName,
		CacheStats: h.jobs.Stats(),
	})
}

func (h *handler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configResponse{
		Categories: h.catalog.Categories(),
		Sources:    domain.Platforms(),
	})
}

func (h *handler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params, err := h.toParams(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := h.submitter.Submit(params)

	h.logger.Info("created job",
		"job_id", id,
		"categories", len(params.Categories),
		"sources", len(params.Platforms),
	)

	writeJSON(w, http.StatusOK, scrapeResponse{
		JobID:   id,
		Status:  string(domain.JobStatusProcessing),
		Message: fmt.Sprintf("Scraping %d categories from %d sources", len(params.Categories), len(params.Platforms)),
	})
}

func (h *handler) toParams(req scrapeRequest) (domain.WorkflowParams, error) {
	if req.Categories == nil {
		return domain.WorkflowParams{}, errors.New("categories is required")
	}
	if req.Sources == nil {
		return domain.WorkflowParams{}, errors.New("sources is required")
	}

	daysBack := h.defaults.DaysBack
	if req.DaysBack != nil {
		daysBack = *req.DaysBack
	}
	if daysBack < 1 || daysBack > 30 {
		return domain.WorkflowParams{}, fmt.Errorf("days_back must be between 1 and 30, got %d", daysBack)
	}

	var invalidCategories []string
	for _, c := range req.Categories {
		if !h.catalog.Has(c) {
			invalidCategories = append(invalidCategories, c)
		}
	}
	if len(invalidCategories) > 0 {
		return domain.WorkflowParams{}, fmt.Errorf("invalid categories: %v", invalidCategories)
	}

	platforms := make([]domain.Platform, 0, len(req.Sources))
	var invalidSources []string
	for _, s := range req.Sources {
		p, ok := domain.ParsePlatform(s)
		if !ok {
			invalidSources = append(invalidSources, s)
			continue
		}
		platforms = append(platforms, p)
	}
	if len(invalidSources) > 0 {
		return domain.WorkflowParams{}, fmt.Errorf("invalid sources: %v", invalidSources)
	}

	return domain.WorkflowParams{
		Categories:     req.Categories,
		Platforms:      platforms,
		DaysBack:       daysBack,
		LimitPerSource: h.defaults.LimitPerSource,
		TopN:           h.defaults.TopN,
	}, nil
}

func (h *handler) Results(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobID")

	job, err := h.jobs.Get(id)
	if errors.Is(err, domain.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, "Job not found or expired")
		return
	}
	if err != nil {
		h.logger.Error("failed to read job", "job_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	stories := job.Results
	if stories == nil {
		stories = []domain.ScoredPost{}
	}

	writeJSON(w, http.StatusOK, resultsResponse{
		Status:     job.Status,
		TotalFound: len(stories),
		TopStories: stories,
		JobID:      job.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
