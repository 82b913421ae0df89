// Package jobs keeps workflow jobs in memory for a fixed time-to-live.
package jobs

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"trend_scout/internal/domain"
)

const DefaultTTL = 60 * time.Minute

// Registry is a volatile job store. Entries older than the TTL are evicted
// lazily on Get and Stats.
type Registry struct {
	mu     sync.Mutex
	jobs   map[string]*domain.Job
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

func NewRegistry(ttl time.Duration, logger *slog.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	logger = logger.With("component", "jobs")
	logger.Info("job registry initialized", "ttl", ttl)

	return &Registry{
		jobs:   make(map[string]*domain.Job),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// Create registers a new processing job and returns its token.
func (r *Registry) Create() string {
	id := uuid.NewString()
	now := r.now()

	r.mu.Lock()
	r.jobs[id] = &domain.Job{
		ID:        id,
		Status:    domain.JobStatusProcessing,
		Results:   []domain.ScoredPost{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.mu.Unlock()

	r.logger.Info("created job", "job_id", id)
	return id
}

// Update records the outcome of a processing job. A job leaves processing
// once; later updates return domain.ErrJobFinished and change nothing.
func (r *Registry) Update(id string, results []domain.ScoredPost, status domain.JobStatus) error {
	if results == nil {
		results = []domain.ScoredPost{}
	}

	r.mu.Lock()
	job, ok := r.jobs[id]
	finished := ok && job.Status != domain.JobStatusProcessing
	if ok && !finished {
		job.Results = results
		job.Status = status
		job.UpdatedAt = r.now()
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Warn("update of unknown job", "job_id", id)
		return domain.ErrJobNotFound
	}
	if finished {
		r.logger.Warn("update of finished job", "job_id", id, "status", status)
		return domain.ErrJobFinished
	}

	r.logger.Info("updated job", "job_id", id, "results", len(results), "status", status)
	return nil
}

// Get returns a copy of the job or domain.ErrJobNotFound.
func (r *Registry) Get(id string) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()

	job, ok := r.jobs[id]
	if !ok {
		r.logger.Warn("job not found", "job_id", id)
		return domain.Job{}, domain.ErrJobNotFound
	}

	out := *job
	out.Results = slices.Clone(job.Results)
	return out, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	_, ok := r.jobs[id]
	delete(r.jobs, id)
	r.mu.Unlock()

	if ok {
		r.logger.Info("deleted job", "job_id", id)
	}
}

func (r *Registry) Stats() domain.JobStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()

	stats := domain.JobStats{TotalJobs: len(r.jobs)}
	for _, job := range r.jobs {
		switch job.Status {
		case domain.JobStatusProcessing:
			stats.Processing++
		case domain.JobStatusCompleted:
			stats.Completed++
		case domain.JobStatusFailed:
			stats.Failed++
		}
	}
	return stats
}

// evictExpired must be called with r.mu held.
func (r *Registry) evictExpired() {
	now := r.now()
	evicted := 0
	for id, job := range r.jobs {
		if now.Sub(job.CreatedAt) > r.ttl {
			delete(r.jobs, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.logger.Info("evicted expired jobs", "count", evicted)
	}
}
