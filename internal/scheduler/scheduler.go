package scheduler

import (
	"context"
	"log/slog"
	"time"

	"trend_scout/internal/domain"
)

// Submitter starts a workflow in the background and returns its job token.
type Submitter interface {
	Submit(params domain.WorkflowParams) string
}

type Scheduler struct {
	submitter Submitter
	params    domain.WorkflowParams
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(submitter Submitter, params domain.WorkflowParams, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		submitter: submitter,
		params:    params,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start submits the standing workflow immediately and then once per interval
// until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"categories", s.params.Categories,
		"platforms", s.params.Platforms,
	)

	s.submit()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.submit()
		}
	}
}

func (s *Scheduler) submit() {
	id := s.submitter.Submit(s.params)
	s.logger.Info("scheduled workflow submitted", "job_id", id)
}
