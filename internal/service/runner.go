package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"trend_scout/internal/domain"
)

const publishTimeout = 10 * time.Second

// Runner executes workflows in the background and records their outcome in
// the job store.
type Runner struct {
	workflow  Workflow
	jobs      JobStore
	publisher Publisher
	metrics   Metrics
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRunner creates a Runner. publisher may be nil.
func NewRunner(workflow Workflow, jobs JobStore, publisher Publisher, m Metrics, logger *slog.Logger) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		workflow:  workflow,
		jobs:      jobs,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "runner"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Submit creates a job and returns its token without waiting for the run.
func (r *Runner) Submit(params domain.WorkflowParams) string {
	id := r.jobs.Create()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(id, params)
	}()

	return id
}

// Wait blocks until every submitted job reached a terminal state.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Shutdown cancels running workflows and waits for them until ctx is done.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) run(id string, params domain.WorkflowParams) {
	logger := r.logger.With("job_id", id)
	logger.Info("job started",
		"categories", params.Categories,
		"platforms", params.Platforms,
	)

	results, err := r.execute(params)

	status := domain.JobStatusCompleted
	if err != nil {
		logger.Error("job failed", "error", err)
		status = domain.JobStatusFailed
		results = []domain.ScoredPost{}
	}

	if err := r.jobs.Update(id, results, status); err != nil {
		logger.Warn("failed to record job outcome", "error", err)
	}
	r.metrics.RecordJob(string(status))

	logger.Info("job finished", "status", status, "results", len(results))

	if r.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := r.publisher.PublishResults(pubCtx, id, status, results); err != nil {
		logger.Error("failed to publish results", "error", err)
	}
}

func (r *Runner) execute(params domain.WorkflowParams) (results []domain.ScoredPost, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("workflow panicked: %v", p)
		}
	}()

	return r.workflow.RunWorkflow(r.ctx, params)
}
