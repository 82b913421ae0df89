package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"trend_scout/internal/domain"
	"trend_scout/internal/metrics"
	"trend_scout/internal/ranking"
)

// Orchestrator fans retrieval out over every (category, platform) pair and
// turns the combined posts into a ranked shortlist.
type Orchestrator struct {
	fetchers   map[domain.Platform]Fetcher
	planner    QueryPlanner
	normalizer Normalizer
	classifier Classifier
	scorer     Scorer
	metrics    Metrics
	logger     *slog.Logger
}

func NewOrchestrator(
	fetchers []Fetcher,
	planner QueryPlanner,
	normalizer Normalizer,
	classifier Classifier,
	scorer Scorer,
	m Metrics,
	logger *slog.Logger,
) *Orchestrator {
	byPlatform := make(map[domain.Platform]Fetcher, len(fetchers))
	for _, f := range fetchers {
		byPlatform[f.Platform()] = f
	}

	return &Orchestrator{
		fetchers:   byPlatform,
		planner:    planner,
		normalizer: normalizer,
		classifier: classifier,
		scorer:     scorer,
		metrics:    m,
		logger:     logger.With("component", "orchestrator"),
	}
}

type retrievalTask struct {
	category string
	platform domain.Platform
}

// RunWorkflow never fails because of a single provider. It returns an error
// only when ctx is done before scoring starts.
func (o *Orchestrator) RunWorkflow(ctx context.Context, params domain.WorkflowParams) ([]domain.ScoredPost, error) {
	start := time.Now()
	defer func() {
		o.metrics.ObserveWorkflow(time.Since(start))
	}()

	tasks := make([]retrievalTask, 0, len(params.Categories)*len(params.Platforms))
	for _, category := range params.Categories {
		for _, platform := range params.Platforms {
			tasks = append(tasks, retrievalTask{category: category, platform: platform})
		}
	}

	o.logger.Info("starting workflow",
		"categories", len(params.Categories),
		"platforms", len(params.Platforms),
		"tasks", len(tasks),
		"days_back", params.DaysBack,
	)

	results := make([][]domain.CanonicalPost, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			results[i] = o.retrieve(ctx, task, params)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("retrieval interrupted: %w", err)
	}

	var posts []domain.CanonicalPost
	for _, r := range results {
		posts = append(posts, r...)
	}

	unique := ranking.Dedupe(posts)
	o.metrics.RecordDropped(metrics.DropDuplicate, len(posts)-len(unique))

	scored := o.scorer.Score(ctx, unique)
	top := ranking.TopN(ranking.Rank(scored), params.TopN)
	if top == nil {
		top = []domain.ScoredPost{}
	}

	o.logger.Info("workflow finished",
		"retrieved", len(posts),
		"unique", len(unique),
		"returned", len(top),
		"duration", time.Since(start),
	)

	return top, nil
}

func (o *Orchestrator) retrieve(ctx context.Context, task retrievalTask, params domain.WorkflowParams) (posts []domain.CanonicalPost) {
	logger := o.logger.With("category", task.category, "platform", task.platform)
	platform := string(task.platform)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("retrieval panicked", "panic", r)
			o.metrics.RecordRetrieval(platform, metrics.OutcomeError)
			posts = nil
		}
	}()

	fetcher, ok := o.fetchers[task.platform]
	if !ok {
		logger.Warn("no provider registered for platform")
		o.metrics.RecordRetrieval(platform, metrics.OutcomeSkipped)
		return nil
	}

	terms := o.planner.QueryTerms(task.category, task.platform)
	if len(terms) == 0 {
		logger.Debug("no query terms, skipping")
		o.metrics.RecordRetrieval(platform, metrics.OutcomeSkipped)
		return nil
	}

	raw, err := fetcher.Fetch(ctx, terms, params.LimitPerSource, params.DaysBack)
	if err != nil {
		logger.Error("retrieval failed", "error", err)
		o.metrics.RecordRetrieval(platform, metrics.OutcomeError)
		return nil
	}
	o.metrics.RecordRetrieval(platform, metrics.OutcomeOK)

	normalized := o.normalizer.Normalize(raw, task.platform)
	o.metrics.RecordNormalized(platform, len(normalized))
	o.metrics.RecordDropped(metrics.DropNormalize, len(raw)-len(normalized))

	posts = make([]domain.CanonicalPost, 0, len(normalized))
	for _, p := range normalized {
		if !o.classifier.IsLikelyTargetLanguage(p.Text) {
			continue
		}
		p.Category = task.category
		posts = append(posts, p)
	}
	o.metrics.RecordDropped(metrics.DropLanguage, len(normalized)-len(posts))

	logger.Info("retrieved posts", "raw", len(raw), "kept", len(posts))
	return posts
}
