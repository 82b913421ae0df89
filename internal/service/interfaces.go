package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"trend_scout/internal/domain"
)

type Fetcher interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, terms []string, limit, daysBack int) ([]domain.RawItem, error)
}

type QueryPlanner interface {
	QueryTerms(category string, platform domain.Platform) []string
}

type Normalizer interface {
	Normalize(items []domain.RawItem, platform domain.Platform) []domain.CanonicalPost
}

type Classifier interface {
	IsLikelyTargetLanguage(text string) bool
}

type Scorer interface {
	Score(ctx context.Context, posts []domain.CanonicalPost) []domain.ScoredPost
}

type Workflow interface {
	RunWorkflow(ctx context.Context, params domain.WorkflowParams) ([]domain.ScoredPost, error)
}

type JobStore interface {
	Create() string
	Update(id string, results []domain.ScoredPost, status domain.JobStatus) error
}

type Publisher interface {
	PublishResults(ctx context.Context, jobID string, status domain.JobStatus, stories []domain.ScoredPost) error
}

type Metrics interface {
	RecordRetrieval(platform, outcome string)
	RecordNormalized(platform string, count int)
	RecordDropped(reason string, count int)
	RecordJob(status string)
	ObserveWorkflow(d time.Duration)
}
