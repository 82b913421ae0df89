package domain

import (
	"errors"
	"time"
)

// ErrJobNotFound is returned for unknown or expired job tokens.
var ErrJobNotFound = errors.New("job not found or expired")

// ErrJobFinished is returned when a completed or failed job is updated again.
var ErrJobFinished = errors.New("job already finished")

type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job is one asynchronous workflow execution record.
type Job struct {
	ID        string       `json:"job_id"`
	Status    JobStatus    `json:"status"`
	Results   []ScoredPost `json:"results"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// JobStats holds registry counters after eviction.
type JobStats struct {
	TotalJobs  int `json:"total_jobs"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}
