// Package metrics exposes Prometheus counters for the retrieval and scoring pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"

	DropNormalize = "normalize"
	DropLanguage  = "language"
	DropDuplicate = "duplicate"
)

// Collector records pipeline metrics. A nil *Collector is a no-op.
type Collector struct {
	retrieval        *prometheus.CounterVec
	normalized       *prometheus.CounterVec
	dropped          *prometheus.CounterVec
	analysis         *prometheus.CounterVec
	jobs             *prometheus.CounterVec
	workflowDuration prometheus.Histogram
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		retrieval: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscout_retrieval_total",
			Help: "Retrieval tasks by platform and outcome.",
		}, []string{"platform", "outcome"}),
		normalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscout_posts_normalized_total",
			Help: "Posts produced by the normalizer.",
		}, []string{"platform"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscout_posts_dropped_total",
			Help: "Posts dropped before scoring.",
		}, []string{"reason"}),
		analysis: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscout_analysis_total",
			Help: "Analysis service calls by outcome.",
		}, []string{"outcome"}),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendscout_jobs_total",
			Help: "Jobs by terminal status.",
		}, []string{"status"}),
		workflowDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trendscout_workflow_duration_seconds",
			Help:    "Wall time of a full workflow run.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
	}

	reg.MustRegister(
		c.retrieval,
		c.normalized,
		c.dropped,
		c.analysis,
		c.jobs,
		c.workflowDuration,
	)

	return c
}

func (c *Collector) RecordRetrieval(platform, outcome string) {
	if c == nil {
		return
	}
	c.retrieval.WithLabelValues(platform, outcome).Inc()
}

func (c *Collector) RecordNormalized(platform string, count int) {
	if c == nil {
		return
	}
	c.normalized.WithLabelValues(platform).Add(float64(count))
}

func (c *Collector) RecordDropped(reason string, count int) {
	if c == nil || count <= 0 {
		return
	}
	c.dropped.WithLabelValues(reason).Add(float64(count))
}

func (c *Collector) RecordAnalysis(outcome string) {
	if c == nil {
		return
	}
	c.analysis.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordJob(status string) {
	if c == nil {
		return
	}
	c.jobs.WithLabelValues(status).Inc()
}

func (c *Collector) ObserveWorkflow(d time.Duration) {
	if c == nil {
		return
	}
	c.workflowDuration.Observe(d.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
