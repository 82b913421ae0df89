// Package analysis calls an LLM to explain and adjust the virality of a post.
package analysis

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"golang.org/x/time/rate"

	"trend_scout/internal/domain"
)

//go:embed prompts/system.md
var systemPrompt string

//go:embed prompts/schema.json
var outputSchema string

var ErrEmptyResponse = errors.New("empty response from analysis service")

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// PromptFunc sends one prompt and returns the raw text of the reply.
type PromptFunc func(system, user, schema string) (string, error)

// Recorder receives one outcome per Analyze call.
type Recorder interface {
	RecordAnalysis(outcome string)
}

type Config struct {
	APIKey        string
	Model         string
	MaxTokens     int
	Temperature   float64
	Timeout       time.Duration
	RatePerMinute float64
	Burst         int

	FailureThreshold uint
	FailureWindow    uint
	BreakerDelay     time.Duration
}

type Client struct {
	prompt   PromptFunc
	limiter  *rate.Limiter
	breaker  circuitbreaker.CircuitBreaker[*domain.Analysis]
	timeout  time.Duration
	recorder Recorder
	logger   *slog.Logger
}

func NewClient(cfg Config, recorder Recorder, logger *slog.Logger) *Client {
	return newClient(cfg, anthropicPrompt(cfg), recorder, logger)
}

func newClient(cfg Config, prompt PromptFunc, recorder Recorder, logger *slog.Logger) *Client {
	logger = logger.With("component", "analysis")

	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Limit(cfg.RatePerMinute / 60)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	window := cfg.FailureWindow
	if window < threshold {
		window = threshold
	}
	delay := cfg.BreakerDelay
	if delay <= 0 {
		delay = 30 * time.Second
	}

	breaker := circuitbreaker.NewBuilder[*domain.Analysis]().
		WithFailureThresholdRatio(threshold, window).
		WithDelay(delay).
		WithSuccessThreshold(1).
		OnStateChanged(func(event circuitbreaker.StateChangedEvent) {
			logger.Warn("circuit breaker state change",
				"from_state", stateName(event.OldState),
				"to_state", stateName(event.NewState),
			)
		}).
		Build()

	return &Client{
		prompt:   prompt,
		limiter:  rate.NewLimiter(limit, burst),
		breaker:  breaker,
		timeout:  cfg.Timeout,
		recorder: recorder,
		logger:   logger,
	}
}

// IsOpen reports whether the breaker is currently rejecting calls.
func (c *Client) IsOpen() bool {
	return c.breaker.IsOpen()
}

func stateName(state circuitbreaker.State) string {
	switch state {
	case circuitbreaker.ClosedState:
		return "closed"
	case circuitbreaker.HalfOpenState:
		return "half-open"
	case circuitbreaker.OpenState:
		return "open"
	default:
		return "unknown"
	}
}

func anthropicPrompt(cfg Config) PromptFunc {
	settings := types.RequestSettings{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	return func(system, user, schema string) (string, error) {
		response, err := anthropic.PromptWithSettings(system, user, schema, cfg.APIKey, settings)
		if err != nil {
			return "", err
		}
		if len(response.Content) == 0 {
			return "", ErrEmptyResponse
		}
		return response.Content[0].Text, nil
	}
}

// Analyze waits for the rate limiter, then runs one call through the circuit breaker.
func (c *Client) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error) {
	result, err := c.analyze(ctx, req)
	if c.recorder != nil {
		if err != nil {
			c.recorder.RecordAnalysis(outcomeError)
		} else {
			c.recorder.RecordAnalysis(outcomeOK)
		}
	}
	if err != nil {
		c.logger.Debug("analysis failed", "platform", req.Platform, "error", err)
	}
	return result, err
}

func (c *Client) analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	result, err := failsafe.With(c.breaker).Get(func() (*domain.Analysis, error) {
		return c.call(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("analyze post: %w", err)
	}
	return result, nil
}

type promptResult struct {
	text string
	err  error
}

func (c *Client) call(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	done := make(chan promptResult, 1)
	go func() {
		text, err := c.prompt(systemPrompt, buildUserPrompt(req), outputSchema)
		done <- promptResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return ParseAnalysis(res.text)
	}
}

func buildUserPrompt(req domain.AnalysisRequest) string {
	return fmt.Sprintf(`Analyze this social media post.

Platform: %s
Content: %s
Engagement: %d likes, %d shares, %d comments
Author: %s (%d followers)

Current virality score: %.2f/100`,
		req.Platform, req.Text, req.Likes, req.Shares, req.Comments,
		req.Author, req.AuthorFollowers, req.BaseScore)
}

type analysisPayload struct {
	ViralityBrief       *string   `json:"viralityBrief"`
	AudienceFit         *string   `json:"audienceFit"`
	WriterGuidance      *[]string `json:"writerGuidance"`
	ScoreAdjustment     *float64  `json:"scoreAdjustment"`
	AdjustmentReasoning *string   `json:"adjustmentReasoning"`
}

// ParseAnalysis decodes a reply and rejects it when any required key is missing.
func ParseAnalysis(text string) (*domain.Analysis, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	var missing []string
	if payload.ViralityBrief == nil {
		missing = append(missing, "viralityBrief")
	}
	if payload.AudienceFit == nil {
		missing = append(missing, "audienceFit")
	}
	if payload.WriterGuidance == nil {
		missing = append(missing, "writerGuidance")
	}
	if payload.ScoreAdjustment == nil {
		missing = append(missing, "scoreAdjustment")
	}
	if payload.AdjustmentReasoning == nil {
		missing = append(missing, "adjustmentReasoning")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("analysis missing keys: %s", strings.Join(missing, ", "))
	}

	return &domain.Analysis{
		ViralityBrief:       *payload.ViralityBrief,
		AudienceFit:         *payload.AudienceFit,
		WriterGuidance:      *payload.WriterGuidance,
		ScoreAdjustment:     *payload.ScoreAdjustment,
		AdjustmentReasoning: *payload.AdjustmentReasoning,
	}, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
