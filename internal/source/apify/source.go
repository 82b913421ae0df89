// Package apify runs Apify actors synchronously and returns their dataset items.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trend_scout/internal/domain"
)

const DefaultBaseURL = "https://api.apify.com/v2"

type Config struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Actor describes how query terms, the result limit and the look-back window
// are placed into one actor's input document.
type Actor struct {
	ID string
	// TermsField receives the query terms. Empty means the actor takes no terms.
	TermsField string
	// TermTemplate is applied to each term with fmt.Sprintf when set.
	TermTemplate string
	// TermsAsURLs wraps each term as {"url": term}.
	TermsAsURLs bool
	MaxTerms    int
	LimitField  string
	// SinceOperator appends " since:YYYY-MM-DD" to every term.
	SinceOperator bool
	// DaysBackField receives "<n> days" when set.
	DaysBackField string
	Input         map[string]any
}

// Source fetches raw items for one platform through one actor.
type Source struct {
	platform       domain.Platform
	actor          Actor
	httpClient     *http.Client
	baseURL        string
	token          string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func New(platform domain.Platform, actor Actor, cfg Config, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Source{
		platform: platform,
		actor:    actor,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(baseURL, "/"),
		token:          cfg.Token,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		now:            time.Now,
		logger:         logger.With("source", "apify", "platform", platform, "actor", actor.ID),
	}
}

func (s *Source) Platform() domain.Platform {
	return s.platform
}

// Fetch runs the actor once and returns at most limit items.
func (s *Source) Fetch(ctx context.Context, terms []string, limit, daysBack int) ([]domain.RawItem, error) {
	input, err := s.buildInput(terms, limit, daysBack)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting actor run", "terms", len(terms), "limit", limit, "days_back", daysBack)

	items, err := s.runActor(ctx, input)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	s.logger.Info("actor run finished", "items", len(items))
	return items, nil
}

func (s *Source) buildInput(terms []string, limit, daysBack int) ([]byte, error) {
	input := make(map[string]any, len(s.actor.Input)+3)
	maps.Copy(input, s.actor.Input)

	if s.actor.TermsField != "" {
		if s.actor.MaxTerms > 0 && len(terms) > s.actor.MaxTerms {
			terms = terms[:s.actor.MaxTerms]
		}
		input[s.actor.TermsField] = s.formatTerms(terms, daysBack)
	}
	if s.actor.LimitField != "" {
		input[s.actor.LimitField] = limit
	}
	if s.actor.DaysBackField != "" {
		input[s.actor.DaysBackField] = fmt.Sprintf("%d days", daysBack)
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode actor input: %w", err)
	}
	return body, nil
}

func (s *Source) formatTerms(terms []string, daysBack int) any {
	since := s.now().AddDate(0, 0, -daysBack).Format(time.DateOnly)

	formatted := make([]string, 0, len(terms))
	for _, term := range terms {
		if s.actor.TermTemplate != "" {
			term = fmt.Sprintf(s.actor.TermTemplate, url.QueryEscape(term))
		}
		if s.actor.SinceOperator {
			term = fmt.Sprintf("%s since:%s", term, since)
		}
		formatted = append(formatted, term)
	}

	if !s.actor.TermsAsURLs {
		return formatted
	}
	urls := make([]map[string]string, 0, len(formatted))
	for _, u := range formatted {
		urls = append(urls, map[string]string{"url": u})
	}
	return urls
}

// permanentError marks a response that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func (s *Source) runActor(ctx context.Context, input []byte) ([]domain.RawItem, error) {
	endpoint := fmt.Sprintf("%s/acts/%s/run-sync-get-dataset-items",
		s.baseURL, url.PathEscape(strings.ReplaceAll(s.actor.ID, "/", "~")))

	var items []domain.RawItem
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		items, err = s.doRequest(ctx, endpoint, input)
		if err == nil {
			return items, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("run actor %s: %w", s.actor.ID, err)
}

func (s *Source) doRequest(ctx context.Context, endpoint string, input []byte) ([]domain.RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(input))
	if err != nil {
		return nil, &permanentError{fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TrendScout/1.0")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		statusErr := fmt.Errorf("unexpected status: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, &permanentError{statusErr}
		}
		return nil, statusErr
	}

	var items []domain.RawItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return items, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if s.maxBackoff > 0 && backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
