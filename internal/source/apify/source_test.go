package apify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_scout/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		Token:          "secret",
		Timeout:        time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func TestFetch_TwitterInput(t *testing.T) {
	var gotPath, gotAuth string
	var gotInput map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1"},{"id":"2"}]`))
	}))
	defer srv.Close()

	src := New(domain.PlatformTwitter, Actor{
		ID:            "apidojo/tweet-scraper",
		TermsField:    "searchTerms",
		MaxTerms:      2,
		LimitField:    "maxItems",
		SinceOperator: true,
		Input:         map[string]any{"sort": "Latest", "tweetLanguage": "en"},
	}, testConfig(srv.URL), testLogger())
	src.now = func() time.Time { return time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC) }

	items, err := src.Fetch(context.Background(), []string{"funny", "lol", "memes"}, 20, 7)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.JSONEq(t, `{"id":"1"}`, string(items[0]))
	assert.Equal(t, "/acts/apidojo~tweet-scraper/run-sync-get-dataset-items", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, []any{"funny since:2026-03-01", "lol since:2026-03-01"}, gotInput["searchTerms"])
	assert.Equal(t, 20.0, gotInput["maxItems"])
	assert.Equal(t, "Latest", gotInput["sort"])
	assert.Equal(t, "en", gotInput["tweetLanguage"])
	assert.Equal(t, domain.PlatformTwitter, src.Platform())
}

func TestFetch_URLTermsAndDaysBack(t *testing.T) {
	var gotInput map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src := New(domain.PlatformFacebook, Actor{
		ID:            "apify/facebook-posts-scraper",
		TermsField:    "startUrls",
		TermTemplate:  "https://www.facebook.com/search/posts/?q=%s",
		TermsAsURLs:   true,
		LimitField:    "resultsLimit",
		DaysBackField: "onlyPostsNewerThan",
	}, testConfig(srv.URL), testLogger())

	items, err := src.Fetch(context.Background(), []string{"cute animals"}, 10, 3)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, []any{
		map[string]any{"url": "https://www.facebook.com/search/posts/?q=cute+animals"},
	}, gotInput["startUrls"])
	assert.Equal(t, "3 days", gotInput["onlyPostsNewerThan"])
	assert.Equal(t, 10.0, gotInput["resultsLimit"])
}

func TestFetch_TrimsToLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1"},{"id":"2"},{"id":"3"}]`))
	}))
	defer srv.Close()

	src := New(domain.PlatformTikTok, Actor{ID: "clockworks/tiktok-scraper"}, testConfig(srv.URL), testLogger())

	items, err := src.Fetch(context.Background(), nil, 2, 7)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"ok"}]`))
	}))
	defer srv.Close()

	src := New(domain.PlatformInstagram, Actor{ID: "apify/instagram-hashtag-scraper"}, testConfig(srv.URL), testLogger())

	items, err := src.Fetch(context.Background(), []string{"cats"}, 5, 7)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFetch_GivesUpAfterMaxAttempts(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	src := New(domain.PlatformTikTok, Actor{ID: "clockworks/tiktok-scraper"}, testConfig(srv.URL), testLogger())

	_, err := src.Fetch(context.Background(), []string{"fyp"}, 5, 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run actor clockworks/tiktok-scraper")
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFetch_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	src := New(domain.PlatformTikTok, Actor{ID: "clockworks/tiktok-scraper"}, testConfig(srv.URL), testLogger())

	_, err := src.Fetch(context.Background(), []string{"fyp"}, 5, 7)

	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "not a list"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxAttempts = 1
	src := New(domain.PlatformTikTok, Actor{ID: "clockworks/tiktok-scraper"}, cfg, testLogger())

	_, err := src.Fetch(context.Background(), nil, 5, 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestFetch_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.InitialBackoff = time.Minute
	cfg.MaxBackoff = time.Minute
	src := New(domain.PlatformTikTok, Actor{ID: "clockworks/tiktok-scraper"}, cfg, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := src.Fetch(ctx, nil, 5, 7)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCalculateBackoff(t *testing.T) {
	src := New(domain.PlatformTikTok, Actor{}, Config{
		InitialBackoff: time.Second,
		MaxBackoff:     5 * time.Second,
	}, testLogger())

	assert.Equal(t, time.Second, src.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, src.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, src.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, src.calculateBackoff(4))
}
