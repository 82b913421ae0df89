package rss

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_scout/internal/domain"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
  <title>Example</title>
  <item>
    <title>Dog learns to skateboard</title>
    <link>https://example.com/dog</link>
    <description>&lt;p&gt;A very &lt;b&gt;good&lt;/b&gt; dog.&lt;/p&gt;</description>
    <dc:creator>Jane Doe</dc:creator>
    <pubDate>Sat, 28 Feb 2026 10:00:00 GMT</pubDate>
    <enclosure url="https://example.com/dog.jpg" type="image/jpeg" length="100"/>
  </item>
  <item>
    <title>Cat opens fridge</title>
    <link>https://example.com/cat</link>
    <description>Snack time.</description>
  </item>
  <item>
    <title>Ancient news</title>
    <link>https://example.com/old</link>
    <description>Old.</description>
    <pubDate>Mon, 01 Dec 2025 10:00:00 GMT</pubDate>
  </item>
</channel>
</rss>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSource(maxFeeds int) *Source {
	s := New(Config{Timeout: time.Second, MaxFeeds: maxFeeds, UserAgent: "test-agent"}, testLogger())
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func feedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func decode(t *testing.T, raw domain.RawItem) entry {
	t.Helper()
	var e entry
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

func TestFetch_ConvertsEntries(t *testing.T) {
	srv := feedServer(t, feedXML, http.StatusOK)
	s := newTestSource(3)

	items, err := s.Fetch(context.Background(), []string{srv.URL}, 20, 7)

	require.NoError(t, err)
	require.Len(t, items, 2)

	dog := decode(t, items[0])
	assert.Equal(t, "https://example.com/dog", dog.Link)
	assert.Equal(t, "Dog learns to skateboard", dog.Title)
	assert.Equal(t, "<p>A very <b>good</b> dog.</p>", dog.Description)
	assert.Equal(t, "Jane Doe", dog.Author)
	assert.Equal(t, "2026-02-28T10:00:00Z", dog.PubDate)
	assert.Equal(t, "https://example.com/dog.jpg", dog.Image)

	cat := decode(t, items[1])
	assert.Equal(t, "https://example.com/cat", cat.Link)
	assert.Empty(t, cat.PubDate)
	assert.Equal(t, domain.PlatformRSS, s.Platform())
}

func TestFetch_LimitAppliesPerFeed(t *testing.T) {
	first := feedServer(t, feedXML, http.StatusOK)
	second := feedServer(t, feedXML, http.StatusOK)
	s := newTestSource(3)

	items, err := s.Fetch(context.Background(), []string{first.URL, second.URL}, 1, 30)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetch_CapsFeedCount(t *testing.T) {
	srv := feedServer(t, feedXML, http.StatusOK)
	s := newTestSource(1)

	items, err := s.Fetch(context.Background(), []string{srv.URL, srv.URL, srv.URL}, 20, 7)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetch_SkipsFailingFeed(t *testing.T) {
	good := feedServer(t, feedXML, http.StatusOK)
	bad := feedServer(t, "oops", http.StatusInternalServerError)
	s := newTestSource(3)

	items, err := s.Fetch(context.Background(), []string{bad.URL, good.URL}, 20, 7)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetch_AllFeedsFail(t *testing.T) {
	bad := feedServer(t, "not a feed", http.StatusOK)
	s := newTestSource(3)

	items, err := s.Fetch(context.Background(), []string{bad.URL}, 20, 7)

	require.Error(t, err)
	assert.Nil(t, items)
	assert.Contains(t, err.Error(), "read feed")
}

func TestFetch_NoFeeds(t *testing.T) {
	s := newTestSource(3)

	items, err := s.Fetch(context.Background(), nil, 20, 7)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetch_CancelledContext(t *testing.T) {
	good := feedServer(t, feedXML, http.StatusOK)
	s := newTestSource(3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := s.Fetch(ctx, []string{good.URL, good.URL}, 20, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, items)
}
