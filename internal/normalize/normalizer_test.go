package normalize

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_scout/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	n := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	n.now = func() time.Time { return fixedNow }
	return n
}

func raw(s string) domain.RawItem {
	return domain.RawItem(s)
}

func TestNormalize_TikTok(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{raw(`{
		"id": "7300",
		"webVideoUrl": "https://tiktok.com/@cat/video/7300",
		"text": "cat vs cucumber",
		"authorMeta": {"name": "catlover", "fans": 120000},
		"diggCount": 5000,
		"shareCount": "300",
		"commentCount": 42.0,
		"playCount": 90000,
		"createTime": 1767225600,
		"hashtags": [{"name": "cats"}, {"name": "funny"}],
		"covers": {"default": "https://img/7300.jpg"}
	}`)}, domain.PlatformTikTok)

	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, "7300", p.ID)
	assert.Equal(t, domain.PlatformTikTok, p.Platform)
	assert.Equal(t, "https://tiktok.com/@cat/video/7300", p.URL)
	assert.Equal(t, "catlover", p.Author)
	assert.Equal(t, int64(120000), p.AuthorFollowers)
	assert.Equal(t, int64(5000), p.Likes)
	assert.Equal(t, int64(300), p.Shares)
	assert.Equal(t, int64(42), p.Comments)
	assert.Equal(t, int64(90000), p.Views)
	assert.Equal(t, time.Unix(1767225600, 0).UTC(), p.Timestamp)
	assert.Equal(t, []string{"cats", "funny"}, p.Hashtags)
	assert.Equal(t, "https://img/7300.jpg", p.ThumbnailURL)
	assert.Empty(t, p.Category)
}

func TestNormalize_EmptyItemsGetDefaults(t *testing.T) {
	n := newTestNormalizer()

	for _, platform := range domain.Platforms() {
		t.Run(string(platform), func(t *testing.T) {
			posts := n.Normalize([]domain.RawItem{raw(`{}`)}, platform)

			require.Len(t, posts, 1)
			p := posts[0]
			assert.Equal(t, platform, p.Platform)
			assert.Equal(t, "Unknown", p.Author)
			assert.Zero(t, p.AuthorFollowers)
			assert.Zero(t, p.Likes)
			assert.Zero(t, p.Shares)
			assert.Zero(t, p.Comments)
			assert.Zero(t, p.Views)
			assert.Equal(t, fixedNow, p.Timestamp)
			assert.NotNil(t, p.Hashtags)
			assert.Empty(t, p.Hashtags)
			assert.Empty(t, p.URL)
			assert.Empty(t, p.ThumbnailURL)
		})
	}
}

func TestNormalize_DropsOnlyBrokenItems(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{
		raw(`{"postId": "1", "url": "https://fb.com/1", "likes": 10}`),
		raw(`"not an object"`),
		raw(`{"postId": "3", "likes": "lots"}`),
		raw(`{"postId": "4", "url": "https://fb.com/4", "time": "2026-02-28T10:00:00Z"}`),
	}, domain.PlatformFacebook)

	require.Len(t, posts, 2)
	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, int64(10), posts[0].Likes)
	assert.Equal(t, "4", posts[1].ID)
	assert.Equal(t, time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC), posts[1].Timestamp)
}

func TestNormalize_Twitter(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{
		raw(`{
			"id": "1",
			"url": "https://x.com/a/status/1",
			"text": "hello",
			"author": {"userName": "alice", "followers": 2500},
			"likeCount": 10, "retweetCount": 2, "replyCount": 1,
			"createdAt": "Sat Feb 28 09:30:00 +0000 2026",
			"entities": {"hashtags": [{"text": "news"}]}
		}`),
		raw(`{"id": "2", "tweetUrl": "https://x.com/b/status/2", "author": "bob", "hashtags": ["one"]}`),
	}, domain.PlatformTwitter)

	require.Len(t, posts, 2)

	assert.Equal(t, "https://x.com/a/status/1", posts[0].URL)
	assert.Equal(t, "alice", posts[0].Author)
	assert.Equal(t, int64(2500), posts[0].AuthorFollowers)
	assert.Equal(t, int64(2), posts[0].Shares)
	assert.Equal(t, []string{"news"}, posts[0].Hashtags)
	assert.True(t, posts[0].Timestamp.Equal(time.Date(2026, 2, 28, 9, 30, 0, 0, time.UTC)))

	assert.Equal(t, "https://x.com/b/status/2", posts[1].URL)
	assert.Equal(t, "Unknown", posts[1].Author)
	assert.Equal(t, []string{"one"}, posts[1].Hashtags)
}

func TestNormalize_RSS(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{
		raw(`{
			"link": "https://news.example.com/a",
			"title": "Title A",
			"description": "<p>Dog &amp; cat <b>reunited</b></p>",
			"author": "Reporter",
			"pubDate": "Sat, 28 Feb 2026 08:00:00 +0000"
		}`),
		raw(`{"link": "https://news.example.com/b", "title": "Only a <i>title</i>"}`),
	}, domain.PlatformRSS)

	require.Len(t, posts, 2)
	assert.Equal(t, "Dog & cat reunited", posts[0].Text)
	assert.Equal(t, "Reporter", posts[0].Author)
	assert.Len(t, posts[0].ID, 32)
	assert.True(t, posts[0].Timestamp.Equal(time.Date(2026, 2, 28, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, "Only a title", posts[1].Text)
	assert.NotEqual(t, posts[0].ID, posts[1].ID)
}

func TestNormalize_ClampsNegativeCounts(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{raw(`{"likesCount": -5, "commentsCount": 3}`)}, domain.PlatformInstagram)

	require.Len(t, posts, 1)
	assert.Zero(t, posts[0].Likes)
	assert.Equal(t, int64(3), posts[0].Comments)
}

func TestNormalize_SaturatesOversizedCounts(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{raw(`{
		"id": "7301",
		"diggCount": 9223372036854775807,
		"shareCount": 1,
		"commentCount": 1e30,
		"playCount": "1e400",
		"authorMeta": {"fans": "99999999999999999999"}
	}`)}, domain.PlatformTikTok)

	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, domain.MaxCount, p.Likes)
	assert.Equal(t, int64(1), p.Shares)
	assert.Equal(t, domain.MaxCount, p.Comments)
	assert.Equal(t, domain.MaxCount, p.Views)
	assert.Equal(t, domain.MaxCount, p.AuthorFollowers)
	assert.Positive(t, p.Engagements())
}

func TestNormalize_UnknownPlatform(t *testing.T) {
	n := newTestNormalizer()

	posts := n.Normalize([]domain.RawItem{raw(`{}`)}, domain.Platform("MySpace"))

	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestParseTimeString(t *testing.T) {
	fallback := fixedNow

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"rfc3339", "2026-01-02T03:04:05Z", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"unix seconds", "1767225600", time.Unix(1767225600, 0).UTC()},
		{"unix millis", "1767225600000", time.Unix(1767225600, 0).UTC()},
		{"ruby date", "Fri Jan 02 03:04:05 +0000 2026", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"empty", "", fallback},
		{"garbage", "not a date at all", fallback},
		{"zero", "0", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimeString(tt.input, fallback)
			assert.True(t, tt.expected.Equal(got), "got %v want %v", got, tt.expected)
		})
	}
}
