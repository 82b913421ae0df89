// Package normalize maps provider records onto domain.CanonicalPost.
package normalize

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"trend_scout/internal/domain"
)

const unknownAuthor = "Unknown"

type mapper func(raw domain.RawItem, now time.Time) (domain.CanonicalPost, error)

// Normalizer converts raw provider items into canonical posts.
type Normalizer struct {
	logger  *slog.Logger
	now     func() time.Time
	strip   *bluemonday.Policy
	mappers map[domain.Platform]mapper
}

// New creates a Normalizer.
func New(logger *slog.Logger) *Normalizer {
	n := &Normalizer{
		logger: logger.With("component", "normalizer"),
		now:    time.Now,
		strip:  bluemonday.StrictPolicy(),
	}
	n.mappers = map[domain.Platform]mapper{
		domain.PlatformTikTok:    mapTikTok,
		domain.PlatformInstagram: mapInstagram,
		domain.PlatformFacebook:  mapFacebook,
		domain.PlatformTwitter:   mapTwitter,
		domain.PlatformRSS:       n.mapRSS,
	}
	return n
}

// Normalize maps every item of a batch. Items that fail to map are logged
// and dropped; the rest of the batch is unaffected.
func (n *Normalizer) Normalize(items []domain.RawItem, platform domain.Platform) []domain.CanonicalPost {
	m, ok := n.mappers[platform]
	if !ok {
		n.logger.Warn("unknown platform", "platform", platform)
		return []domain.CanonicalPost{}
	}

	now := n.now()
	posts := make([]domain.CanonicalPost, 0, len(items))
	for i, raw := range items {
		post, err := m(raw, now)
		if err != nil {
			n.logger.Error("failed to normalize item",
				"platform", platform,
				"index", i,
				"error", err,
			)
			continue
		}
		post.Platform = platform
		posts = append(posts, withDefaults(post, now))
	}

	n.logger.Info("normalized posts", "platform", platform, "count", len(posts), "received", len(items))
	return posts
}

func withDefaults(p domain.CanonicalPost, now time.Time) domain.CanonicalPost {
	if strings.TrimSpace(p.Author) == "" {
		p.Author = unknownAuthor
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = now
	}
	if p.Hashtags == nil {
		p.Hashtags = []string{}
	}
	p.AuthorFollowers = nonNegative(p.AuthorFollowers)
	p.Likes = nonNegative(p.Likes)
	p.Shares = nonNegative(p.Shares)
	p.Comments = nonNegative(p.Comments)
	p.Views = nonNegative(p.Views)
	return p
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func decode(raw domain.RawItem, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode item: %w", err)
	}
	return nil
}

func mapTikTok(raw domain.RawItem, now time.Time) (domain.CanonicalPost, error) {
	var it tiktokItem
	if err := decode(raw, &it); err != nil {
		return domain.CanonicalPost{}, err
	}

	post := domain.CanonicalPost{
		ID:        it.ID,
		URL:       it.WebVideoURL,
		Text:      it.Text,
		Likes:     int64(it.DiggCount),
		Shares:    int64(it.ShareCount),
		Comments:  int64(it.CommentCount),
		Views:     int64(it.PlayCount),
		Timestamp: parseTimestamp(it.CreateTime, now),
		Hashtags:  it.Hashtags,
	}
	if post.Timestamp.Equal(now) && it.CreateTimeISO != "" {
		post.Timestamp = parseTimeString(it.CreateTimeISO, now)
	}
	if it.AuthorMeta != nil {
		post.Author = it.AuthorMeta.Name
		post.AuthorFollowers = int64(it.AuthorMeta.Fans)
	}
	switch {
	case it.Covers != nil && it.Covers.Default != "":
		post.ThumbnailURL = it.Covers.Default
	case it.VideoMeta != nil:
		post.ThumbnailURL = it.VideoMeta.CoverURL
	}
	return post, nil
}

func mapInstagram(raw domain.RawItem, now time.Time) (domain.CanonicalPost, error) {
	var it instagramItem
	if err := decode(raw, &it); err != nil {
		return domain.CanonicalPost{}, err
	}

	return domain.CanonicalPost{
		ID:           it.ID,
		URL:          it.URL,
		Text:         it.Caption,
		Author:       it.OwnerUsername,
		Likes:        int64(it.LikesCount),
		Comments:     int64(it.CommentsCount),
		Views:        int64(it.VideoViewCount),
		Timestamp:    parseTimestamp(it.Timestamp, now),
		Hashtags:     it.Hashtags,
		ThumbnailURL: it.DisplayURL,
	}, nil
}

func mapFacebook(raw domain.RawItem, now time.Time) (domain.CanonicalPost, error) {
	var it facebookItem
	if err := decode(raw, &it); err != nil {
		return domain.CanonicalPost{}, err
	}

	return domain.CanonicalPost{
		ID:        it.PostID,
		URL:       it.URL,
		Text:      it.Text,
		Likes:     int64(it.Likes),
		Shares:    int64(it.Shares),
		Comments:  int64(it.Comments),
		Timestamp: parseTimestamp(it.Time, now),
	}, nil
}

func mapTwitter(raw domain.RawItem, now time.Time) (domain.CanonicalPost, error) {
	var it twitterItem
	if err := decode(raw, &it); err != nil {
		return domain.CanonicalPost{}, err
	}

	post := domain.CanonicalPost{
		ID:        it.ID,
		URL:       it.TweetURL,
		Text:      it.Text,
		Likes:     int64(it.LikeCount),
		Shares:    int64(it.RetweetCount),
		Comments:  int64(it.ReplyCount),
		Timestamp: parseTimestamp(it.CreatedAt, now),
		Hashtags:  it.Hashtags,
	}
	if post.URL == "" {
		post.URL = it.URL
	}
	if len(post.Hashtags) == 0 && it.Entities != nil {
		post.Hashtags = it.Entities.Hashtags
	}

	var author twitterAuthor
	if !it.Author.isNull() && json.Unmarshal(it.Author, &author) == nil {
		post.Author = author.UserName
		post.AuthorFollowers = int64(author.Followers)
	}
	return post, nil
}

func (n *Normalizer) mapRSS(raw domain.RawItem, now time.Time) (domain.CanonicalPost, error) {
	var it rssItem
	if err := decode(raw, &it); err != nil {
		return domain.CanonicalPost{}, err
	}

	text := n.plainText(it.Description)
	if text == "" {
		text = n.plainText(it.Title)
	}

	sum := md5.Sum([]byte(it.Link))
	return domain.CanonicalPost{
		ID:           hex.EncodeToString(sum[:]),
		URL:          it.Link,
		Text:         text,
		Author:       it.Author,
		Timestamp:    parseTimestamp(it.PubDate, now),
		ThumbnailURL: it.Image,
	}, nil
}

func (n *Normalizer) plainText(s string) string {
	cleaned := html.UnescapeString(n.strip.Sanitize(s))
	return strings.Join(strings.Fields(cleaned), " ")
}
