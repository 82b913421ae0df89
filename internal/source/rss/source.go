// Package rss reads RSS and Atom feeds and emits their entries as raw items.
package rss

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"trend_scout/internal/domain"
)

const defaultUserAgent = "TrendScout/1.0"

type Config struct {
	Timeout   time.Duration
	MaxFeeds  int
	UserAgent string
}

// Source treats query terms as feed URLs.
type Source struct {
	parser   *gofeed.Parser
	maxFeeds int
	now      func() time.Time
	logger   *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.Timeout}
	parser.UserAgent = cfg.UserAgent
	if parser.UserAgent == "" {
		parser.UserAgent = defaultUserAgent
	}

	return &Source{
		parser:   parser,
		maxFeeds: cfg.MaxFeeds,
		now:      time.Now,
		logger:   logger.With("source", "rss"),
	}
}

func (s *Source) Platform() domain.Platform {
	return domain.PlatformRSS
}

type entry struct {
	Link        string `json:"link"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`
	PubDate     string `json:"pubDate,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Fetch reads each feed in turn and keeps at most limit entries per feed.
// Entries older than daysBack are skipped; undated entries are kept.
// A feed that fails is logged and skipped; the call fails when every feed does
// or when ctx is done before all feeds are read.
func (s *Source) Fetch(ctx context.Context, feeds []string, limit, daysBack int) ([]domain.RawItem, error) {
	if s.maxFeeds > 0 && len(feeds) > s.maxFeeds {
		feeds = feeds[:s.maxFeeds]
	}

	var cutoff time.Time
	if daysBack > 0 {
		cutoff = s.now().AddDate(0, 0, -daysBack)
	}

	var items []domain.RawItem
	var errs []error

	for _, feedURL := range feeds {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			s.logger.Error("failed to read feed", "feed", feedURL, "error", err)
			errs = append(errs, fmt.Errorf("read feed %s: %w", feedURL, err))
			if ctx.Err() != nil {
				return nil, errors.Join(append(errs, ctx.Err())...)
			}
			continue
		}

		count := 0
		for _, item := range feed.Items {
			if limit > 0 && count >= limit {
				break
			}
			if item == nil {
				continue
			}

			e, published := convertItem(item)
			if published != nil && !cutoff.IsZero() && published.Before(cutoff) {
				continue
			}

			raw, err := json.Marshal(e)
			if err != nil {
				return nil, fmt.Errorf("encode feed entry: %w", err)
			}
			items = append(items, raw)
			count++
		}

		s.logger.Info("feed read", "feed", feedURL, "items", count)
	}

	if len(feeds) > 0 && len(errs) == len(feeds) {
		return nil, errors.Join(errs...)
	}
	return items, nil
}

func convertItem(item *gofeed.Item) (entry, *time.Time) {
	e := entry{
		Link:        item.Link,
		Title:       item.Title,
		Description: item.Description,
	}
	if e.Description == "" {
		e.Description = item.Content
	}

	if e.Link == "" && (strings.HasPrefix(item.GUID, "http://") || strings.HasPrefix(item.GUID, "https://")) {
		e.Link = item.GUID
	}

	if item.Author != nil {
		e.Author = item.Author.Name
	}
	if e.Author == "" && len(item.Authors) > 0 && item.Authors[0] != nil {
		e.Author = item.Authors[0].Name
	}

	published := item.PublishedParsed
	if published == nil {
		published = item.UpdatedParsed
	}
	switch {
	case published != nil:
		e.PubDate = published.UTC().Format(time.RFC3339)
	case item.Published != "":
		e.PubDate = item.Published
	}

	if item.Image != nil {
		e.Image = item.Image.URL
	}
	if e.Image == "" {
		for _, enc := range item.Enclosures {
			if enc != nil && strings.HasPrefix(enc.Type, "image/") {
				e.Image = enc.URL
				break
			}
		}
	}

	return e, published
}
