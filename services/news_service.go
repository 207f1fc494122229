package services

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"mrm-cyber-api/config"
	"mrm-cyber-api/dto"
	"mrm-cyber-api/internal/logger"
)

// NewsOrigin tags where a news response came from, so callers and tests can
// tell a live fetch from a fallback even though the wire shape is identical.
type NewsOrigin string

const (
	OriginLive   NewsOrigin = "live"
	OriginRSS    NewsOrigin = "rss"
	OriginSample NewsOrigin = "sample"
)

type NewsResult struct {
	Items  []dto.NewsItem
	Origin NewsOrigin
}

type newsFetcher interface {
	Latest(ctx context.Context, query, countries, language string, limit int) ([]dto.NewsItem, error)
}

// NewsService produces up to cfg.Limit items per request. Resolution order:
// live provider (when a fetcher is configured), the optional RSS feed, then
// the fixed 3-item sample. Provider failures are logged and masked, never
// surfaced to the client. Nothing is cached or persisted.
type NewsService struct {
	fetcher newsFetcher
	cfg     config.NewsConfig
	now     func() time.Time
}

// NewNewsService builds the service; fetcher may be nil when no API key is
// configured.
func NewNewsService(fetcher newsFetcher, cfg config.NewsConfig) *NewsService {
	return &NewsService{fetcher: fetcher, cfg: cfg, now: time.Now}
}

func (s *NewsService) Get(ctx context.Context) NewsResult {
	if s.fetcher != nil {
		items, err := s.fetcher.Latest(ctx, s.cfg.Query, s.cfg.Countries, s.cfg.Language, s.cfg.Limit)
		if err != nil {
			logger.Log.Warnf("news provider call failed: %v", err)
		} else if len(items) > 0 {
			return NewsResult{Items: items, Origin: OriginLive}
		}
	}

	if s.cfg.RSSURL != "" {
		if items := s.fetchRSS(ctx); len(items) > 0 {
			return NewsResult{Items: items, Origin: OriginRSS}
		}
	}

	return NewsResult{Items: sampleNews(s.now().UTC()), Origin: OriginSample}
}

func (s *NewsService) fetchRSS(ctx context.Context) []dto.NewsItem {
	feed, err := gofeed.NewParser().ParseURLWithContext(s.cfg.RSSURL, ctx)
	if err != nil {
		logger.Log.Warnf("news rss fetch failed: %v", err)
		return nil
	}

	var items []dto.NewsItem
	for _, it := range feed.Items {
		title := it.Title
		if title == "" {
			title = "Untitled"
		}
		item := dto.NewsItem{
			Title:       title,
			Description: it.Description,
			URL:         it.Link,
			Source:      feed.Title,
		}
		if it.PublishedParsed != nil {
			item.PublishedAt = it.PublishedParsed.UTC().Format(time.RFC3339)
		}
		if it.Image != nil {
			item.ImageURL = it.Image.URL
		}
		items = append(items, item)
		if s.cfg.Limit > 0 && len(items) >= s.cfg.Limit {
			break
		}
	}
	return items
}

// sampleNews returns the fixed fallback list. All three items share the one
// request timestamp.
func sampleNews(now time.Time) []dto.NewsItem {
	ts := now.Format(time.RFC3339)
	return []dto.NewsItem{
		{
			Title:       "Latest CVE trends show rise in supply-chain attacks",
			URL:         "https://thehackernews.com/",
			Source:      "Sample",
			PublishedAt: ts,
		},
		{
			Title:       "Krebs: Major ISP suffers DDoS impacting services",
			URL:         "https://krebsonsecurity.com/",
			Source:      "Sample",
			PublishedAt: ts,
		},
		{
			Title:       "ThreatPost: Critical bug patched in popular router firmware",
			URL:         "https://threatpost.com/",
			Source:      "Sample",
			PublishedAt: ts,
		},
	}
}
