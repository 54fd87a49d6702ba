package trends

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"ContentEngine/internal/config"
	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

const (
	entriesPerFeed   = 10
	summaryMaxRunes  = 500
	minFeedRelevance = 2
	feedFetchTimeout = 10 * time.Second
)

// RSSSource pulls topic candidates from configured RSS feeds.
type RSSSource struct {
	feeds      []config.FeedConfig
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.TrendSource = (*RSSSource)(nil)

// NewRSSSource wires the configured feed list. A nil client gets a bounded default.
func NewRSSSource(feeds []config.FeedConfig, client *http.Client, log *slog.Logger) *RSSSource {
	if client == nil {
		client = &http.Client{Timeout: feedFetchTimeout}
	}
	return &RSSSource{feeds: feeds, httpClient: client, logger: log}
}

// Name identifies the source kind.
func (s *RSSSource) Name() string { return "rss" }

// Fetch parses every configured feed and keeps entries matching at least
// minFeedRelevance vocabulary keywords. A broken feed is logged and skipped so
// the remaining feeds still produce a usable partial result.
func (s *RSSSource) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	parser := gofeed.NewParser()
	parser.Client = s.httpClient

	var candidates []domain.TopicCandidate
	for _, feedCfg := range s.feeds {
		feed, err := parser.ParseURLWithContext(feedCfg.URL, ctx)
		if err != nil {
			s.warn("feed fetch failed", "url", feedCfg.URL, "error", err)
			continue
		}

		items := feed.Items
		if len(items) > entriesPerFeed {
			items = items[:entriesPerFeed]
		}

		for _, item := range items {
			summary := stripHTML(firstNonEmpty(item.Description, item.Content))
			score := RelevanceScore(item.Title, summary)
			if score < minFeedRelevance {
				continue
			}

			candidates = append(candidates, domain.TopicCandidate{
				Title:     item.Title,
				Summary:   truncateRunes(summary, summaryMaxRunes),
				Source:    feedCfg.Name,
				URL:       item.Link,
				Published: item.Published,
				Relevance: score,
				Origin:    domain.OriginFeed,
			})
		}
	}

	return candidates, nil
}

// RelevanceScore counts vocabulary keywords found in the combined text.
func RelevanceScore(title, summary string) int {
	content := strings.ToLower(title + " " + summary)
	score := 0
	for _, kw := range relevanceVocabulary {
		if strings.Contains(content, kw) {
			score++
		}
	}
	return score
}

func stripHTML(raw string) string {
	if raw == "" || !strings.ContainsRune(raw, '<') {
		return strings.TrimSpace(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *RSSSource) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
