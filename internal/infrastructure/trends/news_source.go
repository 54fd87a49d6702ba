package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ContentEngine/internal/config"
	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

const (
	newsEndpoint       = "https://newsapi.org/v2/everything"
	newsPageSize       = 20
	newsFetchTimeout   = 10 * time.Second
	newsFixedRelevance = 3
)

// NewsSource queries the news-search API for domain articles. The provider is
// keyword-credentialed; an empty key yields an empty result set.
type NewsSource struct {
	apiKey     string
	query      string
	endpoint   string
	httpClient *http.Client
}

var _ ports.TrendSource = (*NewsSource)(nil)

// NewNewsSource builds the source from configuration.
func NewNewsSource(cfg config.NewsConfig) *NewsSource {
	return &NewsSource{
		apiKey:     cfg.APIKey,
		query:      cfg.Query,
		endpoint:   newsEndpoint,
		httpClient: &http.Client{Timeout: newsFetchTimeout},
	}
}

// Name identifies the source kind.
func (s *NewsSource) Name() string { return "news" }

type newsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Fetch returns news candidates with the fixed news relevance value.
func (s *NewsSource) Fetch(ctx context.Context) ([]domain.TopicCandidate, error) {
	if s.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", s.query)
	params.Set("language", "de")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", newsPageSize))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api status %s", resp.Status)
	}

	var parsed newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	candidates := make([]domain.TopicCandidate, 0, len(parsed.Articles))
	for _, article := range parsed.Articles {
		source := article.Source.Name
		if source == "" {
			source = "News API"
		}
		candidates = append(candidates, domain.TopicCandidate{
			Title:     article.Title,
			Summary:   article.Description,
			Source:    source,
			URL:       article.URL,
			Published: article.PublishedAt,
			Relevance: newsFixedRelevance,
			Origin:    domain.OriginNewsService,
		})
	}

	return candidates, nil
}
