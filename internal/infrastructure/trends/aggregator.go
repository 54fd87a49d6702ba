package trends

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// Aggregator combines topic candidates from all configured sources, dedupes
// them by normalized title and orders them by descending relevance.
type Aggregator struct {
	sources []ports.TrendSource
	logger  *slog.Logger
}

// NewAggregator wires the ordered source list. Source order decides which
// duplicate survives deduplication.
func NewAggregator(sources []ports.TrendSource, log *slog.Logger) *Aggregator {
	return &Aggregator{sources: sources, logger: log}
}

// Collect gathers candidates from every source. A failing source is logged and
// skipped; partial results are still returned.
func (a *Aggregator) Collect(ctx context.Context, maxItems int) ([]domain.TopicCandidate, error) {
	var all []domain.TopicCandidate
	for _, source := range a.sources {
		candidates, err := source.Fetch(ctx)
		if err != nil {
			a.warn("trend source failed", "source", source.Name(), "error", err)
			continue
		}
		all = append(all, candidates...)
	}

	seen := make(map[string]bool, len(all))
	unique := all[:0]
	for _, candidate := range all {
		key := strings.ToLower(candidate.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, candidate)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Relevance > unique[j].Relevance
	})

	if maxItems > 0 && len(unique) > maxItems {
		unique = unique[:maxItems]
	}

	return unique, nil
}

// Topics derives article topics with suggested SEO keywords from the most
// relevant candidates.
func (a *Aggregator) Topics(ctx context.Context, count int) ([]domain.ArticleTopic, error) {
	candidates, err := a.Collect(ctx, count*2)
	if err != nil {
		return nil, err
	}

	if len(candidates) > count {
		candidates = candidates[:count]
	}

	topics := make([]domain.ArticleTopic, 0, len(candidates))
	for _, candidate := range candidates {
		topics = append(topics, domain.ArticleTopic{
			OriginalTitle:     candidate.Title,
			Source:            candidate.Source,
			Summary:           candidate.Summary,
			SuggestedKeywords: SuggestKeywords(candidate.Title, candidate.Summary),
			Relevance:         candidate.Relevance,
		})
	}

	return topics, nil
}

// SuggestKeywords builds the capped SEO keyword list: the two brand anchors
// first, then phrases from the keyword table matched against the topic text.
func SuggestKeywords(title, summary string) []string {
	text := strings.ToLower(title + " " + summary)

	keywords := make([]string, 0, maxSuggestedKeywords)
	keywords = append(keywords, brandKeywords...)

	for _, rule := range seoKeywordRules {
		if len(keywords) >= maxSuggestedKeywords {
			break
		}
		if strings.Contains(text, rule.pattern) && !containsString(keywords, rule.keyword) {
			keywords = append(keywords, rule.keyword)
		}
	}

	return keywords
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func (a *Aggregator) warn(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
