package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// TrendPipeline generates ad-hoc articles from aggregated trend topics when
// no editorial plan exists. Retention runs before and after each batch so the
// corpus stays bounded.
type TrendPipeline struct {
	topics    ports.TopicSource
	images    ports.ImageResolver
	generator *Generator
	retention *Retention
	limit     int
	logger    *slog.Logger
}

// NewTrendPipeline wires the batch generation dependencies. limit is the
// retention cap applied around the batch.
func NewTrendPipeline(topics ports.TopicSource, images ports.ImageResolver, generator *Generator, retention *Retention, limit int, log *slog.Logger) *TrendPipeline {
	return &TrendPipeline{
		topics:    topics,
		images:    images,
		generator: generator,
		retention: retention,
		limit:     limit,
		logger:    log,
	}
}

// GenerateFromTrends synthesizes up to maxArticles articles from current
// trends. A failing topic is logged and skipped; the batch continues.
func (p *TrendPipeline) GenerateFromTrends(ctx context.Context, maxArticles int, autoPublish bool) ([]domain.Article, error) {
	if _, err := p.retention.Enforce(ctx, p.limit); err != nil {
		return nil, fmt.Errorf("enforce retention: %w", err)
	}

	topics, err := p.topics.Topics(ctx, maxArticles)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	var created []domain.Article
	for _, topic := range topics {
		article, err := p.generateOne(ctx, topic, autoPublish)
		if err != nil {
			p.warn("trend article failed", "topic", topic.OriginalTitle, "error", err)
			continue
		}
		created = append(created, article)
	}

	if _, err := p.retention.Enforce(ctx, p.limit); err != nil {
		return created, fmt.Errorf("enforce retention: %w", err)
	}

	return created, nil
}

func (p *TrendPipeline) generateOne(ctx context.Context, topic domain.ArticleTopic, autoPublish bool) (domain.Article, error) {
	title, err := p.generator.TitleFromTrend(ctx, topic.OriginalTitle, topic.Summary)
	if err != nil {
		return domain.Article{}, err
	}

	sourceContext := fmt.Sprintf("Quelle: %s\nOriginal: %s\n%s", topic.Source, topic.OriginalTitle, topic.Summary)
	image := p.images.Resolve(ctx, title, topic.SuggestedKeywords)

	return p.generator.Synthesize(ctx, SynthesisRequest{
		Title:         title,
		Keywords:      topic.SuggestedKeywords,
		Category:      "Trends",
		SourceContext: sourceContext,
		Image:         &image,
		AutoPublish:   autoPublish,
		Batch:         true,
	})
}

func (p *TrendPipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
