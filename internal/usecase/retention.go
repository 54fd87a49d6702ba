package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ContentEngine/internal/ports"
)

// Retention caps the stored article count by evicting oldest-first.
// Reviewed or featured articles are not exempt: strict FIFO keeps the rule
// predictable for a bounded showcase corpus.
type Retention struct {
	articles ports.ArticleRepository
	logger   *slog.Logger
}

// NewRetention wires the article repository.
func NewRetention(articles ports.ArticleRepository, log *slog.Logger) *Retention {
	return &Retention{articles: articles, logger: log}
}

// Enforce deletes the oldest articles above maxArticles and returns how many
// were evicted. Calling it again without intervening inserts yields 0.
func (r *Retention) Enforce(ctx context.Context, maxArticles int) (int, error) {
	count, err := r.articles.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}

	if count <= maxArticles {
		return 0, nil
	}

	excess := count - maxArticles
	deleted, err := r.articles.DeleteOldest(ctx, excess)
	if err != nil {
		return 0, fmt.Errorf("delete oldest articles: %w", err)
	}

	if r.logger != nil {
		r.logger.Info("article limit enforced", "deleted", deleted, "limit", maxArticles)
	}
	return deleted, nil
}
