package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// Lifecycle drives content plans through their state machine:
// planned -> generating -> review -> published, with rollback to planned on
// synthesis failure.
type Lifecycle struct {
	plans     ports.PlanRepository
	articles  ports.ArticleRepository
	generator *Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewLifecycle wires the plan manager.
func NewLifecycle(plans ports.PlanRepository, articles ports.ArticleRepository, generator *Generator, log *slog.Logger) *Lifecycle {
	return &Lifecycle{
		plans:     plans,
		articles:  articles,
		generator: generator,
		logger:    log,
		now:       time.Now,
	}
}

// ProcessPendingPlans generates an article for every due plan. Each plan is
// claimed with a conditional status update first, so concurrent runs never
// synthesize the same plan twice. One plan's failure never affects siblings.
func (l *Lifecycle) ProcessPendingPlans(ctx context.Context) ([]domain.PlanResult, error) {
	pending, err := l.plans.Pending(ctx, l.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("load pending plans: %w", err)
	}

	results := make([]domain.PlanResult, 0, len(pending))
	for _, plan := range pending {
		results = append(results, l.processPlan(ctx, plan))
	}

	return results, nil
}

func (l *Lifecycle) processPlan(ctx context.Context, plan domain.ContentPlan) domain.PlanResult {
	if err := l.plans.Claim(ctx, plan.ID); err != nil {
		if errors.Is(err, domain.ErrPlanAlreadyClaimed) {
			l.info("plan already claimed, skipping", "plan_id", plan.ID)
			return domain.PlanResult{PlanID: plan.ID, Status: "skipped"}
		}
		return domain.PlanResult{PlanID: plan.ID, Status: "error", Err: err.Error()}
	}

	article, err := l.generator.Synthesize(ctx, SynthesisRequest{
		Title:    plan.Title,
		Keywords: plan.Keywords,
		Category: plan.Category,
	})
	if err != nil {
		l.warn("plan generation failed, rolling back", "plan_id", plan.ID, "error", err)
		if rbErr := l.plans.Rollback(ctx, plan.ID, err.Error()); rbErr != nil {
			l.warn("plan rollback failed", "plan_id", plan.ID, "error", rbErr)
		}
		return domain.PlanResult{PlanID: plan.ID, Status: "error", Err: err.Error()}
	}

	if err := l.plans.SetReview(ctx, plan.ID, article.ID); err != nil {
		return domain.PlanResult{PlanID: plan.ID, ArticleID: article.ID, Status: "error", Err: err.Error()}
	}

	l.info("plan moved to review", "plan_id", plan.ID, "article_id", article.ID)
	return domain.PlanResult{PlanID: plan.ID, ArticleID: article.ID, Status: "success"}
}

// PublishArticle publishes the article with the given slug and advances a
// linked plan to published.
func (l *Lifecycle) PublishArticle(ctx context.Context, slug string) error {
	article, err := l.articles.GetBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("load article %s: %w", slug, err)
	}

	if err := l.articles.Publish(ctx, article.ID, l.now().UTC()); err != nil {
		return fmt.Errorf("publish article %s: %w", slug, err)
	}

	plan, err := l.plans.ByArticle(ctx, article.ID)
	if err != nil {
		// Manually authored articles have no plan; nothing to advance.
		return nil
	}

	if err := l.plans.SetPublished(ctx, plan.ID); err != nil {
		return fmt.Errorf("advance plan %d: %w", plan.ID, err)
	}

	return nil
}

func (l *Lifecycle) info(msg string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

func (l *Lifecycle) warn(msg string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
