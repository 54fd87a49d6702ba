package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// PlanRepository persists content plans and their status transitions.
// Every transition is its own atomic statement.
type PlanRepository struct {
	pool *pgxpool.Pool
}

var _ ports.PlanRepository = (*PlanRepository)(nil)

// NewPlanRepository wires the connection pool.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

var planColumns = []string{
	"id", "title", "description", "category", "keywords", "scheduled_date",
	"status", "blog_post_id", "last_error", "created_at", "updated_at",
}

// Pending returns plans that are due: still planned with a scheduled date on
// or before today.
func (r *PlanRepository) Pending(ctx context.Context, today time.Time) ([]domain.ContentPlan, error) {
	query, args, err := builder.Select(planColumns...).
		From("content_plans").
		Where(sq.Eq{"status": domain.StatusPlanned}).
		Where(sq.LtOrEq{"scheduled_date": today}).
		OrderBy("scheduled_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query pending plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.ContentPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	return plans, nil
}

// Claim transitions planned -> generating only when the plan is still
// planned, so concurrent runs cannot both take the same plan.
func (r *PlanRepository) Claim(ctx context.Context, planID int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE content_plans SET status = $1, updated_at = NOW()
         WHERE id = $2 AND status = $3`,
		domain.StatusGenerating, planID, domain.StatusPlanned)
	if err != nil {
		return fmt.Errorf("claim plan %d: %w", planID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlanAlreadyClaimed
	}
	return nil
}

// SetReview links the generated article and moves the plan into review.
func (r *PlanRepository) SetReview(ctx context.Context, planID, articleID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE content_plans
         SET status = $1, blog_post_id = $2, last_error = '', updated_at = NOW()
         WHERE id = $3`,
		domain.StatusReview, articleID, planID)
	if err != nil {
		return fmt.Errorf("set plan %d to review: %w", planID, err)
	}
	return nil
}

// Rollback reverts a failed generation to planned, recording the reason.
func (r *PlanRepository) Rollback(ctx context.Context, planID int64, reason string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE content_plans SET status = $1, last_error = $2, updated_at = NOW()
         WHERE id = $3`,
		domain.StatusPlanned, reason, planID)
	if err != nil {
		return fmt.Errorf("rollback plan %d: %w", planID, err)
	}
	return nil
}

// SetPublished advances the plan after its article was published.
func (r *PlanRepository) SetPublished(ctx context.Context, planID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE content_plans SET status = $1, updated_at = NOW() WHERE id = $2`,
		domain.StatusPublished, planID)
	if err != nil {
		return fmt.Errorf("set plan %d published: %w", planID, err)
	}
	return nil
}

// ByArticle finds the plan linked to an article, if any.
func (r *PlanRepository) ByArticle(ctx context.Context, articleID int64) (domain.ContentPlan, error) {
	query, args, err := builder.Select(planColumns...).
		From("content_plans").
		Where(sq.Eq{"blog_post_id": articleID}).
		ToSql()
	if err != nil {
		return domain.ContentPlan{}, fmt.Errorf("build plan query: %w", err)
	}

	plan, err := scanPlan(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ContentPlan{}, domain.ErrPlanNotFound
	}
	if err != nil {
		return domain.ContentPlan{}, fmt.Errorf("query plan by article %d: %w", articleID, err)
	}

	return plan, nil
}

func scanPlan(row pgx.Row) (domain.ContentPlan, error) {
	var p domain.ContentPlan
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Keywords,
		&p.ScheduledDate, &p.Status, &p.ArticleID, &p.LastError, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
