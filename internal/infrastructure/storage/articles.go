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

// ArticleRepository persists blog articles in Postgres.
type ArticleRepository struct {
	pool *pgxpool.Pool
}

var _ ports.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository wires the connection pool.
func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

var articleColumns = []string{
	"id", "slug", "title", "excerpt", "content", "featured_image", "category",
	"tags", "seo_title", "seo_description", "is_published", "is_auto_generated",
	"published_at", "views_count", "created_at", "updated_at",
}

// Save inserts the article and fills in its generated id and timestamps.
func (r *ArticleRepository) Save(ctx context.Context, article *domain.Article) error {
	query, args, err := builder.Insert("blog_posts").
		Columns("slug", "title", "excerpt", "content", "featured_image", "category",
			"tags", "seo_title", "seo_description", "is_published", "is_auto_generated", "published_at").
		Values(article.Slug, article.Title, article.Excerpt, article.Content,
			article.FeaturedImage, article.Category, article.Tags,
			article.SEOTitle, article.SEODescription,
			article.IsPublished, article.IsAutoGenerated, article.PublishedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

// SlugExists reports whether a slug is already taken.
func (r *ArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query, args, err := builder.Select("COUNT(*)").
		From("blog_posts").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("query slug: %w", err)
	}

	return count > 0, nil
}

// GetBySlug loads a single article.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (domain.Article, error) {
	query, args, err := builder.Select(articleColumns...).
		From("blog_posts").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build select: %w", err)
	}

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Article{}, domain.ErrArticleNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("query article %s: %w", slug, err)
	}

	return article, nil
}

// ListPublished returns published articles, newest first. limit <= 0 lists all.
func (r *ArticleRepository) ListPublished(ctx context.Context, limit int) ([]domain.Article, error) {
	q := builder.Select(articleColumns...).
		From("blog_posts").
		Where(sq.Eq{"is_published": true}).
		OrderBy("published_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query published articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, nil
}

// Count returns the total number of stored articles.
func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM blog_posts").Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// DeleteOldest removes the n oldest articles by creation time.
func (r *ArticleRepository) DeleteOldest(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM blog_posts
         WHERE id IN (SELECT id FROM blog_posts ORDER BY created_at ASC LIMIT $1)`, n)
	if err != nil {
		return 0, fmt.Errorf("delete oldest: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// Publish flips the published flag and stamps the publication time.
func (r *ArticleRepository) Publish(ctx context.Context, id int64, at time.Time) error {
	query, args, err := builder.Update("blog_posts").
		Set("is_published", true).
		Set("published_at", at).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build publish: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("publish article %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}

// IncrementViews bumps the view counter.
func (r *ArticleRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE blog_posts SET views_count = views_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("increment views %d: %w", id, err)
	}
	return nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Content, &a.FeaturedImage,
		&a.Category, &a.Tags, &a.SEOTitle, &a.SEODescription, &a.IsPublished,
		&a.IsAutoGenerated, &a.PublishedAt, &a.ViewsCount, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
