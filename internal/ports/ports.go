package ports

import (
	"context"
	"time"

	"ContentEngine/internal/domain"
)

// TrendSource pulls candidate topics from one upstream provider (RSS, news API, ...).
type TrendSource interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.TopicCandidate, error)
}

// ChatRequest carries one call to a generative text provider.
type ChatRequest struct {
	Model       string
	Messages    []domain.ChatMessage
	MaxTokens   int
	Temperature float64
}

// TextGenerator pushes prompts to an OpenAI-compatible chat-completions API.
type TextGenerator interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ImageProvider resolves an illustrative image from a single stock-photo API.
type ImageProvider interface {
	Name() string
	Available() bool
	Fetch(ctx context.Context, title string, keywords []string) (domain.ImageResult, error)
}

// TopicSource supplies ready-to-write article topics from aggregated trends.
type TopicSource interface {
	Topics(ctx context.Context, count int) ([]domain.ArticleTopic, error)
}

// ImageResolver picks an illustrative image, always succeeding via fallback.
type ImageResolver interface {
	Resolve(ctx context.Context, title string, keywords []string) domain.ImageResult
}

// ArticleRepository persists articles. Slugs are unique across the corpus.
type ArticleRepository interface {
	Save(ctx context.Context, article *domain.Article) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetBySlug(ctx context.Context, slug string) (domain.Article, error)
	ListPublished(ctx context.Context, limit int) ([]domain.Article, error)
	Count(ctx context.Context) (int, error)
	DeleteOldest(ctx context.Context, n int) (int, error)
	Publish(ctx context.Context, id int64, at time.Time) error
	IncrementViews(ctx context.Context, id int64) error
}

// PlanRepository persists content plans and their status transitions.
type PlanRepository interface {
	Pending(ctx context.Context, today time.Time) ([]domain.ContentPlan, error)
	// Claim transitions planned -> generating only if the plan is still planned;
	// it returns domain.ErrPlanAlreadyClaimed otherwise.
	Claim(ctx context.Context, planID int64) error
	SetReview(ctx context.Context, planID, articleID int64) error
	Rollback(ctx context.Context, planID int64, reason string) error
	SetPublished(ctx context.Context, planID int64) error
	ByArticle(ctx context.Context, articleID int64) (domain.ContentPlan, error)
}

// KnowledgeRepository reads externally authored assistant knowledge.
type KnowledgeRepository interface {
	ActiveByPriority(ctx context.Context) ([]domain.KnowledgeEntry, error)
	ActiveByType(ctx context.Context, t domain.KnowledgeType) ([]domain.KnowledgeEntry, error)
}

// ConversationRepository persists visitor chat sessions.
type ConversationRepository interface {
	GetOrCreate(ctx context.Context, sessionID, pageURL string) (domain.ChatSession, error)
	AppendMessage(ctx context.Context, sessionID string, msg domain.ChatMessage) error
	MarkAsLead(ctx context.Context, sessionID, name, email, phone string) error
}

// Scheduler controls when recurring content jobs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
