package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

const (
	titleMaxTokens   = 100
	bodyMaxTokens    = 2500
	excerptMaxTokens = 100
	seoMaxTokens     = 150

	creativeTemperature = 0.7
	focusedTemperature  = 0.5

	excerptMaxRunes    = 160
	excerptSourceRunes = 1000
	trendContextRunes  = 500
	daySlugSuffix      = "20060102"
	minuteSlugSuffix   = "200601021504"
)

// SynthesisRequest describes one article to generate. The title is taken as
// final; trend-driven callers polish it via TitleFromTrend first.
type SynthesisRequest struct {
	Title         string
	Keywords      []string
	Category      string
	SourceContext string
	Image         *domain.ImageResult
	AutoPublish   bool
	// Batch switches slug collision handling to the finer timestamp suffix
	// used when several articles are generated in one run.
	Batch bool
}

// Generator is the content synthesis pipeline: it turns a topic into a
// complete, persisted article via independent generative steps.
type Generator struct {
	gen      ports.TextGenerator
	articles ports.ArticleRepository
	model    string
	logger   *slog.Logger
	now      func() time.Time
}

// NewGenerator wires the pipeline dependencies.
func NewGenerator(gen ports.TextGenerator, articles ports.ArticleRepository, model string, log *slog.Logger) *Generator {
	return &Generator{
		gen:      gen,
		articles: articles,
		model:    model,
		logger:   log,
		now:      time.Now,
	}
}

// TitleFromTrend derives a polished German blog title from a raw trend topic.
func (g *Generator) TitleFromTrend(ctx context.Context, originalTitle, summary string) (string, error) {
	prompt := fmt.Sprintf(titlePrompt, originalTitle, truncate(summary, trendContextRunes))

	title, err := g.complete(ctx, []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: blogSystemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}, titleMaxTokens, creativeTemperature)
	if err != nil {
		return "", fmt.Errorf("generate title: %w", err)
	}

	return strings.TrimSpace(title), nil
}

// Content generates the article body honoring the length target and the
// mandatory showroom call-to-action.
func (g *Generator) Content(ctx context.Context, title string, keywords []string, sourceContext string) (string, error) {
	if sourceContext == "" {
		sourceContext = emptySourceContext
	}

	prompt := fmt.Sprintf(articlePrompt, title, sourceContext, strings.Join(keywords, ", "))

	content, err := g.complete(ctx, []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: blogSystemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}, bodyMaxTokens, creativeTemperature)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return content, nil
}

// Excerpt derives the bounded teaser from the head of the body.
func (g *Generator) Excerpt(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(excerptPrompt, truncate(content, excerptSourceRunes))

	excerpt, err := g.complete(ctx, []domain.ChatMessage{
		{Role: domain.RoleUser, Content: prompt},
	}, excerptMaxTokens, focusedTemperature)
	if err != nil {
		return "", fmt.Errorf("generate excerpt: %w", err)
	}

	return truncate(strings.TrimSpace(excerpt), excerptMaxRunes), nil
}

// SEOMeta asks for the two labeled meta lines and parses them tolerantly:
// a missing line leaves its field empty instead of failing the call.
func (g *Generator) SEOMeta(ctx context.Context, title string, keywords []string) (seoTitle, seoDescription string, err error) {
	prompt := fmt.Sprintf(seoPrompt, title, strings.Join(keywords, ", "))

	raw, err := g.complete(ctx, []domain.ChatMessage{
		{Role: domain.RoleUser, Content: prompt},
	}, seoMaxTokens, focusedTemperature)
	if err != nil {
		return "", "", fmt.Errorf("generate seo meta: %w", err)
	}

	seoTitle, seoDescription = ParseSEOResponse(raw)
	return seoTitle, seoDescription, nil
}

// ParseSEOResponse pulls the SEO_TITLE and SEO_DESCRIPTION lines out of the
// free-text model response.
func ParseSEOResponse(raw string) (seoTitle, seoDescription string) {
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "SEO_TITLE:"):
			seoTitle = strings.TrimSpace(strings.TrimPrefix(line, "SEO_TITLE:"))
		case strings.HasPrefix(line, "SEO_DESCRIPTION:"):
			seoDescription = strings.TrimSpace(strings.TrimPrefix(line, "SEO_DESCRIPTION:"))
		}
	}
	return seoTitle, seoDescription
}

// Synthesize runs the full pipeline and persists the resulting article.
// Any step failure aborts without a partial persist.
func (g *Generator) Synthesize(ctx context.Context, req SynthesisRequest) (domain.Article, error) {
	content, err := g.Content(ctx, req.Title, req.Keywords, req.SourceContext)
	if err != nil {
		return domain.Article{}, err
	}

	excerpt, err := g.Excerpt(ctx, content)
	if err != nil {
		return domain.Article{}, err
	}

	seoTitle, seoDescription, err := g.SEOMeta(ctx, req.Title, req.Keywords)
	if err != nil {
		return domain.Article{}, err
	}

	featuredImage := ""
	if req.Image != nil {
		featuredImage = req.Image.URL
		if req.Image.Attribution != "" {
			content += fmt.Sprintf("\n\n*Titelbild: %s*", req.Image.Attribution)
		}
	}

	slug, err := g.uniqueSlug(ctx, req.Title, req.Batch)
	if err != nil {
		return domain.Article{}, err
	}

	category := req.Category
	if category == "" {
		category = "Trends"
	}

	article := domain.Article{
		Slug:            slug,
		Title:           req.Title,
		Excerpt:         excerpt,
		Content:         content,
		FeaturedImage:   featuredImage,
		Category:        category,
		Tags:            req.Keywords,
		SEOTitle:        seoTitle,
		SEODescription:  seoDescription,
		IsAutoGenerated: true,
		IsPublished:     req.AutoPublish,
	}
	if req.AutoPublish {
		article.Publish(g.now().UTC())
	}

	if err := g.articles.Save(ctx, &article); err != nil {
		return domain.Article{}, fmt.Errorf("save article: %w", err)
	}

	g.info("article synthesized", "slug", article.Slug, "title", article.Title)
	return article, nil
}

// uniqueSlug resolves slug collisions with a date suffix, or the finer
// timestamp suffix in batch context.
func (g *Generator) uniqueSlug(ctx context.Context, title string, batch bool) (string, error) {
	slug := Slugify(title)

	exists, err := g.articles.SlugExists(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if !exists {
		return slug, nil
	}

	layout := daySlugSuffix
	if batch {
		layout = minuteSlugSuffix
	}
	return fmt.Sprintf("%s-%s", slug, g.now().Format(layout)), nil
}

func (g *Generator) complete(ctx context.Context, messages []domain.ChatMessage, maxTokens int, temperature float64) (string, error) {
	return g.gen.Complete(ctx, ports.ChatRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func (g *Generator) info(msg string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Info(msg, args...)
	}
}
