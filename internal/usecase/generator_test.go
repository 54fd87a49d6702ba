package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ContentEngine/internal/domain"
)

func fixedTime() time.Time {
	return time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func TestParseSEOResponse(t *testing.T) {
	t.Parallel()

	raw := "SEO_TITLE: Fliesen Trends | Hermitage Frankfurt\nSEO_DESCRIPTION: Jetzt entdecken!"
	title, desc := ParseSEOResponse(raw)

	if title != "Fliesen Trends | Hermitage Frankfurt" {
		t.Errorf("unexpected seo title: %q", title)
	}
	if desc != "Jetzt entdecken!" {
		t.Errorf("unexpected seo description: %q", desc)
	}
}

func TestParseSEOResponseMissingLines(t *testing.T) {
	t.Parallel()

	title, desc := ParseSEOResponse("SEO_TITLE: Nur ein Titel")
	if title != "Nur ein Titel" {
		t.Errorf("unexpected seo title: %q", title)
	}
	if desc != "" {
		t.Errorf("expected empty description, got %q", desc)
	}

	title, desc = ParseSEOResponse("keine labels hier")
	if title != "" || desc != "" {
		t.Errorf("expected empty fields, got %q / %q", title, desc)
	}
}

func TestSynthesizeBuildsUnpublishedArticle(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Der Artikeltext über Fliesen. Besuchen Sie unseren Showroom!"},
		{text: "  Ein kurzer Teaser.  "},
		{text: "SEO_TITLE: Fliesen | Hermitage Frankfurt\nSEO_DESCRIPTION: Entdecken Sie Trends."},
	}}
	repo := newMemArticles()

	g := NewGenerator(gen, repo, "gpt-4o-mini", nil)
	g.now = fixedTime

	article, err := g.Synthesize(context.Background(), SynthesisRequest{
		Title:    "Badezimmer Trends 2025",
		Keywords: []string{"Fliesen Frankfurt", "Hermitage", "Badezimmerfliesen"},
		Category: "Trends",
	})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	if article.Slug != "badezimmer-trends-2025" {
		t.Errorf("unexpected slug: %q", article.Slug)
	}
	if !article.IsAutoGenerated {
		t.Error("article must be flagged auto-generated")
	}
	if article.IsPublished || article.PublishedAt != nil {
		t.Error("article must stay unpublished by default")
	}
	if article.Excerpt != "Ein kurzer Teaser." {
		t.Errorf("unexpected excerpt: %q", article.Excerpt)
	}
	if article.SEOTitle != "Fliesen | Hermitage Frankfurt" {
		t.Errorf("unexpected seo title: %q", article.SEOTitle)
	}
	if len(repo.articles) != 1 {
		t.Fatalf("expected 1 stored article, got %d", len(repo.articles))
	}
}

func TestSynthesizeExcerptCapped(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Inhalt."},
		{text: strings.Repeat("ä", 300)},
		{text: "SEO_TITLE: A\nSEO_DESCRIPTION: B"},
	}}

	g := NewGenerator(gen, newMemArticles(), "gpt-4o-mini", nil)
	g.now = fixedTime

	article, err := g.Synthesize(context.Background(), SynthesisRequest{Title: "Test"})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	if got := len([]rune(article.Excerpt)); got != excerptMaxRunes {
		t.Errorf("excerpt length %d, want %d", got, excerptMaxRunes)
	}
}

func TestSynthesizeSlugCollision(t *testing.T) {
	t.Parallel()

	repo := newMemArticles()
	repo.articles = append(repo.articles, &domain.Article{Slug: "badezimmer-trends-2025"})

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Inhalt."},
		{text: "Teaser."},
		{text: "SEO_TITLE: A\nSEO_DESCRIPTION: B"},
	}}

	g := NewGenerator(gen, repo, "gpt-4o-mini", nil)
	g.now = fixedTime

	article, err := g.Synthesize(context.Background(), SynthesisRequest{Title: "Badezimmer Trends 2025"})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	want := "badezimmer-trends-2025-20250315"
	if article.Slug != want {
		t.Errorf("slug = %q, want %q", article.Slug, want)
	}
}

func TestSynthesizeSlugCollisionBatchSuffix(t *testing.T) {
	t.Parallel()

	repo := newMemArticles()
	repo.articles = append(repo.articles, &domain.Article{Slug: "badezimmer-trends-2025"})

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Inhalt."},
		{text: "Teaser."},
		{text: "SEO_TITLE: A\nSEO_DESCRIPTION: B"},
	}}

	g := NewGenerator(gen, repo, "gpt-4o-mini", nil)
	g.now = fixedTime

	article, err := g.Synthesize(context.Background(), SynthesisRequest{
		Title: "Badezimmer Trends 2025",
		Batch: true,
	})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	want := "badezimmer-trends-2025-202503151030"
	if article.Slug != want {
		t.Errorf("slug = %q, want %q", article.Slug, want)
	}
}

func TestSynthesizeStepFailureAbortsWithoutPersist(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{err: errors.New("provider down")},
	}}
	repo := newMemArticles()

	g := NewGenerator(gen, repo, "gpt-4o-mini", nil)

	_, err := g.Synthesize(context.Background(), SynthesisRequest{Title: "Fliesen"})
	if err == nil {
		t.Fatal("expected synthesis failure")
	}
	if len(repo.articles) != 0 {
		t.Fatalf("no article may be persisted on failure, got %d", len(repo.articles))
	}
}

func TestSynthesizeAppendsImageAttribution(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Der Inhalt."},
		{text: "Teaser."},
		{text: "SEO_TITLE: A\nSEO_DESCRIPTION: B"},
	}}

	g := NewGenerator(gen, newMemArticles(), "gpt-4o-mini", nil)
	g.now = fixedTime

	image := domain.ImageResult{
		URL:         "https://images.example/photo.jpg",
		Attribution: "Foto von Jane Doe auf Unsplash",
	}
	article, err := g.Synthesize(context.Background(), SynthesisRequest{
		Title: "Marmor im Bad",
		Image: &image,
	})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	if article.FeaturedImage != image.URL {
		t.Errorf("featured image = %q, want %q", article.FeaturedImage, image.URL)
	}
	if !strings.HasSuffix(article.Content, "*Titelbild: Foto von Jane Doe auf Unsplash*") {
		t.Errorf("attribution missing from content tail: %q", article.Content)
	}
}

func TestSynthesizeLocalImageNeedsNoAttribution(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Der Inhalt."},
		{text: "Teaser."},
		{text: "SEO_TITLE: A\nSEO_DESCRIPTION: B"},
	}}

	g := NewGenerator(gen, newMemArticles(), "gpt-4o-mini", nil)
	g.now = fixedTime

	image := domain.ImageResult{URL: "/static/images/fliesen/marmor.jpg", Source: "Lokal"}
	article, err := g.Synthesize(context.Background(), SynthesisRequest{
		Title: "Naturstein",
		Image: &image,
	})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	if strings.Contains(article.Content, "Titelbild") {
		t.Errorf("local asset must not add attribution: %q", article.Content)
	}
}

func TestSynthesizeAutoPublishStampsTimestamp(t *testing.T) {
	t.Parallel()

	gen := &scriptedGenerator{responses: []scriptedResponse{
		{text: "Inhalt."},
		{text: "Teaser."},
		{text: "SEO_TITLE: A\nSEO_DESCRIPTION: B"},
	}}

	g := NewGenerator(gen, newMemArticles(), "gpt-4o-mini", nil)
	g.now = fixedTime

	article, err := g.Synthesize(context.Background(), SynthesisRequest{
		Title:       "Sofort live",
		AutoPublish: true,
	})
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	if !article.IsPublished {
		t.Error("article must be published")
	}
	if article.PublishedAt == nil || !article.PublishedAt.Equal(fixedTime()) {
		t.Errorf("unexpected publish timestamp: %v", article.PublishedAt)
	}
}
