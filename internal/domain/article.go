package domain

import "time"

// Article is a blog post produced by the synthesis pipeline or authored manually.
type Article struct {
	ID              int64
	Slug            string
	Title           string
	Excerpt         string
	Content         string
	FeaturedImage   string
	Category        string
	Tags            []string
	SEOTitle        string
	SEODescription  string
	IsPublished     bool
	IsAutoGenerated bool
	PublishedAt     *time.Time
	ViewsCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Publish marks the article visible and stamps the publication time.
func (a *Article) Publish(now time.Time) {
	a.IsPublished = true
	a.PublishedAt = &now
}

// TopicCandidate is an unpersisted, scored unit of discovered trend content.
type TopicCandidate struct {
	Title     string
	Summary   string
	Source    string
	URL       string
	Published string
	Relevance int
	Origin    TopicOrigin
}

// TopicOrigin tells which kind of source produced a candidate.
type TopicOrigin string

const (
	OriginFeed         TopicOrigin = "rss"
	OriginTrendService TopicOrigin = "trends"
	OriginNewsService  TopicOrigin = "news"
)

// ArticleTopic is a topic candidate enriched with suggested SEO keywords,
// ready to be handed to the synthesis pipeline.
type ArticleTopic struct {
	OriginalTitle     string
	Source            string
	Summary           string
	SuggestedKeywords []string
	Relevance         int
}

// ImageResult describes an illustrative image resolved for an article.
// Attribution is empty for internally owned assets and mandatory otherwise.
type ImageResult struct {
	URL         string
	Thumb       string
	Author      string
	AuthorURL   string
	Source      string
	SourceURL   string
	Attribution string
}
