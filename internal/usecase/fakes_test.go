package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// scriptedGenerator replays canned completions in call order.
type scriptedGenerator struct {
	responses []scriptedResponse
	calls     []ports.ChatRequest
}

type scriptedResponse struct {
	text string
	err  error
}

func (g *scriptedGenerator) Complete(_ context.Context, req ports.ChatRequest) (string, error) {
	g.calls = append(g.calls, req)
	idx := len(g.calls) - 1
	if idx >= len(g.responses) {
		return "", fmt.Errorf("unexpected completion call %d", idx)
	}
	r := g.responses[idx]
	return r.text, r.err
}

// memArticles is an in-memory article repository.
type memArticles struct {
	articles []*domain.Article
	nextID   int64
	clock    time.Time
	saveErr  error
}

func newMemArticles() *memArticles {
	return &memArticles{clock: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *memArticles) Save(_ context.Context, article *domain.Article) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.nextID++
	m.clock = m.clock.Add(time.Minute)
	article.ID = m.nextID
	article.CreatedAt = m.clock
	article.UpdatedAt = m.clock
	stored := *article
	m.articles = append(m.articles, &stored)
	return nil
}

func (m *memArticles) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, a := range m.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memArticles) GetBySlug(_ context.Context, slug string) (domain.Article, error) {
	for _, a := range m.articles {
		if a.Slug == slug {
			return *a, nil
		}
	}
	return domain.Article{}, domain.ErrArticleNotFound
}

func (m *memArticles) ListPublished(_ context.Context, limit int) ([]domain.Article, error) {
	var published []domain.Article
	for _, a := range m.articles {
		if a.IsPublished {
			published = append(published, *a)
		}
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].PublishedAt.After(*published[j].PublishedAt)
	})
	if limit > 0 && len(published) > limit {
		published = published[:limit]
	}
	return published, nil
}

func (m *memArticles) Count(_ context.Context) (int, error) {
	return len(m.articles), nil
}

func (m *memArticles) DeleteOldest(_ context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	sort.Slice(m.articles, func(i, j int) bool {
		return m.articles[i].CreatedAt.Before(m.articles[j].CreatedAt)
	})
	if n > len(m.articles) {
		n = len(m.articles)
	}
	m.articles = m.articles[n:]
	return n, nil
}

func (m *memArticles) Publish(_ context.Context, id int64, at time.Time) error {
	for _, a := range m.articles {
		if a.ID == id {
			a.IsPublished = true
			a.PublishedAt = &at
			return nil
		}
	}
	return domain.ErrArticleNotFound
}

func (m *memArticles) IncrementViews(_ context.Context, id int64) error {
	for _, a := range m.articles {
		if a.ID == id {
			a.ViewsCount++
			return nil
		}
	}
	return domain.ErrArticleNotFound
}

// memPlans is an in-memory plan repository.
type memPlans struct {
	plans map[int64]*domain.ContentPlan
}

func newMemPlans(plans ...*domain.ContentPlan) *memPlans {
	m := &memPlans{plans: map[int64]*domain.ContentPlan{}}
	for _, p := range plans {
		m.plans[p.ID] = p
	}
	return m
}

func (m *memPlans) Pending(_ context.Context, today time.Time) ([]domain.ContentPlan, error) {
	var due []domain.ContentPlan
	for _, p := range m.plans {
		if p.Due(today) {
			due = append(due, *p)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due, nil
}

func (m *memPlans) Claim(_ context.Context, planID int64) error {
	p, ok := m.plans[planID]
	if !ok {
		return domain.ErrPlanNotFound
	}
	if p.Status != domain.StatusPlanned {
		return domain.ErrPlanAlreadyClaimed
	}
	p.Status = domain.StatusGenerating
	return nil
}

func (m *memPlans) SetReview(_ context.Context, planID, articleID int64) error {
	p, ok := m.plans[planID]
	if !ok {
		return domain.ErrPlanNotFound
	}
	p.Status = domain.StatusReview
	p.ArticleID = &articleID
	p.LastError = ""
	return nil
}

func (m *memPlans) Rollback(_ context.Context, planID int64, reason string) error {
	p, ok := m.plans[planID]
	if !ok {
		return domain.ErrPlanNotFound
	}
	p.Status = domain.StatusPlanned
	p.LastError = reason
	return nil
}

func (m *memPlans) SetPublished(_ context.Context, planID int64) error {
	p, ok := m.plans[planID]
	if !ok {
		return domain.ErrPlanNotFound
	}
	p.Status = domain.StatusPublished
	return nil
}

func (m *memPlans) ByArticle(_ context.Context, articleID int64) (domain.ContentPlan, error) {
	for _, p := range m.plans {
		if p.ArticleID != nil && *p.ArticleID == articleID {
			return *p, nil
		}
	}
	return domain.ContentPlan{}, domain.ErrPlanNotFound
}

// memKnowledge is an in-memory knowledge repository.
type memKnowledge struct {
	entries []domain.KnowledgeEntry
}

func (m *memKnowledge) ActiveByPriority(_ context.Context) ([]domain.KnowledgeEntry, error) {
	return m.filter(func(e domain.KnowledgeEntry) bool { return e.IsActive }), nil
}

func (m *memKnowledge) ActiveByType(_ context.Context, t domain.KnowledgeType) ([]domain.KnowledgeEntry, error) {
	return m.filter(func(e domain.KnowledgeEntry) bool { return e.IsActive && e.Type == t }), nil
}

func (m *memKnowledge) filter(keep func(domain.KnowledgeEntry) bool) []domain.KnowledgeEntry {
	var out []domain.KnowledgeEntry
	for _, e := range m.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// memConversations is an in-memory conversation repository.
type memConversations struct {
	sessions map[string]*domain.ChatSession
}

func newMemConversations() *memConversations {
	return &memConversations{sessions: map[string]*domain.ChatSession{}}
}

func (m *memConversations) GetOrCreate(_ context.Context, sessionID, pageURL string) (domain.ChatSession, error) {
	if s, ok := m.sessions[sessionID]; ok {
		return *s, nil
	}
	s := &domain.ChatSession{SessionID: sessionID, PageURL: pageURL}
	m.sessions[sessionID] = s
	return *s, nil
}

func (m *memConversations) AppendMessage(_ context.Context, sessionID string, msg domain.ChatMessage) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Messages = append(s.Messages, msg)
	return nil
}

func (m *memConversations) MarkAsLead(_ context.Context, sessionID, name, email, phone string) error {
	s, ok := m.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.MarkAsLead(name, email, phone)
	return nil
}

// fakeTopics returns a fixed topic list.
type fakeTopics struct {
	topics []domain.ArticleTopic
}

func (f *fakeTopics) Topics(_ context.Context, count int) ([]domain.ArticleTopic, error) {
	if count < len(f.topics) {
		return f.topics[:count], nil
	}
	return f.topics, nil
}

// fakeImages returns a fixed image result.
type fakeImages struct {
	result domain.ImageResult
}

func (f *fakeImages) Resolve(_ context.Context, _ string, _ []string) domain.ImageResult {
	return f.result
}
