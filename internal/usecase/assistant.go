package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// historyLimit bounds how many stored turns are replayed to the provider.
const historyLimit = 10

// leadKeywords mark messages where the visitor wants to be contacted.
var leadKeywords = []string{
	"rückruf", "anrufen", "termin", "kontakt",
	"email", "e-mail", "telefon", "nummer",
	"melden", "erreichen", "beratung",
}

// Assistant is the showroom chat advisor: it assembles the knowledge context,
// bounds the conversation window and answers via the text provider.
type Assistant struct {
	knowledge     ports.KnowledgeRepository
	conversations ports.ConversationRepository
	gen           ports.TextGenerator
	model         string
	maxTokens     int
	temperature   float64
	logger        *slog.Logger
	now           func() time.Time
}

// NewAssistant wires the assistant dependencies.
func NewAssistant(knowledge ports.KnowledgeRepository, conversations ports.ConversationRepository, gen ports.TextGenerator, model string, maxTokens int, temperature float64, log *slog.Logger) *Assistant {
	return &Assistant{
		knowledge:     knowledge,
		conversations: conversations,
		gen:           gen,
		model:         model,
		maxTokens:     maxTokens,
		temperature:   temperature,
		logger:        log,
		now:           time.Now,
	}
}

// KnowledgeBase renders all active entries ordered by priority as
// "[TYPE] title:\ncontent" blocks. A placeholder stands in when none exist.
func (a *Assistant) KnowledgeBase(ctx context.Context) string {
	entries, err := a.knowledge.ActiveByPriority(ctx)
	if err != nil {
		a.warn("knowledge base load failed", "error", err)
		return emptyKnowledgePlaceholder
	}
	if len(entries) == 0 {
		return emptyKnowledgePlaceholder
	}

	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, fmt.Sprintf("[%s] %s:\n%s", strings.ToUpper(string(entry.Type)), entry.Title, entry.Content))
	}
	return strings.Join(blocks, "\n\n")
}

// Instructions concatenates active behavioural instructions line by line.
func (a *Assistant) Instructions(ctx context.Context) string {
	entries, err := a.knowledge.ActiveByType(ctx, domain.KnowledgeInstruction)
	if err != nil {
		a.warn("instructions load failed", "error", err)
		return emptyInstructionsPlaceholder
	}
	if len(entries) == 0 {
		return emptyInstructionsPlaceholder
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Content)
	}
	return strings.Join(lines, "\n")
}

// BuildSystemPrompt interpolates the current knowledge into the advisor prompt.
func (a *Assistant) BuildSystemPrompt(ctx context.Context) string {
	return fmt.Sprintf(assistantSystemPrompt, a.KnowledgeBase(ctx), a.Instructions(ctx))
}

// BuildMessages assembles the provider message list: system prompt, the last
// historyLimit stored turns, and the incoming message unless the caller
// already persisted it as the most recent turn.
func (a *Assistant) BuildMessages(systemPrompt string, history []domain.ChatMessage, userMessage string) []domain.ChatMessage {
	messages := []domain.ChatMessage{{Role: domain.RoleSystem, Content: systemPrompt}}

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	messages = append(messages, history...)

	if len(history) == 0 || history[len(history)-1].Content != userMessage {
		messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: userMessage})
	}

	return messages
}

// Respond answers a visitor message within the given session. Provider
// failures are logged and replaced by the branded fallback message; they
// never reach the visitor as errors.
func (a *Assistant) Respond(ctx context.Context, sessionID, pageURL, userMessage string) (string, string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session, err := a.conversations.GetOrCreate(ctx, sessionID, pageURL)
	if err != nil {
		return "", sessionID, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	userTurn := domain.ChatMessage{Role: domain.RoleUser, Content: userMessage, Timestamp: a.now().UTC()}
	if err := a.conversations.AppendMessage(ctx, sessionID, userTurn); err != nil {
		return "", sessionID, fmt.Errorf("store user turn: %w", err)
	}
	session.Messages = append(session.Messages, userTurn)

	messages := a.BuildMessages(a.BuildSystemPrompt(ctx), session.Messages, userMessage)

	reply, err := a.gen.Complete(ctx, ports.ChatRequest{
		Model:       a.model,
		Messages:    messages,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
	})
	if err != nil {
		a.warn("assistant completion failed", "session", sessionID, "error", err)
		reply = assistantFallbackMessage
	}

	assistantTurn := domain.ChatMessage{Role: domain.RoleAssistant, Content: reply, Timestamp: a.now().UTC()}
	if err := a.conversations.AppendMessage(ctx, sessionID, assistantTurn); err != nil {
		a.warn("store assistant turn failed", "session", sessionID, "error", err)
	}

	return reply, sessionID, nil
}

// MarkAsLead flags the session as a lead with whichever contact fields the
// visitor provided.
func (a *Assistant) MarkAsLead(ctx context.Context, sessionID, name, email, phone string) error {
	return a.conversations.MarkAsLead(ctx, sessionID, name, email, phone)
}

// IsLeadIntent reports whether the message suggests the visitor wants to
// leave contact details.
func IsLeadIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range leadKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (a *Assistant) warn(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
