package domain

import "time"

// KnowledgeType classifies authored snippets injected into the assistant context.
type KnowledgeType string

const (
	KnowledgeProduct     KnowledgeType = "product"
	KnowledgeFAQ         KnowledgeType = "faq"
	KnowledgePolicy      KnowledgeType = "policy"
	KnowledgeCompany     KnowledgeType = "company"
	KnowledgeInstruction KnowledgeType = "instruction"
)

// KnowledgeEntry is an externally authored fact or behavioural instruction
// surfaced to the assistant. Higher priority entries come first.
type KnowledgeEntry struct {
	ID        int64
	Title     string
	Type      KnowledgeType
	Content   string
	Keywords  []string
	IsActive  bool
	Priority  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatRole is the speaker of a conversation turn.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn in a visitor conversation.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is an append-only conversation with a website visitor.
type ChatSession struct {
	ID        int64
	SessionID string
	Messages  []ChatMessage
	UserName  string
	UserEmail string
	UserPhone string
	PageURL   string
	IsLead    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Append adds a turn to the message log.
func (s *ChatSession) Append(role ChatRole, content string, now time.Time) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content, Timestamp: now})
}

// MarkAsLead flags the session and records whichever contact fields were given.
func (s *ChatSession) MarkAsLead(name, email, phone string) {
	s.IsLead = true
	if name != "" {
		s.UserName = name
	}
	if email != "" {
		s.UserEmail = email
	}
	if phone != "" {
		s.UserPhone = phone
	}
}
