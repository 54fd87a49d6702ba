package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// ConversationRepository persists visitor chat sessions with an append-only
// jsonb message log.
type ConversationRepository struct {
	pool *pgxpool.Pool
}

var _ ports.ConversationRepository = (*ConversationRepository)(nil)

// NewConversationRepository wires the connection pool.
func NewConversationRepository(pool *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{pool: pool}
}

var sessionColumns = []string{
	"id", "session_id", "messages", "user_name", "user_email", "user_phone",
	"page_url", "is_lead", "created_at", "updated_at",
}

// GetOrCreate loads the session or creates an empty one for the id.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, sessionID, pageURL string) (domain.ChatSession, error) {
	session, err := r.get(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return domain.ChatSession{}, err
	}

	query, args, err := builder.Insert("chat_sessions").
		Columns("session_id", "messages", "page_url").
		Values(sessionID, "[]", pageURL).
		Suffix("ON CONFLICT (session_id) DO NOTHING").
		ToSql()
	if err != nil {
		return domain.ChatSession{}, fmt.Errorf("build session insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return domain.ChatSession{}, fmt.Errorf("create session %s: %w", sessionID, err)
	}

	return r.get(ctx, sessionID)
}

// AppendMessage adds one turn to the session's message log.
func (r *ConversationRepository) AppendMessage(ctx context.Context, sessionID string, msg domain.ChatMessage) error {
	payload, err := json.Marshal([]domain.ChatMessage{msg})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE chat_sessions
         SET messages = COALESCE(messages, '[]'::jsonb) || $1::jsonb, updated_at = NOW()
         WHERE session_id = $2`,
		payload, sessionID)
	if err != nil {
		return fmt.Errorf("append message to %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// MarkAsLead flags a session as a lead, keeping existing contact fields when
// the new ones are empty.
func (r *ConversationRepository) MarkAsLead(ctx context.Context, sessionID, name, email, phone string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE chat_sessions
         SET is_lead = TRUE,
             user_name = COALESCE(NULLIF($1, ''), user_name),
             user_email = COALESCE(NULLIF($2, ''), user_email),
             user_phone = COALESCE(NULLIF($3, ''), user_phone),
             updated_at = NOW()
         WHERE session_id = $4`,
		name, email, phone, sessionID)
	if err != nil {
		return fmt.Errorf("mark lead %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (r *ConversationRepository) get(ctx context.Context, sessionID string) (domain.ChatSession, error) {
	query, args, err := builder.Select(sessionColumns...).
		From("chat_sessions").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return domain.ChatSession{}, fmt.Errorf("build session query: %w", err)
	}

	var (
		s        domain.ChatSession
		messages []byte
	)
	row := r.pool.QueryRow(ctx, query, args...)
	err = row.Scan(&s.ID, &s.SessionID, &messages, &s.UserName, &s.UserEmail,
		&s.UserPhone, &s.PageURL, &s.IsLead, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ChatSession{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.ChatSession{}, fmt.Errorf("query session %s: %w", sessionID, err)
	}

	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &s.Messages); err != nil {
			return domain.ChatSession{}, fmt.Errorf("decode session messages: %w", err)
		}
	}

	return s, nil
}
