package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// KnowledgeRepository reads assistant knowledge entries. Entries are authored
// externally; this side only filters and orders them.
type KnowledgeRepository struct {
	pool *pgxpool.Pool
}

var _ ports.KnowledgeRepository = (*KnowledgeRepository)(nil)

// NewKnowledgeRepository wires the connection pool.
func NewKnowledgeRepository(pool *pgxpool.Pool) *KnowledgeRepository {
	return &KnowledgeRepository{pool: pool}
}

var knowledgeColumns = []string{
	"id", "title", "instruction_type", "content", "keywords",
	"is_active", "priority", "created_at", "updated_at",
}

// ActiveByPriority returns all active entries, highest priority first.
func (r *KnowledgeRepository) ActiveByPriority(ctx context.Context) ([]domain.KnowledgeEntry, error) {
	return r.query(ctx, sq.Eq{"is_active": true})
}

// ActiveByType returns active entries of one type, highest priority first.
func (r *KnowledgeRepository) ActiveByType(ctx context.Context, t domain.KnowledgeType) ([]domain.KnowledgeEntry, error) {
	return r.query(ctx, sq.Eq{"is_active": true, "instruction_type": t})
}

func (r *KnowledgeRepository) query(ctx context.Context, where sq.Eq) ([]domain.KnowledgeEntry, error) {
	query, args, err := builder.Select(knowledgeColumns...).
		From("chatbot_instructions").
		Where(where).
		OrderBy("priority DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build knowledge query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query knowledge: %w", err)
	}
	defer rows.Close()

	var entries []domain.KnowledgeEntry
	for rows.Next() {
		entry, err := scanKnowledge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan knowledge entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate knowledge: %w", err)
	}

	return entries, nil
}

func scanKnowledge(row pgx.Row) (domain.KnowledgeEntry, error) {
	var e domain.KnowledgeEntry
	err := row.Scan(&e.ID, &e.Title, &e.Type, &e.Content, &e.Keywords,
		&e.IsActive, &e.Priority, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
