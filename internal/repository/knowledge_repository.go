package repository

import (
	"context"

	"voxdocs/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *KnowledgeRepository) Create(ctx context.Context, kb *models.KnowledgeBase) error {
	query := squirrel.Insert("knowledge_base").
		Columns("id", "type", "title", "content", "url", "active", "created_at", "updated_at").
		Values(kb.ID, kb.Type, kb.Title, kb.Content, kb.URL, kb.Active, kb.CreatedAt, kb.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns up to limit knowledge entries for building generation context.
func (r *KnowledgeRepository) List(ctx context.Context, limit int, includeInactive bool) ([]*models.KnowledgeBase, error) {
	query := squirrel.Select("id", "type", "title", "content", "url", "active", "created_at", "updated_at").
		From("knowledge_base").
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if !includeInactive {
		query = query.Where(squirrel.Eq{"active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.KnowledgeBase
	for rows.Next() {
		var kb models.KnowledgeBase
		if err := rows.Scan(
			&kb.ID, &kb.Type, &kb.Title, &kb.Content, &kb.URL, &kb.Active, &kb.CreatedAt, &kb.UpdatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &kb)
	}

	return results, rows.Err()
}
