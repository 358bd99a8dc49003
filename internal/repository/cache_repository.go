package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"voxdocs/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when no live entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

type CacheRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCacheRepository(db *pgxpool.Pool, logger *zap.Logger) *CacheRepository {
	return &CacheRepository{
		db:     db,
		logger: logger,
	}
}

// Lookup returns the cached entry for a key, ignoring expired rows.
// Multiple rows may exist for one key after racing inserts; the newest wins.
func (r *CacheRepository) Lookup(ctx context.Context, key string) (*models.CacheEntry, error) {
	query := squirrel.Select("id", "key", "question", "response", "audio_url", "performance_metrics", "hit_count", "last_hit_at", "created_at", "expires_at").
		From("response_cache").
		Where(squirrel.Eq{"key": key}).
		Where(squirrel.Expr("expires_at > now()")).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var entry models.CacheEntry
	var metricsJSON []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&entry.ID, &entry.Key, &entry.Question, &entry.Response, &entry.AudioURL,
		&metricsJSON, &entry.HitCount, &entry.LastHitAt, &entry.CreatedAt, &entry.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
			r.logger.Warn("Failed to decode cached metrics", zap.String("key", key), zap.Error(err))
		}
	}

	return &entry, nil
}

// Insert writes a new cache entry. Racing inserts for one key are allowed;
// Lookup resolves them by recency.
func (r *CacheRepository) Insert(ctx context.Context, entry *models.CacheEntry) error {
	metricsJSON, err := json.Marshal(entry.Metrics)
	if err != nil {
		return err
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query := squirrel.Insert("response_cache").
		Columns("id", "key", "question", "response", "audio_url", "performance_metrics", "hit_count", "last_hit_at", "created_at", "expires_at").
		Values(entry.ID, entry.Key, entry.Question, entry.Response, entry.AudioURL, metricsJSON, entry.HitCount, entry.LastHitAt, entry.CreatedAt, entry.ExpiresAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// RecordAccess refreshes an entry's metrics and hit counters.
// Best-effort: a missing row is not an error.
func (r *CacheRepository) RecordAccess(ctx context.Context, key string, metrics models.ProcessingMetrics, isCacheHit bool) error {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return err
	}

	builder := squirrel.Update("response_cache").
		Set("performance_metrics", metricsJSON).
		Set("last_hit_at", time.Now()).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar)

	if isCacheHit {
		builder = builder.Set("hit_count", squirrel.Expr("hit_count + 1"))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
