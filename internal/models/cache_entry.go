package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingMetrics captures per-request timings. It is embedded into a cache
// entry as JSONB when the entry is written or its access is recorded.
type ProcessingMetrics struct {
	TotalTime              time.Duration `json:"total_time"`
	CacheCheckTime         time.Duration `json:"cache_check_time,omitempty"`
	ResponseGenerationTime time.Duration `json:"response_generation_time,omitempty"`
	AudioSynthesisTime     time.Duration `json:"audio_synthesis_time,omitempty"`
	CacheHit               bool          `json:"cache_hit"`
	Error                  string        `json:"error,omitempty"`
}

// CacheEntry is one resolved question→(response, audio) pair.
// Entries past ExpiresAt are treated as absent by lookups.
type CacheEntry struct {
	ID        uuid.UUID         `db:"id"`
	Key       string            `db:"key"`
	Question  string            `db:"question"`
	Response  string            `db:"response"`
	AudioURL  string            `db:"audio_url"`
	Metrics   ProcessingMetrics `db:"performance_metrics"`
	HitCount  int               `db:"hit_count"`
	LastHitAt time.Time         `db:"last_hit_at"`
	CreatedAt time.Time         `db:"created_at"`
	ExpiresAt time.Time         `db:"expires_at"`
}
