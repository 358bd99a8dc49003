package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"voxdocs/internal/models"
	"voxdocs/internal/repository"
	"voxdocs/pkg/config"

	"go.uber.org/zap"
)

type cacheStore interface {
	Lookup(ctx context.Context, key string) (*models.CacheEntry, error)
	Insert(ctx context.Context, entry *models.CacheEntry) error
	RecordAccess(ctx context.Context, key string, metrics models.ProcessingMetrics, isCacheHit bool) error
}

type quickMatcher interface {
	Match(question string) (string, bool)
}

type groundedResponder interface {
	GenerateGroundedAnswer(ctx context.Context, question string) (string, error)
}

type synthesizer interface {
	SynthesizeDataURL(ctx context.Context, text string) (string, error)
}

// AskResult is one resolved request: the speech-ready text, its audio and the
// timings recorded along the way.
type AskResult struct {
	Response string
	AudioURL string
	Metrics  models.ProcessingMetrics
}

// AskService runs one question through the resolution tiers: cache lookup,
// quick-response match, grounded generation. The chosen text is formatted for
// speech, synthesized, and cached. Cache writes and metric updates are
// fire-and-forget; everything else is sequential and aborts the request on
// failure.
type AskService struct {
	cache     cacheStore
	quick     quickMatcher
	responder groundedResponder
	tts       synthesizer
	cacheCfg  *config.CacheConfig
	logger    *zap.Logger
}

func NewAskService(
	cache cacheStore,
	quick quickMatcher,
	responder groundedResponder,
	tts synthesizer,
	cacheCfg *config.CacheConfig,
	logger *zap.Logger,
) *AskService {
	return &AskService{
		cache:     cache,
		quick:     quick,
		responder: responder,
		tts:       tts,
		cacheCfg:  cacheCfg,
		logger:    logger,
	}
}

// Process handles one question end to end.
func (s *AskService) Process(ctx context.Context, text string) (*AskResult, error) {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	key := CacheKey(text)
	metrics := models.ProcessingMetrics{}

	cacheStart := time.Now()
	entry, err := s.cache.Lookup(ctx, key)
	metrics.CacheCheckTime = time.Since(cacheStart)

	if err == nil {
		metrics.CacheHit = true
		metrics.TotalTime = time.Since(start)
		s.recordAccessAsync(key, metrics, true)

		s.logger.Info("Cache hit",
			zap.String("key", key),
			zap.Duration("total", metrics.TotalTime),
		)
		return &AskResult{
			Response: entry.Response,
			AudioURL: entry.AudioURL,
			Metrics:  metrics,
		}, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		// A broken cache must not fail the request; treat as a miss.
		s.logger.Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
	}

	// Miss path: quick-response first, generation as the fallback.
	response, matched := s.quick.Match(text)
	if !matched {
		genStart := time.Now()
		generated, err := s.responder.GenerateGroundedAnswer(ctx, text)
		metrics.ResponseGenerationTime = time.Since(genStart)
		if err != nil {
			return nil, err
		}
		response = FormatResponseForSpeech(generated)
	}

	synthStart := time.Now()
	audioURL, err := s.tts.SynthesizeDataURL(ctx, response)
	metrics.AudioSynthesisTime = time.Since(synthStart)
	if err != nil {
		return nil, err
	}

	metrics.TotalTime = time.Since(start)

	s.insertAsync(&models.CacheEntry{
		Key:       key,
		Question:  text,
		Response:  response,
		AudioURL:  audioURL,
		Metrics:   metrics,
		HitCount:  0,
		LastHitAt: time.Now(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.cacheCfg.TTL),
	})

	s.logger.Info("Request resolved",
		zap.String("key", key),
		zap.Bool("quick_response", matched),
		zap.Duration("total", metrics.TotalTime),
	)

	return &AskResult{
		Response: response,
		AudioURL: audioURL,
		Metrics:  metrics,
	}, nil
}

// insertAsync writes the cache entry without blocking the response. Failures
// are logged and never surfaced to the requester.
func (s *AskService) insertAsync(entry *models.CacheEntry) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Cache write panicked", zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.cacheCfg.WriteTimeout)
		defer cancel()

		if err := s.cache.Insert(ctx, entry); err != nil {
			s.logger.Error("Cache write failed", zap.String("key", entry.Key), zap.Error(err))
		}
	}()
}

// recordAccessAsync updates hit metrics best-effort.
func (s *AskService) recordAccessAsync(key string, metrics models.ProcessingMetrics, isCacheHit bool) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Metrics update panicked", zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.cacheCfg.WriteTimeout)
		defer cancel()

		if err := s.cache.RecordAccess(ctx, key, metrics, isCacheHit); err != nil {
			s.logger.Warn("Metrics update failed", zap.String("key", key), zap.Error(err))
		}
	}()
}
